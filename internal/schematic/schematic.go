package schematic

// Schematic is the tokenized grid: an ordered token list plus a row-major
// matrix mapping every cell to the id of the token occupying it. It is built
// once by Tokenize and never modified afterwards.
type Schematic struct {
	tokens []Token
	grid   [][]TokenID
	cols   int
}

func (s *Schematic) Len() int {
	return len(s.tokens)
}

// Token returns a copy of the token with the given id. Cells are copied as well
// so callers cannot alter the schematic through it. The id must come from this
// schematic: Token panics on NoToken or an id out of range.
func (s *Schematic) Token(id TokenID) Token {
	t := s.tokens[id]
	t.Cells = append([]Cell(nil), t.Cells...)
	return t
}

func (s *Schematic) Rows() int {
	return len(s.grid)
}

// Cols is the length of the longest row.
func (s *Schematic) Cols() int {
	return s.cols
}

func (s *Schematic) RowLen(row int) int {
	if row < 0 || row >= len(s.grid) {
		return 0
	}
	return len(s.grid[row])
}

// At returns the token occupying c. Cells outside the grid, including cells
// past the end of a short row, and empty cells report false.
func (s *Schematic) At(c Cell) (TokenID, bool) {
	if c.Row < 0 || c.Row >= len(s.grid) {
		return NoToken, false
	}
	row := s.grid[c.Row]
	if c.Col < 0 || c.Col >= len(row) {
		return NoToken, false
	}
	id := row[c.Col]
	return id, id != NoToken
}

func (s *Schematic) Numbers() []TokenID {
	return s.byKind(KindNumber)
}

func (s *Schematic) Gears() []TokenID {
	return s.byKind(KindGear)
}

func (s *Schematic) Symbols() []TokenID {
	return s.byKind(KindSymbol)
}

func (s *Schematic) byKind(k Kind) []TokenID {
	ids := make([]TokenID, 0)
	for i, t := range s.tokens {
		if t.Kind == k {
			ids = append(ids, TokenID(i))
		}
	}
	return ids
}

func (s *Schematic) kind(id TokenID) (Kind, bool) {
	if id < 0 || int(id) >= len(s.tokens) {
		return 0, false
	}
	return s.tokens[id].Kind, true
}
