package schematic

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..`

func cells(row int, cols ...int) []Cell {
	res := make([]Cell, 0, len(cols))
	for _, c := range cols {
		res = append(res, Cell{Row: row, Col: c})
	}
	return res
}

func values(s *Schematic, ids []TokenID) []uint64 {
	res := make([]uint64, 0, len(ids))
	for _, id := range ids {
		res = append(res, s.Token(id).Value)
	}
	return res
}

func TestTokenizeSingleRow(t *testing.T) {
	s, err := Tokenize("467..114..")
	require.NoError(t, err)

	want := []Token{
		{Kind: KindNumber, Value: 467, Cells: cells(0, 0, 1, 2)},
		{Kind: KindNumber, Value: 114, Cells: cells(0, 5, 6, 7)},
	}
	assert.Empty(t, cmp.Diff(want, s.tokens))
	assert.Equal(t, [][]TokenID{{0, 0, 0, NoToken, NoToken, 1, 1, 1, NoToken, NoToken}}, s.grid)
	assert.Empty(t, s.Gears())
	assert.Empty(t, s.Symbols())
}

func TestTokenizeClassifiesCells(t *testing.T) {
	s, err := Tokenize("467..\n...*.\n..35#")
	require.NoError(t, err)

	want := []Token{
		{Kind: KindNumber, Value: 467, Cells: cells(0, 0, 1, 2)},
		{Kind: KindGear, Char: '*', Cells: cells(1, 3)},
		{Kind: KindNumber, Value: 35, Cells: cells(2, 2, 3)},
		{Kind: KindSymbol, Char: '#', Cells: cells(2, 4)},
	}
	assert.Empty(t, cmp.Diff(want, s.tokens))
	assert.Equal(t, [][]TokenID{
		{0, 0, 0, NoToken, NoToken},
		{NoToken, NoToken, NoToken, 1, NoToken},
		{NoToken, NoToken, 2, 2, 3},
	}, s.grid)
	assert.Equal(t, 3, s.Rows())
	assert.Equal(t, 5, s.Cols())
}

func TestTokenizeClosesTrailingNumber(t *testing.T) {
	for _, text := range []string{"..35", "..35\n", "..35\r\n"} {
		s, err := Tokenize(text)
		require.NoError(t, err, text)
		require.Equal(t, 1, s.Len(), text)
		assert.Equal(t, Token{Kind: KindNumber, Value: 35, Cells: cells(0, 2, 3)}, s.Token(0), text)
		assert.Equal(t, 1, s.Rows(), text)
	}
}

func TestTokenizeNumbersDoNotSpanRows(t *testing.T) {
	s, err := Tokenize("12\n34")
	require.NoError(t, err)
	assert.Equal(t, []uint64{12, 34}, values(s, s.Numbers()))
	assert.Equal(t, cells(1, 0, 1), s.Token(1).Cells)
}

func TestTokenizeCRLF(t *testing.T) {
	lf, err := Tokenize(example + "\n")
	require.NoError(t, err)
	crlf, err := Tokenize(strings.ReplaceAll(example, "\n", "\r\n"))
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(lf.tokens, crlf.tokens))
	assert.Equal(t, lf.grid, crlf.grid)
}

func TestTokenizeExample(t *testing.T) {
	s, err := Tokenize(example)
	require.NoError(t, err)

	assert.Equal(t, 10, s.Rows())
	assert.Equal(t, 10, s.Cols())
	assert.Equal(t, []uint64{467, 114, 35, 633, 617, 58, 592, 755, 664, 598}, values(s, s.Numbers()))

	gears := make([]Cell, 0)
	for _, id := range s.Gears() {
		gears = append(gears, s.Token(id).Cells[0])
	}
	assert.Equal(t, []Cell{{1, 3}, {4, 3}, {8, 5}}, gears)

	symbols := make([]rune, 0)
	for _, id := range s.Symbols() {
		symbols = append(symbols, s.Token(id).Char)
	}
	assert.Equal(t, []rune{'#', '+', '$'}, symbols)
}

func TestTokenizeGridMapsEveryNumberCell(t *testing.T) {
	s, err := Tokenize(example)
	require.NoError(t, err)

	claimed := make(map[Cell]TokenID)
	for i := 0; i < s.Len(); i++ {
		id := TokenID(i)
		for _, c := range s.Token(id).Cells {
			_, dup := claimed[c]
			require.False(t, dup, "cell %s claimed twice", c)
			claimed[c] = id

			got, ok := s.At(c)
			require.True(t, ok)
			assert.Equal(t, id, got)
		}
	}
	for row := 0; row < s.Rows(); row++ {
		for col := 0; col < s.RowLen(row); col++ {
			c := Cell{Row: row, Col: col}
			if _, ok := claimed[c]; !ok {
				_, occupied := s.At(c)
				assert.False(t, occupied, "cell %s", c)
			}
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	s, err := Tokenize("")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Rows())
	assert.Equal(t, 0, s.Cols())
	assert.Equal(t, 0, s.Len())
}

func TestTokenizeOverflow(t *testing.T) {
	_, err := Tokenize("..123456789012345678901234567890*")
	require.ErrorIs(t, err, ErrMalformedNumber)
	assert.Contains(t, err.Error(), "(0,2)")
}

func TestTokenizeCustomGear(t *testing.T) {
	s, err := Tokenize("1*\n#2", WithGear('#'))
	require.NoError(t, err)
	assert.Equal(t, KindSymbol, s.Token(1).Kind)
	assert.Equal(t, KindGear, s.Token(2).Kind)
	assert.Equal(t, '#', s.Token(2).Char)
}

func TestTokenizeInvalidGear(t *testing.T) {
	for _, r := range []rune{'.', '0', '7', '\n'} {
		_, err := Tokenize(example, WithGear(r))
		assert.ErrorIs(t, err, ErrInvalidGear, "%q", r)
	}
}

func TestTokenReturnsCopy(t *testing.T) {
	s, err := Tokenize("467")
	require.NoError(t, err)

	tok := s.Token(0)
	tok.Cells[0] = Cell{Row: 9, Col: 9}
	assert.Equal(t, cells(0, 0, 1, 2), s.Token(0).Cells)
}

func TestAtOutOfBounds(t *testing.T) {
	s, err := Tokenize("1*\n...5\n2")
	require.NoError(t, err)

	for _, c := range []Cell{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {2, 1}, {1, 4}} {
		id, ok := s.At(c)
		assert.False(t, ok, "cell %s", c)
		assert.Equal(t, NoToken, id)
	}
	id, ok := s.At(Cell{Row: 1, Col: 3})
	require.True(t, ok)
	assert.Equal(t, uint64(5), s.Token(id).Value)
	assert.Equal(t, 4, s.Cols())
	assert.Equal(t, 1, s.RowLen(2))
}
