package schematic

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
)

const (
	emptyChar   = '.'
	defaultGear = '*'
)

var (
	ErrMalformedNumber = errors.New("malformed number")
	ErrInvalidGear     = errors.New("invalid gear character")
)

type options struct {
	gear rune
}

type Option func(*options) error

// WithGear sets the character recognized as a gear. Digits, '.' and line
// breaks cannot be gears.
func WithGear(r rune) Option {
	return func(o *options) error {
		if isDigit(r) || r == emptyChar || r == '\n' || r == '\r' {
			return fmt.Errorf("%w: %q", ErrInvalidGear, r)
		}
		o.gear = r
		return nil
	}
}

type scanState int

const (
	stateIdle scanState = iota
	stateNumber
)

// tokenizer is the row-major scanner. In stateNumber, start is the first cell
// of the number and digits holds everything accumulated so far.
type tokenizer struct {
	gear rune

	state  scanState
	start  Cell
	digits []rune

	tokens []Token
	grid   [][]TokenID
	row    []TokenID
	cols   int
}

// Tokenize splits text into rows on '\n' and classifies every cell. A final
// line terminator is optional and a '\r' preceding '\n' is dropped.
func Tokenize(text string, opts ...Option) (*Schematic, error) {
	o := options{gear: defaultGear}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	t := &tokenizer{gear: o.gear}
	runes := []rune(text)
	for i, r := range runes {
		var err error
		switch {
		case r == '\n':
			err = t.endRow()
		case r == '\r' && i+1 < len(runes) && runes[i+1] == '\n':
			continue
		default:
			err = t.step(r)
		}
		if err != nil {
			return nil, err
		}
	}
	if len(t.row) > 0 || t.state == stateNumber {
		if err := t.endRow(); err != nil {
			return nil, err
		}
	}

	s := &Schematic{tokens: t.tokens, grid: t.grid, cols: t.cols}
	slog.Debug("schematic tokenized", "rows", s.Rows(), "cols", s.Cols(), "tokens", s.Len())
	return s, nil
}

func (t *tokenizer) step(r rune) error {
	cell := Cell{Row: len(t.grid), Col: len(t.row)}
	if isDigit(r) {
		if t.state == stateIdle {
			t.state = stateNumber
			t.start = cell
			t.digits = t.digits[:0]
		}
		t.digits = append(t.digits, r)
		// reserved until the number closes and gets its id
		t.row = append(t.row, NoToken)
		return nil
	}

	if err := t.closeNumber(); err != nil {
		return err
	}
	switch r {
	case emptyChar:
		t.row = append(t.row, NoToken)
	case t.gear:
		t.row = append(t.row, t.add(Token{Kind: KindGear, Char: r, Cells: []Cell{cell}}))
	default:
		t.row = append(t.row, t.add(Token{Kind: KindSymbol, Char: r, Cells: []Cell{cell}}))
	}
	return nil
}

func (t *tokenizer) endRow() error {
	if err := t.closeNumber(); err != nil {
		return err
	}
	if len(t.row) > t.cols {
		t.cols = len(t.row)
	}
	t.grid = append(t.grid, t.row)
	t.row = make([]TokenID, 0, t.cols)
	return nil
}

// closeNumber emits the accumulated number, if any, and returns to stateIdle.
func (t *tokenizer) closeNumber() error {
	if t.state != stateNumber {
		return nil
	}
	t.state = stateIdle

	value, err := strconv.ParseUint(string(t.digits), 10, 64)
	if err != nil {
		return fmt.Errorf("%w at %s: %w", ErrMalformedNumber, t.start, err)
	}
	cells := make([]Cell, len(t.digits))
	for i := range cells {
		cells[i] = Cell{Row: t.start.Row, Col: t.start.Col + i}
	}
	id := t.add(Token{Kind: KindNumber, Value: value, Cells: cells})
	for _, c := range cells {
		t.row[c.Col] = id
	}
	return nil
}

func (t *tokenizer) add(tok Token) TokenID {
	t.tokens = append(t.tokens, tok)
	return TokenID(len(t.tokens) - 1)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
