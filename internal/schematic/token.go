package schematic

import "fmt"

// Cell is a zero-indexed row-major grid coordinate.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

type Kind int

const (
	KindNumber Kind = iota
	KindGear
	KindSymbol
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindGear:
		return "gear"
	case KindSymbol:
		return "symbol"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// TokenID is the index of a token in Schematic's ordered token list.
type TokenID int

// NoToken marks an empty cell.
const NoToken TokenID = -1

// Token is a classified unit of the schematic. Value is set for numbers only,
// Char for gears and symbols only.
type Token struct {
	Kind  Kind
	Value uint64
	Char  rune
	Cells []Cell
}

// IsSymbol reports whether the token makes a neighbouring number a part number.
// Gears are symbols too.
func (t Token) IsSymbol() bool {
	return t.Kind == KindGear || t.Kind == KindSymbol
}

func (t Token) String() string {
	if t.Kind == KindNumber {
		return fmt.Sprintf("%s %d %v", t.Kind, t.Value, t.Cells)
	}
	return fmt.Sprintf("%s %q %v", t.Kind, t.Char, t.Cells)
}
