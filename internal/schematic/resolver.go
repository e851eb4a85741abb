package schematic

// moore holds the offsets of the 8 cells surrounding a cell.
var moore = [8]Cell{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Resolver answers adjacency queries against a Schematic by probing the
// token grid on demand. Neighbours outside the grid are simply absent.
type Resolver struct {
	s *Schematic
}

func NewResolver(s *Schematic) *Resolver {
	return &Resolver{s: s}
}

func (r *Resolver) Schematic() *Schematic {
	return r.s
}

// neighbours calls fn with the id of every non-empty token around every cell
// of the token id, stopping early when fn returns false. Ids may repeat.
func (r *Resolver) neighbours(id TokenID, fn func(TokenID) bool) {
	for _, c := range r.s.tokens[id].Cells {
		for _, d := range moore {
			n, ok := r.s.At(Cell{Row: c.Row + d.Row, Col: c.Col + d.Col})
			if !ok || n == id {
				continue
			}
			if !fn(n) {
				return
			}
		}
	}
}

// IsPartNumber reports whether the number token id touches a symbol or a gear
// through any of its cells. Non-number tokens and unknown ids are never part
// numbers.
func (r *Resolver) IsPartNumber(id TokenID) bool {
	if k, ok := r.s.kind(id); !ok || k != KindNumber {
		return false
	}
	found := false
	r.neighbours(id, func(n TokenID) bool {
		found = r.s.tokens[n].IsSymbol()
		return !found
	})
	return found
}

// AdjacentNumbers returns the distinct number tokens around the gear token id
// in probe order. A gear has at most 8 neighbours, so the seen list is scanned
// linearly. Non-gear tokens and unknown ids have no adjacent numbers.
func (r *Resolver) AdjacentNumbers(id TokenID) []TokenID {
	if k, ok := r.s.kind(id); !ok || k != KindGear {
		return nil
	}
	seen := make([]TokenID, 0, len(moore))
	r.neighbours(id, func(n TokenID) bool {
		if r.s.tokens[n].Kind != KindNumber {
			return true
		}
		for _, s := range seen {
			if s == n {
				return true
			}
		}
		seen = append(seen, n)
		return true
	})
	return seen
}

// GearRatio returns the product of the two numbers around the gear token id.
// Gears with any other count of adjacent numbers have no ratio.
func (r *Resolver) GearRatio(id TokenID) (uint64, bool) {
	nums := r.AdjacentNumbers(id)
	if len(nums) != 2 {
		return 0, false
	}
	return r.ratio(nums), true
}

func (r *Resolver) ratio(nums []TokenID) uint64 {
	return r.s.tokens[nums[0]].Value * r.s.tokens[nums[1]].Value
}
