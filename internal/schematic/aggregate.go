package schematic

import "log/slog"

// GearPair is a gear adjacent to exactly two numbers.
type GearPair struct {
	Gear    TokenID
	Numbers [2]TokenID
	Ratio   uint64
}

type Report struct {
	PartNumberSum uint64
	GearRatioSum  uint64

	Numbers int
	Gears   int
	Symbols int
}

func (r *Resolver) PartNumbers() []TokenID {
	parts := make([]TokenID, 0)
	for _, id := range r.s.Numbers() {
		if r.IsPartNumber(id) {
			parts = append(parts, id)
		}
	}
	return parts
}

func (r *Resolver) PartNumberSum() uint64 {
	var sum uint64
	for _, id := range r.PartNumbers() {
		sum += r.s.tokens[id].Value
	}
	return sum
}

func (r *Resolver) GearPairs() []GearPair {
	pairs := make([]GearPair, 0)
	for _, id := range r.s.Gears() {
		nums := r.AdjacentNumbers(id)
		if len(nums) != 2 {
			continue
		}
		pairs = append(pairs, GearPair{Gear: id, Numbers: [2]TokenID{nums[0], nums[1]}, Ratio: r.ratio(nums)})
	}
	return pairs
}

func (r *Resolver) GearRatioSum() uint64 {
	var sum uint64
	for _, p := range r.GearPairs() {
		sum += p.Ratio
	}
	return sum
}

// Analyze tokenizes text and computes both totals.
func Analyze(text string, opts ...Option) (Report, error) {
	s, err := Tokenize(text, opts...)
	if err != nil {
		return Report{}, err
	}
	r := NewResolver(s)
	rep := Report{
		PartNumberSum: r.PartNumberSum(),
		GearRatioSum:  r.GearRatioSum(),
		Numbers:       len(s.Numbers()),
		Gears:         len(s.Gears()),
		Symbols:       len(s.Symbols()),
	}
	slog.Debug("schematic analyzed",
		"numbers", rep.Numbers, "gears", rep.Gears, "symbols", rep.Symbols,
		"partsum", rep.PartNumberSum, "gearsum", rep.GearRatioSum)
	return rep, nil
}
