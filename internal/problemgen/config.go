package problemgen

// Range is an inclusive integer interval.
type Range struct {
	Min, Max int
}

// span returns the number of values in the range.
func (r Range) span() int {
	return r.Max - r.Min + 1
}

// LevelRanges bounds the operands drawn for one level and operator.
type LevelRanges struct {
	Operand1 Range
	Operand2 Range
}

// Config tunes the generator. DefaultConfig matches the shipped curriculum.
type Config struct {
	// MaxDraws caps the rejection-sampling loop before the generator
	// falls back to constructing a valid pair directly.
	MaxDraws int

	// FavoriteBias is the probability of seeding an operand from the
	// caller's favorite numbers when any are usable.
	FavoriteBias float64

	// StretchShare and ReviewShare control the level-1 sub-population
	// mix; the remainder is standard crossing problems.
	StretchShare float64
	ReviewShare  float64

	Add map[Level]LevelRanges
	Sub map[Level]LevelRanges
}

// DefaultConfig returns the curriculum ranges.
//
// Level 1: single-digit addition / teens subtraction.
// Level 2: two-digit plus or minus one-digit.
// Level 3: two-digit plus or minus two-digit.
// Level 4: three-digit magnitudes, results kept below 1000.
func DefaultConfig() Config {
	return Config{
		MaxDraws:     20,
		FavoriteBias: 0.5,
		StretchShare: 0.2,
		ReviewShare:  0.2,
		Add: map[Level]LevelRanges{
			1: {Operand1: Range{5, 9}, Operand2: Range{2, 9}},
			2: {Operand1: Range{11, 89}, Operand2: Range{2, 9}},
			3: {Operand1: Range{11, 89}, Operand2: Range{11, 89}},
			4: {Operand1: Range{101, 899}, Operand2: Range{11, 99}},
		},
		Sub: map[Level]LevelRanges{
			1: {Operand1: Range{11, 18}, Operand2: Range{6, 9}},
			2: {Operand1: Range{11, 98}, Operand2: Range{6, 9}},
			3: {Operand1: Range{21, 98}, Operand2: Range{11, 89}},
			4: {Operand1: Range{101, 999}, Operand2: Range{11, 99}},
		},
	}
}

// ranges returns the operand ranges for the given operator and level.
func (c Config) ranges(op Op, level Level) LevelRanges {
	level = level.Clamp()
	if op == OpSub {
		return c.Sub[level]
	}
	return c.Add[level]
}
