package problemgen

import "fmt"

// Op is the arithmetic operator of a problem.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
)

// Valid reports whether the operator is one of the supported values.
func (o Op) Valid() bool {
	return o == OpAdd || o == OpSub
}

// Strategy is the teaching strategy a problem is tagged with.
// A problem tagged StrategyCrossing (or StrategyMakeTen for addition)
// is guaranteed to satisfy the crossing predicate for its operator.
type Strategy string

const (
	// StrategyBasic marks a problem that does not cross a ten boundary.
	StrategyBasic Strategy = "basic"

	// StrategyMakeTen marks an addition problem served under the
	// make-ten lesson. Same crossing guarantee as StrategyCrossing.
	StrategyMakeTen Strategy = "make_ten"

	// StrategyCrossing marks a problem that requires decomposing the
	// second operand to cross a ten boundary.
	StrategyCrossing Strategy = "crossing"

	// StrategyReview marks an easier problem drawn from the review table.
	StrategyReview Strategy = "review"
)

// RequiresCrossing reports whether the strategy carries the crossing guarantee.
func (s Strategy) RequiresCrossing() bool {
	return s == StrategyCrossing || s == StrategyMakeTen
}

// Level is the difficulty tier, 1 (easiest) through 4.
type Level int

const (
	MinLevel Level = 1
	MaxLevel Level = 4
)

// Clamp returns the level bounded to [MinLevel, MaxLevel].
func (l Level) Clamp() Level {
	if l < MinLevel {
		return MinLevel
	}
	if l > MaxLevel {
		return MaxLevel
	}
	return l
}

// Breakdown is a two-part decomposition of the second operand.
type Breakdown struct {
	First  int `json:"first"`
	Second int `json:"second"`
}

// Problem is a generated arithmetic problem ready to be served.
type Problem struct {
	// ID uniquely identifies this problem instance for attempt logging.
	ID string `json:"id"`

	Operand1 int `json:"operand1"`
	Operand2 int `json:"operand2"`
	Op       Op  `json:"op"`

	// Answer is Operand1 + Operand2 or Operand1 - Operand2.
	Answer int `json:"answer"`

	Level    Level    `json:"level"`
	Strategy Strategy `json:"strategy"`

	// CanonicalBreakdown is the taught decomposition of Operand2.
	// Its parts always sum to Operand2.
	CanonicalBreakdown Breakdown `json:"canonical_breakdown"`
}

// Text renders the problem prompt, e.g. "14 - 8 = ?".
func (p Problem) Text() string {
	return fmt.Sprintf("%d %s %d = ?", p.Operand1, p.Op, p.Operand2)
}
