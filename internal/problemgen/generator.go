package problemgen

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// Generator procedurally constructs arithmetic problems within level
// ranges. All randomness flows through the injected source, so a seeded
// generator is fully reproducible.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New creates a generator with the given config and random source.
func New(cfg Config, rng *rand.Rand) *Generator {
	if cfg.MaxDraws <= 0 {
		cfg.MaxDraws = DefaultConfig().MaxDraws
	}
	return &Generator{cfg: cfg, rng: rng}
}

// NewSeeded creates a deterministic generator for the given seed.
func NewSeeded(cfg Config, seed uint64) *Generator {
	return New(cfg, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Request describes the problem to generate.
type Request struct {
	Level Level

	// Op selects the operator. Left empty, the generator picks one.
	Op Op

	// Strategy requests a teaching strategy. Left empty, the generator
	// serves crossing problems, mixed with stretch and review
	// sub-populations at level 1.
	Strategy Strategy

	// Favorites biases operand selection toward these numbers when they
	// fit the level's ranges.
	Favorites []int
}

// Generate always returns a problem in bounded time. The rejection loop
// is capped; past the cap the pair is constructed directly, and if even
// that fails (misconfigured ranges) the final unconstrained draw is
// returned with a tag derived from what the pair actually is.
func (g *Generator) Generate(req Request) Problem {
	level := req.Level.Clamp()

	op := req.Op
	if !op.Valid() {
		if g.rng.IntN(2) == 0 {
			op = OpAdd
		} else {
			op = OpSub
		}
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = g.rollStrategy(level)
	}
	if strategy == StrategyMakeTen && op != OpAdd {
		strategy = StrategyCrossing
	}

	if strategy == StrategyReview && level == MinLevel {
		return g.fromTable(reviewPairs(op), op, level, StrategyReview)
	}
	if level == MinLevel && strategy.RequiresCrossing() && g.rng.Float64() < g.cfg.StretchShare {
		return g.fromTable(stretchPairs(op), op, level, strategy)
	}

	lr := g.cfg.ranges(op, level)
	wantCrossing := strategy.RequiresCrossing()

	a, b, ok := g.sample(op, lr, wantCrossing, req.Favorites)
	if !ok {
		a, b, ok = constructPair(op, lr, wantCrossing)
	}
	if !ok {
		// Unconstrained fallback draw within the level's ranges.
		a, b = g.draw(lr.Operand1), g.draw(lr.Operand2)
		if op == OpSub && b >= a {
			a, b = b+1, a // keep the result positive
		}
		strategy = tagFor(op, a, b, strategy)
	}

	return g.build(op, a, b, level, strategy)
}

// rollStrategy applies the level-1 sub-population mix.
func (g *Generator) rollStrategy(level Level) Strategy {
	if level != MinLevel {
		return StrategyCrossing
	}
	if g.rng.Float64() < g.cfg.ReviewShare {
		return StrategyReview
	}
	return StrategyCrossing
}

// sample runs the rejection-sampling loop, up to MaxDraws attempts.
func (g *Generator) sample(op Op, lr LevelRanges, wantCrossing bool, favorites []int) (int, int, bool) {
	for range g.cfg.MaxDraws {
		a := g.pickOperand(lr.Operand1, favorites)
		b := g.draw(lr.Operand2)

		if op == OpSub && a-b <= 0 {
			continue
		}
		if Crosses(op, a, b) != wantCrossing {
			continue
		}
		return a, b, true
	}
	return 0, 0, false
}

// pickOperand draws an operand, favoring the caller's numbers with
// probability FavoriteBias when any fall inside the range.
func (g *Generator) pickOperand(r Range, favorites []int) int {
	if len(favorites) > 0 && g.rng.Float64() < g.cfg.FavoriteBias {
		var usable []int
		for _, f := range favorites {
			if f >= r.Min && f <= r.Max {
				usable = append(usable, f)
			}
		}
		if len(usable) > 0 {
			return usable[g.rng.IntN(len(usable))]
		}
	}
	return g.draw(r)
}

func (g *Generator) draw(r Range) int {
	if r.span() <= 0 {
		return r.Min
	}
	return r.Min + g.rng.IntN(r.span())
}

func (g *Generator) fromTable(table []pair, op Op, level Level, strategy Strategy) Problem {
	p := table[g.rng.IntN(len(table))]
	return g.build(op, p.a, p.b, level, strategy)
}

func (g *Generator) build(op Op, a, b int, level Level, strategy Strategy) Problem {
	answer := a + b
	if op == OpSub {
		answer = a - b
	}
	return Problem{
		ID:                 uuid.New().String(),
		Operand1:           a,
		Operand2:           b,
		Op:                 op,
		Answer:             answer,
		Level:              level,
		Strategy:           strategy,
		CanonicalBreakdown: CanonicalBreakdownFor(op, a, b),
	}
}

// constructPair builds a constraint-satisfying pair directly by scanning
// the first operand's range. Used when rejection sampling exhausts its
// draw budget. Returns ok=false only if no pair in the ranges satisfies
// the constraint at all.
func constructPair(op Op, lr LevelRanges, wantCrossing bool) (int, int, bool) {
	for a := lr.Operand1.Min; a <= lr.Operand1.Max; a++ {
		lo, hi := validSecondWindow(op, a, lr.Operand2, wantCrossing)
		if lo <= hi {
			return a, lo + (hi-lo)/2, true
		}
	}
	return 0, 0, false
}

// validSecondWindow returns the inclusive window of second operands that
// satisfy the constraint for the given first operand, or an empty window
// (lo > hi) if none exist.
func validSecondWindow(op Op, a int, r Range, wantCrossing bool) (int, int) {
	lo, hi := r.Min, r.Max

	if op == OpSub {
		if hi >= a {
			hi = a - 1 // positive result
		}
		first := a - belowTen(a)
		if wantCrossing {
			if a <= 10 {
				return 1, 0
			}
			lo = maxInt(lo, maxInt(minSubtrahend, first+1))
		} else {
			hi = minInt(hi, first) // staying at or above the boundary
		}
		return lo, hi
	}

	need := addComplement(a)
	if wantCrossing {
		lo = maxInt(lo, need+1)
	} else {
		hi = minInt(hi, need)
	}
	return lo, hi
}

// tagFor reconciles a requested strategy with what a pair actually is,
// so the crossing invariant survives even the unconstrained fallback.
func tagFor(op Op, a, b int, requested Strategy) Strategy {
	if Crosses(op, a, b) {
		if requested == StrategyMakeTen && op == OpAdd {
			return StrategyMakeTen
		}
		return StrategyCrossing
	}
	return StrategyBasic
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
