package problemgen

import "testing"

func newTestGenerator(seed uint64) *Generator {
	return NewSeeded(DefaultConfig(), seed)
}

func TestGenerate_CrossingInvariant(t *testing.T) {
	g := newTestGenerator(1)
	for i := 0; i < 1000; i++ {
		p := g.Generate(Request{Level: 1, Op: OpAdd})
		if p.Strategy.RequiresCrossing() && !CrossesAdd(p.Operand1, p.Operand2) {
			t.Fatalf("problem %d %s %d tagged %q but does not cross",
				p.Operand1, p.Op, p.Operand2, p.Strategy)
		}
		if p.Strategy == StrategyBasic && CrossesAdd(p.Operand1, p.Operand2) {
			t.Fatalf("problem %d %s %d tagged basic but crosses",
				p.Operand1, p.Op, p.Operand2)
		}
	}
}

func TestGenerate_SubtractionNeverNegative(t *testing.T) {
	g := newTestGenerator(2)
	for level := MinLevel; level <= MaxLevel; level++ {
		for i := 0; i < 500; i++ {
			p := g.Generate(Request{Level: level, Op: OpSub})
			if p.Answer <= 0 {
				t.Fatalf("level %d: %d - %d = %d, want positive",
					level, p.Operand1, p.Operand2, p.Answer)
			}
		}
	}
}

func TestGenerate_SubtractionCrossingInvariant(t *testing.T) {
	g := newTestGenerator(3)
	for level := MinLevel; level <= MaxLevel; level++ {
		for i := 0; i < 500; i++ {
			p := g.Generate(Request{Level: level, Op: OpSub})
			if p.Strategy.RequiresCrossing() && !CrossesSub(p.Operand1, p.Operand2) {
				t.Fatalf("level %d: %d - %d tagged %q but does not cross",
					level, p.Operand1, p.Operand2, p.Strategy)
			}
			if p.Strategy == StrategyBasic && CrossesSub(p.Operand1, p.Operand2) {
				t.Fatalf("level %d: %d - %d tagged basic but crosses",
					level, p.Operand1, p.Operand2)
			}
		}
	}
}

func TestGenerate_BreakdownRoundTrip(t *testing.T) {
	g := newTestGenerator(4)
	for level := MinLevel; level <= MaxLevel; level++ {
		for i := 0; i < 200; i++ {
			p := g.Generate(Request{Level: level})
			bd := p.CanonicalBreakdown
			if bd.First+bd.Second != p.Operand2 {
				t.Fatalf("breakdown (%d, %d) does not sum to operand2 %d",
					bd.First, bd.Second, p.Operand2)
			}

			// Applying the breakdown step by step reproduces the answer.
			var stepped int
			if p.Op == OpAdd {
				stepped = p.Operand1 + bd.First + bd.Second
			} else {
				stepped = p.Operand1 - bd.First - bd.Second
			}
			if stepped != p.Answer {
				t.Fatalf("stepped result %d != answer %d for %s", stepped, p.Answer, p.Text())
			}
		}
	}
}

func TestGenerate_AnswerInvariant(t *testing.T) {
	g := newTestGenerator(5)
	for i := 0; i < 500; i++ {
		p := g.Generate(Request{Level: Level(i%4 + 1)})
		want := p.Operand1 + p.Operand2
		if p.Op == OpSub {
			want = p.Operand1 - p.Operand2
		}
		if p.Answer != want {
			t.Fatalf("answer %d for %s, want %d", p.Answer, p.Text(), want)
		}
	}
}

func TestGenerate_OperandsWithinLevelRanges(t *testing.T) {
	cfg := DefaultConfig()
	g := NewSeeded(cfg, 6)
	for level := MinLevel; level <= MaxLevel; level++ {
		for i := 0; i < 300; i++ {
			p := g.Generate(Request{Level: level, Op: OpAdd, Strategy: StrategyCrossing})
			if level == MinLevel {
				continue // level 1 mixes curated tables
			}
			r := cfg.Add[level]
			if p.Operand1 < r.Operand1.Min || p.Operand1 > r.Operand1.Max {
				t.Fatalf("level %d operand1 %d outside [%d, %d]",
					level, p.Operand1, r.Operand1.Min, r.Operand1.Max)
			}
			if p.Operand2 < r.Operand2.Min || p.Operand2 > r.Operand2.Max {
				t.Fatalf("level %d operand2 %d outside [%d, %d]",
					level, p.Operand2, r.Operand2.Min, r.Operand2.Max)
			}
		}
	}
}

func TestGenerate_Level4ResultsBounded(t *testing.T) {
	g := newTestGenerator(7)
	for i := 0; i < 500; i++ {
		p := g.Generate(Request{Level: 4, Op: OpAdd})
		if p.Answer >= 1000 {
			t.Fatalf("level 4 answer %d for %s, want < 1000", p.Answer, p.Text())
		}
	}
}

func TestGenerate_ReviewStrategy(t *testing.T) {
	g := newTestGenerator(8)
	p := g.Generate(Request{Level: 1, Op: OpSub, Strategy: StrategyReview})
	if p.Strategy != StrategyReview {
		t.Errorf("strategy = %q, want %q", p.Strategy, StrategyReview)
	}
	if p.Answer <= 0 {
		t.Errorf("review problem %s has non-positive answer", p.Text())
	}
}

func TestGenerate_MakeTenOnlyForAddition(t *testing.T) {
	g := newTestGenerator(9)
	p := g.Generate(Request{Level: 1, Op: OpSub, Strategy: StrategyMakeTen})
	if p.Strategy == StrategyMakeTen {
		t.Errorf("make-ten tag on a subtraction problem")
	}
}

func TestGenerate_FavoriteBias(t *testing.T) {
	g := newTestGenerator(10)
	favorites := []int{7}
	seen := 0
	const n = 1000
	for i := 0; i < n; i++ {
		p := g.Generate(Request{Level: 1, Op: OpAdd, Strategy: StrategyCrossing, Favorites: favorites})
		if p.Operand1 == 7 {
			seen++
		}
	}
	// With a 50% bias toward a single in-range favorite, operand1 == 7
	// should appear far more often than the uniform 1-in-5 baseline.
	if seen < n/3 {
		t.Errorf("favorite operand appeared %d/%d times, expected heavy bias", seen, n)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := newTestGenerator(42)
	b := newTestGenerator(42)
	for i := 0; i < 50; i++ {
		pa := a.Generate(Request{Level: 2, Op: OpAdd})
		pb := b.Generate(Request{Level: 2, Op: OpAdd})
		if pa.Operand1 != pb.Operand1 || pa.Operand2 != pb.Operand2 || pa.Strategy != pb.Strategy {
			t.Fatalf("draw %d diverged: %v vs %v", i, pa, pb)
		}
	}
}

func TestGenerate_ClampsLevel(t *testing.T) {
	g := newTestGenerator(11)
	p := g.Generate(Request{Level: 99, Op: OpAdd})
	if p.Level != MaxLevel {
		t.Errorf("level = %d, want clamped to %d", p.Level, MaxLevel)
	}
	p = g.Generate(Request{Level: -3, Op: OpAdd})
	if p.Level != MinLevel {
		t.Errorf("level = %d, want clamped to %d", p.Level, MinLevel)
	}
}

func TestConstructPair_FindsCrossing(t *testing.T) {
	cfg := DefaultConfig()
	for level := MinLevel; level <= MaxLevel; level++ {
		for _, op := range []Op{OpAdd, OpSub} {
			a, b, ok := constructPair(op, cfg.ranges(op, level), true)
			if !ok {
				t.Fatalf("no crossing pair constructible for %s level %d", op, level)
			}
			if !Crosses(op, a, b) {
				t.Fatalf("constructed %d %s %d does not cross", a, op, b)
			}
		}
	}
}
