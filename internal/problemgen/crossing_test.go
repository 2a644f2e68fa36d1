package problemgen

import "testing"

func TestCrossesAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want bool
	}{
		{"well past boundary", 8, 7, true},
		{"one past boundary", 9, 2, true},
		{"exactly on boundary", 8, 2, false},
		{"under boundary", 6, 3, false},
		{"two digit crossing", 27, 5, true},
		{"two digit on boundary", 27, 3, false},
		{"minuend multiple of ten", 30, 12, true},
		{"multiple of ten not crossing", 30, 10, false},
		{"zero operand", 0, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CrossesAdd(tt.a, tt.b); got != tt.want {
				t.Errorf("CrossesAdd(%d, %d) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCrossesSub(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want bool
	}{
		{"classic crossing", 14, 8, true},
		{"subtrahend equals ones", 14, 4, false},
		{"subtrahend too small", 13, 5, false},
		{"single digit minuend", 9, 6, false},
		{"minuend of ten", 10, 6, false},
		{"negative result", 12, 14, false},
		{"zero result", 14, 14, false},
		{"ending in zero", 20, 13, true},
		{"ending in zero stays above", 20, 9, false},
		{"two digit crossing", 43, 7, true},
		{"two digit no crossing", 48, 6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CrossesSub(tt.a, tt.b); got != tt.want {
				t.Errorf("CrossesSub(%d, %d) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCanonicalBreakdownFor_Addition(t *testing.T) {
	bd := CanonicalBreakdownFor(OpAdd, 8, 7)
	if bd.First != 2 || bd.Second != 5 {
		t.Errorf("breakdown of 8+7 = (%d, %d), want (2, 5)", bd.First, bd.Second)
	}
}

func TestCanonicalBreakdownFor_Subtraction(t *testing.T) {
	bd := CanonicalBreakdownFor(OpSub, 14, 8)
	if bd.First != 4 || bd.Second != 4 {
		t.Errorf("breakdown of 14-8 = (%d, %d), want (4, 4)", bd.First, bd.Second)
	}
}

func TestCanonicalBreakdownFor_MinuendEndingInZero(t *testing.T) {
	bd := CanonicalBreakdownFor(OpSub, 20, 13)
	if bd.First != 10 || bd.Second != 3 {
		t.Errorf("breakdown of 20-13 = (%d, %d), want (10, 3)", bd.First, bd.Second)
	}
}

func TestCanonicalBreakdownFor_PartsSumToOperand(t *testing.T) {
	for a := 5; a <= 99; a++ {
		for b := 1; b <= 20; b++ {
			for _, op := range []Op{OpAdd, OpSub} {
				bd := CanonicalBreakdownFor(op, a, b)
				if bd.First+bd.Second != b {
					t.Fatalf("breakdown of %d %s %d = (%d, %d), parts sum %d want %d",
						a, op, b, bd.First, bd.Second, bd.First+bd.Second, b)
				}
			}
		}
	}
}
