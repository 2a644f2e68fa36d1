package problemgen

// Crossing predicates. These are the numeric contract the rest of the
// system leans on: a problem may only be tagged with a crossing strategy
// when the predicate for its operator holds, so the canonical breakdown
// shown as a hint is always solvable the way it is taught.

// minSubtrahend is the smallest second operand accepted for a subtraction
// crossing problem. Smaller remainders leave nothing worth decomposing.
const minSubtrahend = 6

// CrossesAdd reports whether a+b requires crossing the next ten boundary
// above a. The boundary is crossed only when b strictly exceeds the
// complement to ten; equality lands exactly on the boundary and leaves
// no remainder to decompose.
func CrossesAdd(a, b int) bool {
	if a <= 0 || b <= 0 {
		return false
	}
	return b > addComplement(a)
}

// CrossesSub reports whether a-b requires crossing the ten boundary
// below a. Requires a multi-digit minuend, a subtrahend of at least
// minSubtrahend, and a positive result strictly below the boundary.
func CrossesSub(a, b int) bool {
	if a <= 10 || b < minSubtrahend {
		return false
	}
	result := a - b
	if result <= 0 {
		return false
	}
	return result < belowTen(a)
}

// Crosses dispatches to the predicate for the given operator.
func Crosses(op Op, a, b int) bool {
	if op == OpSub {
		return CrossesSub(a, b)
	}
	return CrossesAdd(a, b)
}

// CanonicalBreakdownFor computes the taught decomposition of b.
//
// Addition: (need, rest) where need completes a to the next ten.
// Subtraction: (ones, rest) where ones brings a down to the ten below;
// for a minuend ending in 0 that first part is 10.
// The parts always sum to b.
func CanonicalBreakdownFor(op Op, a, b int) Breakdown {
	var first int
	if op == OpSub {
		first = a - belowTen(a)
	} else {
		first = addComplement(a)
	}
	if first > b {
		first = b
	}
	return Breakdown{First: first, Second: b - first}
}

// addComplement returns what a needs to reach the next multiple of ten.
// For a multiple of ten the next boundary is a+10.
func addComplement(a int) int {
	need := 10 - a%10
	return need // a%10 == 0 yields 10
}

// belowTen returns the largest multiple of ten strictly below a.
func belowTen(a int) int {
	return ((a - 1) / 10) * 10
}
