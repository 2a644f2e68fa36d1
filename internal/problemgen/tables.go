package problemgen

// Curated level-1 pairs. The stretch tables hold the single-digit
// combinations children stumble on most; the review tables hold gentler
// pairs for confidence building. Every stretch pair satisfies the
// crossing predicate for its operator; review pairs are served with
// StrategyReview and carry no crossing guarantee.

type pair struct {
	a, b int
}

var stretchAddPairs = []pair{
	{8, 7}, {7, 8}, {9, 8}, {8, 9}, {7, 6},
	{6, 7}, {9, 7}, {7, 9}, {8, 6}, {6, 8},
	{9, 6}, {6, 9}, {7, 7}, {8, 8}, {9, 9},
}

var reviewAddPairs = []pair{
	{9, 2}, {8, 3}, {7, 4}, {6, 5}, {9, 3},
	{8, 4}, {7, 5}, {9, 4}, {8, 5}, {9, 5},
}

var stretchSubPairs = []pair{
	{13, 7}, {14, 8}, {15, 9}, {12, 6}, {13, 8},
	{14, 9}, {15, 8}, {16, 9}, {13, 9}, {12, 7},
	{14, 7}, {15, 7}, {16, 8}, {17, 9}, {12, 8},
}

var reviewSubPairs = []pair{
	{14, 6}, {15, 6}, {16, 6}, {13, 6}, {16, 7},
	{17, 8}, {18, 9}, {12, 6}, {15, 7}, {17, 9},
}

func stretchPairs(op Op) []pair {
	if op == OpSub {
		return stretchSubPairs
	}
	return stretchAddPairs
}

func reviewPairs(op Op) []pair {
	if op == OpSub {
		return reviewSubPairs
	}
	return reviewAddPairs
}
