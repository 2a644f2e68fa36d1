package insights

import (
	"sort"

	"github.com/abhisek/numbond/internal/attempt"
)

// Pattern thresholds. A strength needs both high accuracy and pace; a
// weakness is accuracy alone, whatever the pace.
const (
	strengthAccuracy = 0.85
	strengthMaxTime  = 15.0
	weaknessAccuracy = 0.60

	// minCategoryAttempts filters out categories with too little data
	// to say anything about.
	minCategoryAttempts = 3
)

// bucketStats accumulates per-category counters.
type bucketStats struct {
	attempts int
	correct  int
	time     float64
	hints    int
}

func (b *bucketStats) add(r attempt.Record) {
	b.attempts++
	if r.Correct {
		b.correct++
	}
	b.time += r.TimeSecs
	if r.HintUsed {
		b.hints++
	}
}

func (b *bucketStats) accuracy() float64 {
	if b.attempts == 0 {
		return 0
	}
	return float64(b.correct) / float64(b.attempts)
}

func (b *bucketStats) avgTime() float64 {
	if b.attempts == 0 {
		return 0
	}
	return b.time / float64(b.attempts)
}

func (b *bucketStats) hintRate() float64 {
	if b.attempts == 0 {
		return 0
	}
	return float64(b.hints) / float64(b.attempts)
}

// minePatterns computes accuracy breakdowns along each dimension and
// keeps the buckets that qualify as a strength or weakness.
func minePatterns(records []attempt.Record) []LearningPattern {
	dims := []struct {
		dim Dimension
		key func(attempt.Record) string
	}{
		{DimensionOperation, func(r attempt.Record) string { return opName(r) }},
		{DimensionStrategy, func(r attempt.Record) string { return string(r.Strategy) }},
		{DimensionMagnitude, func(r attempt.Record) string { return magnitudeBucket(r.Operand1) }},
	}

	var patterns []LearningPattern
	for _, d := range dims {
		buckets := make(map[string]*bucketStats)
		for _, r := range records {
			key := d.key(r)
			if key == "" {
				continue
			}
			b, ok := buckets[key]
			if !ok {
				b = &bucketStats{}
				buckets[key] = b
			}
			b.add(r)
		}

		keys := make([]string, 0, len(buckets))
		for k := range buckets {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			b := buckets[key]
			if b.attempts < minCategoryAttempts {
				continue
			}
			if p, ok := classifyBucket(d.dim, key, b); ok {
				patterns = append(patterns, p)
			}
		}
	}
	return patterns
}

// classifyBucket decides whether a bucket is a strength, a weakness,
// or neither.
func classifyBucket(dim Dimension, key string, b *bucketStats) (LearningPattern, bool) {
	p := LearningPattern{
		Dim:      dim,
		Value:    key,
		Accuracy: b.accuracy(),
		AvgTime:  b.avgTime(),
		HintRate: b.hintRate(),
		Attempts: b.attempts,
	}

	switch {
	case p.Accuracy >= strengthAccuracy && p.AvgTime <= strengthMaxTime:
		p.Type = PatternStrength
		return p, true
	case p.Accuracy <= weaknessAccuracy:
		p.Type = PatternWeakness
		return p, true
	}
	return LearningPattern{}, false
}

func opName(r attempt.Record) string {
	if r.Op == "-" {
		return "subtraction"
	}
	return "addition"
}

// magnitudeBucket names the digit count of the leading operand.
func magnitudeBucket(operand int) string {
	switch {
	case operand < 10:
		return "single_digit"
	case operand < 100:
		return "double_digit"
	default:
		return "triple_digit"
	}
}
