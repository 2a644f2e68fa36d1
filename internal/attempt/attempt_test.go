package attempt

import (
	"testing"

	"github.com/abhisek/numbond/internal/problemgen"
)

func TestLastN(t *testing.T) {
	records := make([]Record, 5)
	for i := range records {
		records[i] = Record{Operand1: i}
	}

	got := LastN(records, 3)
	if len(got) != 3 || got[0].Operand1 != 2 || got[2].Operand1 != 4 {
		t.Errorf("LastN(5 records, 3) = %v", got)
	}

	if got := LastN(records, 10); len(got) != 5 {
		t.Errorf("LastN with n > len should return all records, got %d", len(got))
	}
	if got := LastN(nil, 3); len(got) != 0 {
		t.Errorf("LastN(nil) = %v, want empty", got)
	}
}

func TestMagnitudeClassifier(t *testing.T) {
	cls := MagnitudeClassifier{}
	tests := []struct {
		name string
		r    Record
		want Category
	}{
		{"small addition", Record{Op: problemgen.OpAdd, Operand1: 3, Operand2: 4}, CategorySingleDigitAddition},
		{"teen addition", Record{Op: problemgen.OpAdd, Operand1: 8, Operand2: 7}, CategoryCrossingTen},
		{"teen subtraction", Record{Op: problemgen.OpSub, Operand1: 14, Operand2: 8}, CategoryCrossingTen},
		{"twenties", Record{Op: problemgen.OpSub, Operand1: 23, Operand2: 7}, CategoryCrossingTwenty},
		{"large addition", Record{Op: problemgen.OpAdd, Operand1: 45, Operand2: 38}, CategoryBasicAddition},
		{"large subtraction", Record{Op: problemgen.OpSub, Operand1: 72, Operand2: 45}, CategoryBasicSubtraction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cls.Categorize(tt.r); got != tt.want {
				t.Errorf("Categorize(%+v) = %q, want %q", tt.r, got, tt.want)
			}
		})
	}
}
