package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func TestCalcCalories(t *testing.T) {
	assert.Equal(t, 0, CalcCalories(floatPtr(0), floatPtr(0), floatPtr(0)))
	assert.Equal(t, 0, CalcCalories(nil, nil, nil))
	assert.Equal(t, 370, CalcCalories(floatPtr(50), floatPtr(20), floatPtr(10)))

	// missing macros count as zero, not unknown
	assert.Equal(t, 200, CalcCalories(floatPtr(50), nil, nil))

	// non-finite inputs are treated as zero
	assert.Equal(t, 200, CalcCalories(floatPtr(50), floatPtr(math.NaN()), floatPtr(math.Inf(1))))
}

func TestNormalizeQuantity(t *testing.T) {
	tests := []struct {
		name string
		in   any
		def  int
		want int
	}{
		{"float", 200.0, 0, 200},
		{"rounds up", 12.7, 0, 13},
		{"numeric string", "12.7", 0, 13},
		{"negative clamps to zero", -5.0, 0, 0},
		{"negative string clamps to zero", "-3", 0, 0},
		{"non-numeric string falls back", "abc", 7, 7},
		{"nil falls back", nil, 7, 7},
		{"NaN falls back", math.NaN(), 7, 7},
		{"Inf falls back", math.Inf(1), 7, 7},
		{"bool falls back", true, 7, 7},
		{"int passes through", 42, 0, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeQuantity(tt.in, tt.def))
		})
	}
}

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 70)
	assert.NoError(t, err)
	assert.InDelta(t, 22.86, bmi, 0.01)

	_, err = CalculateBMI(0, 70)
	assert.Error(t, err)
}
