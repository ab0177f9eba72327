package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrectRounding(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "two digits rounds up", in: 0.47, want: 0.5},
		{name: "two digits rounds down", in: 0.43, want: 0.4},
		{name: "exact half rounds up", in: 0.45, want: 0.5},
		{name: "carry into integer part", in: 1.96, want: 2.0},
		{name: "carry at ninety five", in: 0.95, want: 1.0},
		{name: "one digit untouched", in: 0.5, want: 0.5},
		{name: "integer untouched", in: 3, want: 3},
		{name: "three digits untouched", in: 0.125, want: 0.125},
		{name: "zero", in: 0, want: 0},
		{name: "whole plus two digits", in: 12.34, want: 12.3},
		{name: "ninety nine carries", in: 9.99, want: 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, correctRounding(tt.in))
		})
	}
}

func TestCorrectRoundingIdempotent(t *testing.T) {
	// Once corrected, a value has at most one fractional digit, so a
	// second pass must not move it.
	for _, v := range []float64{0.47, 0.43, 1.96, 0.95, 12.34, 9.99, 0.5, 3} {
		once := correctRounding(v)
		assert.Equal(t, once, correctRounding(once), "input %v", v)
	}
}

func TestRoundTwo(t *testing.T) {
	assert.Equal(t, 0.67, roundTwo(2.0/3.0))
	assert.Equal(t, 1.0, roundTwo(2.0/4.0*2.0))
	assert.Equal(t, 0.33, roundTwo(1.0/3.0))
	assert.Equal(t, 0.0, roundTwo(0))
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "3.0", formatDecimal(3))
	assert.Equal(t, "0.47", formatDecimal(0.47))
	assert.Equal(t, "0.5", formatDecimal(0.5))
}
