package numparse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{"-4", -4},
		{"+7", 7},
		{"0", 0},
		{"-0", 0},
		{"", 0},
		{"x", 0},
		{"abc12", 0},
		{"12abc", 12},
		{"  42", 42},
		{"\t\n-8 apples", -8},
		{"3.9", 3},
		{"-", 0},
		{"+", 0},
		{"--1", 0},
		{"007", 7},
		{"99999999999999999999999", math.MaxInt},
		{"-99999999999999999999999", math.MinInt},
		{"  123456789012345678901234567890px", math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, Int(tt.in))
		})
	}
}

func TestPrefix(t *testing.T) {
	digits, ok := Prefix("  -12px")
	require.True(t, ok)
	require.Equal(t, "-12", digits)

	_, ok = Prefix("px")
	require.False(t, ok)
}
