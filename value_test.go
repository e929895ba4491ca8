package bft_test

import (
	"math"
	"testing"

	"github.com/KimNorgaard/go-bft"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		input    string
		expected bft.Value
	}{
		{"10", bft.Int(10)},
		{"-42", bft.Int(-42)},
		{"+7", bft.Int(7)},
		{"9223372036854775807", bft.Int(math.MaxInt64)},
		{"9223372036854775808", bft.Float(9223372036854775808)},
		{"1.1", bft.Float(1.1)},
		{"1e5", bft.Float(100000)},
		{"-0.5", bft.Float(-0.5)},
		{"10+1", bft.Text("10+1")},
		{"10 ", bft.Text("10 ")},
		{" 10", bft.Text(" 10")},
		{"1.1.1", bft.Text("1.1.1")},
		{"1e999", bft.Text("1e999")},
		{"aaa", bft.Text("aaa")},
		{"", bft.Text("")},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, bft.Classify(tc.input))
		})
	}
}

func TestValueString(t *testing.T) {
	testCases := []struct {
		name     string
		value    bft.Value
		expected string
	}{
		{"int", bft.Int(10), "10"},
		{"negative int", bft.Int(-3), "-3"},
		{"float", bft.Float(1.1), "1.1"},
		{"integral float", bft.Float(10), "10.0"},
		{"negative zero", bft.Float(math.Copysign(0, -1)), "-0.0"},
		{"large float", bft.Float(1e21), "1e+21"},
		{"small float", bft.Float(0.0001), "0.0001"},
		{"infinity", bft.Float(math.Inf(1)), "+Inf"},
		{"nan", bft.Float(math.NaN()), "NaN"},
		{"text", bft.Text("10+1"), "10+1"},
		{"empty text", bft.Text(""), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.value.String())
		})
	}
}

func TestFloatStringReclassifiesAsFloat(t *testing.T) {
	for _, f := range []float64{0, 1, 10, 100000, 1e6, 1e21, -2.5, 1.0 / 3, math.MaxFloat64, math.SmallestNonzeroFloat64} {
		v := bft.Float(f)
		require.Equal(t, v, bft.Classify(v.String()), "rendered as %q", v.String())
	}
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     bft.Value
		expected bool
	}{
		{"same int", bft.Int(10), bft.Int(10), true},
		{"different int", bft.Int(10), bft.Int(11), false},
		{"same float", bft.Float(1.1), bft.Float(1.1), true},
		{"nan", bft.Float(math.NaN()), bft.Float(math.NaN()), true},
		{"nan and number", bft.Float(math.NaN()), bft.Float(0), false},
		{"same text", bft.Text("a"), bft.Text("a"), true},
		{"int and float", bft.Int(10), bft.Float(10), false},
		{"int and text", bft.Int(10), bft.Text("10"), false},
		{"float and text", bft.Float(1.1), bft.Text("1.1"), false},
		{"nil", bft.Int(1), nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, bft.Equal(tc.a, tc.b))
			require.Equal(t, tc.expected, bft.Equal(tc.b, tc.a))
		})
	}
}
