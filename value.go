package bft

import (
	"math"
	"strconv"
)

// Value is a typed scalar stored at a tree node. It is one of Int, Float or
// Text. The set of variants is closed.
type Value interface {
	// String returns the canonical text rendering of the value.
	String() string
	value()
}

// Int is an integer value.
type Int int64

// Float is a floating-point value.
type Float float64

// Text is a string value.
type Text string

func (Int) value()   {}
func (Float) value() {}
func (Text) value()  {}

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// String returns the shortest representation that parses back to the same
// float. Integral values keep a ".0" suffix so they are not read back as Int.
func (f Float) String() string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 64)
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		s += ".0"
	}
	return s
}

func (t Text) String() string { return string(t) }

// Classify converts a single token of text into a Value. Integers are tried
// first, then floats; each attempt must consume the whole string. Anything
// else, including the empty string, becomes Text. s is not trimmed.
func Classify(s string) Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f)
	}
	return Text(s)
}

// Equal reports whether a and b are the same variant holding the same value.
// Values of different variants are never equal, so Int(10) != Text("10").
// NaN is considered equal to NaN.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		if !ok {
			return false
		}
		if math.IsNaN(float64(av)) {
			return math.IsNaN(float64(bv))
		}
		return av == bv
	case Text:
		bv, ok := b.(Text)
		return ok && av == bv
	}
	return false
}
