package foam

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies which scalar a [Value] holds.
type Kind uint8

const (
	KindString = Kind(iota)
	KindBool
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		panic("Unknown Kind")
	}
}

// Value is a scalar: exactly one of a bool, an int, a float or a string.
// The zero Value is the empty string.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// Bool creates a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int creates an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float creates a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Str creates a string value.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Kind returns the tag of v.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, fmt.Errorf("foam: expected bool, got %s", v.kind)
	}
	return v.b, nil
}

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("foam: expected int, got %s", v.kind)
	}
	return v.i, nil
}

// AsFloat returns the number held by v. Integers are widened.
func (v Value) AsFloat() (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.f, nil
	case KindInt:
		return float64(v.i), nil
	}
	return 0, fmt.Errorf("foam: expected float, got %s", v.kind)
}

// AsString returns the string held by v.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", fmt.Errorf("foam: expected string, got %s", v.kind)
	}
	return v.s, nil
}

// Equal reports whether v and o have the same tag and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	default:
		return v.s == o.s
	}
}

// String returns the canonical text of v, as written by [Dump].
//
// Booleans are written as true/false. Floats use the shortest representation
// that parses back to the same number, with ".0" appended when that
// representation would otherwise read back as an integer.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	default:
		return v.s
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

var floatRegexp = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseFloat(s string) (float64, bool) {
	if !floatRegexp.MatchString(s) {
		return 0, false
	}
	// out of range literals are still numbers: ParseFloat returns ±Inf (or 0)
	// alongside the range error.
	f, _ := strconv.ParseFloat(s, 64)
	return f, true
}

// IsNumber reports whether raw is an unsigned integer or a signed decimal
// floating point literal. The list decoders use it to recognize count lines.
func IsNumber(raw string) bool {
	_, ok := parseFloat(raw)
	return ok
}

// Classify infers the type of an untyped token.
//
// The rules are tried in order: on/true and off/false are booleans; a run of
// decimal digits is an integer (so "007" is 7); a signed decimal literal with
// an optional fraction and exponent is a float (so "-1" and "1.0" are floats);
// anything else is kept verbatim as a string. Classify never fails.
func Classify(raw string) Value {
	switch raw {
	case "off", "false":
		return Bool(false)
	case "on", "true":
		return Bool(true)
	}
	if isDigits(raw) {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return Int(i)
		}
	}
	if f, ok := parseFloat(raw); ok {
		return Float(f)
	}
	return Str(raw)
}
