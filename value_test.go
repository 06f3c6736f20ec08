package foam_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/romanzes637/foam-go"
)

func TestClassify(t *testing.T) {
	for _, test := range []struct {
		raw  string
		want foam.Value
	}{
		{"off", foam.Bool(false)},
		{"false", foam.Bool(false)},
		{"on", foam.Bool(true)},
		{"true", foam.Bool(true)},
		{"On", foam.Str("On")},
		{"yes", foam.Str("yes")},
		{"0", foam.Int(0)},
		{"007", foam.Int(7)},
		{"800", foam.Int(800)},
		{"-1", foam.Float(-1)},
		{"+1", foam.Float(1)},
		{"1.0", foam.Float(1)},
		{"1.", foam.Float(1)},
		{".5", foam.Float(0.5)},
		{"2.1e11", foam.Float(2.1e11)},
		{"1E-3", foam.Float(0.001)},
		{"99999999999999999999", foam.Float(1e20)},
		{"1e", foam.Str("1e")},
		{"inf", foam.Str("inf")},
		{"nan", foam.Str("nan")},
		{"0x10", foam.Str("0x10")},
		{"1_000", foam.Str("1_000")},
		{"constProp", foam.Str("constProp")},
		{"(1 2)", foam.Str("(1 2)")},
		{"", foam.Str("")},
	} {
		t.Run(test.raw, func(t *testing.T) {
			if diff := cmp.Diff(test.want, foam.Classify(test.raw)); diff != "" {
				t.Errorf("Classify(%q) mismatch (-want +got):\n%s", test.raw, diff)
			}
		})
	}
}

func TestIsNumber(t *testing.T) {
	for raw, want := range map[string]bool{
		"3":     true,
		"-2.5":  true,
		"1e5":   true,
		"(":     false,
		"inlet": false,
		"":      false,
	} {
		if got := foam.IsNumber(raw); got != want {
			t.Errorf("IsNumber(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestValueString(t *testing.T) {
	for _, test := range []struct {
		value foam.Value
		want  string
	}{
		{foam.Bool(true), "true"},
		{foam.Bool(false), "false"},
		{foam.Int(7), "7"},
		{foam.Float(1), "1.0"},
		{foam.Float(-1), "-1.0"},
		{foam.Float(2760), "2760.0"},
		{foam.Float(1.5), "1.5"},
		{foam.Float(2.1e11), "2.1e+11"},
		{foam.Float(1e-6), "1e-06"},
		{foam.Float(math.Inf(1)), "+Inf"},
		{foam.Str("ascii"), "ascii"},
	} {
		if got := test.value.String(); got != test.want {
			t.Errorf("%#v.String() = %q, want %q", test.value, got, test.want)
		}
	}
}

func TestValueAccessors(t *testing.T) {
	if _, err := foam.Int(1).AsString(); err == nil {
		t.Error("expected error reading an int as a string")
	}
	if f, err := foam.Int(3).AsFloat(); err != nil || f != 3 {
		t.Errorf("AsFloat() = %v, %v; want 3, nil", f, err)
	}
	if b, err := foam.Bool(true).AsBool(); err != nil || !b {
		t.Errorf("AsBool() = %v, %v; want true, nil", b, err)
	}
	if foam.Int(1).Equal(foam.Float(1)) {
		t.Error("Int(1) and Float(1) must not be equal")
	}
	var zero foam.Value
	if zero.Kind() != foam.KindString {
		t.Errorf("zero Value has kind %s, want string", zero.Kind())
	}
}
