package foam_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/romanzes637/foam-go"
)

func materials() *foam.Document {
	return dict(
		"FeniaFile", dict(
			"version", foam.Float(2),
			"format", foam.Str("ascii"),
			"class", foam.Str("dictionary"),
			"object", foam.Str("materials"),
		),
		"noZone", dict(
			"matType", foam.Str("constProp"),
			"DT", floats(1.5, 1.5, 1.5),
			"rho", foam.Float(2760),
			"Young const", foam.Float(2.1e11),
			"cHeat", foam.Int(800),
			"anisotropic", foam.Bool(false),
		),
	)
}

func TestDump(t *testing.T) {
	var b strings.Builder
	if err := foam.Dump(&b, materials(), foam.Dictionary); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := dedent(`
				FeniaFile
				{
				version 2.0;
				format ascii;
				class dictionary;
				object materials;
				}
				noZone
				{
				matType constProp;
				DT (1.5 1.5 1.5);
				rho 2760.0;
				Young const 2.1e+11;
				cHeat 800;
				anisotropic false;
				}
			`)
	if b.String() != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, b.String())
	}
}

func TestDumpRoundTrip(t *testing.T) {
	for _, test := range []struct {
		name string
		doc  *foam.Document
	}{
		{"materials", materials()},
		{"empty", dict()},
		{"empty nested", dict("a", dict(), "b", foam.Int(0))},
		{"top-level values", dict("a", foam.Int(1), "b", dict("c", foam.Str("d")), "e", foam.Float(-0.5))},
		{"lists", dict("empty", foam.NewList(), "mixed", foam.NewList(foam.Int(1), foam.Str("x"), foam.Bool(true), foam.Float(1e-9)))},
		{"rows", dict("patches", foam.NewRows([][]string{{"inlet", "patch"}, {}}))},
		{"deep", dict("a", dict("b", dict("c", dict("d", foam.Str("e")))))},
		{"integers stay integers", dict("a", foam.Int(7), "b", foam.Float(7))},
	} {
		t.Run(test.name, func(t *testing.T) {
			var b strings.Builder
			if err := foam.Dump(&b, test.doc, foam.Dictionary); err != nil {
				t.Fatalf("failed to dump: %v", err)
			}
			got, err := foam.LoadDictionary(strings.NewReader(b.String()), 0)
			if err != nil {
				t.Fatalf("failed to load: %v\n%s", err, b.String())
			}
			if diff := cmp.Diff(test.doc, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s\n%s", diff, b.String())
			}

			// dumping what was loaded gives the same text
			again, err := foam.Marshal(got)
			if err != nil {
				t.Fatalf("failed to marshal: %v", err)
			}
			if string(again) != b.String() {
				t.Errorf("expected\n%s\ngot\n%s", b.String(), again)
			}
		})
	}
}

func TestDumpUnsupportedClass(t *testing.T) {
	var b strings.Builder
	err := foam.Dump(&b, materials(), foam.VectorField)
	if !errors.Is(err, foam.ErrUnsupportedClass) {
		t.Fatalf("expected ErrUnsupportedClass, got %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("expected nothing to be written, got %q", b.String())
	}
}

func TestDumpUnencodable(t *testing.T) {
	for _, test := range []struct {
		name    string
		doc     *foam.Document
		message string
	}{
		{
			name:    "string that reads as a number",
			doc:     dict("a", foam.Str("12")),
			message: `cannot encode: a: string "12" reads back as int`,
		},
		{
			name:    "string that reads as a bool",
			doc:     dict("s", dict("a", foam.Str("on"))),
			message: `cannot encode: s/a: string "on" reads back as bool`,
		},
		{
			name:    "empty string",
			doc:     dict("a", foam.Str("")),
			message: "cannot encode: a: empty word",
		},
		{
			name:    "string with spaces",
			doc:     dict("a", foam.Str("two words")),
			message: `cannot encode: a: "two words" contains whitespace`,
		},
		{
			name:    "string with a delimiter",
			doc:     dict("a", foam.Str("x;")),
			message: `cannot encode: a: "x;" contains a delimiter`,
		},
		{
			name:    "string with a comment",
			doc:     dict("a", foam.Str("x//y")),
			message: `cannot encode: a: "x//y" contains a comment marker`,
		},
		{
			name:    "negative integer",
			doc:     dict("a", foam.Int(-1)),
			message: "cannot encode: a: negative integer -1 reads back as a float",
		},
		{
			name:    "infinity",
			doc:     dict("a", foam.NewList(foam.Float(math.Inf(1)))),
			message: "cannot encode: a[0]: non-finite float +Inf",
		},
		{
			name:    "multi-word key of a document",
			doc:     dict("a b", dict()),
			message: `cannot encode: key "a b": "a b" contains whitespace`,
		},
		{
			name:    "key with double spaces",
			doc:     dict("a  b", foam.Int(1)),
			message: `cannot encode: key "a  b": words must be separated by single spaces`,
		},
		{
			name:    "key word that starts a list",
			doc:     dict("a (b", foam.Int(1)),
			message: `cannot encode: key "a (b": "(b" would start a list`,
		},
		{
			name:    "key with a brace",
			doc:     dict("a{", foam.Int(1)),
			message: `cannot encode: key "a{": "a{" contains a delimiter`,
		},
		{
			name:    "empty rows",
			doc:     dict("a", foam.NewRows(nil)),
			message: "cannot encode: a: empty rows read back as an empty list",
		},
		{
			name:    "word in rows",
			doc:     dict("a", foam.NewRows([][]string{{"x"}, {"y z"}})),
			message: `cannot encode: a[1]: "y z" contains whitespace`,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			var b strings.Builder
			err := foam.Dump(&b, test.doc, foam.Dictionary)
			if !errors.Is(err, foam.ErrUnencodable) {
				t.Fatalf("expected ErrUnencodable, got %v", err)
			}
			if err.Error() != test.message {
				t.Errorf("expected %q, got %q", test.message, err.Error())
			}
			if b.Len() != 0 {
				t.Errorf("expected nothing to be written, got %q", b.String())
			}
		})
	}
}

func TestLoadDump(t *testing.T) {
	input := `
/*--------------------------------*- C++ -*----------------------------------*\
  =========                 |
  \\      /  F ield         | OpenFOAM: The Open Source CFD Toolbox
   \\    /   O peration     |
    \\  /    A nd           |
     \\/     M anipulation  |
\*---------------------------------------------------------------------------*/
FoamFile
{
    version     2.0;
    format      ascii;
    class       dictionary;
    location    "constant";
    object      transportProperties;
}
// * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * //

nu              0.01;
transportModel  Newtonian;
`
	doc, err := foam.LoadDictionary(strings.NewReader(input), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text, err := foam.Marshal(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := dedent(`
				FoamFile
				{
				version 2.0;
				format ascii;
				class dictionary;
				location "constant";
				object transportProperties;
				}
				nu 0.01;
				transportModel Newtonian;
			`)
	if string(text) != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, text)
	}
}

func TestDumpSchemes(t *testing.T) {
	input := `
divSchemes
{
    default         none;
    div(phi,U)      Gauss linear;
    div((nuEff*dev2(T(grad(U))))) Gauss linear;
}
laplacianSchemes
{
    default         Gauss linear corrected;
    laplacian(nu,U) Gauss linear corrected;
}
`
	doc, err := foam.LoadDictionary(strings.NewReader(input), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e, ok := doc.Lookup("divSchemes", "div(phi,U) Gauss"); !ok || !e.Equal(foam.NewValue(foam.Str("linear"))) {
		t.Fatalf("unexpected entry %#v", e)
	}

	var b strings.Builder
	if err := foam.Dump(&b, doc, foam.Dictionary); err != nil {
		t.Fatalf("failed to dump: %v", err)
	}
	expected := dedent(`
				divSchemes
				{
				default none;
				div(phi,U) Gauss linear;
				div((nuEff*dev2(T(grad(U))))) Gauss linear;
				}
				laplacianSchemes
				{
				default Gauss linear corrected;
				laplacian(nu,U) Gauss linear corrected;
				}
			`)
	if b.String() != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, b.String())
	}

	got, err := foam.LoadDictionary(strings.NewReader(b.String()), 0)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
