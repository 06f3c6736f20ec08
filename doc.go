// Package foam implements parsing and serializing of the dictionary format
// used by case files of OpenFOAM-style CFD solvers.
//
// A dictionary is a sequence of entries. An entry is a scalar, a list, or a
// nested dictionary:
//
//	// a basic dictionary
//	noZone
//	{
//	    matType constProp;
//	    DT (1.5 1.5 1.5);
//	    rho 2760.0;
//	    Young const 2.1e11;
//	}
//
// Scalars are untyped in the file, so [Load] infers a type for each one (see
// [Classify]): on/off and true/false are booleans, a run of digits is an
// integer, a decimal literal is a float, and anything else is a string.
// Several words before a value are folded into one key ("Young const" above).
// Both // and /* */ comments are ignored.
//
// Besides dictionaries, [Load] decodes the list classes used for mesh and
// field data: scalarList, wordList, wordListList, scalarField, vectorList
// and vectorField. Each has its own layout; see [Class].
//
// [Dump] writes a [Document] back out. Only what reads back unchanged is
// written, so load(dump(d)) == d for every document that Dump accepts.
//
// Like the builtin json package, foam can convert between Go values and
// documents. The dictionary above can be read with:
//
//	type Material struct {
//	    MatType string     `foam:"matType"`
//	    DT      [3]float64 `foam:"DT"`
//	    Rho     float64    `foam:"rho"`
//	    Young   float64    `foam:"Young const"`
//	}
//
//	m := map[string]Material{}
//	foam.Unmarshal(data, &m)
//
// See [Encode] and [Decode].
package foam
