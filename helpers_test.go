package foam_test

import (
	"fmt"

	"github.com/romanzes637/foam-go"
)

// dict builds a document from alternating keys and values. A value may be a
// foam.Value, a foam.Entry or a *foam.Document.
func dict(pairs ...any) *foam.Document {
	d := foam.New()
	for i := 0; i+1 < len(pairs); i += 2 {
		key := pairs[i].(string)
		switch v := pairs[i+1].(type) {
		case foam.Value:
			d.SetValue(key, v)
		case foam.Entry:
			d.Set(key, v)
		case *foam.Document:
			d.Set(key, foam.NewDocument(v))
		default:
			panic(fmt.Errorf("dict: unsupported value %#v", v))
		}
	}
	return d
}

func floats(fs ...float64) foam.Entry {
	values := make([]foam.Value, len(fs))
	for i, f := range fs {
		values[i] = foam.Float(f)
	}
	return foam.NewList(values...)
}
