// Package header reads and writes the header dictionary that opens a case
// file.
//
// Files written by the solver's own tools start with a FoamFile dictionary;
// the exporter writes the same dictionary under the name FeniaFile:
//
//	FoamFile
//	{
//	    version 2.0;
//	    format ascii;
//	    class dictionary;
//	    location constant;
//	    object transportProperties;
//	}
//
// The class entry tells a reader which [foam.Class] to load the rest of the
// file as. Only the ascii format can be read.
package header

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/romanzes637/foam-go"
)

// Names under which a header dictionary is recognized, in the order [Find]
// looks for them.
const (
	FoamFile  = "FoamFile"
	FeniaFile = "FeniaFile"
)

// Header is the contents of a header dictionary.
type Header struct {
	Version  float64    `foam:"version"`
	Format   string     `foam:"format"`
	Class    foam.Class `foam:"class"`
	Location string     `foam:"location,omitempty"`
	Object   string     `foam:"object"`
	Arch     string     `foam:"arch,omitempty"`
	Note     string     `foam:"note,omitempty"`
}

// New returns a version 2.0 ascii header.
func New(class foam.Class, location, object string) Header {
	return Header{
		Version:  2.0,
		Format:   "ascii",
		Class:    class,
		Location: location,
		Object:   object,
	}
}

var required = []string{"version", "format", "class", "object"}

// Find returns the header of doc, looking for a FoamFile entry and then a
// FeniaFile entry.
//
// It returns a *[ValidationError] if neither exists, if the header lacks a
// required key, or if its format is not ascii. Surrounding double quotes are
// removed from location and object, as files written by the solver quote
// them.
func Find(doc *foam.Document) (Header, error) {
	for _, name := range []string{FoamFile, FeniaFile} {
		e, ok := doc.Get(name)
		if !ok {
			continue
		}
		return decode(name, e)
	}
	return Header{}, &ValidationError{Key: FoamFile, msg: "missing header"}
}

func decode(name string, e foam.Entry) (Header, error) {
	h := Header{}
	d, err := e.Document()
	if err != nil {
		return h, &ValidationError{Key: name, err: err}
	}
	for _, key := range required {
		if _, ok := d.Get(key); !ok {
			return h, &ValidationError{Key: name + "/" + key, msg: "missing required key"}
		}
	}
	if err := foam.Decode(d, &h); err != nil {
		return h, &ValidationError{Key: name, err: err}
	}
	if h.Format != "ascii" {
		return h, &ValidationError{Key: name + "/format", msg: fmt.Sprintf("unsupported format %s", h.Format)}
	}
	h.Location = strings.Trim(h.Location, `"`)
	h.Object = strings.Trim(h.Object, `"`)
	return h, nil
}

// Parse reads the header from the preamble of a file: the lines that
// [foam.Load] skips. The preamble must be a well-formed dictionary.
func Parse(preamble []byte) (Header, error) {
	doc, err := foam.LoadDictionary(bytes.NewReader(preamble), 0)
	if err != nil {
		return Header{}, err
	}
	return Find(doc)
}

// Prepend returns a document whose first entry is h under the given name
// (usually [FoamFile] or [FeniaFile]), followed by the entries of body.
func Prepend(name string, h Header, body *foam.Document) (*foam.Document, error) {
	if _, ok := body.Get(name); ok {
		return nil, fmt.Errorf("body already has a %s entry", name)
	}
	hdoc, err := foam.Encode(h)
	if err != nil {
		return nil, err
	}
	doc := foam.New()
	doc.Set(name, foam.NewDocument(hdoc))
	for k, e := range body.All() {
		doc.Set(k, e)
	}
	return doc, nil
}
