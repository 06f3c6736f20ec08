package foam

import (
	"bytes"
	"fmt"
	"io"
	"iter"
)

// DefaultHeaderLines is the length of the banner and header that precedes
// the content of a file written by the solver's tools.
const DefaultHeaderLines = 12

// Data is the result of [Load]: a *[Document] for [Dictionary], or one of
// [ScalarRows], [Words], [WordRows], [Scalars] or [Vectors] for the list
// classes.
type Data interface {
	isData()
}

func (*Document) isData()  {}
func (ScalarRows) isData() {}
func (Words) isData()      {}
func (WordRows) isData()   {}
func (Scalars) isData()    {}
func (Vectors) isData()    {}

// Load reads a file of the given class from r.
//
// The first headerLines lines are skipped without being looked at. For
// [Dictionary] the rest of the input is parsed into a [Document]; the other
// classes are decoded by their list decoder. Errors carry the line number at
// which they were detected (see [ParseError]).
func Load(r io.Reader, class Class, headerLines int) (Data, error) {
	lr := newLineReader(r)
	if err := lr.skip(headerLines); err != nil {
		return nil, err
	}
	lines := significant(lr.lines())

	var (
		data Data
		err  error
	)
	switch class {
	case Dictionary:
		data, err = loadDictionary(lines)
	case ScalarList:
		data, err = decodeScalarList(lines)
	case WordList:
		data = decodeWordList(lines)
	case WordListList:
		data = decodeWordListList(lines)
	case ScalarField:
		data, err = decodeScalarField(lines)
	case VectorList, VectorField:
		data, err = decodeVectorField(lines)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedClass, class)
	}
	// a read error ends the line sequence early, so it explains any
	// structural error that follows from it
	if rerr := lr.err(); rerr != nil {
		return nil, rerr
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// loadDictionary parses top-level objects until the input runs out. Named
// objects become entries of the result; entries outside of any object are
// added to the result directly.
func loadDictionary(lines iter.Seq2[int, string]) (*Document, error) {
	pull, stop := iter.Pull2(lines)
	defer stop()
	lastLine := 0
	next := func() (int, string, bool) {
		lno, line, ok := pull()
		if !ok {
			return lastLine, "", false
		}
		lastLine = lno
		return lno, line, true
	}

	root := New()
	for {
		name, obj, err := parseObject(next, "")
		if err != nil {
			return nil, err
		}
		if name == "" {
			for k, e := range obj.All() {
				root.Set(k, e)
			}
			return root, nil
		}
		root.Set(name, NewDocument(obj))
	}
}

func loadAs[T Data](r io.Reader, class Class, headerLines int) (T, error) {
	var zero T
	data, err := Load(r, class, headerLines)
	if err != nil {
		return zero, err
	}
	return data.(T), nil
}

// LoadDictionary reads a dictionary file. See [Load].
func LoadDictionary(r io.Reader, headerLines int) (*Document, error) {
	return loadAs[*Document](r, Dictionary, headerLines)
}

// LoadScalarList reads a scalarList file. See [Load].
func LoadScalarList(r io.Reader, headerLines int) (ScalarRows, error) {
	return loadAs[ScalarRows](r, ScalarList, headerLines)
}

// LoadWordList reads a wordList file. See [Load].
func LoadWordList(r io.Reader, headerLines int) (Words, error) {
	return loadAs[Words](r, WordList, headerLines)
}

// LoadWordListList reads a wordListList file. See [Load].
func LoadWordListList(r io.Reader, headerLines int) (WordRows, error) {
	return loadAs[WordRows](r, WordListList, headerLines)
}

// LoadScalarField reads a scalarField file. See [Load].
func LoadScalarField(r io.Reader, headerLines int) (Scalars, error) {
	return loadAs[Scalars](r, ScalarField, headerLines)
}

// LoadVectorField reads a vectorList or vectorField file. See [Load].
func LoadVectorField(r io.Reader, headerLines int) (Vectors, error) {
	return loadAs[Vectors](r, VectorField, headerLines)
}

// Unmarshal parses a dictionary with no header lines and stores it in the
// value pointed to by v, as described by [Decode].
func Unmarshal(data []byte, v any) error {
	doc, err := LoadDictionary(bytes.NewReader(data), 0)
	if err != nil {
		return err
	}
	return Decode(doc, v)
}
