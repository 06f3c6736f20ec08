package foam

import "fmt"

// Class names the layout of a case file, as recorded in the class entry of
// its header.
type Class uint8

// These are the classes [Load] understands. Only [Dictionary] can be
// written by [Dump].
const (
	Dictionary = Class(iota)
	ScalarList
	WordList
	WordListList
	ScalarField
	VectorList
	VectorField
)

var classNames = [...]string{
	Dictionary:   "dictionary",
	ScalarList:   "scalarList",
	WordList:     "wordList",
	WordListList: "wordListList",
	ScalarField:  "scalarField",
	VectorList:   "vectorList",
	VectorField:  "vectorField",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

func (c Class) GoString() string {
	return c.String()
}

// ParseClass returns the Class with the given name.
func ParseClass(name string) (Class, error) {
	for i, n := range classNames {
		if n == name {
			return Class(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedClass, name)
}

// MarshalText implements [encoding.TextMarshaler].
func (c Class) MarshalText() ([]byte, error) {
	if int(c) >= len(classNames) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedClass, c)
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Class) UnmarshalText(text []byte) error {
	parsed, err := ParseClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
