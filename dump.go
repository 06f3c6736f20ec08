package foam

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Dump writes doc to w as a file of the given class. Only [Dictionary] can
// be written.
//
// The top-level Document is written without a name or braces: each of its
// entries is written in order, nested documents as a name line followed by a
// braced block, lists as "key (a b c);" and scalars as "key value;".
//
// Dump only writes what [Load] reads back unchanged. Anything else (for
// example a string that would read back as a number, or a key containing a
// brace) is reported as [ErrUnencodable], and nothing is written.
func Dump(w io.Writer, doc *Document, class Class) error {
	if class != Dictionary {
		return fmt.Errorf("%w: %s", ErrUnsupportedClass, class)
	}
	text, err := Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}

// Marshal returns the text of doc as written by [Dump].
func Marshal(doc *Document) ([]byte, error) {
	var b strings.Builder
	if err := writeEntries(&b, doc, ""); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func writeEntries(b *strings.Builder, doc *Document, path string) error {
	for key, e := range doc.All() {
		keyPath := key
		if path != "" {
			keyPath = path + "/" + key
		}
		if err := checkKey(key, e.kind); err != nil {
			return fmt.Errorf("%w: key %q: %s", ErrUnencodable, keyPath, err)
		}

		switch e.kind {
		case ValueEntry:
			text, err := scalarText(e.value)
			if err != nil {
				return fmt.Errorf("%w: %s: %s", ErrUnencodable, keyPath, err)
			}
			b.WriteString(key + " " + text + ";\n")

		case ListEntry:
			texts := make([]string, len(e.list))
			for i, v := range e.list {
				text, err := scalarText(v)
				if err != nil {
					return fmt.Errorf("%w: %s[%d]: %s", ErrUnencodable, keyPath, i, err)
				}
				texts[i] = text
			}
			b.WriteString(key + " (" + strings.Join(texts, " ") + ");\n")

		case RowsEntry:
			if len(e.rows) == 0 {
				return fmt.Errorf("%w: %s: empty rows read back as an empty list", ErrUnencodable, keyPath)
			}
			groups := make([]string, len(e.rows))
			for i, row := range e.rows {
				for _, word := range row {
					if err := checkWord(word); err != nil {
						return fmt.Errorf("%w: %s[%d]: %s", ErrUnencodable, keyPath, i, err)
					}
				}
				groups[i] = "(" + strings.Join(row, " ") + ")"
			}
			b.WriteString(key + " (" + strings.Join(groups, " ") + ");\n")

		case DocumentEntry:
			b.WriteString(key + "\n{\n")
			if err := writeEntries(b, e.doc, keyPath); err != nil {
				return err
			}
			b.WriteString("}\n")
		}
	}
	return nil
}

// checkWord rejects text that would not survive as a single value token.
func checkWord(s string) error {
	return checkToken(s, "(){};")
}

// checkToken rejects text that is empty, would be split, contains one of
// delims, or would be read as a comment.
func checkToken(s, delims string) error {
	switch {
	case s == "":
		return fmt.Errorf("empty word")
	case strings.ContainsFunc(s, isSpace):
		return fmt.Errorf("%q contains whitespace", s)
	case strings.ContainsAny(s, delims):
		return fmt.Errorf("%q contains a delimiter", s)
	case strings.Contains(s, "//"), strings.HasPrefix(s, "/*"), strings.HasSuffix(s, "*/"):
		return fmt.Errorf("%q contains a comment marker", s)
	}
	return nil
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}

// checkKey rejects keys that would not read back as a key of the same entry.
// Parentheses are fine in keys, as in div(phi,U). Only scalars can have keys
// of several words, since the words before the value are folded back into
// the key, and a word after the first must not start with "(", which would
// begin a list value.
func checkKey(key string, kind EntryKind) error {
	if kind == ValueEntry && strings.ContainsFunc(key, isSpace) {
		words := strings.Fields(key)
		if strings.Join(words, " ") != key {
			return fmt.Errorf("words must be separated by single spaces")
		}
		for i, w := range words {
			if err := checkToken(w, "{};"); err != nil {
				return err
			}
			if i > 0 && strings.HasPrefix(w, "(") {
				return fmt.Errorf("%q would start a list", w)
			}
		}
		return nil
	}
	return checkToken(key, "{};")
}

func scalarText(v Value) (string, error) {
	switch v.kind {
	case KindInt:
		if v.i < 0 {
			return "", fmt.Errorf("negative integer %d reads back as a float", v.i)
		}
	case KindFloat:
		if math.IsInf(v.f, 0) || math.IsNaN(v.f) {
			return "", fmt.Errorf("non-finite float %v", v.f)
		}
	case KindString:
		if err := checkWord(v.s); err != nil {
			return "", err
		}
		if Classify(v.s).kind != KindString {
			return "", fmt.Errorf("string %q reads back as %s", v.s, Classify(v.s).kind)
		}
	}
	return v.String(), nil
}
