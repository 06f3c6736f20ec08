package foam

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// ScalarRows is the payload of a scalarList file.
type ScalarRows [][]float64

// Words is the payload of a wordList file.
type Words []string

// WordRows is the payload of a wordListList file.
type WordRows [][]string

// Scalars is the payload of a scalarField file.
type Scalars []float64

// Vectors is the payload of a vectorList or vectorField file.
type Vectors [][3]float64

var parens = strings.NewReplacer("(", " ", ")", " ")

func isDelimiter(line string) bool {
	return line == "(" || line == ")"
}

// decodeScalarList reads lines of the form "<count>(<f1> <f2> ...)". The
// count is checked but not kept. The first row is a size header and is
// dropped when more than one row was read.
func decodeScalarList(lines iter.Seq2[int, string]) (ScalarRows, error) {
	rows := ScalarRows{}
	for lno, line := range lines {
		count, body, found := strings.Cut(strings.TrimSuffix(line, ";"), "(")
		if !found || !strings.HasSuffix(body, ")") {
			return nil, errorf(lno, ErrMalformedLine, "expected <count>(<values>), got %q", line)
		}
		if _, err := strconv.Atoi(strings.TrimSpace(count)); err != nil {
			return nil, errorf(lno, ErrMalformedLine, "invalid count %q", count)
		}
		fields := strings.Fields(strings.TrimSuffix(body, ")"))
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, ok := parseFloat(f)
			if !ok {
				return nil, errorf(lno, ErrMalformedLine, "invalid number %q", f)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if len(rows) > 1 {
		rows = rows[1:]
	}
	return rows, nil
}

// decodeWordList keeps every line that is neither a bare parenthesis nor a
// number (the count).
func decodeWordList(lines iter.Seq2[int, string]) Words {
	words := Words{}
	for _, line := range lines {
		if isDelimiter(line) || IsNumber(line) {
			continue
		}
		words = append(words, line)
	}
	return words
}

// decodeWordListList reads one row per line, such as "2(patch wall)". The
// leading per-row count is dropped.
func decodeWordListList(lines iter.Seq2[int, string]) WordRows {
	rows := WordRows{}
	for _, line := range lines {
		if isDelimiter(line) || IsNumber(line) {
			continue
		}
		fields := strings.Fields(parens.Replace(line))
		if len(fields) > 0 {
			fields = fields[1:]
		}
		rows = append(rows, fields)
	}
	return rows
}

// decodeScalarField collects the numbers of a field into one flat list.
func decodeScalarField(lines iter.Seq2[int, string]) (Scalars, error) {
	flat, _, err := decodeFlat(lines)
	return flat, err
}

// decodeVectorField reads a field like [decodeScalarField] and groups what
// remains into (x y z) triples.
func decodeVectorField(lines iter.Seq2[int, string]) (Vectors, error) {
	flat, lno, err := decodeFlat(lines)
	if err != nil {
		return nil, err
	}
	if len(flat)%3 != 0 {
		return nil, errorf(lno, ErrMalformedField, "%d components is not a whole number of vectors", len(flat))
	}
	vectors := make(Vectors, 0, len(flat)/3)
	for i := 0; i < len(flat); i += 3 {
		vectors = append(vectors, [3]float64{flat[i], flat[i+1], flat[i+2]})
	}
	return vectors, nil
}

// decodeFlat accumulates field numbers and returns them with the number of
// the last line read.
//
// A uniform line such as "internalField uniform 42.0;" contributes a count of
// 1 followed by its value; any other line contributes every token that is a
// number, counts included. The first number is the count of the field and is
// always dropped.
func decodeFlat(lines iter.Seq2[int, string]) (Scalars, int, error) {
	flat := Scalars{}
	last := 0
	for lno, line := range lines {
		last = lno
		fields := strings.Fields(line)
		marker := slices.Index(fields, "uniform")
		if marker < 0 {
			for _, t := range strings.Fields(parens.Replace(line)) {
				if v, ok := parseFloat(t); ok {
					flat = append(flat, v)
				}
			}
			continue
		}

		values, msg := uniformValue(fields[marker+1:])
		if msg != "" {
			return nil, lno, errorf(lno, ErrMalformedLine, "%s", msg)
		}
		flat = append(flat, 1)
		flat = append(flat, values...)
	}
	if len(flat) > 0 {
		flat = flat[1:]
	}
	return flat, last, nil
}

// uniformValue parses what follows the uniform marker: a scalar, or a
// parenthesized vector.
func uniformValue(tokens []string) ([]float64, string) {
	text := strings.TrimSpace(strings.TrimSuffix(strings.Join(tokens, " "), ";"))
	if text == "" {
		return nil, "missing uniform value"
	}
	if inner, ok := unwrapGroup(text); ok {
		fields := strings.Fields(inner)
		values := make([]float64, len(fields))
		for i, f := range fields {
			v, ok := parseFloat(f)
			if !ok {
				return nil, fmt.Sprintf("invalid uniform component %q", f)
			}
			values[i] = v
		}
		return values, ""
	}
	last := text[strings.LastIndexAny(text, " \t")+1:]
	last = strings.TrimRight(last, ")")
	v, ok := parseFloat(last)
	if !ok {
		return nil, fmt.Sprintf("invalid uniform value %q", last)
	}
	return []float64{v}, ""
}
