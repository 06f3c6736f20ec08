package foam

import (
	"strings"
)

// cursor pulls the next significant line. ok is false once the input is
// exhausted; lno is then the last line read.
type cursor func() (lno int, line string, ok bool)

// parseObject reads one object from next.
//
// A frame started with an empty name adopts the first bare word it sees as
// its name. It returns at the matching "}", or at the end of the input if it
// never got a name; a named frame that runs out of input is unterminated.
// At the end of the input an unnamed frame returns whatever entries it
// collected, so an empty name and an empty Document mean there was nothing
// left to read.
//
// A "}" reached by an unnamed frame closes nothing and is reported as
// [ErrUnbalanced], rather than ending the frame with what it collected.
func parseObject(next cursor, name string) (string, *Document, error) {
	doc := New()
	lno := 0
	for {
		var (
			line string
			ok   bool
		)
		lno, line, ok = next()
		if !ok {
			break
		}

		tokens := strings.Fields(strings.TrimSuffix(line, ";"))
		if len(tokens) == 0 {
			continue
		}
		key, values := tokens[0], tokens[1:]

		if len(values) == 0 {
			switch {
			case key == "{":
				continue
			case key == "}":
				if name == "" {
					return "", nil, errorf(lno, ErrUnbalanced, "no open object")
				}
				return name, doc, nil
			case name == "" && doc.Len() == 0:
				name = key
			default:
				childName, child, err := parseObject(next, key)
				if err != nil {
					return "", nil, err
				}
				doc.Set(childName, NewDocument(child))
			}
			continue
		}

		var raw string
		switch {
		case len(values) > 1 && strings.HasPrefix(values[0], "("):
			raw = strings.Join(values, " ")
		case len(values) > 1:
			key = strings.Join(tokens[:len(tokens)-1], " ")
			raw = values[len(values)-1]
		default:
			raw = values[0]
		}
		doc.Set(key, parseEntry(raw))
	}

	if name != "" {
		return "", nil, errorf(lno, ErrUnterminated, "%s", name)
	}
	return "", doc, nil
}

// parseEntry types a raw value. A complete parenthesized group becomes a
// list of typed values, a group of groups becomes rows of words; any other
// text is classified as a scalar.
func parseEntry(raw string) Entry {
	inner, ok := unwrapGroup(raw)
	if !ok {
		return NewValue(Classify(raw))
	}
	if rows, ok := splitGroups(inner); ok {
		return NewRows(rows)
	}
	if strings.ContainsAny(inner, "()") {
		return NewValue(Classify(raw))
	}
	fields := strings.Fields(inner)
	values := make([]Value, len(fields))
	for i, f := range fields {
		values[i] = Classify(f)
	}
	return NewList(values...)
}

// unwrapGroup returns the text between the parentheses of s, if the "(" that
// opens s is closed by the ")" that ends it.
func unwrapGroup(s string) (string, bool) {
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return "", false
	}
	depth := 0
	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(s)-1 {
				return "", false
			}
		}
		if depth < 0 {
			return "", false
		}
	}
	return s[1 : len(s)-1], depth == 0
}

// splitGroups splits "(a b) (c d)" into rows. Anything outside a group, or a
// nested group, means s is not a sequence of groups.
func splitGroups(s string) ([][]string, bool) {
	rows := [][]string{}
	rest := strings.TrimSpace(s)
	if rest == "" {
		return nil, false
	}
	for rest != "" {
		if rest[0] != '(' {
			return nil, false
		}
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return nil, false
		}
		body := rest[1:end]
		if strings.ContainsRune(body, '(') {
			return nil, false
		}
		rows = append(rows, strings.Fields(body))
		rest = strings.TrimSpace(rest[end+1:])
	}
	return rows, true
}
