package foam

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements [yaml.Marshaler]. Keys keep their order, and every
// scalar carries the tag of its kind, so a string that looks like a number
// stays a string.
func (d *Document) MarshalYAML() (any, error) {
	return documentNode(d), nil
}

func documentNode(d *Document) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for key, e := range d.All() {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			entryNode(e))
	}
	return n
}

func entryNode(e Entry) *yaml.Node {
	switch e.kind {
	case ListEntry:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, v := range e.list {
			n.Content = append(n.Content, scalarNode(v))
		}
		return n
	case RowsEntry:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, row := range e.rows {
			r := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
			for _, word := range row {
				r.Content = append(r.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: word})
			}
			n.Content = append(n.Content, r)
		}
		return n
	case DocumentEntry:
		return documentNode(e.doc)
	}
	return scalarNode(e.value)
}

func scalarNode(v Value) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Value: v.String()}
	switch v.kind {
	case KindBool:
		n.Tag = "!!bool"
	case KindInt:
		n.Tag = "!!int"
	case KindFloat:
		n.Tag = "!!float"
		switch {
		case math.IsNaN(v.f):
			n.Value = ".nan"
		case math.IsInf(v.f, 1):
			n.Value = ".inf"
		case math.IsInf(v.f, -1):
			n.Value = "-.inf"
		}
	default:
		n.Tag = "!!str"
	}
	return n
}

// UnmarshalYAML implements [yaml.Unmarshaler]. A mapping becomes a
// Document, a sequence of sequences becomes rows, any other sequence a list,
// and a scalar takes the kind of its resolved tag.
func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.DocumentNode && len(value.Content) == 1 {
		value = value.Content[0]
	}
	if value.Kind == yaml.AliasNode {
		value = value.Alias
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%d: expected a mapping, got %s", value.Line, value.ShortTag())
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return fmt.Errorf("%d: keys must be non-empty scalars", key.Line)
		}
		e, err := entryFromNode(value.Content[i+1])
		if err != nil {
			return err
		}
		d.Set(key.Value, e)
	}
	return nil
}

func entryFromNode(n *yaml.Node) (Entry, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.MappingNode:
		child := New()
		if err := child.UnmarshalYAML(n); err != nil {
			return Entry{}, err
		}
		return NewDocument(child), nil
	case yaml.SequenceNode:
		if len(n.Content) > 0 && n.Content[0].Kind == yaml.SequenceNode {
			rows := make([][]string, len(n.Content))
			for i, item := range n.Content {
				if item.Kind != yaml.SequenceNode {
					return Entry{}, fmt.Errorf("%d: expected a list of words", item.Line)
				}
				rows[i] = make([]string, len(item.Content))
				for j, word := range item.Content {
					if word.Kind != yaml.ScalarNode {
						return Entry{}, fmt.Errorf("%d: expected a word", word.Line)
					}
					rows[i][j] = word.Value
				}
			}
			return NewRows(rows), nil
		}
		values := make([]Value, len(n.Content))
		for i, item := range n.Content {
			v, err := valueFromNode(item)
			if err != nil {
				return Entry{}, err
			}
			values[i] = v
		}
		return NewList(values...), nil
	}
	v, err := valueFromNode(n)
	if err != nil {
		return Entry{}, err
	}
	return NewValue(v), nil
}

func valueFromNode(n *yaml.Node) (Value, error) {
	if n.Kind != yaml.ScalarNode {
		return Value{}, fmt.Errorf("%d: expected a scalar", n.Line)
	}
	switch n.ShortTag() {
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return Value{}, err
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case "!!null":
		return Value{}, fmt.Errorf("%d: null has no equivalent", n.Line)
	}
	return Str(n.Value), nil
}
