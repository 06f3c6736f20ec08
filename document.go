package foam

import (
	"fmt"
	"iter"
	"slices"
)

// EntryKind identifies which payload an [Entry] holds.
type EntryKind uint8

const (
	ValueEntry = EntryKind(iota)
	ListEntry
	RowsEntry
	DocumentEntry
)

func (k EntryKind) String() string {
	switch k {
	case ValueEntry:
		return "value"
	case ListEntry:
		return "list"
	case RowsEntry:
		return "rows"
	case DocumentEntry:
		return "document"
	default:
		panic("Unknown EntryKind")
	}
}

// Entry is the payload bound to a key in a [Document]: a scalar [Value], a
// list of values, a list of word lists, or a nested Document.
type Entry struct {
	kind  EntryKind
	value Value
	list  []Value
	rows  [][]string
	doc   *Document
}

// NewValue wraps a scalar.
func NewValue(v Value) Entry { return Entry{kind: ValueEntry, value: v} }

// NewList wraps a list of scalars.
func NewList(values ...Value) Entry { return Entry{kind: ListEntry, list: values} }

// NewRows wraps a list of word lists.
func NewRows(rows [][]string) Entry { return Entry{kind: RowsEntry, rows: rows} }

// NewDocument wraps a nested dictionary.
func NewDocument(d *Document) Entry { return Entry{kind: DocumentEntry, doc: d} }

// Kind returns the tag of e.
func (e Entry) Kind() EntryKind { return e.kind }

// Value returns the scalar held by e.
func (e Entry) Value() (Value, error) {
	if e.kind != ValueEntry {
		return Value{}, fmt.Errorf("foam: expected value, got %s", e.kind)
	}
	return e.value, nil
}

// List returns the values held by e.
func (e Entry) List() ([]Value, error) {
	if e.kind != ListEntry {
		return nil, fmt.Errorf("foam: expected list, got %s", e.kind)
	}
	return e.list, nil
}

// Rows returns the word lists held by e.
func (e Entry) Rows() ([][]string, error) {
	if e.kind != RowsEntry {
		return nil, fmt.Errorf("foam: expected rows, got %s", e.kind)
	}
	return e.rows, nil
}

// Document returns the nested dictionary held by e.
func (e Entry) Document() (*Document, error) {
	if e.kind != DocumentEntry {
		return nil, fmt.Errorf("foam: expected document, got %s", e.kind)
	}
	return e.doc, nil
}

// Equal reports whether e and o hold equal payloads of the same kind.
func (e Entry) Equal(o Entry) bool {
	if e.kind != o.kind {
		return false
	}
	switch e.kind {
	case ValueEntry:
		return e.value.Equal(o.value)
	case ListEntry:
		return slices.EqualFunc(e.list, o.list, Value.Equal)
	case RowsEntry:
		return slices.EqualFunc(e.rows, o.rows, slices.Equal[[]string])
	default:
		return e.doc.Equal(o.doc)
	}
}

type mapEntry struct {
	key   string
	entry Entry
}

// A Document is a dictionary: an ordered mapping from keys to entries.
// Keys keep the order in which they were first set.
//
// The zero value is an empty Document ready to use.
type Document struct {
	entries []mapEntry
	index   map[string]int
}

// New returns an empty Document.
func New() *Document {
	return &Document{}
}

// Set binds key to e. Setting an existing key replaces its entry in place.
func (d *Document) Set(key string, e Entry) {
	if i, ok := d.index[key]; ok {
		d.entries[i].entry = e
		return
	}
	if d.index == nil {
		d.index = map[string]int{}
	}
	d.index[key] = len(d.entries)
	d.entries = append(d.entries, mapEntry{key: key, entry: e})
}

// SetValue is shorthand for Set(key, NewValue(v)).
func (d *Document) SetValue(key string, v Value) {
	d.Set(key, NewValue(v))
}

// Get returns the entry bound to key.
func (d *Document) Get(key string) (Entry, bool) {
	if d == nil {
		return Entry{}, false
	}
	i, ok := d.index[key]
	if !ok {
		return Entry{}, false
	}
	return d.entries[i].entry, true
}

// Lookup follows path through nested documents and returns the entry at
// its end.
func (d *Document) Lookup(path ...string) (Entry, bool) {
	e := NewDocument(d)
	for _, key := range path {
		if e.kind != DocumentEntry {
			return Entry{}, false
		}
		next, ok := e.doc.Get(key)
		if !ok {
			return Entry{}, false
		}
		e = next
	}
	return e, true
}

// Len returns the number of keys in d.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Keys returns the keys of d in order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, d.Len())
	for k := range d.All() {
		keys = append(keys, k)
	}
	return keys
}

// All iterates over the entries of d in order.
func (d *Document) All() iter.Seq2[string, Entry] {
	return func(yield func(string, Entry) bool) {
		if d == nil {
			return
		}
		for _, me := range d.entries {
			if !yield(me.key, me.entry) {
				return
			}
		}
	}
}

// Equal reports whether d and o contain equal entries in the same order.
func (d *Document) Equal(o *Document) bool {
	if d.Len() != o.Len() {
		return false
	}
	for i := range d.Len() {
		a, b := d.entries[i], o.entries[i]
		if a.key != b.key || !a.entry.Equal(b.entry) {
			return false
		}
	}
	return true
}
