package foam

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"
	"unicode"
)

var (
	documentType = reflect.TypeFor[*Document]()
	entryType    = reflect.TypeFor[Entry]()
	valueType    = reflect.TypeFor[Value]()
)

type fieldInfo struct {
	name      string
	index     int
	omitEmpty bool
}

// fields lists the exported fields of t that take part in encoding, in
// declaration order. A `foam:"name,omitempty"` tag renames a field or skips
// it when zero; `foam:"-"` leaves it out.
func fields(t reflect.Type) []fieldInfo {
	infos := []fieldInfo{}
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("foam")
		if tag == "-" {
			continue
		}
		name, options, _ := strings.Cut(tag, ",")
		if name == "" {
			name = field.Name
		}
		infos = append(infos, fieldInfo{
			name:      name,
			index:     i,
			omitEmpty: slices.Contains(strings.Split(options, ","), "omitempty"),
		})
	}
	return infos
}

// Encode converts a Go value into a Document.
//
// v must be a struct, a map with string keys, or a pointer to one. Struct
// fields are written in declaration order; map keys are sorted. Booleans,
// integers, floats and strings become scalars; a type implementing
// [encoding.TextMarshaler] becomes a string; slices and arrays of those
// become lists and a [][]string becomes rows; nested structs and maps become
// nested documents. [*Document], [Entry] and [Value] are used as they are.
func Encode(v any) (*Document, error) {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.Type() == documentType {
			return val.Interface().(*Document), nil
		}
		if val.IsNil() {
			return nil, fmt.Errorf("foam: cannot encode nil %s", val.Type())
		}
		val = val.Elem()
	}
	return encodeSection(val)
}

func encodeSection(val reflect.Value) (*Document, error) {
	doc := New()
	switch val.Kind() {
	case reflect.Struct:
		for _, f := range fields(val.Type()) {
			fv := val.Field(f.index)
			if f.omitEmpty && fv.IsZero() {
				continue
			}
			e, ok, err := encodeEntry(fv)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", f.name, err)
			}
			if ok {
				doc.Set(f.name, e)
			}
		}
	case reflect.Map:
		if val.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("foam: unsupported map key type: %s", val.Type().Key())
		}
		keys := val.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		for _, key := range keys {
			e, ok, err := encodeEntry(val.MapIndex(key))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key.String(), err)
			}
			if ok {
				doc.Set(key.String(), e)
			}
		}
	default:
		return nil, fmt.Errorf("foam: unsupported type: %s", val.Type())
	}
	return doc, nil
}

// encodeEntry converts one field or map value. Nil pointers and interfaces
// are left out, which ok reports.
func encodeEntry(val reflect.Value) (Entry, bool, error) {
	if !val.IsValid() {
		return Entry{}, false, nil
	}
	switch val.Type() {
	case documentType:
		if val.IsNil() {
			return Entry{}, false, nil
		}
		return NewDocument(val.Interface().(*Document)), true, nil
	case entryType:
		return val.Interface().(Entry), true, nil
	}

	if v, ok, err := encodeScalar(val); ok || err != nil {
		return NewValue(v), err == nil, err
	}

	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return Entry{}, false, nil
		}
		return encodeEntry(val.Elem())
	case reflect.Slice, reflect.Array:
		if val.Type().Elem().Kind() == reflect.Slice && val.Type().Elem().Elem().Kind() == reflect.String {
			rows := make([][]string, val.Len())
			for i := range val.Len() {
				row := val.Index(i)
				rows[i] = make([]string, row.Len())
				for j := range row.Len() {
					rows[i][j] = row.Index(j).String()
				}
			}
			return NewRows(rows), true, nil
		}
		values := make([]Value, val.Len())
		for i := range val.Len() {
			v, ok, err := encodeScalar(val.Index(i))
			if err != nil {
				return Entry{}, false, err
			}
			if !ok {
				return Entry{}, false, fmt.Errorf("foam: unsupported list element type: %s", val.Index(i).Type())
			}
			values[i] = v
		}
		return NewList(values...), true, nil
	case reflect.Map, reflect.Struct:
		doc, err := encodeSection(val)
		if err != nil {
			return Entry{}, false, err
		}
		return NewDocument(doc), true, nil
	}
	return Entry{}, false, fmt.Errorf("foam: unsupported type: %s", val.Type())
}

// encodeScalar converts val if it is a scalar; ok is false otherwise.
func encodeScalar(val reflect.Value) (Value, bool, error) {
	if val.Type() == valueType {
		return val.Interface().(Value), true, nil
	}
	if m, ok := val.Interface().(encoding.TextMarshaler); ok {
		if val.Kind() == reflect.Pointer && val.IsNil() {
			return Value{}, false, nil
		}
		text, err := m.MarshalText()
		if err != nil {
			return Value{}, false, err
		}
		return Str(string(text)), true, nil
	}
	switch val.Kind() {
	case reflect.Bool:
		return Bool(val.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(val.Int()), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := val.Uint()
		if u > math.MaxInt64 {
			return Value{}, false, fmt.Errorf("foam: %s %d overflows int64", val.Type(), u)
		}
		return Int(int64(u)), true, nil
	case reflect.Float32, reflect.Float64:
		return Float(val.Float()), true, nil
	case reflect.String:
		return Str(val.String()), true, nil
	}
	return Value{}, false, nil
}

// Decode stores the contents of doc in the value pointed to by v.
// v should be a non-nil pointer to a struct, a map with string keys, or an
// interface.
//
// For struct fields Decode looks for the name in a `foam:"name"` tag, then
// uses the field name itself or its snake_case version. Keys that match no
// field are an error.
//
// Integers accept integer values, floats accept integer or float values, and
// a type implementing [encoding.TextUnmarshaler] accepts the text of any
// scalar. When decoding into an interface, documents become map[string]any,
// lists []any, rows [][]string, and scalars bool, int64, float64 or string.
func Decode(doc *Document, v any) error {
	value := reflect.ValueOf(v)
	if value.Kind() != reflect.Pointer || value.IsNil() {
		return fmt.Errorf("invalid target, must be a non-nil pointer")
	}
	return decodeEntry(NewDocument(doc), value.Elem(), "")
}

func decodeEntry(e Entry, v reflect.Value, path string) error {
	switch v.Type() {
	case entryType:
		v.Set(reflect.ValueOf(e))
		return nil
	case documentType:
		doc, err := e.Document()
		if err != nil {
			return pathError(path, err)
		}
		v.Set(reflect.ValueOf(doc))
		return nil
	}

	if e.kind == ValueEntry {
		return pathError(path, setScalar(e.value, v))
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return decodeEntry(e, v.Elem(), path)
	case reflect.Interface:
		if v.NumMethod() != 0 {
			return pathError(path, fmt.Errorf("unsupported type: %s", v.Type()))
		}
		v.Set(reflect.ValueOf(natural(e)))
		return nil
	case reflect.Struct:
		doc, err := e.Document()
		if err != nil {
			return pathError(path, err)
		}
		return decodeStruct(doc, v, path)
	case reflect.Map:
		doc, err := e.Document()
		if err != nil {
			return pathError(path, err)
		}
		return decodeMap(doc, v, path)
	case reflect.Slice, reflect.Array:
		return decodeList(e, v, path)
	}
	return pathError(path, fmt.Errorf("cannot decode %s into %s", e.kind, v.Type()))
}

func pathError(path string, err error) error {
	if err == nil || path == "" {
		return err
	}
	return fmt.Errorf("%s: %w", path, err)
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "/" + key
}

func decodeStruct(doc *Document, v reflect.Value, path string) error {
	fieldMap := map[string]reflect.Value{}
	for _, f := range fields(v.Type()) {
		fieldMap[f.name] = v.Field(f.index)
		if _, tagged := v.Type().Field(f.index).Tag.Lookup("foam"); !tagged {
			fieldMap[toSnakeCase(f.name)] = v.Field(f.index)
		}
	}
	for key, e := range doc.All() {
		field, ok := fieldMap[key]
		if !ok {
			return pathError(path, fmt.Errorf("unknown field %s", key))
		}
		if err := decodeEntry(e, field, join(path, key)); err != nil {
			return err
		}
	}
	return nil
}

func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			result.WriteRune('_')
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}

func decodeMap(doc *Document, v reflect.Value, path string) error {
	if v.Type().Key().Kind() != reflect.String {
		return pathError(path, fmt.Errorf("unsupported map key type: %s", v.Type().Key()))
	}
	if v.IsNil() {
		v.Set(reflect.MakeMap(v.Type()))
	}
	for key, e := range doc.All() {
		elem := reflect.New(v.Type().Elem()).Elem()
		if err := decodeEntry(e, elem, join(path, key)); err != nil {
			return err
		}
		v.SetMapIndex(reflect.ValueOf(key).Convert(v.Type().Key()), elem)
	}
	return nil
}

func decodeList(e Entry, v reflect.Value, path string) error {
	var items []Entry
	switch e.kind {
	case ListEntry:
		for _, value := range e.list {
			items = append(items, NewValue(value))
		}
	case RowsEntry:
		for _, row := range e.rows {
			words := make([]Value, len(row))
			for i, w := range row {
				words[i] = Str(w)
			}
			items = append(items, NewList(words...))
		}
	default:
		return pathError(path, fmt.Errorf("cannot decode %s into %s", e.kind, v.Type()))
	}

	if v.Kind() == reflect.Array {
		if len(items) != v.Len() {
			return pathError(path, fmt.Errorf("expected %d elements, got %d", v.Len(), len(items)))
		}
	} else {
		v.Set(reflect.MakeSlice(v.Type(), len(items), len(items)))
	}
	for i, item := range items {
		if err := decodeEntry(item, v.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func setScalar(value Value, v reflect.Value) error {
	if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(value.String()))
	}
	if v.Type() == valueType {
		v.Set(reflect.ValueOf(value))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		s, err := value.AsString()
		if err != nil {
			return err
		}
		v.SetString(s)
	case reflect.Bool:
		b, err := value.AsBool()
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := value.AsInt()
		if err != nil {
			return err
		}
		if v.OverflowInt(i) {
			return fmt.Errorf("invalid %s: %v", v.Type(), i)
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		i, err := value.AsInt()
		if err != nil {
			return err
		}
		if i < 0 || v.OverflowUint(uint64(i)) {
			return fmt.Errorf("invalid %s: %v", v.Type(), i)
		}
		v.SetUint(uint64(i))
	case reflect.Float32, reflect.Float64:
		f, err := value.AsFloat()
		if err != nil {
			return err
		}
		if v.OverflowFloat(f) {
			return fmt.Errorf("invalid %s: %v", v.Type(), f)
		}
		v.SetFloat(f)
	case reflect.Pointer:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return setScalar(value, v.Elem())
	case reflect.Interface:
		if v.NumMethod() != 0 {
			return fmt.Errorf("unsupported type: %s", v.Type())
		}
		v.Set(reflect.ValueOf(natural(NewValue(value))))
	default:
		return fmt.Errorf("cannot decode %s into %s", value.kind, v.Type())
	}
	return nil
}

// natural converts e to the plain Go value used for interface targets.
func natural(e Entry) any {
	switch e.kind {
	case ListEntry:
		items := make([]any, len(e.list))
		for i, v := range e.list {
			items[i] = natural(NewValue(v))
		}
		return items
	case RowsEntry:
		return e.rows
	case DocumentEntry:
		m := make(map[string]any, e.doc.Len())
		for k, child := range e.doc.All() {
			m[k] = natural(child)
		}
		return m
	}
	switch v := e.value; v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	default:
		return v.s
	}
}
