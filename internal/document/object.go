package document

import (
	"encoding/json"
	"strconv"
)

// Object is a JSON mapping that remembers key insertion order.
// Values are *Object, []any, string, json.Number, bool or nil.
//
// The read accessors are nil-safe so lookups can be chained through missing
// sections:
//
//	city := doc.Object("basics").Object("location").String("city")
//
// Set and EnsureObject need a non-nil receiver; Delete on nil is a no-op.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty Object
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// Len returns the number of keys
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Get returns the value stored under key
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set stores value under key. A new key is appended to the key order;
// an existing key keeps its position.
func (o *Object) Set(key string, value any) {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Delete removes key if present
func (o *Object) Delete(key string) {
	if o == nil {
		return
	}
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// String returns the string stored under key, or "" when missing or not a string
func (o *Object) String(key string) string {
	v, _ := o.Get(key)
	s, _ := v.(string)
	return s
}

// Object returns the mapping stored under key, or nil when missing or not a mapping
func (o *Object) Object(key string) *Object {
	v, _ := o.Get(key)
	obj, _ := v.(*Object)
	return obj
}

// Array returns the sequence stored under key, or nil when missing or not a sequence
func (o *Object) Array(key string) []any {
	v, _ := o.Get(key)
	arr, _ := v.([]any)
	return arr
}

// EnsureObject returns the mapping stored under key, replacing a missing or
// non-mapping value with a new empty mapping.
func (o *Object) EnsureObject(key string) *Object {
	if obj := o.Object(key); obj != nil {
		return obj
	}
	obj := NewObject()
	o.Set(key, obj)
	return obj
}

// MarshalJSON encodes the mapping with its keys in insertion order
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	return Marshal(o)
}

// UnmarshalJSON decodes a JSON object, keeping key order
func (o *Object) UnmarshalJSON(data []byte) error {
	v, err := Parse(data)
	if err != nil {
		return err
	}
	obj, ok := v.(*Object)
	if !ok {
		return &ParseError{Message: "expected a JSON object"}
	}
	*o = *obj
	return nil
}

// Text returns the scalar stored under key as text, or "" when missing or
// not a scalar. See ScalarText.
func (o *Object) Text(key string) string {
	v, _ := o.Get(key)
	s, _ := ScalarText(v)
	return s
}

// TextOr is Text, but returns def when key is missing or null
func (o *Object) TextOr(key, def string) string {
	v, ok := o.Get(key)
	if !ok || v == nil {
		return def
	}
	s, _ := ScalarText(v)
	return s
}

// Objects returns the mappings in the sequence stored under key, skipping
// elements of any other kind.
func (o *Object) Objects(key string) []*Object {
	var objs []*Object
	for _, item := range o.Array(key) {
		if obj, ok := item.(*Object); ok {
			objs = append(objs, obj)
		}
	}
	return objs
}

// Texts returns the scalars in the sequence stored under key as text,
// skipping nested mappings and sequences.
func (o *Object) Texts(key string) []string {
	var texts []string
	for _, item := range o.Array(key) {
		if s, ok := ScalarText(item); ok {
			texts = append(texts, s)
		}
	}
	return texts
}

// ScalarText renders a string, json.Number or bool as text. It reports false
// for null, mappings and sequences.
func ScalarText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}
