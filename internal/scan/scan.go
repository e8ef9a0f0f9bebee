// Package scan finds empty fields in a résumé document.
package scan

import (
	"github.com/jonathan/resume-helper/internal/document"
)

// Kind classifies an empty field
type Kind int

const (
	// EmptyString is a string leaf equal to ""
	EmptyString Kind = iota
	// EmptyArray is a sequence with zero elements
	EmptyArray
)

func (k Kind) String() string {
	switch k {
	case EmptyString:
		return "empty string"
	case EmptyArray:
		return "empty array"
	default:
		return "unknown"
	}
}

// Field is one empty field and the path that addresses it
type Field struct {
	Path string
	Kind Kind
}

// String renders the field the way the check report lists it
func (f Field) String() string {
	path := f.Path
	if path == "" {
		path = "(root)"
	}
	if f.Kind == EmptyArray {
		return path + " (empty array)"
	}
	return path
}

// EmptyFields walks root and returns every empty string and empty sequence,
// visiting mapping keys in insertion order and sequence elements by index.
// Numbers, booleans and null are never empty.
func EmptyFields(root any) []Field {
	var fields []Field
	walk(root, "", &fields)
	return fields
}

func walk(node any, path string, fields *[]Field) {
	switch v := node.(type) {
	case string:
		if v == "" {
			*fields = append(*fields, Field{Path: path, Kind: EmptyString})
		}
	case []any:
		if len(v) == 0 {
			*fields = append(*fields, Field{Path: path, Kind: EmptyArray})
			return
		}
		for i, item := range v {
			walk(item, document.JoinIndex(path, i), fields)
		}
	case *document.Object:
		for _, key := range v.Keys() {
			value, _ := v.Get(key)
			walk(value, document.JoinKey(path, key), fields)
		}
	}
}

// Paths returns the report form of each field
func Paths(fields []Field) []string {
	paths := make([]string, len(fields))
	for i, f := range fields {
		paths[i] = f.String()
	}
	return paths
}
