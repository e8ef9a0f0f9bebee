package document

import (
	"strconv"
	"strings"
)

// segment is one step of a path: a mapping key or a sequence index
type segment struct {
	key     string
	index   int
	isIndex bool
}

// parsePath splits "basics.location.city" or "work[0].highlights[2]" into segments.
// The empty path addresses the root.
func parsePath(path string) ([]segment, error) {
	var segs []segment
	var key strings.Builder
	expectKey := false

	flushKey := func() error {
		if key.Len() == 0 {
			if expectKey {
				return &PathError{Path: path, Message: "empty key"}
			}
			return nil
		}
		segs = append(segs, segment{key: key.String()})
		key.Reset()
		expectKey = false
		return nil
	}

	for i := 0; i < len(path); i++ {
		c := path[i]
		switch c {
		case '.':
			if err := flushKey(); err != nil {
				return nil, err
			}
			if len(segs) == 0 {
				return nil, &PathError{Path: path, Message: "path starts with '.'"}
			}
			expectKey = true
		case '[':
			if expectKey && key.Len() == 0 {
				return nil, &PathError{Path: path, Message: "empty key"}
			}
			if err := flushKey(); err != nil {
				return nil, err
			}
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return nil, &PathError{Path: path, Message: "unterminated index"}
			}
			n, err := strconv.Atoi(path[i+1 : i+end])
			if err != nil || n < 0 {
				return nil, &PathError{Path: path, Message: "invalid index " + path[i+1:i+end]}
			}
			segs = append(segs, segment{index: n, isIndex: true})
			i += end
		case ']':
			return nil, &PathError{Path: path, Message: "unexpected ']'"}
		default:
			key.WriteByte(c)
		}
	}
	if err := flushKey(); err != nil {
		return nil, err
	}
	return segs, nil
}

// Lookup resolves a dotted/bracketed path against root
func Lookup(root any, path string) (any, bool) {
	segs, err := parsePath(path)
	if err != nil {
		return nil, false
	}

	current := root
	for _, seg := range segs {
		if seg.isIndex {
			arr, ok := current.([]any)
			if !ok || seg.index >= len(arr) {
				return nil, false
			}
			current = arr[seg.index]
			continue
		}
		obj, ok := current.(*Object)
		if !ok {
			return nil, false
		}
		current, ok = obj.Get(seg.key)
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// SetPath writes value at path under root. Missing or non-mapping
// intermediate values on the way to a key are replaced by new mappings;
// sequence indices must already exist.
func SetPath(root *Object, path string, value any) error {
	segs, err := parsePath(path)
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		return &PathError{Path: path, Message: "cannot replace the document root"}
	}
	if segs[0].isIndex {
		return &PathError{Path: path, Message: "document root is not a sequence"}
	}

	var current any = root
	for i, seg := range segs {
		last := i == len(segs)-1

		if seg.isIndex {
			arr, ok := current.([]any)
			if !ok {
				return &PathError{Path: path, Message: "not a sequence"}
			}
			if seg.index >= len(arr) {
				return &PathError{Path: path, Message: "index out of range"}
			}
			if last {
				arr[seg.index] = value
				return nil
			}
			next := arr[seg.index]
			if !segs[i+1].isIndex {
				if _, ok := next.(*Object); !ok {
					next = NewObject()
					arr[seg.index] = next
				}
			}
			current = next
			continue
		}

		obj := current.(*Object)
		if last {
			obj.Set(seg.key, value)
			return nil
		}
		if segs[i+1].isIndex {
			next, ok := obj.Get(seg.key)
			if !ok {
				return &PathError{Path: path, Message: "missing sequence " + seg.key}
			}
			current = next
			continue
		}
		current = obj.EnsureObject(seg.key)
	}
	return nil
}

// JoinKey appends a mapping key to a parent path
func JoinKey(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// JoinIndex appends a sequence index to a parent path
func JoinIndex(parent string, index int) string {
	return parent + "[" + strconv.Itoa(index) + "]"
}
