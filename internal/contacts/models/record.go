package models

import (
	"encoding/json"
	"strings"
)

// Record is a JSON-like object: string keys mapped to scalars, slices or
// nested objects. Registry identities and raw contact payloads are Records.
type Record map[string]any

// Get resolves a dotted path. A literal key equal to the whole path wins
// over nested traversal.
func (r Record) Get(path string) (any, bool) {
	if r == nil {
		return nil, false
	}
	if v, ok := r[path]; ok {
		return v, true
	}
	if !strings.Contains(path, ".") {
		return nil, false
	}
	var current any = r
	for _, segment := range strings.Split(path, ".") {
		obj, ok := asObject(current)
		if !ok {
			return nil, false
		}
		current, ok = obj[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Set assigns v at a dotted path, creating intermediate objects and
// replacing any non-object value found on the way.
func (r Record) Set(path string, v any) {
	head, rest, nested := strings.Cut(path, ".")
	if !nested {
		r[path] = v
		return
	}
	if child, ok := asObject(r[head]); ok {
		Record(child).Set(rest, v)
		return
	}
	child := Record{}
	r[head] = child
	child.Set(rest, v)
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch typed := v.(type) {
	case Record:
		return typed.Clone()
	case map[string]any:
		return Record(typed).Clone()
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), typed...)
	default:
		return v
	}
}

func asObject(v any) (map[string]any, bool) {
	switch typed := v.(type) {
	case Record:
		return typed, typed != nil
	case map[string]any:
		return typed, typed != nil
	default:
		return nil, false
	}
}

// objectView is asObject for comparisons: a typed-nil object reads as empty.
func objectView(v any) (map[string]any, bool) {
	switch typed := v.(type) {
	case Record:
		return typed, true
	case map[string]any:
		return typed, true
	default:
		return nil, false
	}
}

// Object returns v as a map when it is a Record or map[string]any.
func Object(v any) (Record, bool) {
	obj, ok := asObject(v)
	return Record(obj), ok
}

// Equal reports structural equality of two JSON-like values. Kinds must match
// exactly: 1 (int) and 1.0 (float64) differ, and unsupported kinds never compare equal.
// A typed-nil object equals an empty one.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if ao, ok := objectView(a); ok {
		bo, ok := objectView(b)
		if !ok || len(ao) != len(bo) {
			return false
		}
		for k, av := range ao {
			bv, present := bo[k]
			if !present || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case json.Number:
		bv, ok := b.(json.Number)
		return ok && av == bv
	case []string:
		bv, ok := b.([]string)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
