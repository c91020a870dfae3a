package domain

import (
	"encoding/json"
	"strconv"
)

// Shape is the structural classification of a node, independent of BEM identity.
type Shape uint8

const (
	ShapePrimitive Shape = iota
	ShapeList
	ShapeObject
)

// ShapeOf returns the structural shape of n. Nil and Absent are primitives.
func ShapeOf(n Node) Shape {
	switch n.(type) {
	case List:
		return ShapeList
	case *Component:
		return ShapeObject
	default:
		return ShapePrimitive
	}
}

// Class is the build-time classification of a node.
type Class uint8

const (
	ClassScalar Class = iota // Returned unchanged
	ClassList                // Members built independently
	ClassEntity              // Component declaring block or elem: handlers run
	ClassObject              // Component without identity: only content is built
)

// Classify returns the build class of n.
func Classify(n Node) Class {
	switch v := n.(type) {
	case List:
		return ClassList
	case *Component:
		if v == nil {
			return ClassScalar
		}
		if v.HasIdentity() {
			return ClassEntity
		}
		return ClassObject
	default:
		return ClassScalar
	}
}

// Merge copies every key of src into dst, overwriting conflicts, and returns dst.
// A nil dst is allocated when src has entries.
func Merge(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Join concatenates nodes into a flat list: lists are spliced one level deep,
// any other node is appended as a single member. Nil and Absent parts are skipped,
// so joining with unset content yields only the other parts.
func Join(parts ...Node) List {
	out := List{}
	for _, p := range parts {
		switch v := p.(type) {
		case nil, Absent:
		case List:
			for _, m := range v {
				if m == nil {
					continue
				}
				out = append(out, m)
			}
		default:
			out = append(out, v)
		}
	}
	return out
}

// ScalarString renders a primitive wire value as a mod/attr string.
// Booleans become "true"/"false"; numbers keep their shortest decimal form.
func ScalarString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case bool:
		return strconv.FormatBool(s), true
	case json.Number:
		return s.String(), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case uint64:
		return strconv.FormatUint(s, 10), true
	default:
		return "", false
	}
}
