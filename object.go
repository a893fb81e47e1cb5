package jsondom

import (
	"fmt"
	"iter"
	"sort"
)

// Object mutation and access. All operations fail with ErrInvalidType when
// the receiver is not an object node.

// Set inserts or replaces the member under key. Keys are unique: setting an
// existing key replaces its child without growing the object. The key must
// be valid UTF-8.
func (v *Value) Set(key string, child *Value) error {
	if v.typ != TypeObject {
		return newTypeError("object_set", TypeObject, v.typ)
	}
	if child == nil {
		return newArgumentError("object_set", "child must not be nil")
	}
	if !ValidUTF8(key) {
		return &Error{
			Op:      "object_set",
			Offset:  -1,
			Message: "object key is not valid UTF-8",
			Code:    CodeInvalidUTF8,
		}
	}
	v.objVal[key] = child
	return nil
}

// Get returns the member under key, with ok false when the key is absent or
// the node is not an object.
func (v *Value) Get(key string) (*Value, bool) {
	if v.typ != TypeObject {
		return nil, false
	}
	child, ok := v.objVal[key]
	return child, ok
}

// Member returns the member under key, failing with ErrKeyNotFound when it
// is absent.
func (v *Value) Member(key string) (*Value, error) {
	if v.typ != TypeObject {
		return nil, newTypeError("object_get", TypeObject, v.typ)
	}
	child, ok := v.objVal[key]
	if !ok {
		return nil, &Error{
			Op:      "object_get",
			Offset:  -1,
			Message: fmt.Sprintf("no member under key %q", key),
			Code:    CodeKeyNotFound,
		}
	}
	return child, nil
}

// Has reports whether the object holds a member under key.
func (v *Value) Has(key string) bool {
	if v.typ != TypeObject {
		return false
	}
	_, ok := v.objVal[key]
	return ok
}

// Delete removes the member under key. Deleting an absent key is a no-op.
func (v *Value) Delete(key string) error {
	if v.typ != TypeObject {
		return newTypeError("object_delete", TypeObject, v.typ)
	}
	delete(v.objVal, key)
	return nil
}

// Keys returns the member keys in lexicographic order. Member order is a
// property of serialization and iteration only; the model does not preserve
// insertion order.
func (v *Value) Keys() []string {
	if v.typ != TypeObject {
		return nil
	}
	return v.sortedKeys()
}

// Members iterates the key/child pairs in lexicographic key order.
// Iterating a non-object yields nothing.
func (v *Value) Members() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if v.typ != TypeObject {
			return
		}
		for _, key := range v.sortedKeys() {
			if !yield(key, v.objVal[key]) {
				return
			}
		}
	}
}

func (v *Value) sortedKeys() []string {
	keys := make([]string, 0, len(v.objVal))
	for key := range v.objVal {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
