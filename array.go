package jsondom

import (
	"fmt"
	"iter"
)

// Array mutation and access. All operations fail with ErrInvalidType when
// the receiver is not an array node.

// Append adds child at the end of the array.
func (v *Value) Append(child *Value) error {
	if v.typ != TypeArray {
		return newTypeError("array_append", TypeArray, v.typ)
	}
	if child == nil {
		return newArgumentError("array_append", "child must not be nil")
	}
	v.arrVal = append(v.arrVal, child)
	return nil
}

// Insert places child at the given index, shifting later elements right.
// Index may equal Len, which appends. It fails with ErrIndexOutOfBounds
// outside [0, Len].
func (v *Value) Insert(child *Value, index int) error {
	if v.typ != TypeArray {
		return newTypeError("array_insert", TypeArray, v.typ)
	}
	if child == nil {
		return newArgumentError("array_insert", "child must not be nil")
	}
	if index < 0 || index > len(v.arrVal) {
		return indexError("array_insert", index, len(v.arrVal))
	}
	v.arrVal = append(v.arrVal, nil)
	copy(v.arrVal[index+1:], v.arrVal[index:])
	v.arrVal[index] = child
	return nil
}

// At returns the element at index, failing with ErrIndexOutOfBounds outside
// [0, Len).
func (v *Value) At(index int) (*Value, error) {
	if v.typ != TypeArray {
		return nil, newTypeError("array_at", TypeArray, v.typ)
	}
	if index < 0 || index >= len(v.arrVal) {
		return nil, indexError("array_at", index, len(v.arrVal))
	}
	return v.arrVal[index], nil
}

// RemoveAt deletes the element at index, shifting later elements left.
func (v *Value) RemoveAt(index int) error {
	if v.typ != TypeArray {
		return newTypeError("array_remove", TypeArray, v.typ)
	}
	if index < 0 || index >= len(v.arrVal) {
		return indexError("array_remove", index, len(v.arrVal))
	}
	v.arrVal = append(v.arrVal[:index], v.arrVal[index+1:]...)
	return nil
}

// Clear removes every element or member from an array or object node.
func (v *Value) Clear() error {
	switch v.typ {
	case TypeArray:
		v.arrVal = v.arrVal[:0]
		return nil
	case TypeObject:
		clear(v.objVal)
		return nil
	default:
		return newTypeError("clear", TypeArray, v.typ)
	}
}

// Len returns the number of elements of an array or members of an object,
// and 0 for every other kind.
func (v *Value) Len() int {
	switch v.typ {
	case TypeArray:
		return len(v.arrVal)
	case TypeObject:
		return len(v.objVal)
	default:
		return 0
	}
}

// IsEmpty reports whether Len is 0.
func (v *Value) IsEmpty() bool {
	return v.Len() == 0
}

// Elements iterates the array elements in order. Iterating a non-array
// yields nothing.
func (v *Value) Elements() iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		if v.typ != TypeArray {
			return
		}
		for _, elem := range v.arrVal {
			if !yield(elem) {
				return
			}
		}
	}
}

func indexError(op string, index, size int) *Error {
	return &Error{
		Op:      op,
		Offset:  -1,
		Message: fmt.Sprintf("index %d outside array of size %d", index, size),
		Code:    CodeIndexOutOfBounds,
	}
}
