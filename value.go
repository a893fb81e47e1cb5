package jsondom

import (
	"math"
	"strings"
)

// Type is the kind tag distinguishing the six Value variants.
type Type int

const (
	TypeNull Type = iota
	TypeBoolean
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "invalid"
	}
}

// numberTolerance absorbs floating round-trip noise in Equals.
const numberTolerance = 1e-12

// Value is one node of a JSON document tree. A node never changes its kind
// after construction; containers mutate only by replacing child references.
//
// Values are shared by pointer and may be aliased into several containers.
// The tree must remain acyclic; see the package documentation.
type Value struct {
	typ     Type
	boolVal bool
	numVal  float64
	strVal  string
	arrVal  []*Value
	objVal  map[string]*Value
}

// NewNull returns a null node.
func NewNull() *Value {
	return &Value{typ: TypeNull}
}

// NewBool returns a boolean node.
func NewBool(v bool) *Value {
	return &Value{typ: TypeBoolean, boolVal: v}
}

// NewNumber returns a number node. JSON numbers carry a single IEEE-754
// double; integral and fractional values are distinguished only when
// serialized.
func NewNumber(v float64) *Value {
	return &Value{typ: TypeNumber, numVal: v}
}

// NewString returns a string node. It fails with ErrInvalidUTF8 when s is
// not valid UTF-8.
func NewString(s string) (*Value, error) {
	if !ValidUTF8(s) {
		return nil, &Error{
			Op:      "new_string",
			Offset:  -1,
			Message: "string payload is not valid UTF-8",
			Code:    CodeInvalidUTF8,
		}
	}
	return &Value{typ: TypeString, strVal: s}, nil
}

// NewArray returns an array node holding the given elements in order.
func NewArray(elems ...*Value) *Value {
	arr := make([]*Value, 0, len(elems))
	arr = append(arr, elems...)
	return &Value{typ: TypeArray, arrVal: arr}
}

// NewObject returns an empty object node.
func NewObject() *Value {
	return &Value{typ: TypeObject, objVal: make(map[string]*Value)}
}

// Type returns the kind tag of the node.
func (v *Value) Type() Type {
	return v.typ
}

// IsNull reports whether the node is a null.
func (v *Value) IsNull() bool { return v.typ == TypeNull }

// IsBool reports whether the node is a boolean.
func (v *Value) IsBool() bool { return v.typ == TypeBoolean }

// IsNumber reports whether the node is a number.
func (v *Value) IsNumber() bool { return v.typ == TypeNumber }

// IsString reports whether the node is a string.
func (v *Value) IsString() bool { return v.typ == TypeString }

// IsArray reports whether the node is an array.
func (v *Value) IsArray() bool { return v.typ == TypeArray }

// IsObject reports whether the node is an object.
func (v *Value) IsObject() bool { return v.typ == TypeObject }

// BoolValue returns the boolean payload, failing with ErrInvalidType on any
// other kind.
func (v *Value) BoolValue() (bool, error) {
	if v.typ != TypeBoolean {
		return false, newTypeError("bool_value", TypeBoolean, v.typ)
	}
	return v.boolVal, nil
}

// NumberValue returns the number payload, failing with ErrInvalidType on
// any other kind.
func (v *Value) NumberValue() (float64, error) {
	if v.typ != TypeNumber {
		return 0, newTypeError("number_value", TypeNumber, v.typ)
	}
	return v.numVal, nil
}

// StringValue returns the string payload, failing with ErrInvalidType on
// any other kind.
func (v *Value) StringValue() (string, error) {
	if v.typ != TypeString {
		return "", newTypeError("string_value", TypeString, v.typ)
	}
	return v.strVal, nil
}

// ArrayValue returns the element slice, failing with ErrInvalidType on any
// other kind. The slice is the node's own backing storage; mutating it
// bypasses the array operations.
func (v *Value) ArrayValue() ([]*Value, error) {
	if v.typ != TypeArray {
		return nil, newTypeError("array_value", TypeArray, v.typ)
	}
	return v.arrVal, nil
}

// ObjectValue returns the member map, failing with ErrInvalidType on any
// other kind. The map is the node's own backing storage; mutating it
// bypasses the object operations.
func (v *Value) ObjectValue() (map[string]*Value, error) {
	if v.typ != TypeObject {
		return nil, newTypeError("object_value", TypeObject, v.typ)
	}
	return v.objVal, nil
}

// String returns a compact, variant-local textual form for debugging. It is
// not the canonical serialization path; use Serialize for that.
func (v *Value) String() string {
	switch v.typ {
	case TypeNull:
		return "null"
	case TypeBoolean:
		if v.boolVal {
			return "true"
		}
		return "false"
	case TypeNumber:
		return formatNumber(v.numVal)
	case TypeString:
		return EscapeString(v.strVal)
	case TypeArray:
		var b strings.Builder
		b.WriteByte('[')
		for i, elem := range v.arrVal {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(elem.String())
		}
		b.WriteByte(']')
		return b.String()
	case TypeObject:
		var b strings.Builder
		b.WriteByte('{')
		for i, key := range v.sortedKeys() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(EscapeString(key))
			b.WriteString(": ")
			b.WriteString(v.objVal[key].String())
		}
		b.WriteByte('}')
		return b.String()
	default:
		return "invalid"
	}
}

// Equals reports deep structural equality. Numbers compare within a small
// fixed tolerance to absorb floating round-trip noise; object members
// compare order-independently.
func (v *Value) Equals(other *Value) bool {
	if other == nil || v.typ != other.typ {
		return false
	}
	switch v.typ {
	case TypeNull:
		return true
	case TypeBoolean:
		return v.boolVal == other.boolVal
	case TypeNumber:
		return math.Abs(v.numVal-other.numVal) < numberTolerance
	case TypeString:
		return v.strVal == other.strVal
	case TypeArray:
		if len(v.arrVal) != len(other.arrVal) {
			return false
		}
		for i, elem := range v.arrVal {
			if !elem.Equals(other.arrVal[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if len(v.objVal) != len(other.objVal) {
			return false
		}
		for key, child := range v.objVal {
			peer, ok := other.objVal[key]
			if !ok || !child.Equals(peer) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of the node. Every child is cloned recursively;
// the result shares no node with the original.
func (v *Value) Clone() *Value {
	switch v.typ {
	case TypeArray:
		arr := make([]*Value, len(v.arrVal))
		for i, elem := range v.arrVal {
			arr[i] = elem.Clone()
		}
		return &Value{typ: TypeArray, arrVal: arr}
	case TypeObject:
		obj := make(map[string]*Value, len(v.objVal))
		for key, child := range v.objVal {
			obj[key] = child.Clone()
		}
		return &Value{typ: TypeObject, objVal: obj}
	default:
		clone := *v
		return &clone
	}
}
