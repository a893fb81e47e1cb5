package jsondom

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// SerializeConfig controls serializer output formatting.
type SerializeConfig struct {
	Pretty bool // one member per line with indentation
	Indent int  // spaces per nesting level in pretty mode
}

// DefaultSerializeConfig returns the compact configuration.
func DefaultSerializeConfig() *SerializeConfig {
	return &SerializeConfig{Pretty: false, Indent: 2}
}

// Serialize renders the tree compactly: elements and members separated by
// ", ", object keys followed by ": ", no spaces inside brackets.
func Serialize(v *Value) (string, error) {
	return SerializeWithConfig(v, DefaultSerializeConfig())
}

// SerializePretty renders the tree with one member per line, each nesting
// level indented by indent spaces.
func SerializePretty(v *Value, indent int) (string, error) {
	return SerializeWithConfig(v, &SerializeConfig{Pretty: true, Indent: indent})
}

// SerializeWithConfig renders the tree under the given configuration.
func SerializeWithConfig(v *Value, config *SerializeConfig) (string, error) {
	var b strings.Builder
	if err := Write(&b, v, config); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Write streams the serialized tree to w, for outputs too large to hold as
// one string. Sink failures surface as ErrSerializationError.
func Write(w io.Writer, v *Value, config *SerializeConfig) error {
	if v == nil {
		return newArgumentError("serialize", "value must not be nil")
	}
	if config == nil {
		config = DefaultSerializeConfig()
	}
	if config.Indent < 0 {
		return newArgumentError("serialize", "indent must not be negative")
	}

	s := &serializer{w: w, config: config}
	s.writeValue(v, 0)
	if s.err != nil {
		return s.err
	}
	return nil
}

// serializer walks the tree writing to a sink, holding the first error
// sticky so the walk can stay unconditional.
type serializer struct {
	w      io.Writer
	config *SerializeConfig
	err    error
}

func (s *serializer) writeString(text string) {
	if s.err != nil {
		return
	}
	if _, err := io.WriteString(s.w, text); err != nil {
		s.err = &Error{
			Op:      "serialize",
			Offset:  -1,
			Message: fmt.Sprintf("write to sink failed: %v", err),
			Code:    CodeSerializationError,
		}
	}
}

func (s *serializer) writeValue(v *Value, curIndent int) {
	switch v.typ {
	case TypeNull:
		s.writeString("null")
	case TypeBoolean:
		if v.boolVal {
			s.writeString("true")
		} else {
			s.writeString("false")
		}
	case TypeNumber:
		s.writeNumber(v.numVal)
	case TypeString:
		s.writeString(EscapeString(v.strVal))
	case TypeArray:
		s.writeArray(v, curIndent)
	case TypeObject:
		s.writeObject(v, curIndent)
	}
}

func (s *serializer) writeNumber(f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if s.err == nil {
			s.err = &Error{
				Op:      "serialize",
				Offset:  -1,
				Message: fmt.Sprintf("number %v has no JSON representation", f),
				Code:    CodeSerializationError,
			}
		}
		return
	}
	s.writeString(formatNumber(f))
}

func (s *serializer) writeArray(v *Value, curIndent int) {
	if len(v.arrVal) == 0 {
		s.writeString("[]")
		return
	}

	s.writeString("[")
	for i, elem := range v.arrVal {
		if i > 0 {
			if s.config.Pretty {
				s.writeString(",")
			} else {
				s.writeString(", ")
			}
		}
		s.writeIndent(curIndent + s.config.Indent)
		s.writeValue(elem, curIndent+s.config.Indent)
	}
	s.writeIndent(curIndent)
	s.writeString("]")
}

func (s *serializer) writeObject(v *Value, curIndent int) {
	if len(v.objVal) == 0 {
		s.writeString("{}")
		return
	}

	s.writeString("{")
	for i, key := range v.sortedKeys() {
		if i > 0 {
			if s.config.Pretty {
				s.writeString(",")
			} else {
				s.writeString(", ")
			}
		}
		s.writeIndent(curIndent + s.config.Indent)
		s.writeString(EscapeString(key))
		if s.config.Pretty {
			s.writeString(" : ")
		} else {
			s.writeString(": ")
		}
		s.writeValue(v.objVal[key], curIndent+s.config.Indent)
	}
	s.writeIndent(curIndent)
	s.writeString("}")
}

// writeIndent emits the newline plus indentation that precedes a member or
// a closing bracket in pretty mode. Compact mode writes nothing.
func (s *serializer) writeIndent(width int) {
	if !s.config.Pretty {
		return
	}
	s.writeString("\n")
	if width > 0 {
		s.writeString(strings.Repeat(" ", width))
	}
}

// formatNumber renders an integral double as a plain integer literal and
// everything else in Go's shortest round-trip form. Shared by the
// serializer and the debug String form.
func formatNumber(f float64) string {
	if math.Floor(f) == f && f >= -9.007199254740992e15 && f <= 9.007199254740992e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
