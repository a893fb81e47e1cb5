package jsondom

import (
	"errors"
	"fmt"
)

// Code identifies one of the closed set of error kinds used across the
// package. The zero value is CodeSuccess.
type Code int

const (
	CodeSuccess Code = iota
	CodeMemoryAllocationFailed
	CodeInvalidUTF8
	CodeSyntaxError
	CodeInvalidType
	CodeKeyNotFound
	CodeIndexOutOfBounds
	CodeInvalidArgument
	CodeParseError
	CodeSerializationError
	CodeNotImplemented
	CodeUnknownError
)

// Message returns the fixed human-readable message for the code.
// It is total over the enumeration; unrecognized values map to the
// UnknownError message.
func (c Code) Message() string {
	switch c {
	case CodeSuccess:
		return "Success"
	case CodeMemoryAllocationFailed:
		return "Memory allocation failed"
	case CodeInvalidUTF8:
		return "Invalid UTF-8 sequence"
	case CodeSyntaxError:
		return "JSON syntax error"
	case CodeInvalidType:
		return "Invalid type"
	case CodeKeyNotFound:
		return "Key not found"
	case CodeIndexOutOfBounds:
		return "Index out of bounds"
	case CodeInvalidArgument:
		return "Invalid argument"
	case CodeParseError:
		return "Parse error"
	case CodeSerializationError:
		return "Serialization error"
	case CodeNotImplemented:
		return "Not implemented"
	case CodeUnknownError:
		return "Unknown error"
	default:
		return "Unknown error"
	}
}

// String implements fmt.Stringer.
func (c Code) String() string {
	return c.Message()
}

// Sentinel errors, one per failure kind, for errors.Is matching.
var (
	ErrMemoryAllocationFailed = errors.New("memory allocation failed")
	ErrInvalidUTF8            = errors.New("invalid UTF-8 sequence")
	ErrSyntaxError            = errors.New("JSON syntax error")
	ErrInvalidType            = errors.New("invalid type")
	ErrKeyNotFound            = errors.New("key not found")
	ErrIndexOutOfBounds       = errors.New("index out of bounds")
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrParseError             = errors.New("parse error")
	ErrSerializationError     = errors.New("serialization error")
	ErrNotImplemented         = errors.New("not implemented")
	ErrUnknownError           = errors.New("unknown error")
)

// sentinel maps a code to its package sentinel error. CodeSuccess maps to nil.
func (c Code) sentinel() error {
	switch c {
	case CodeSuccess:
		return nil
	case CodeMemoryAllocationFailed:
		return ErrMemoryAllocationFailed
	case CodeInvalidUTF8:
		return ErrInvalidUTF8
	case CodeSyntaxError:
		return ErrSyntaxError
	case CodeInvalidType:
		return ErrInvalidType
	case CodeKeyNotFound:
		return ErrKeyNotFound
	case CodeIndexOutOfBounds:
		return ErrIndexOutOfBounds
	case CodeInvalidArgument:
		return ErrInvalidArgument
	case CodeParseError:
		return ErrParseError
	case CodeSerializationError:
		return ErrSerializationError
	case CodeNotImplemented:
		return ErrNotImplemented
	default:
		return ErrUnknownError
	}
}

// Error is a structured error with operation context. Every failure produced
// by this package is an *Error so callers can recover the error kind and,
// for parse failures, the byte offset of the first error.
type Error struct {
	Op      string // operation that failed
	Offset  int    // 0-based byte offset into the input, or -1 when not positional
	Message string // human-readable detail
	Code    Code   // error kind
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("jsondom %s failed at offset %d: %s", e.Op, e.Offset, e.Message)
	}
	return fmt.Sprintf("jsondom %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the sentinel error for the carried code, enabling
// errors.Is(err, ErrInvalidType) style matching.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
}

// CodeOf reports the error kind carried by err. A nil error is CodeSuccess;
// an error not produced by this package is CodeUnknownError.
func CodeOf(err error) Code {
	if err == nil {
		return CodeSuccess
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	for c := CodeMemoryAllocationFailed; c <= CodeNotImplemented; c++ {
		if errors.Is(err, c.sentinel()) {
			return c
		}
	}
	return CodeUnknownError
}

// newTypeError reports a typed accessor or container operation applied to the
// wrong kind of value.
func newTypeError(op string, want, got Type) *Error {
	return &Error{
		Op:      op,
		Offset:  -1,
		Message: fmt.Sprintf("value is %s, not %s", got, want),
		Code:    CodeInvalidType,
	}
}

// newArgumentError reports a violated call precondition.
func newArgumentError(op, message string) *Error {
	return &Error{Op: op, Offset: -1, Message: message, Code: CodeInvalidArgument}
}
