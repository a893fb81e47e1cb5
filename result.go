package jsondom

// Result carries either a value or one error code, never both. The zero
// value is a successful Result holding the zero value of T.
//
// Result is the code-level view of an operation's outcome used by handle
// oriented wrappers; most Go callers will prefer the (T, error) forms.
type Result[T any] struct {
	value T
	code  Code
}

// Ok returns a successful Result holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail returns a failed Result carrying code. Passing CodeSuccess is a
// caller mistake and is coerced to CodeUnknownError so the Result still
// reports failure.
func Fail[T any](code Code) Result[T] {
	if code == CodeSuccess {
		code = CodeUnknownError
	}
	return Result[T]{code: code}
}

// IsOk reports whether the Result holds a value.
func (r Result[T]) IsOk() bool {
	return r.code == CodeSuccess
}

// Value returns the held value, or the zero value of T when the Result is
// a failure.
func (r Result[T]) Value() T {
	return r.value
}

// Code returns the carried error kind. CodeSuccess when the Result holds
// a value.
func (r Result[T]) Code() Code {
	return r.code
}

// Err returns the sentinel error for the carried code, or nil on success.
func (r Result[T]) Err() error {
	return r.code.sentinel()
}

// Unpack converts the Result to the conventional (value, error) pair.
func (r Result[T]) Unpack() (T, error) {
	return r.value, r.code.sentinel()
}

// MapResult applies f to the held value, passing a failure through with its
// code unchanged.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	if !r.IsOk() {
		return Fail[U](r.code)
	}
	return Ok(f(r.value))
}

// AndThen chains a fallible step onto the Result, passing a failure through
// with its code unchanged.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if !r.IsOk() {
		return Fail[U](r.code)
	}
	return f(r.value)
}
