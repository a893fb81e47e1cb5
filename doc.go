// Package jsondom provides an in-memory JSON document model with a
// strict recursive-descent parser and a configurable serializer.
//
// The package centers on the Value type: a tagged tree node that is one of
// the six JSON kinds (null, boolean, number, string, array, object). Values
// are built either programmatically through the New* constructors or by
// parsing JSON text, and are rendered back to text by the serializer.
//
// # Basic Usage
//
// Parsing and typed access:
//
//	doc, err := jsondom.Parse(`{"name": "John", "age": 30}`)
//	name, ok := doc.Get("name")
//
// Building documents:
//
//	obj := jsondom.NewObject()
//	obj.Set("active", jsondom.NewBool(true))
//	text, err := jsondom.Serialize(obj)
//
// Pretty printing:
//
//	text, err := jsondom.SerializePretty(doc, 4)
//
// # Data Model
//
// Nodes are shared by pointer. The same node may be referenced from several
// container slots; this is safe as long as shared subtrees are treated as
// read-only. The model assumes the tree is acyclic: introducing a cycle is a
// caller error, and Equals, Clone, and serialization do not terminate on a
// cyclic graph.
//
// String payloads are always valid UTF-8 after construction. NewString and
// object key insertion validate their input and fail with ErrInvalidUTF8 on
// malformed sequences.
//
// # Error Handling
//
// Failures are reported as *Error values carrying one of the closed set of
// Code kinds. Sentinel errors (ErrSyntaxError, ErrInvalidType, ...) support
// errors.Is matching, and Code.Message is a total lookup from kind to a
// fixed human-readable message.
//
// # Concurrency
//
// The package performs no synchronization. A Value tree may be read from
// multiple goroutines only if no goroutine mutates it. Parser and serializer
// recursion depth is bounded only by the goroutine stack.
package jsondom
