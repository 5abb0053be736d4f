// Package guard wraps methods of disposable objects so that they refuse to run
// once the object has been disposed.
//
// The package does not dispose anything itself. Disposal is signaled elsewhere
// (for example by embedding [Flag]) and the guard only checks the receiver's
// IsDisposed predicate before delegating to the wrapped method.
//
// Two flavours are provided:
//
//   - [Create] works on arbitrary values the way a class decorator would: it
//     takes a method name and a candidate value and returns either the value
//     unchanged or a guard wrapper of the same func type. The receiver is the
//     first parameter of the func, so method expressions such as
//     (*Conn).Query fit naturally.
//   - [Method0], [Method1], [Method2], [Action0] and [Action1] are the typed
//     variants. The receiver must satisfy [Disposable] at compile time.
//
// Example:
//
//	type Conn struct {
//	    guard.Flag
//	}
//
//	func (c *Conn) Query(q string) (int, error) { ... }
//
//	query := guard.Method1("Query", (*Conn).Query)
//	n, err := query(conn, "select 1") // fails with OBJECT_DISPOSED after conn.Dispose()
package guard

import "reflect"

const (
	// ConstructorName is the reserved name of a constructor. It is never wrapped.
	ConstructorName = "constructor"

	// DisposeCheckName is the reserved name of the disposal-check predicate.
	// It is never wrapped so that the disposal state stays queryable after disposal.
	DisposeCheckName = "IsDisposed"
)

// Disposable is implemented by receivers whose methods can be guarded.
type Disposable interface {
	// IsDisposed reports whether the object has been disposed.
	IsDisposed() bool
}

// Create returns candidate unchanged when methodName is reserved or candidate
// is not callable. Otherwise it returns a new func of the same type as
// candidate that checks the receiver (its first argument) for disposal before
// delegating to candidate with the same arguments.
//
// A rejected call returns the disposed error as its last result when the func
// returns an error, and panics with it otherwise. Results and errors of the
// wrapped func are passed through untouched.
//
// Create never fails. Every call on a wrappable candidate produces a distinct wrapper.
func Create(methodName string, candidate any) any {
	if !ShouldWrap(methodName, candidate) {
		return candidate
	}

	return wrapFunc(methodName, reflect.ValueOf(candidate)).Interface()
}
