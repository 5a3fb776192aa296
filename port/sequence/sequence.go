// Package sequence defines the contract between lazily evaluated sequences and their consumers.
//
// # Summary
//
// A Sequence is a re-iterable producer of values.
// Every call to Iterate begins a fresh, independent enumeration from the beginning,
// represented by a Cursor.
// A Cursor is a single-pass, pull-based position within one enumeration:
// nothing is computed until Next is called,
// and the resources that the enumeration acquired are held until the Cursor is closed.
//
// Consumers must always Close a Cursor, even when they stop before exhaustion.
// All does this by construction for range-over-func loops.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Lazy_evaluation
package sequence

import "io"

// Cursor is a single enumeration pass over a Sequence.
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
type Cursor[T any] interface {
	// Next advances the cursor.
	// It reports whether Value holds a newly produced element.
	// When Next returns false, Err tells whether the enumeration ended with a failure.
	Next() bool
	// Value returns the element produced by the last successful Next call.
	// Calling it before the first successful Next or after exhaustion is not meaningful.
	Value() T
	// Err returns the error that stopped the enumeration, if any.
	Err() error
	// Closer releases every resource the enumeration acquired.
	// Close must be safe to call more than once.
	io.Closer
}

// Sequence is a re-iterable source of values.
// Each Iterate call must return a new Cursor that starts from the beginning
// and shares no mutable state with other cursors of the same Sequence.
type Sequence[T any] interface {
	Iterate() Cursor[T]
}

// Func is a Sequence backed by a factory function.
// The function is invoked on every Iterate, so it must build a new Cursor each time.
type Func[T any] func() Cursor[T]

func (fn Func[T]) Iterate() Cursor[T] { return fn() }
