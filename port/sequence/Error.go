package sequence

import "fmt"

// Error returns a Sequence whose every enumeration fails with err before producing any value.
// This can be used when an external resource encounters a non recoverable error while opening the enumeration.
func Error[T any](err error) Sequence[T] {
	return Func[T](func() Cursor[T] { return &errorCursor[T]{err: err} })
}

// Errorf behaves like fmt.Errorf but returns the error wrapped as a Sequence.
func Errorf[T any](format string, a ...any) Sequence[T] {
	return Error[T](fmt.Errorf(format, a...))
}

type errorCursor[T any] struct {
	err error
}

func (c *errorCursor[T]) Close() error { return nil }

func (c *errorCursor[T]) Next() bool { return false }

func (c *errorCursor[T]) Err() error { return c.err }

func (c *errorCursor[T]) Value() T {
	var v T
	return v
}
