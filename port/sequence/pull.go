package sequence

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
)

// All adapts a Sequence into a range-over-func iterator.
// The Cursor is closed when the loop finishes, breaks early, or panics,
// so the enumeration's resources are released by construction.
// A failed enumeration yields a final zero value together with the error.
//
//	for v, err := range sequence.All(seq) {
//		if err != nil {
//			return err
//		}
//		_ = v
//	}
func All[T any](seq Sequence[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		c := seq.Iterate()
		defer c.Close()
		for c.Next() {
			if !yield(c.Value(), nil) {
				return
			}
		}
		if err := errorkit.Merge(c.Err(), c.Close()); err != nil {
			var zero T
			yield(zero, err)
		}
	}
}

// FromSeq turns an iter.Seq into a Sequence.
// Every Iterate pulls from a new run of seq, so the Sequence is as restartable as seq itself.
func FromSeq[T any](seq iter.Seq[T]) Sequence[T] {
	return Func[T](func() Cursor[T] {
		next, stop := iter.Pull(seq)
		return &pullCursor[T]{next: func() (T, error, bool) {
			v, ok := next()
			return v, nil, ok
		}, stop: stop}
	})
}

// FromErrSeq turns an iter.Seq2[T, error] into a Sequence.
// The first non-nil error stops the enumeration and is reported by Cursor.Err.
func FromErrSeq[T any](seq iter.Seq2[T, error]) Sequence[T] {
	return Func[T](func() Cursor[T] {
		next, stop := iter.Pull2(seq)
		return &pullCursor[T]{next: next, stop: stop}
	})
}

type pullCursor[T any] struct {
	next func() (T, error, bool)
	stop func()
	val  T
	err  error
	done bool
}

func (c *pullCursor[T]) Next() bool {
	if c.done || c.err != nil {
		return false
	}
	v, err, ok := c.next()
	if !ok {
		return false
	}
	if err != nil {
		c.err = err
		return false
	}
	c.val = v
	return true
}

func (c *pullCursor[T]) Close() error {
	if c.done {
		return nil
	}
	c.done = true
	c.stop()
	return nil
}

func (c *pullCursor[T]) Err() error {
	return c.err
}

func (c *pullCursor[T]) Value() T {
	return c.val
}

// Collect enumerates the Sequence once and returns its values.
func Collect[T any](seq Sequence[T]) ([]T, error) {
	return CollectCursor(seq.Iterate())
}

// CollectCursor drains the Cursor and closes it.
func CollectCursor[T any](c Cursor[T]) (vs []T, rErr error) {
	if c == nil {
		return nil, nil
	}
	defer func() { rErr = errorkit.Merge(rErr, c.Close()) }()
	vs = make([]T, 0)
	for c.Next() {
		vs = append(vs, c.Value())
	}
	return vs, c.Err()
}
