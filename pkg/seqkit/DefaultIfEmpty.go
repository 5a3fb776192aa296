package seqkit

import (
	"context"
	"fmt"

	"go.llib.dev/frameless/pkg/logger"

	"github.com/adamluzsi/lazyseq/pkg/lazycursor"
	"github.com/adamluzsi/lazyseq/port/sequence"
)

// DefaultIfEmpty returns a Sequence that yields the elements of source unchanged,
// or exactly one element, defaultValue, when source turns out to be empty.
//
// The decision is made during enumeration, never at call time,
// except for a non-empty sequence.Slice, which is returned as is,
// since it can never need the default.
// A nil source is rejected immediately with ErrInvalidArgument.
//
// Every enumeration of the result enumerates source again from the beginning.
// Errors of source are reported unchanged by the Cursor's Err,
// after the cursor already closed what it opened from source.
func DefaultIfEmpty[T any](source sequence.Sequence[T], defaultValue T, opts ...lazycursor.Option) (sequence.Sequence[T], error) {
	if isNil(source) {
		return nil, fmt.Errorf("%w: source sequence is nil", ErrInvalidArgument)
	}
	if s, ok := source.(sequence.Slice[T]); ok && 0 < s.Len() {
		return source, nil
	}
	return lazycursor.Seq(func() lazycursor.Transitions[T] {
		return &defaultIfEmpty[T]{Source: source, Default: defaultValue}
	}, opts...), nil
}

// DefaultIfEmptyZero is DefaultIfEmpty with the zero value of T as the default.
func DefaultIfEmptyZero[T any](source sequence.Sequence[T], opts ...lazycursor.Option) (sequence.Sequence[T], error) {
	var zero T
	return DefaultIfEmpty(source, zero, opts...)
}

func isNil[T any](source sequence.Sequence[T]) bool {
	switch src := source.(type) {
	case nil:
		return true
	case sequence.Func[T]:
		return src == nil
	default:
		return false
	}
}

type defaultIfEmpty[T any] struct {
	Source  sequence.Sequence[T]
	Default T

	inner sequence.Cursor[T]
}

func (d *defaultIfEmpty[T]) Start(ctx context.Context) (lazycursor.State[T], error) {
	d.inner = d.Source.Iterate()
	if d.inner.Next() {
		return lazycursor.Active[T]{Value: d.inner.Value()}, nil
	}
	if err := d.inner.Err(); err != nil {
		return nil, err
	}
	logger.Debug(ctx, "source sequence is empty, yielding the default value")
	return lazycursor.Active[T]{Value: d.Default, Last: true}, nil
}

func (d *defaultIfEmpty[T]) Resume(context.Context) (lazycursor.State[T], error) {
	if d.inner.Next() {
		return lazycursor.Active[T]{Value: d.inner.Value()}, nil
	}
	if err := d.inner.Err(); err != nil {
		return nil, err
	}
	return lazycursor.Exhausted[T]{}, nil
}

func (d *defaultIfEmpty[T]) Release() error {
	if d.inner == nil {
		return nil
	}
	inner := d.inner
	d.inner = nil
	return inner.Close()
}
