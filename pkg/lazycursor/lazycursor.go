// Package lazycursor implements the deferred execution machinery that sequence transforms build on.
//
// A Cursor owns the Fresh → Active → Exhausted state machine,
// the release of acquired resources on every exit path,
// and cloning through the factory that built it.
// A transform only describes what happens on each transition by implementing Transitions.
package lazycursor

import (
	"context"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"github.com/adamluzsi/lazyseq/port/sequence"
)

// Transitions is the transform specific part of a Cursor.
type Transitions[T any] interface {
	// Start is called by the first Next.
	// It acquires the resources the enumeration needs and tries to produce the first value.
	// Any state other than Active ends the enumeration.
	// ctx is the context the cursor was configured with.
	Start(ctx context.Context) (State[T], error)
	// Resume is called by every further Next while the cursor is Active.
	Resume(ctx context.Context) (State[T], error)
	// Release frees whatever Start and Resume acquired.
	// The Cursor calls it exactly once, even when Start was never called.
	Release() error
}

// New creates a Cursor in the Fresh state.
// mk must only capture immutable configuration,
// since Clone calls it again to build an independent cursor.
func New[T any](mk func() Transitions[T], opts ...Option) *Cursor[T] {
	return &Cursor[T]{
		factory:     mk,
		options:     opts,
		config:      toConfig(opts),
		transitions: mk(),
		state:       Fresh[T]{},
	}
}

// Seq returns a Sequence that builds a new Cursor on every Iterate.
func Seq[T any](mk func() Transitions[T], opts ...Option) sequence.Sequence[T] {
	return sequence.Func[T](func() sequence.Cursor[T] {
		return New(mk, opts...)
	})
}

var _ sequence.Cursor[any] = (*Cursor[any])(nil)

// Cursor is a single-pass, resource owning enumeration.
// It is not safe for concurrent use.
type Cursor[T any] struct {
	factory func() Transitions[T]
	options []Option
	config  config

	transitions Transitions[T]
	state       State[T]
	released    bool
	err         error
}

// Next drives one state transition and reports whether Value holds a new element.
// When the enumeration ends, with or without an error,
// the resources are released before Next returns false.
func (c *Cursor[T]) Next() bool {
	var (
		next State[T]
		err  error
	)
	switch st := c.state.(type) {
	case Fresh[T]:
		next, err = c.transitions.Start(c.config.Context)
	case Active[T]:
		if st.Last {
			c.exhaust()
			return false
		}
		next, err = c.transitions.Resume(c.config.Context)
	default:
		return false
	}
	if err != nil {
		c.fail(err)
		return false
	}
	active, ok := next.(Active[T])
	if !ok {
		c.exhaust()
		return false
	}
	c.state = active
	return true
}

// Value returns the current element while the cursor is Active.
func (c *Cursor[T]) Value() T {
	if st, ok := c.state.(Active[T]); ok {
		return st.Value
	}
	var zero T
	return zero
}

// Err returns the error that ended the enumeration.
// Errors of the underlying source are returned unchanged,
// with release errors merged behind them.
func (c *Cursor[T]) Err() error {
	return c.err
}

// Close releases the cursor's resources.
// Closing a cursor that is not yet exhausted moves it to Disposed.
// Close is idempotent, only the first call can return a release error.
func (c *Cursor[T]) Close() error {
	if !isTerminal(c.state) {
		logger.Debug(c.config.Context, "lazy cursor disposed before exhaustion",
			logging.Field("state", c.state.String()))
		c.state = Disposed[T]{}
	}
	return c.release()
}

// State returns the current lifecycle state.
func (c *Cursor[T]) State() State[T] {
	return c.state
}

// Clone returns a new Fresh cursor built from the same factory and options.
// The clone shares nothing with the original's position or resources.
func (c *Cursor[T]) Clone() *Cursor[T] {
	return New(c.factory, c.options...)
}

func (c *Cursor[T]) exhaust() {
	c.state = Exhausted[T]{}
	c.err = errorkit.Merge(c.err, c.release())
}

func (c *Cursor[T]) fail(err error) {
	c.state = Exhausted[T]{}
	c.err = errorkit.Merge(err, c.release())
}

func (c *Cursor[T]) release() error {
	if c.released {
		return nil
	}
	c.released = true
	errs := []error{c.transitions.Release()}
	for _, onRelease := range c.config.OnRelease {
		errs = append(errs, onRelease())
	}
	err := errorkit.Merge(errs...)
	if err != nil {
		logger.Debug(c.config.Context, "failed to release lazy cursor resources", logging.ErrField(err))
	}
	return err
}
