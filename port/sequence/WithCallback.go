package sequence

import "go.llib.dev/frameless/pkg/errorkit"

// OnClose registers a hook that runs whenever a Cursor is closed.
// The hook runs after the cursor's own Close, on every Close call.
func OnClose(fn func() error) CallbackOption {
	return callbackFunc(func(c *callbackConfig) {
		c.OnClose = append(c.OnClose, fn)
	})
}

// WithCallback decorates every Cursor of the Sequence with the given callbacks.
func WithCallback[T any](seq Sequence[T], cs ...CallbackOption) Sequence[T] {
	if len(cs) == 0 {
		return seq
	}
	return Func[T](func() Cursor[T] {
		return withCallback(seq.Iterate(), cs...)
	})
}

func withCallback[T any](c Cursor[T], cs ...CallbackOption) Cursor[T] {
	if len(cs) == 0 {
		return c
	}
	return &callbackCursor[T]{Cursor: c, CallbackConfig: toCallback(cs)}
}

type callbackCursor[T any] struct {
	Cursor[T]
	CallbackConfig callbackConfig
}

func (c *callbackCursor[T]) Close() error {
	errs := []error{c.Cursor.Close()}
	for _, onClose := range c.CallbackConfig.OnClose {
		errs = append(errs, onClose())
	}
	return errorkit.Merge(errs...)
}

func toCallback(cs []CallbackOption) callbackConfig {
	var c callbackConfig
	for _, opt := range cs {
		opt.configure(&c)
	}
	return c
}

type callbackConfig struct {
	OnClose []func() error
}

type CallbackOption interface {
	configure(c *callbackConfig)
}

type callbackFunc func(c *callbackConfig)

func (fn callbackFunc) configure(c *callbackConfig) { fn(c) }
