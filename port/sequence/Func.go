package sequence

// FuncCursor enables you to create a Cursor with a lambda expression.
// next reports the next value, whether there was one, and the error that stopped the enumeration.
// Once next returns an error, it is not called again.
// In case you need to close the currently mapped resource, use the OnClose callback option.
//
// A FuncCursor is single-pass; wrap its construction in a Func to make it a Sequence.
func FuncCursor[T any](next func() (v T, ok bool, err error), callbackOptions ...CallbackOption) Cursor[T] {
	var c Cursor[T]
	c = &funcCursor[T]{NextFn: next}
	c = withCallback(c, callbackOptions...)
	return c
}

type funcCursor[T any] struct {
	NextFn func() (v T, ok bool, err error)

	value T
	err   error
	done  bool
}

func (c *funcCursor[T]) Close() error {
	c.done = true
	return nil
}

func (c *funcCursor[T]) Err() error {
	return c.err
}

func (c *funcCursor[T]) Next() bool {
	if c.done || c.err != nil {
		return false
	}
	value, ok, err := c.NextFn()
	if err != nil {
		c.err = err
		return false
	}
	if !ok {
		c.done = true
		return false
	}
	c.value = value
	return true
}

func (c *funcCursor[T]) Value() T {
	return c.value
}
