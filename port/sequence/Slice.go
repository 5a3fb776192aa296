package sequence

// Slice is a fixed-size, in-memory Sequence.
// Its length is known without enumeration, and enumerating it has no side effects,
// which lets transforms make decisions about it up front.
type Slice[T any] []T

func (s Slice[T]) Iterate() Cursor[T] {
	return &sliceCursor[T]{Slice: s}
}

// Len returns the number of elements without enumerating them.
func (s Slice[T]) Len() int { return len(s) }

type sliceCursor[T any] struct {
	Slice []T

	closed bool
	index  int
	value  T
}

func (c *sliceCursor[T]) Close() error {
	c.closed = true
	return nil
}

func (c *sliceCursor[T]) Err() error {
	return nil
}

func (c *sliceCursor[T]) Next() bool {
	if c.closed {
		return false
	}
	if len(c.Slice) <= c.index {
		return false
	}
	c.value = c.Slice[c.index]
	c.index++
	return true
}

func (c *sliceCursor[T]) Value() T {
	return c.value
}
