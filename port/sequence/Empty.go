package sequence

// Empty returns a Sequence that never yields a value.
// It helps to achieve the Null Object Pattern when no value is logically expected.
//
// Empty is not a Slice, so transforms can't tell it is empty without enumerating it.
func Empty[T any]() Sequence[T] {
	return Func[T](func() Cursor[T] { return &emptyCursor[T]{} })
}

type emptyCursor[T any] struct{}

func (*emptyCursor[T]) Close() error { return nil }

func (*emptyCursor[T]) Next() bool { return false }

func (*emptyCursor[T]) Err() error { return nil }

func (*emptyCursor[T]) Value() T {
	var v T
	return v
}
