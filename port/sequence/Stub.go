package sequence

// Stub wraps a Cursor so its behaviour can be overridden method by method in tests.
func Stub[T any](c Cursor[T]) *StubCursor[T] {
	return &StubCursor[T]{
		Cursor:    c,
		StubValue: c.Value,
		StubClose: c.Close,
		StubNext:  c.Next,
		StubErr:   c.Err,
	}
}

type StubCursor[T any] struct {
	Cursor    Cursor[T]
	StubValue func() T
	StubClose func() error
	StubNext  func() bool
	StubErr   func() error
}

func (m *StubCursor[T]) Close() error {
	return m.StubClose()
}

func (m *StubCursor[T]) Next() bool {
	return m.StubNext()
}

func (m *StubCursor[T]) Err() error {
	return m.StubErr()
}

func (m *StubCursor[T]) Value() T {
	return m.StubValue()
}

func (m *StubCursor[T]) ResetClose() {
	m.StubClose = m.Cursor.Close
}

func (m *StubCursor[T]) ResetNext() {
	m.StubNext = m.Cursor.Next
}

func (m *StubCursor[T]) ResetErr() {
	m.StubErr = m.Cursor.Err
}

func (m *StubCursor[T]) ResetValue() {
	m.StubValue = m.Cursor.Value
}
