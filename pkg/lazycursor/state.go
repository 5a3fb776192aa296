package lazycursor

// State is the lifecycle phase of a Cursor.
// It is a closed set: Fresh, Active, Exhausted and Disposed.
type State[T any] interface {
	isState()
	String() string
}

// Fresh is the initial state, no resource is acquired yet.
type Fresh[T any] struct{}

// Active holds the value produced by the last transition.
// When Last is set, the next Next call exhausts the cursor without consulting the Transitions again.
type Active[T any] struct {
	Value T
	Last  bool
}

// Exhausted is the terminal state after the enumeration ended, either naturally or with an error.
type Exhausted[T any] struct{}

// Disposed is the terminal state of a cursor that was closed before it was exhausted.
type Disposed[T any] struct{}

func (Fresh[T]) isState()     {}
func (Active[T]) isState()    {}
func (Exhausted[T]) isState() {}
func (Disposed[T]) isState()  {}

func (Fresh[T]) String() string     { return "fresh" }
func (Active[T]) String() string    { return "active" }
func (Exhausted[T]) String() string { return "exhausted" }
func (Disposed[T]) String() string  { return "disposed" }

func isTerminal[T any](s State[T]) bool {
	switch s.(type) {
	case Exhausted[T], Disposed[T]:
		return true
	default:
		return false
	}
}
