// Package sequencecontract holds the behavioural expectations every sequence.Sequence implementation must meet.
package sequencecontract

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/adamluzsi/lazyseq/port/sequence"
)

// Subject is what the contract is checked against.
type Subject[T any] struct {
	Sequence sequence.Sequence[T]
	// Expected is the complete, ordered result of a single enumeration.
	Expected []T
}

// Sequence runs the contract for the Subject built by mk.
// mk is called once for every test case.
func Sequence[T any](t *testing.T, mk func(testing.TB) Subject[T]) {
	s := testcase.NewSpec(t)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T] {
		return mk(t)
	})

	s.Test("enumeration yields the expected values in order", func(t *testcase.T) {
		vs, err := sequence.Collect(subject.Get(t).Sequence)
		assert.NoError(t, err)
		assertValues(t, subject.Get(t).Expected, vs)
	})

	s.Test("independent enumerations yield the same values", func(t *testcase.T) {
		seq := subject.Get(t).Sequence
		c1 := seq.Iterate()
		c2 := seq.Iterate()
		vs1, err := sequence.CollectCursor(c1)
		assert.NoError(t, err)
		vs2, err := sequence.CollectCursor(c2)
		assert.NoError(t, err)
		assertValues(t, subject.Get(t).Expected, vs1)
		assertValues(t, subject.Get(t).Expected, vs2)
	})

	s.Test("interleaved enumerations don't share position", func(t *testcase.T) {
		expected := subject.Get(t).Expected
		if len(expected) == 0 {
			t.Skip("interleaving needs at least one element")
		}
		seq := subject.Get(t).Sequence
		c1 := seq.Iterate()
		defer c1.Close()
		assert.True(t, c1.Next())

		vs, err := sequence.CollectCursor(seq.Iterate())
		assert.NoError(t, err)
		assertValues(t, expected, vs)

		assert.Equal(t, expected[0], c1.Value())
	})

	s.Test("after exhaustion, Next keeps reporting false", func(t *testcase.T) {
		c := subject.Get(t).Sequence.Iterate()
		defer c.Close()
		for c.Next() {
		}
		assert.NoError(t, c.Err())
		t.Random.Repeat(1, 7, func() {
			assert.False(t, c.Next())
		})
	})

	s.Test("abandoning the enumeration early is allowed", func(t *testcase.T) {
		c := subject.Get(t).Sequence.Iterate()
		if len(subject.Get(t).Expected) != 0 {
			assert.True(t, c.Next())
		}
		assert.NoError(t, c.Close())
		assert.False(t, c.Next())
	})

	s.Test("Close can be called repeatedly", func(t *testcase.T) {
		c := subject.Get(t).Sequence.Iterate()
		assert.NoError(t, c.Close())
		assert.NoError(t, c.Close())
	})

	s.Test("range-over-func iteration yields the expected values", func(t *testcase.T) {
		var vs []T
		for v, err := range sequence.All(subject.Get(t).Sequence) {
			assert.NoError(t, err)
			vs = append(vs, v)
		}
		assertValues(t, subject.Get(t).Expected, vs)
	})
}

func assertValues[T any](tb testing.TB, expected, actual []T) {
	tb.Helper()
	if len(expected) == 0 {
		assert.Empty(tb, actual)
		return
	}
	assert.Equal(tb, expected, actual)
}
