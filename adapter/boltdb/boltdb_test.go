package boltdb_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/boltdb/bolt"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"github.com/adamluzsi/lazyseq/adapter/boltdb"
	"github.com/adamluzsi/lazyseq/pkg/seqkit"
	"github.com/adamluzsi/lazyseq/port/sequence"
	"github.com/adamluzsi/lazyseq/port/sequence/sequencecontract"
)

func NewStorage(tb testing.TB) *boltdb.Storage {
	storage, err := boltdb.NewStorage(filepath.Join(tb.TempDir(), "bolt.db"))
	assert.NoError(tb, err)
	tb.Cleanup(func() { assert.NoError(tb, storage.Close()) })
	return storage
}

func kv(k, v string) boltdb.KV {
	return boltdb.KV{Key: []byte(k), Value: []byte(v)}
}

func TestStorage_Bucket(t *testing.T) {
	s := testcase.NewSpec(t)
	s.Before(func(t *testcase.T) { logger.Testing(t) })

	var (
		storage = testcase.Let(s, func(t *testcase.T) *boltdb.Storage {
			return NewStorage(t)
		})
		bucket  = testcase.Let(s, func(t *testcase.T) string { return t.Random.StringNC(8, "abcdefghijklmnopqrstuvwxyz") })
		subject = testcase.Let(s, func(t *testcase.T) sequence.Sequence[boltdb.KV] {
			return storage.Get(t).Bucket(bucket.Get(t))
		})
	)

	s.When("the bucket doesn't exist", func(s *testcase.Spec) {
		s.Then("the sequence is empty", func(t *testcase.T) {
			vs, err := sequence.Collect(subject.Get(t))
			t.Must.NoError(err)
			t.Must.Empty(vs)
		})

		s.Then("a default can stand in for the missing entries", func(t *testcase.T) {
			seq, err := seqkit.DefaultIfEmpty(subject.Get(t), kv("default", "value"))
			t.Must.NoError(err)
			vs, err := sequence.Collect(seq)
			t.Must.NoError(err)
			t.Must.Equal([]boltdb.KV{kv("default", "value")}, vs)
		})
	})

	s.When("the bucket has entries", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			t.Must.NoError(storage.Get(t).Put(bucket.Get(t), kv("c", "3"), kv("a", "1"), kv("b", "2")))
		})

		s.Then("entries are yielded in key order", func(t *testcase.T) {
			vs, err := sequence.Collect(subject.Get(t))
			t.Must.NoError(err)
			t.Must.Equal([]boltdb.KV{kv("a", "1"), kv("b", "2"), kv("c", "3")}, vs)
		})

		s.Then("the default is not used", func(t *testcase.T) {
			seq, err := seqkit.DefaultIfEmpty(subject.Get(t), kv("default", "value"))
			t.Must.NoError(err)
			vs, err := sequence.Collect(seq)
			t.Must.NoError(err)
			t.Must.Equal(3, len(vs))
			t.Must.Equal(kv("a", "1"), vs[0])
		})

		s.Then("nothing is read before the first Next", func(t *testcase.T) {
			c := subject.Get(t).Iterate()
			defer c.Close()
			t.Must.Equal(0, storage.Get(t).DB.Stats().OpenTxN)
			t.Must.True(c.Next())
			t.Must.Equal(1, storage.Get(t).DB.Stats().OpenTxN)
		})

		s.Then("an exhausted cursor has no open transaction", func(t *testcase.T) {
			c := subject.Get(t).Iterate()
			for c.Next() {
			}
			t.Must.NoError(c.Err())
			t.Must.Equal(0, storage.Get(t).DB.Stats().OpenTxN)
			t.Must.NoError(c.Close())
		})

		s.Then("closing an abandoned cursor ends its transaction and writers can proceed", func(t *testcase.T) {
			c := subject.Get(t).Iterate()
			t.Must.True(c.Next())
			t.Must.Equal(kv("a", "1"), c.Value())
			t.Must.NoError(c.Close())
			t.Must.Equal(0, storage.Get(t).DB.Stats().OpenTxN)

			t.Must.NoError(storage.Get(t).Put(bucket.Get(t), kv("d", "4")))
			vs, err := sequence.Collect(subject.Get(t))
			t.Must.NoError(err)
			t.Must.Equal(4, len(vs))
		})

		s.Then("yielded entries stay valid after the transaction ended", func(t *testcase.T) {
			c := subject.Get(t).Iterate()
			t.Must.True(c.Next())
			got := c.Value()
			t.Must.NoError(c.Close())
			t.Must.Equal(kv("a", "1"), got)
		})

		s.And("a nested bucket is among the entries", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				t.Must.NoError(storage.Get(t).DB.Update(func(tx *bolt.Tx) error {
					_, err := tx.Bucket([]byte(bucket.Get(t))).CreateBucket([]byte("ab"))
					return err
				}))
			})

			s.Then("the nested bucket is skipped", func(t *testcase.T) {
				vs, err := sequence.Collect(subject.Get(t))
				t.Must.NoError(err)
				t.Must.Equal([]boltdb.KV{kv("a", "1"), kv("b", "2"), kv("c", "3")}, vs)
			})
		})
	})
}

func TestStorage_Bucket_contract(t *testing.T) {
	sequencecontract.Sequence(t, func(tb testing.TB) sequencecontract.Subject[boltdb.KV] {
		storage := NewStorage(tb)
		var expected []boltdb.KV
		for i := 0; i < 5; i++ {
			expected = append(expected, kv(fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i)))
		}
		assert.NoError(tb, storage.Put("contract", expected...))
		return sequencecontract.Subject[boltdb.KV]{
			Sequence: storage.Bucket("contract"),
			Expected: expected,
		}
	})

	t.Run("missing bucket", func(t *testing.T) {
		sequencecontract.Sequence(t, func(tb testing.TB) sequencecontract.Subject[boltdb.KV] {
			return sequencecontract.Subject[boltdb.KV]{Sequence: NewStorage(tb).Bucket("missing")}
		})
	})
}
