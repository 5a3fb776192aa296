// Package boltdb exposes the buckets of a bolt database as lazily evaluated sequences.
package boltdb

import (
	"bytes"
	"context"
	"fmt"

	"github.com/boltdb/bolt"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"github.com/adamluzsi/lazyseq/pkg/lazycursor"
	"github.com/adamluzsi/lazyseq/port/sequence"
)

func NewStorage(path string) (*Storage, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	return &Storage{DB: db}, nil
}

type Storage struct {
	DB *bolt.DB
}

// KV is a single bucket entry.
// Key and Value are copies, they remain valid after the read transaction ended.
type KV struct {
	Key   []byte
	Value []byte
}

// Close the database and release the file lock.
func (s *Storage) Close() error {
	return s.DB.Close()
}

// Put stores the entries in the named bucket, creating the bucket when it doesn't exist yet.
func (s *Storage) Put(bucket string, kvs ...KV) error {
	return s.DB.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return fmt.Errorf("creating bucket %q: %w", bucket, err)
		}
		for _, kv := range kvs {
			if err := b.Put(kv.Key, kv.Value); err != nil {
				return err
			}
		}
		return nil
	})
}

// Bucket returns the entries of the named bucket in key order.
// Every enumeration opens its own read-only transaction on the first Next
// and rolls it back when the cursor is exhausted or closed,
// so an abandoned cursor must still be closed to let writers proceed.
// A bucket that doesn't exist is an empty sequence.
// Nested buckets are skipped.
func (s *Storage) Bucket(name string, opts ...lazycursor.Option) sequence.Sequence[KV] {
	return lazycursor.Seq(func() lazycursor.Transitions[KV] {
		return &bucketTransitions{DB: s.DB, Name: []byte(name)}
	}, opts...)
}

type bucketTransitions struct {
	DB   *bolt.DB
	Name []byte

	tx     *bolt.Tx
	cursor *bolt.Cursor
}

func (bt *bucketTransitions) Start(ctx context.Context) (lazycursor.State[KV], error) {
	tx, err := bt.DB.Begin(false)
	if err != nil {
		return nil, err
	}
	bt.tx = tx
	bucket := tx.Bucket(bt.Name)
	if bucket == nil {
		logger.Debug(ctx, "bolt bucket not found", logging.Field("bucket", string(bt.Name)))
		return lazycursor.Exhausted[KV]{}, nil
	}
	bt.cursor = bucket.Cursor()
	return bt.entry(bt.cursor.First())
}

func (bt *bucketTransitions) Resume(context.Context) (lazycursor.State[KV], error) {
	return bt.entry(bt.cursor.Next())
}

func (bt *bucketTransitions) entry(k, v []byte) (lazycursor.State[KV], error) {
	for k != nil && v == nil {
		k, v = bt.cursor.Next()
	}
	if k == nil {
		return lazycursor.Exhausted[KV]{}, nil
	}
	return lazycursor.Active[KV]{Value: KV{
		Key:   bytes.Clone(k),
		Value: bytes.Clone(v),
	}}, nil
}

func (bt *bucketTransitions) Release() error {
	if bt.tx == nil {
		return nil
	}
	tx := bt.tx
	bt.tx, bt.cursor = nil, nil
	return tx.Rollback()
}
