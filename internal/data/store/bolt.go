// Package store provides the key-value adapters the birth state is persisted in.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

const (
	boltBucketState = "state" // key: state key -> raw string value

	boltLockTimeout = 1 * time.Second
)

// BoltKV stores string values in a bbolt file. The database is opened for each
// operation and closed right after, so another process (a running live view)
// does not hold the file lock between edits.
type BoltKV struct {
	path string
}

// NewBoltKV creates the parent directory of path and returns the adapter.
func NewBoltKV(path string) (*BoltKV, error) {
	if path == "" {
		return nil, errors.New("state file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &BoltKV{path: path}, nil
}

// Path returns the database file path.
func (b *BoltKV) Path() string {
	return b.path
}

// Get returns the value stored under key. A missing file or bucket reads as absent.
func (b *BoltKV) Get(key string) (string, bool, error) {
	if _, err := os.Stat(b.path); errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}

	db, err := bbolt.Open(b.path, 0600, &bbolt.Options{Timeout: boltLockTimeout, ReadOnly: true})
	if err != nil {
		return "", false, fmt.Errorf("failed to open state file: %w", err)
	}
	defer db.Close()

	var (
		value string
		found bool
	)
	err = db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketState))
		if bucket == nil {
			return nil
		}
		if raw := bucket.Get([]byte(key)); raw != nil {
			value = string(raw)
			found = true
		}
		return nil
	})
	return value, found, err
}

// Set stores value under key.
func (b *BoltKV) Set(key, value string) error {
	return b.SetAll(map[string]string{key: value})
}

// SetAll stores every pair in a single transaction.
func (b *BoltKV) SetAll(pairs map[string]string) error {
	db, err := bbolt.Open(b.path, 0600, &bbolt.Options{Timeout: boltLockTimeout})
	if err != nil {
		return fmt.Errorf("failed to open state file: %w", err)
	}
	defer db.Close()

	return db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(boltBucketState))
		if err != nil {
			return err
		}
		for k, v := range pairs {
			if err := bucket.Put([]byte(k), []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
}
