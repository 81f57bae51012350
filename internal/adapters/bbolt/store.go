// Package bbolt implements the ports.Storage interface using bbolt (embedded
// B+ tree). All reports live in a single top-level bucket keyed by label,
// with JSON-serialized values. Writes are transactional — a crash mid-write
// cannot corrupt previously committed reports.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/seqsuite/internal/ports"
)

var bucketReports = []byte("reports")

// Store implements ports.Storage backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveReport persists a report under label, overwriting any prior value.
func (s *Store) SaveReport(label string, rec *ports.ReportRecord) error {
	if rec == nil {
		return fmt.Errorf("nil report")
	}
	if label == "" {
		return fmt.Errorf("empty label")
	}
	blob, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketReports)
		if err != nil {
			return err
		}
		return b.Put([]byte(label), blob)
	})
}

// LoadReport retrieves the report stored under label.
// Returns nil, nil if no such report exists.
func (s *Store) LoadReport(label string) (*ports.ReportRecord, error) {
	var rec *ports.ReportRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketReports)
		if b == nil {
			return nil
		}
		blob := b.Get([]byte(label))
		if blob == nil {
			return nil
		}
		rec = &ports.ReportRecord{}
		if err := json.Unmarshal(blob, rec); err != nil {
			return fmt.Errorf("unmarshal report %q: %w", label, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListReports returns all stored labels. bbolt iterates keys in byte order,
// so the result is already lexically sorted.
func (s *Store) ListReports() ([]string, error) {
	var labels []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketReports)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			labels = append(labels, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return labels, nil
}

// DeleteReport removes the report stored under label.
// Idempotent: deleting a nonexistent label is not an error.
func (s *Store) DeleteReport(label string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketReports)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(label))
	})
}
