// Package history keeps the per-session log of generated passwords and its
// flat-file export/import. The store is in-memory only; records survive a
// process restart only through an explicit export.
package history

import (
	"github.com/oklog/ulid/v2"

	"github.com/mzaglia/passmint/internal/password"
)

// Record is one generated password with the criteria that produced it.
// Immutable once appended. The ID identifies the record within the session
// and is never serialized; the file formats carry only password, timestamp,
// and criteria.
type Record struct {
	ID        string            `json:"-"`
	Password  string            `json:"password"`
	Timestamp string            `json:"timestamp"` // RFC 3339
	Criteria  password.Criteria `json:"criteria"`
}

// Store is an append-only ordered sequence of records, most-recent last.
// A single session owns and mutates it; access is not synchronized.
type Store struct {
	records []Record
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append adds a record, assigning a ULID when the record has none.
// Returns the stored record.
func (s *Store) Append(r Record) Record {
	if r.ID == "" {
		r.ID = ulid.Make().String()
	}
	s.records = append(s.records, r)
	return r
}

// Records returns a copy of the record sequence in insertion order.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}
