// Package dedup holds the process-lifetime memory of which diagnostics have
// already been reported. The engine consults it before emitting, so a given
// failure message or typo suggestion reaches the diagnostic sink at most once
// per store lifetime, no matter how many times validation runs.
//
// Entries are never pruned. Growth is bounded in practice by the finite set
// of distinct failure messages and spec field names a codebase can produce;
// message entries are additionally stored as 64-bit hashes rather than the
// full strings to keep long-lived retention small.
package dedup

import (
	"sync"

	"github.com/zeebo/xxh3"
	"go.uber.org/atomic"
)

// Store tracks reported failure messages and typo-flagged field names.
// The zero value is not usable; construct with NewStore.
//
// All methods are safe for concurrent use. Mark methods perform an atomic
// check-then-insert under one lock, so two concurrent calls with the same
// entry can never both observe "newly marked".
type Store struct {
	mutex      sync.Mutex
	messages   map[uint64]struct{}
	typos      map[string]struct{}
	suppressed atomic.Int64
}

// NewStore creates an empty Store. Its intended lifetime is the whole
// process or session; share one store per deduplication domain.
func NewStore() *Store {
	return &Store{
		messages: make(map[uint64]struct{}),
		typos:    make(map[string]struct{}),
	}
}

// HasReportedMessage returns true if the given failure message has already
// been marked as reported.
func (s *Store) HasReportedMessage(message string) bool {
	hash := xxh3.HashString(message)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, seen := s.messages[hash]

	return seen
}

// MarkReported marks a failure message as reported. Returns true if the
// message was newly marked, false if it had been reported before. A repeat
// also increments the suppression counter.
func (s *Store) MarkReported(message string) bool {
	hash := xxh3.HashString(message)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, seen := s.messages[hash]; seen {
		s.suppressed.Inc()

		return false
	}

	s.messages[hash] = struct{}{}

	return true
}

// HasReportedTypo returns true if the given field name has already triggered
// a typo diagnostic.
func (s *Store) HasReportedTypo(field string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, seen := s.typos[field]

	return seen
}

// MarkTypoReported marks a field name as having triggered a typo diagnostic.
// Returns true if the field was newly marked.
func (s *Store) MarkTypoReported(field string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, seen := s.typos[field]; seen {
		return false
	}

	s.typos[field] = struct{}{}

	return true
}

// MessageCount returns the number of distinct failure messages reported.
func (s *Store) MessageCount() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return len(s.messages)
}

// TypoCount returns the number of distinct field names typo-flagged.
func (s *Store) TypoCount() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return len(s.typos)
}

// Suppressed returns how many repeat failure reports have been suppressed
// since the store was created.
func (s *Store) Suppressed() int64 {
	return s.suppressed.Load()
}
