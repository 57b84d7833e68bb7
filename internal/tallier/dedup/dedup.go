// Package dedup implements the tallier's replay detector: a Bloom-style
// prefilter in front of an exact set of ballot ids. The prefilter answers
// "definitely new" cheaply; the exact set settles "possibly seen".
package dedup

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Detector decides, atomically, whether a ballot id has been seen before
// and admits it exactly once. Safe for concurrent use: two concurrent
// calls with the same id observe exactly one "new".
type Detector struct {
	mu     sync.Mutex
	seen   map[uuid.UUID]struct{}
	filter *bloomFilter

	duplicates atomic.Int64
}

// New sizes the prefilter for the expected element count and false-positive
// rate (spec defaults: 1e7 elements at 1e-3).
func New(expectedElements int, falsePositiveRate float64) *Detector {
	return &Detector{
		seen:   make(map[uuid.UUID]struct{}),
		filter: newBloomFilter(expectedElements, falsePositiveRate),
	}
}

// CheckAndRegister returns true if the id is new, registering it in both
// stages; false if it is a duplicate.
func (d *Detector) CheckAndRegister(id uuid.UUID) bool {
	key := id.String()

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.filter.mightContain(key) {
		if _, dup := d.seen[id]; dup {
			d.duplicates.Add(1)
			return false
		}
	}

	d.seen[id] = struct{}{}
	d.filter.put(key)
	return true
}

// Contains reports whether the id has been admitted. Used by the receipt
// check; never mutates the set.
func (d *Detector) Contains(id uuid.UUID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.seen[id]
	return ok
}

// Duplicates returns the number of replays detected so far.
func (d *Detector) Duplicates() int64 {
	return d.duplicates.Load()
}
