// Package tally consolidates counted ballots into per-candidate and
// per-station totals.
package tally

import (
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/urna/internal/common"
	"github.com/dmitrijs2005/urna/internal/tallier/models"
)

// Aggregator holds the running totals. Writers use atomic increments only;
// readers take the read side of an RW lock to snapshot several counters
// together. A reader racing a Count call may observe intermediate totals
// between the three increments, which is acceptable for reporting.
type Aggregator struct {
	mu          sync.RWMutex
	byCandidate map[string]*atomic.Int64
	byStation   map[string]*atomic.Int64

	receivedTotal atomic.Int64
	countedTotal  atomic.Int64

	registeredVoters int64
}

// Summary is a point-in-time snapshot of the totals.
type Summary struct {
	ReceivedTotal  int64
	CountedTotal   int64
	ByCandidate    map[string]int64
	ByStation      map[string]int64
	TurnoutPercent float64
}

// New creates an aggregator. registeredVoters is configured out-of-band
// and only feeds the turnout percentage.
func New(registeredVoters int64) *Aggregator {
	return &Aggregator{
		byCandidate:      make(map[string]*atomic.Int64),
		byStation:        make(map[string]*atomic.Int64),
		registeredVoters: registeredVoters,
	}
}

// IncrementReceived is called at pipeline entry, after the dedup pass.
func (a *Aggregator) IncrementReceived() {
	a.receivedTotal.Add(1)
}

// Count tabulates a decrypted ballot: bumps the candidate, station and
// counted totals and flips the ballot's Counted flag. Rejects ballots
// with no decrypted candidate.
func (a *Aggregator) Count(b *models.ReceivedBallot) error {
	if b.DecryptedCandidateID == "" {
		return common.ErrMissingCandidate
	}

	a.counter(a.byCandidate, b.DecryptedCandidateID).Add(1)
	a.counter(a.byStation, b.StationID).Add(1)
	a.countedTotal.Add(1)
	b.Counted = true

	return nil
}

func (a *Aggregator) counter(m map[string]*atomic.Int64, key string) *atomic.Int64 {
	a.mu.RLock()
	c, ok := m[key]
	a.mu.RUnlock()
	if ok {
		return c
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if c, ok := m[key]; ok {
		return c
	}
	c = &atomic.Int64{}
	m[key] = c
	return c
}

// ReceivedTotal returns the number of ballots admitted past dedup.
func (a *Aggregator) ReceivedTotal() int64 {
	return a.receivedTotal.Load()
}

// CountedTotal returns the number of tabulated ballots.
func (a *Aggregator) CountedTotal() int64 {
	return a.countedTotal.Load()
}

// ResultsByCandidate snapshots the per-candidate totals.
func (a *Aggregator) ResultsByCandidate() map[string]int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return snapshot(a.byCandidate)
}

// ResultsByStation snapshots the per-station totals.
func (a *Aggregator) ResultsByStation() map[string]int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return snapshot(a.byStation)
}

// PercentagesByCandidate returns each candidate's share of the counted
// total, in percent.
func (a *Aggregator) PercentagesByCandidate() map[string]float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	total := a.countedTotal.Load()
	out := make(map[string]float64, len(a.byCandidate))
	for candidate, c := range a.byCandidate {
		if total > 0 {
			out[candidate] = float64(c.Load()) * 100.0 / float64(total)
		} else {
			out[candidate] = 0
		}
	}
	return out
}

// TurnoutPercent returns counted ballots as a share of registered voters.
func (a *Aggregator) TurnoutPercent() float64 {
	if a.registeredVoters <= 0 {
		return 0
	}
	return float64(a.countedTotal.Load()) * 100.0 / float64(a.registeredVoters)
}

// Snapshot collects every total under one read lock.
func (a *Aggregator) Snapshot() Summary {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return Summary{
		ReceivedTotal:  a.receivedTotal.Load(),
		CountedTotal:   a.countedTotal.Load(),
		ByCandidate:    snapshot(a.byCandidate),
		ByStation:      snapshot(a.byStation),
		TurnoutPercent: a.TurnoutPercent(),
	}
}

func snapshot(m map[string]*atomic.Int64) map[string]int64 {
	out := make(map[string]int64, len(m))
	for k, c := range m {
		out[k] = c.Load()
	}
	return out
}
