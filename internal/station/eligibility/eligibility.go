// Package eligibility implements the station-local voter gate: may this
// voter vote here, now? Every rejection leaves a fraud-attempt audit
// record with the voter document masked. The authoritative electoral roll
// is an external collaborator; this gate holds only what the station
// itself has observed.
package eligibility

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/urna/internal/audit"
	"github.com/dmitrijs2005/urna/internal/logging"
)

// Voter is the identity record presented at the station.
type Voter struct {
	Document          string
	FullName          string
	AssignedStationID string
	HasCriminalRecord bool
	HasVoted          bool
}

// Result carries the verdict and, on rejection, the reason.
type Result struct {
	Eligible bool
	Reason   string
}

// Rejection reasons, also written to the fraud-attempt audit records.
const (
	ReasonCriminalRecord    = "voter has a criminal record"
	ReasonWrongStation      = "voter assigned to another station"
	ReasonAlreadyVoted      = "voter has already voted"
	ReasonVotedAtOtherPlace = "voter has already voted at another station"
)

// Validator tracks which documents have voted and journals every attempt.
// Safe for concurrent use.
type Validator struct {
	mu      sync.Mutex
	voted   map[string]bool
	journal *audit.Journal
	logger  logging.Logger
}

func NewValidator(j *audit.Journal, l logging.Logger) *Validator {
	return &Validator{
		voted:   make(map[string]bool),
		journal: j,
		logger:  l.With("module", "eligibility"),
	}
}

// Check runs the rejection ladder in order: criminal record, wrong
// station, local has-voted flag, then the station-wide registry. The
// first failure wins and is journalled as a fraud attempt.
func (v *Validator) Check(voter *Voter, stationID string) Result {
	ctx := context.Background()

	if voter.HasCriminalRecord {
		v.fraud(ctx, stationID, voter.Document, ReasonCriminalRecord)
		return Result{Eligible: false, Reason: ReasonCriminalRecord}
	}

	if voter.AssignedStationID != stationID {
		v.fraud(ctx, stationID, voter.Document, ReasonWrongStation)
		return Result{Eligible: false, Reason: ReasonWrongStation}
	}

	if voter.HasVoted {
		v.fraud(ctx, stationID, voter.Document, ReasonAlreadyVoted)
		return Result{Eligible: false, Reason: ReasonAlreadyVoted}
	}

	v.mu.Lock()
	voted := v.voted[voter.Document]
	v.mu.Unlock()
	if voted {
		v.fraud(ctx, stationID, voter.Document, ReasonVotedAtOtherPlace)
		return Result{Eligible: false, Reason: ReasonVotedAtOtherPlace}
	}

	return Result{Eligible: true}
}

// RegisterVote marks the document as having voted and journals the
// successful attempt.
func (v *Validator) RegisterVote(document, stationID string) {
	v.mu.Lock()
	v.voted[document] = true
	v.mu.Unlock()

	if err := v.journal.VoteAttempt(stationID, document, true); err != nil {
		v.logger.Error(context.Background(), "audit journal write failed", "error", err.Error())
	}
}

// HasVoted reports whether the document has voted at this station.
func (v *Validator) HasVoted(document string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.voted[document]
}

func (v *Validator) fraud(ctx context.Context, stationID, document, reason string) {
	if err := v.journal.FraudAttempt(stationID, document, reason); err != nil {
		v.logger.Error(ctx, "audit journal write failed", "error", err.Error())
	}
}
