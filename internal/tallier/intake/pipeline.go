// Package intake composes the tallier's ballot pipeline: replay detector,
// signature verifier, decryptor, aggregator and audit journal. Every RPC
// worker runs the whole pipeline to completion before acking.
package intake

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/urna/internal/audit"
	"github.com/dmitrijs2005/urna/internal/logging"
	"github.com/dmitrijs2005/urna/internal/tallier/dedup"
	"github.com/dmitrijs2005/urna/internal/tallier/decrypt"
	"github.com/dmitrijs2005/urna/internal/tallier/models"
	"github.com/dmitrijs2005/urna/internal/tallier/tally"
	"github.com/dmitrijs2005/urna/internal/tallier/verify"
)

// Archiver persists counted ballots. Archiving is best-effort: a failure
// is logged as a warning but never flips an acknowledgement.
type Archiver interface {
	SaveCounted(ctx context.Context, b *models.ReceivedBallot) error
}

// Pipeline wires the intake stages together. All stages are
// concurrency-safe, so the pipeline itself carries no lock.
type Pipeline struct {
	detector   *dedup.Detector
	verifier   *verify.Verifier
	decryptor  *decrypt.Decryptor
	aggregator *tally.Aggregator
	journal    *audit.Journal
	archive    Archiver
	logger     logging.Logger
}

// New builds a pipeline. archive may be nil when no archive is configured.
func New(
	detector *dedup.Detector,
	verifier *verify.Verifier,
	decryptor *decrypt.Decryptor,
	aggregator *tally.Aggregator,
	journal *audit.Journal,
	archive Archiver,
	logger logging.Logger,
) *Pipeline {
	return &Pipeline{
		detector:   detector,
		verifier:   verifier,
		decryptor:  decryptor,
		aggregator: aggregator,
		journal:    journal,
		archive:    archive,
		logger:     logger.With("module", "intake"),
	}
}

// Process runs one submission through the full pipeline and returns the
// authoritative acknowledgement: true means the ballot is in the dedup set
// and counted; false means some stage refused it. Stages short-circuit on
// first failure and leave no partial aggregate state.
func (p *Pipeline) Process(ctx context.Context, ballotID, stationID, emittedAt string, sealedPayload, signature []byte) bool {
	id, err := uuid.Parse(ballotID)
	if err != nil {
		p.logger.Warn(ctx, "malformed ballot id", "ballot_id", ballotID, "station_id", stationID)
		p.record(ctx, func() error { return p.journal.Reception(ballotID, stationID, false) })
		return false
	}

	emitted, err := time.Parse(models.EmittedAtLayout, emittedAt)
	if err != nil {
		p.logger.Warn(ctx, "malformed timestamp", "ballot_id", ballotID, "emitted_at", emittedAt)
		p.record(ctx, func() error { return p.journal.Reception(ballotID, stationID, false) })
		return false
	}

	// Enrolment gate: a station with no registered keys is refused before
	// the dedup set learns the id, so a legitimate retry after enrolment
	// is not mistaken for a replay.
	if !p.verifier.HasKey(stationID) || !p.decryptor.HasKey(stationID) {
		p.logger.Warn(ctx, "submission from unenrolled station", "ballot_id", ballotID, "station_id", stationID)
		p.record(ctx, func() error { return p.journal.Reception(ballotID, stationID, false) })
		return false
	}

	if !p.detector.CheckAndRegister(id) {
		p.logger.Warn(ctx, "duplicate ballot", "ballot_id", ballotID, "station_id", stationID)
		p.record(ctx, func() error { return p.journal.Duplicate(ballotID, stationID) })
		return false
	}

	p.aggregator.IncrementReceived()

	b := models.NewReceivedBallot(id, stationID, emitted, sealedPayload, signature)

	if !p.verifier.VerifySignature(b) {
		p.logger.Warn(ctx, "signature verification failed", "ballot_id", ballotID, "station_id", stationID)
		p.record(ctx, func() error { return p.journal.Verification(ballotID, stationID, false) })
		return false
	}
	p.record(ctx, func() error { return p.journal.Verification(ballotID, stationID, true) })

	if err := p.decryptor.Decrypt(b); err != nil {
		p.logger.Warn(ctx, "decryption failed", "ballot_id", ballotID, "station_id", stationID, "error", err.Error())
		p.record(ctx, func() error { return p.journal.Verification(ballotID, stationID, false) })
		return false
	}

	if err := p.aggregator.Count(b); err != nil {
		p.logger.Warn(ctx, "tabulation refused", "ballot_id", ballotID, "station_id", stationID, "error", err.Error())
		p.record(ctx, func() error { return p.journal.Reception(ballotID, stationID, false) })
		return false
	}

	p.record(ctx, func() error { return p.journal.Tabulation(ballotID, stationID, b.DecryptedCandidateID) })
	p.record(ctx, func() error { return p.journal.Reception(ballotID, stationID, true) })

	if p.archive != nil {
		if err := p.archive.SaveCounted(ctx, b); err != nil {
			p.logger.Warn(ctx, "archive write failed", "ballot_id", ballotID, "error", err.Error())
		}
	}

	return true
}

// HasReceipt reports whether the tallier has admitted the ballot id. Used
// by the stations' confirmation auditors.
func (p *Pipeline) HasReceipt(ballotID string) bool {
	id, err := uuid.Parse(ballotID)
	if err != nil {
		return false
	}
	return p.detector.Contains(id)
}

func (p *Pipeline) record(ctx context.Context, write func() error) {
	if err := write(); err != nil {
		p.logger.Error(ctx, "audit journal write failed", "error", err.Error())
	}
}
