// Package transmit drives the station outbox against the tallier RPC with
// bounded-loss, bounded-retry delivery behind a circuit breaker.
package transmit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/urna/internal/audit"
	"github.com/dmitrijs2005/urna/internal/logging"
	"github.com/dmitrijs2005/urna/internal/station/client"
	"github.com/dmitrijs2005/urna/internal/station/models"
	"github.com/dmitrijs2005/urna/internal/station/outbox"
	"github.com/dmitrijs2005/urna/internal/station/sealer"
)

var (
	// ErrBreakerOpen is the soft failure returned while the breaker fails
	// fast; the ballot stays pending in the outbox.
	ErrBreakerOpen = errors.New("circuit open, ballot stored for retransmission")

	// ErrRejected means the tallier answered with a logical refusal.
	ErrRejected = errors.New("ballot rejected by tallier")
)

// Transmitter owns the submit path and the two background loops: the retry
// sweep over pending ballots and the confirmation auditor over
// acknowledged ones. The transmitter pulls from the outbox; the outbox
// never calls back into the transmitter.
type Transmitter struct {
	stationID string
	sealer    *sealer.Sealer
	outbox    *outbox.Outbox
	client    client.Client
	breaker   *CircuitBreaker
	journal   *audit.Journal
	logger    logging.Logger

	sweepDelay    time.Duration
	sweepInterval time.Duration
	auditDelay    time.Duration
	auditInterval time.Duration
}

func New(stationID string, s *sealer.Sealer, o *outbox.Outbox, c client.Client, b *CircuitBreaker, j *audit.Journal, l logging.Logger) *Transmitter {
	return &Transmitter{
		stationID:     stationID,
		sealer:        s,
		outbox:        o,
		client:        c,
		breaker:       b,
		journal:       j,
		logger:        l.With("module", "transmitter"),
		sweepDelay:    30 * time.Second,
		sweepInterval: 60 * time.Second,
		auditDelay:    45 * time.Second,
		auditInterval: 90 * time.Second,
	}
}

// Submit seals the ballot if needed, stores it durably, and attempts
// delivery. Error classes:
//
//	nil            — acknowledged; outbox entry is acknowledged
//	ErrBreakerOpen — no wire attempt; entry pending
//	ErrRejected    — tallier refused; entry pending
//	other          — transport failure; entry pending, breaker counted it;
//	                 or a seal/append failure, with no wire attempt
func (t *Transmitter) Submit(ctx context.Context, b *models.Ballot) error {
	if !b.Sealed() {
		if err := t.sealer.Seal(b); err != nil {
			return fmt.Errorf("seal: %w", err)
		}
	}

	if err := t.outbox.Append(b); err != nil {
		return fmt.Errorf("outbox append: %w", err)
	}

	return t.transmit(ctx, b)
}

// transmit performs one wire attempt for a ballot already in the outbox.
func (t *Transmitter) transmit(ctx context.Context, b *models.Ballot) error {
	if !t.breaker.Allow() {
		t.logger.Info(ctx, "circuit open, ballot stored for retransmission", "ballot_id", b.ID.String())
		return ErrBreakerOpen
	}

	accepted, err := t.client.SubmitBallot(ctx, b)
	if err != nil {
		t.breaker.Failure()
		t.recordTransmission(ctx, b, false)
		t.logger.Error(ctx, "transmit failed", "ballot_id", b.ID.String(), "error", err.Error())
		return fmt.Errorf("transmit ballot %s: %w", b.ID, err)
	}

	if !accepted {
		t.recordTransmission(ctx, b, false)
		t.logger.Warn(ctx, "ballot rejected by tallier", "ballot_id", b.ID.String())
		return ErrRejected
	}

	t.breaker.Success()
	if err := t.outbox.MarkAcknowledged(b.ID); err != nil {
		t.logger.Warn(ctx, "acknowledge mark failed", "ballot_id", b.ID.String(), "error", err.Error())
	}
	t.recordTransmission(ctx, b, true)
	return nil
}

// RunRetrySweep periodically resubmits pending ballots until ctx is
// cancelled. A sweep aborts as soon as the breaker trips. Each ballot gets
// a short fibonacci-backoff retry around transient transport errors; every
// attempt counts toward the breaker, and the retry stops once it opens.
func (t *Transmitter) RunRetrySweep(ctx context.Context) {
	t.runLoop(ctx, t.sweepDelay, t.sweepInterval, t.sweepOnce)
}

func (t *Transmitter) sweepOnce(ctx context.Context) {
	if t.breaker.Open() {
		t.logger.Info(ctx, "circuit open, postponing retransmission sweep")
		return
	}

	pending := t.outbox.ListPending()
	if len(pending) == 0 {
		return
	}

	t.logger.Info(ctx, "retransmitting pending ballots", "count", len(pending))

	for _, b := range pending {
		backoff := retry.WithMaxRetries(2, retry.NewFibonacci(200*time.Millisecond))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			err := t.transmit(ctx, b)
			if errors.Is(err, client.ErrUnavailable) {
				return retry.RetryableError(err)
			}
			return err
		})
		if err != nil && !errors.Is(err, ErrRejected) && !errors.Is(err, ErrBreakerOpen) {
			t.logger.Warn(ctx, "retransmission failed", "ballot_id", b.ID.String(), "error", err.Error())
		}

		if t.breaker.Open() {
			t.logger.Info(ctx, "circuit opened during sweep, stopping")
			return
		}
	}
}

// RunConfirmationAuditor periodically cross-checks acknowledged ballots
// against the tallier's receipts and demotes any the tallier does not
// hold, so the next sweep retransmits them.
func (t *Transmitter) RunConfirmationAuditor(ctx context.Context) {
	t.runLoop(ctx, t.auditDelay, t.auditInterval, t.auditOnce)
}

func (t *Transmitter) auditOnce(ctx context.Context) {
	acked := t.outbox.ListAcknowledged()
	if len(acked) == 0 {
		return
	}

	ids := make([]string, 0, len(acked))
	for _, b := range acked {
		ids = append(ids, b.ID.String())
	}

	known, err := t.client.CheckReceipts(ctx, ids)
	if err != nil {
		t.logger.Warn(ctx, "receipt check failed", "error", err.Error())
		return
	}

	confirmed := make(map[string]struct{}, len(known))
	for _, id := range known {
		confirmed[id] = struct{}{}
	}

	for _, b := range acked {
		if _, ok := confirmed[b.ID.String()]; ok {
			continue
		}
		t.logger.Warn(ctx, "acknowledged ballot has no receipt, demoting", "ballot_id", b.ID.String())
		if err := t.outbox.MarkPending(b.ID); err != nil {
			t.logger.Warn(ctx, "demote failed", "ballot_id", b.ID.String(), "error", err.Error())
		}
	}
}

func (t *Transmitter) runLoop(ctx context.Context, delay, interval time.Duration, step func(context.Context)) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(delay):
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		step(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (t *Transmitter) recordTransmission(ctx context.Context, b *models.Ballot, ok bool) {
	if err := t.journal.Transmission(b.ID.String(), b.StationID, ok); err != nil {
		t.logger.Error(ctx, "audit journal write failed", "error", err.Error())
	}
}
