// Package cli is the station operator surface: it wires the sealer,
// outbox, transmitter and eligibility gate together and drives them from a
// small REPL.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/dmitrijs2005/urna/internal/audit"
	"github.com/dmitrijs2005/urna/internal/logging"
	"github.com/dmitrijs2005/urna/internal/station/client"
	"github.com/dmitrijs2005/urna/internal/station/config"
	"github.com/dmitrijs2005/urna/internal/station/eligibility"
	"github.com/dmitrijs2005/urna/internal/station/models"
	"github.com/dmitrijs2005/urna/internal/station/outbox"
	"github.com/dmitrijs2005/urna/internal/station/sealer"
	"github.com/dmitrijs2005/urna/internal/station/transmit"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	sealer      *sealer.Sealer
	outbox      *outbox.Outbox
	apiClient   client.Client
	transmitter *transmit.Transmitter
	validator   *eligibility.Validator
	reader      *bufio.Reader
	enrolled    bool
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	s, err := sealer.New()
	if err != nil {
		return nil, fmt.Errorf("sealer init error: %w", err)
	}

	journal, err := audit.NewJournal(c.AuditDir, "votacion")
	if err != nil {
		return nil, fmt.Errorf("audit journal init error: %w", err)
	}

	o, err := outbox.New(c.OutboxDir, logger)
	if err != nil {
		return nil, fmt.Errorf("outbox init error: %w", err)
	}

	recovered, err := o.Recover()
	if err != nil {
		return nil, fmt.Errorf("outbox recovery error: %w", err)
	}
	if recovered > 0 {
		logger.Info(context.Background(), "recovered pending ballots", "count", recovered)
	}

	apiClient, err := client.NewVoteIngestClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, fmt.Errorf("client init error: %w", err)
	}

	breaker := transmit.NewCircuitBreaker(c.BreakerThreshold, c.BreakerInitialBackoff, c.BreakerMaxBackoff)
	transmitter := transmit.New(c.StationID, s, o, apiClient, breaker, journal, logger)
	validator := eligibility.NewValidator(journal, logger)

	return &App{
		config:      c,
		logger:      logger,
		sealer:      s,
		outbox:      o,
		apiClient:   apiClient,
		transmitter: transmitter,
		validator:   validator,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

// Enrol delivers the station's key material to the tallier: the public
// signing key and the AES key wrapped under the tallier's RSA key. Until
// this succeeds, submissions are refused server-side.
func (a *App) Enrol(ctx context.Context) error {
	serverKey, err := a.apiClient.FetchServerPublicKey(ctx)
	if err != nil {
		return fmt.Errorf("fetch server key: %w", err)
	}

	wrapped, err := a.sealer.WrapSymmetricKeyFor(serverKey)
	if err != nil {
		return fmt.Errorf("wrap symmetric key: %w", err)
	}

	signing, err := a.sealer.PublicSigningKeyBase64()
	if err != nil {
		return fmt.Errorf("export signing key: %w", err)
	}

	if err := a.apiClient.RegisterStation(ctx, a.config.StationID, wrapped, signing); err != nil {
		return fmt.Errorf("register station: %w", err)
	}

	a.enrolled = true
	a.logger.Info(ctx, "station enrolled", "station_id", a.config.StationID)
	return nil
}

// Vote runs one voter through the eligibility gate and, if admitted,
// seals and submits their ballot. The voter is marked as having voted the
// moment the ballot is durably queued, whatever the delivery outcome.
func (a *App) Vote(ctx context.Context) error {
	document, err := getDocument(os.Stdout)
	if err != nil {
		return err
	}

	candidate, err := getSimpleText(a.reader, "Enter candidate id", os.Stdout)
	if err != nil {
		return err
	}

	voter := &eligibility.Voter{
		Document:          document,
		AssignedStationID: a.config.StationID,
		HasVoted:          a.validator.HasVoted(document),
	}

	if res := a.validator.Check(voter, a.config.StationID); !res.Eligible {
		printlnFn("Vote refused: " + res.Reason)
		return errors.New(res.Reason)
	}

	b := models.NewBallot(a.config.StationID, candidate)
	err = a.transmitter.Submit(ctx, b)

	switch {
	case err == nil:
		printlnFn("Ballot acknowledged by the tallier.")
	case errors.Is(err, transmit.ErrBreakerOpen):
		printlnFn("Tallier unreachable; ballot stored and will be retransmitted.")
	case errors.Is(err, transmit.ErrRejected):
		printlnFn("Tallier refused the ballot; it stays queued. See the audit journal.")
	default:
		queued := false
		for _, p := range a.outbox.ListPending() {
			if p.ID == b.ID {
				queued = true
				break
			}
		}
		if !queued {
			printlnFn("Ballot could not be stored: " + err.Error())
			return err
		}
		printlnFn("Transmission failed; ballot stored and will be retransmitted.")
	}

	// the ballot is in the outbox in every branch that reaches here, so the
	// voter has voted
	a.validator.RegisterVote(document, a.config.StationID)
	return nil
}

// Results prints the station-side delivery state.
func (a *App) Results(ctx context.Context) error {
	printlnFn(fmt.Sprintf("pending: %d, acknowledged: %d",
		len(a.outbox.ListPending()), len(a.outbox.ListAcknowledged())))
	return nil
}

// SelfTest proves the cryptographic round trip on this station: seal,
// verify the signature, unseal, and compare.
func (a *App) SelfTest(ctx context.Context) error {
	const candidate = "selftest-candidate"

	b := models.NewBallot(a.config.StationID, candidate)
	if err := a.sealer.Seal(b); err != nil {
		printlnFn("Self-test FAILED: seal: " + err.Error())
		return err
	}

	if !a.sealer.Verify(b) {
		printlnFn("Self-test FAILED: signature did not verify")
		return errors.New("signature did not verify")
	}

	plain, err := a.sealer.Unseal(b.SealedPayload)
	if err != nil {
		printlnFn("Self-test FAILED: unseal: " + err.Error())
		return err
	}
	if plain != candidate {
		printlnFn("Self-test FAILED: round trip mismatch")
		return errors.New("round trip mismatch")
	}

	printlnFn("Self-test OK")
	return nil
}

// Ping checks tallier reachability.
func (a *App) Ping(ctx context.Context) error {
	if err := a.apiClient.Ping(ctx); err != nil {
		printlnFn("Tallier unreachable: " + err.Error())
		return err
	}
	printlnFn("Tallier OK")
	return nil
}

func (a *App) isEnrolled() bool {
	return a.enrolled
}

// Run starts the background loops, attempts enrolment, and hands control
// to the REPL. It returns when the operator exits; the loops are drained
// before returning.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.Enrol(ctx); err != nil {
		a.logger.Warn(ctx, "enrolment failed, use the 'enrol' command once the tallier is reachable", "error", err.Error())
	}

	var wg sync.WaitGroup
	for _, loop := range []func(context.Context){
		a.outbox.RunPersistenceLoop,
		a.transmitter.RunRetrySweep,
		a.transmitter.RunConfirmationAuditor,
	} {
		wg.Add(1)
		go func(loop func(context.Context)) {
			defer wg.Done()
			loop(ctx)
		}(loop)
	}

	runREPL(ctx, a, func() string { return a.config.StationID }, bufio.NewScanner(os.Stdin))

	cancel()
	wg.Wait()

	if err := a.apiClient.Close(); err != nil {
		a.logger.Warn(context.Background(), "client close failed", "error", err.Error())
	}
}
