package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/urna/internal/audit"
	"github.com/dmitrijs2005/urna/internal/logging"
	"github.com/dmitrijs2005/urna/internal/station/config"
	"github.com/dmitrijs2005/urna/internal/station/eligibility"
	"github.com/dmitrijs2005/urna/internal/station/models"
	"github.com/dmitrijs2005/urna/internal/station/outbox"
	"github.com/dmitrijs2005/urna/internal/station/sealer"
	"github.com/dmitrijs2005/urna/internal/station/transmit"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// fakeAPI acknowledges every submission and remembers the enrolment.
type fakeAPI struct {
	enrolled  bool
	submitted int
	offline   bool
}

func (f *fakeAPI) Close() error { return nil }

func (f *fakeAPI) SubmitBallot(ctx context.Context, b *models.Ballot) (bool, error) {
	if f.offline {
		return false, io.ErrUnexpectedEOF
	}
	f.submitted++
	return true, nil
}

func (f *fakeAPI) Ping(ctx context.Context) error { return nil }

func (f *fakeAPI) FetchServerPublicKey(ctx context.Context) (string, error) {
	// the Vote path never calls this, and no test here enrols through the fake
	return "", io.ErrUnexpectedEOF
}

func (f *fakeAPI) RegisterStation(ctx context.Context, stationID, wrappedAESKeyB64, signingKeyB64 string) error {
	f.enrolled = true
	return nil
}

func (f *fakeAPI) CheckReceipts(ctx context.Context, ballotIDs []string) ([]string, error) {
	return ballotIDs, nil
}

func newTestApp(t *testing.T) (*App, *fakeAPI) {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.OutboxDir = t.TempDir()
	cfg.AuditDir = t.TempDir()

	s, err := sealer.New()
	require.NoError(t, err)
	journal, err := audit.NewJournal(cfg.AuditDir, "votacion")
	require.NoError(t, err)
	o, err := outbox.New(cfg.OutboxDir, nopLogger{})
	require.NoError(t, err)

	api := &fakeAPI{}
	breaker := transmit.NewCircuitBreaker(cfg.BreakerThreshold, cfg.BreakerInitialBackoff, cfg.BreakerMaxBackoff)

	app := &App{
		config:      cfg,
		logger:      nopLogger{},
		sealer:      s,
		outbox:      o,
		apiClient:   api,
		transmitter: transmit.New(cfg.StationID, s, o, api, breaker, journal, nopLogger{}),
		validator:   eligibility.NewValidator(journal, nopLogger{}),
		reader:      bufio.NewReader(strings.NewReader("")),
	}
	return app, api
}

func stubInputs(t *testing.T, document, candidate string) {
	t.Helper()

	origDoc, origText := getDocument, getSimpleText
	t.Cleanup(func() { getDocument, getSimpleText = origDoc, origText })

	getDocument = func(io.Writer) (string, error) { return document, nil }
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return candidate, nil }
}

func TestVote_HappyPath(t *testing.T) {
	captureOutput(t)
	stubInputs(t, "12345678", "C3")
	app, api := newTestApp(t)

	require.NoError(t, app.Vote(context.Background()))

	assert.Equal(t, 1, api.submitted)
	assert.Len(t, app.outbox.ListAcknowledged(), 1)
	assert.True(t, app.validator.HasVoted("12345678"))
}

func TestVote_SecondAttemptRefused(t *testing.T) {
	captureOutput(t)
	stubInputs(t, "12345678", "C3")
	app, api := newTestApp(t)

	require.NoError(t, app.Vote(context.Background()))
	err := app.Vote(context.Background())

	assert.Error(t, err)
	assert.Equal(t, 1, api.submitted, "a refused voter emits no ballot")
}

func TestVote_OfflineStoresBallotAndStillMarksVoter(t *testing.T) {
	captureOutput(t)
	stubInputs(t, "12345678", "C3")
	app, api := newTestApp(t)
	api.offline = true

	require.NoError(t, app.Vote(context.Background()))

	assert.Len(t, app.outbox.ListPending(), 1)
	assert.True(t, app.validator.HasVoted("12345678"))
}

func TestSelfTest_Passes(t *testing.T) {
	lines := captureOutput(t)
	app, _ := newTestApp(t)

	require.NoError(t, app.SelfTest(context.Background()))
	assert.Contains(t, *lines, "Self-test OK")
}

func TestResults_ReportsCounts(t *testing.T) {
	lines := captureOutput(t)
	stubInputs(t, "12345678", "C3")
	app, _ := newTestApp(t)

	require.NoError(t, app.Vote(context.Background()))
	require.NoError(t, app.Results(context.Background()))

	assert.Contains(t, *lines, "pending: 0, acknowledged: 1")
}
