package outbox

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/urna/internal/logging"
	"github.com/dmitrijs2005/urna/internal/station/models"
	"github.com/dmitrijs2005/urna/internal/station/sealer"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func sealedBallot(t *testing.T, s *sealer.Sealer, stationID, candidateID string) *models.Ballot {
	t.Helper()
	b := models.NewBallot(stationID, candidateID)
	require.NoError(t, s.Seal(b))
	return b
}

func newTestOutbox(t *testing.T) (*Outbox, string) {
	t.Helper()
	dir := t.TempDir()
	o, err := New(dir, nopLogger{})
	require.NoError(t, err)
	return o, dir
}

func TestAppend_RejectsUnsealedBallot(t *testing.T) {
	o, _ := newTestOutbox(t)

	err := o.Append(models.NewBallot("M01", "C3"))
	assert.Error(t, err)
}

func TestAppend_PersistsFileAndListsPending(t *testing.T) {
	o, dir := newTestOutbox(t)
	s, err := sealer.New()
	require.NoError(t, err)

	b := sealedBallot(t, s, "M01", "C3")
	require.NoError(t, o.Append(b))

	_, statErr := os.Stat(filepath.Join(dir, b.ID.String()+".ballot"))
	assert.NoError(t, statErr)

	pending := o.ListPending()
	require.Len(t, pending, 1)
	assert.Equal(t, b.ID, pending[0].ID)
	assert.Empty(t, o.ListAcknowledged())
}

func TestMarkAcknowledged_MovesBallotAndWritesTransmittedLog(t *testing.T) {
	o, dir := newTestOutbox(t)
	s, err := sealer.New()
	require.NoError(t, err)

	b := sealedBallot(t, s, "M01", "C3")
	require.NoError(t, o.Append(b))
	require.NoError(t, o.MarkAcknowledged(b.ID))

	assert.Empty(t, o.ListPending())
	require.Len(t, o.ListAcknowledged(), 1)

	raw, err := os.ReadFile(filepath.Join(dir, "votos_transmitidos.log"))
	require.NoError(t, err)
	line := strings.TrimSpace(string(raw))
	parts := strings.Split(line, "|")
	require.Len(t, parts, 4)
	assert.Equal(t, b.ID.String(), parts[1])
	assert.Equal(t, "M01", parts[2])
	assert.Equal(t, b.EmittedAtString(), parts[3])
}

func TestMarkAcknowledged_UnknownBallot(t *testing.T) {
	o, _ := newTestOutbox(t)
	assert.Error(t, o.MarkAcknowledged(uuid.New()))
}

func TestMarkPending_DemotesAcknowledgedBallot(t *testing.T) {
	o, _ := newTestOutbox(t)
	s, err := sealer.New()
	require.NoError(t, err)

	b := sealedBallot(t, s, "M01", "C3")
	require.NoError(t, o.Append(b))
	require.NoError(t, o.MarkAcknowledged(b.ID))
	require.NoError(t, o.MarkPending(b.ID))

	require.Len(t, o.ListPending(), 1)
	assert.Empty(t, o.ListAcknowledged())
}

func TestRecover_RehydratesEverythingAsPending(t *testing.T) {
	dir := t.TempDir()
	s, err := sealer.New()
	require.NoError(t, err)

	first, err := New(dir, nopLogger{})
	require.NoError(t, err)

	var originals []*models.Ballot
	for i := 0; i < 10; i++ {
		b := sealedBallot(t, s, "M01", "C3")
		require.NoError(t, first.Append(b))
		originals = append(originals, b)
	}
	// a few acknowledged before the "crash"
	require.NoError(t, first.MarkAcknowledged(originals[0].ID))
	require.NoError(t, first.MarkAcknowledged(originals[1].ID))

	// simulated restart: a fresh outbox over the same directory
	second, err := New(dir, nopLogger{})
	require.NoError(t, err)
	n, err := second.Recover()
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	pending := second.ListPending()
	require.Len(t, pending, 10)

	byID := make(map[uuid.UUID]*models.Ballot, len(pending))
	for _, b := range pending {
		byID[b.ID] = b
	}
	for _, orig := range originals {
		got, ok := byID[orig.ID]
		require.True(t, ok, "ballot %s missing after recovery", orig.ID)
		assert.Equal(t, orig.SealedPayload, got.SealedPayload)
		assert.Equal(t, orig.Signature, got.Signature)
	}
}

func TestRecover_SkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, uuid.NewString()+".ballot"), []byte("not json"), 0o660))

	o, err := New(dir, nopLogger{})
	require.NoError(t, err)

	n, err := o.Recover()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestPrune_RemovesOnlyOldAcknowledged(t *testing.T) {
	o, dir := newTestOutbox(t)
	s, err := sealer.New()
	require.NoError(t, err)

	old := sealedBallot(t, s, "M01", "C1")
	old.EmittedAt = time.Now().Add(-48 * time.Hour).Truncate(time.Second)
	recent := sealedBallot(t, s, "M01", "C2")
	pendingOld := sealedBallot(t, s, "M01", "C3")
	pendingOld.EmittedAt = time.Now().Add(-48 * time.Hour).Truncate(time.Second)

	for _, b := range []*models.Ballot{old, recent, pendingOld} {
		require.NoError(t, o.Append(b))
	}
	require.NoError(t, o.MarkAcknowledged(old.ID))
	require.NoError(t, o.MarkAcknowledged(recent.ID))

	removed := o.Prune(24 * time.Hour)
	assert.Equal(t, 1, removed)

	_, statErr := os.Stat(filepath.Join(dir, old.ID.String()+".ballot"))
	assert.True(t, os.IsNotExist(statErr))

	// the pending ballot survives no matter how old it is
	require.Len(t, o.ListPending(), 1)
	assert.Equal(t, pendingOld.ID, o.ListPending()[0].ID)
}

func TestOutbox_ConcurrentAppendAndTransitions(t *testing.T) {
	o, _ := newTestOutbox(t)
	s, err := sealer.New()
	require.NoError(t, err)

	const workers = 8
	const perWorker = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				b := models.NewBallot("M01", "C3")
				if err := s.Seal(b); err != nil {
					t.Error(err)
					return
				}
				if err := o.Append(b); err != nil {
					t.Error(err)
					return
				}
				if err := o.MarkAcknowledged(b.ID); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Len(t, o.ListAcknowledged(), workers*perWorker)
	assert.Empty(t, o.ListPending())
}
