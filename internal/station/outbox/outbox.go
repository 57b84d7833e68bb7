// Package outbox implements the station's durable at-least-once delivery
// buffer. Every sealed ballot lives here from append to acknowledgement,
// mirrored to one file per ballot under a configured directory.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/urna/internal/common"
	"github.com/dmitrijs2005/urna/internal/filex"
	"github.com/dmitrijs2005/urna/internal/logging"
	"github.com/dmitrijs2005/urna/internal/station/models"
)

const (
	ballotFileExt      = ".ballot"
	transmittedLogName = "votos_transmitidos.log"
)

// Outbox holds ballots in memory keyed by id, with a filesystem mirror.
// Acknowledged status is in-memory only: after a restart every recovered
// ballot is pending again, and the tallier's dedup set absorbs the
// resulting retries. Safe for concurrent use.
type Outbox struct {
	dir    string
	logger logging.Logger

	mu      sync.RWMutex
	ballots map[uuid.UUID]*models.Ballot
	acked   map[uuid.UUID]bool

	persistDelay    time.Duration
	persistInterval time.Duration
}

// New creates an outbox rooted at dir, creating the directory if needed.
func New(dir string, logger logging.Logger) (*Outbox, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("outbox dir: %w", err)
	}

	return &Outbox{
		dir:             abs,
		logger:          logger.With("module", "outbox"),
		ballots:         make(map[uuid.UUID]*models.Ballot),
		acked:           make(map[uuid.UUID]bool),
		persistDelay:    30 * time.Second,
		persistInterval: 60 * time.Second,
	}, nil
}

// Append inserts a sealed ballot as pending and persists it to disk before
// returning success. The file write is the durability boundary.
func (o *Outbox) Append(b *models.Ballot) error {
	if !b.Sealed() {
		return common.ErrNotSealed
	}

	o.mu.Lock()
	o.ballots[b.ID] = b
	o.acked[b.ID] = false
	o.mu.Unlock()

	if err := o.persist(b); err != nil {
		return fmt.Errorf("persist ballot %s: %w", b.ID, err)
	}

	return nil
}

// MarkAcknowledged transitions a ballot to acknowledged and appends a line
// to the transmitted log.
func (o *Outbox) MarkAcknowledged(id uuid.UUID) error {
	o.mu.Lock()
	b, ok := o.ballots[id]
	if ok {
		o.acked[id] = true
	}
	o.mu.Unlock()

	if !ok {
		return common.ErrBallotNotFound
	}

	line := fmt.Sprintf("%s|%s|%s|%s",
		time.Now().Format(time.RFC3339), b.ID, b.StationID, b.EmittedAtString())
	if err := filex.AppendLine(filepath.Join(o.dir, transmittedLogName), line); err != nil {
		o.logger.Warn(context.Background(), "transmitted log append failed", "error", err.Error())
	}

	return nil
}

// MarkPending demotes a ballot from acknowledged back to pending. Used by
// the confirmation auditor when the tallier does not hold a receipt.
func (o *Outbox) MarkPending(id uuid.UUID) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.ballots[id]; !ok {
		return common.ErrBallotNotFound
	}
	o.acked[id] = false
	return nil
}

// ListPending returns every ballot not yet acknowledged.
func (o *Outbox) ListPending() []*models.Ballot {
	return o.list(false)
}

// ListAcknowledged returns every acknowledged ballot.
func (o *Outbox) ListAcknowledged() []*models.Ballot {
	return o.list(true)
}

func (o *Outbox) list(acked bool) []*models.Ballot {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]*models.Ballot, 0, len(o.ballots))
	for id, b := range o.ballots {
		if o.acked[id] == acked {
			out = append(out, b)
		}
	}
	return out
}

// Recover scans the directory and rehydrates every ballot file as pending,
// regardless of its state before the restart. Returns the number of
// ballots recovered. Unreadable files are skipped with a warning.
func (o *Outbox) Recover() (int, error) {
	entries, err := os.ReadDir(o.dir)
	if err != nil {
		return 0, fmt.Errorf("scan outbox dir: %w", err)
	}

	recovered := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ballotFileExt) {
			continue
		}

		path := filepath.Join(o.dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			o.logger.Warn(context.Background(), "unreadable ballot file", "path", path, "error", err.Error())
			continue
		}

		var b models.Ballot
		if err := json.Unmarshal(raw, &b); err != nil {
			o.logger.Warn(context.Background(), "corrupt ballot file", "path", path, "error", err.Error())
			continue
		}

		o.mu.Lock()
		o.ballots[b.ID] = &b
		o.acked[b.ID] = false
		o.mu.Unlock()
		recovered++
	}

	return recovered, nil
}

// Prune deletes acknowledged ballots older than age, together with their
// files. Returns the number of ballots removed.
func (o *Outbox) Prune(age time.Duration) int {
	cutoff := time.Now().Add(-age)

	o.mu.Lock()
	var victims []*models.Ballot
	for id, b := range o.ballots {
		if o.acked[id] && b.EmittedAt.Before(cutoff) {
			victims = append(victims, b)
		}
	}
	for _, b := range victims {
		delete(o.ballots, b.ID)
		delete(o.acked, b.ID)
	}
	o.mu.Unlock()

	for _, b := range victims {
		if err := os.Remove(o.filePath(b.ID)); err != nil && !os.IsNotExist(err) {
			o.logger.Warn(context.Background(), "prune remove failed", "ballot_id", b.ID.String(), "error", err.Error())
		}
	}

	return len(victims)
}

// RunPersistenceLoop periodically re-persists every held ballot until ctx
// is cancelled. It guards against mirror loss between the Append fsync and
// a crash of the underlying volume metadata.
func (o *Outbox) RunPersistenceLoop(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(o.persistDelay):
	}

	ticker := time.NewTicker(o.persistInterval)
	defer ticker.Stop()

	for {
		o.persistAll(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (o *Outbox) persistAll(ctx context.Context) {
	o.mu.RLock()
	ballots := make([]*models.Ballot, 0, len(o.ballots))
	for _, b := range o.ballots {
		ballots = append(ballots, b)
	}
	o.mu.RUnlock()

	for _, b := range ballots {
		if err := o.persist(b); err != nil {
			o.logger.Warn(ctx, "periodic persist failed", "ballot_id", b.ID.String(), "error", err.Error())
		}
	}
}

func (o *Outbox) persist(b *models.Ballot) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return filex.WriteFileSync(o.filePath(b.ID), raw)
}

func (o *Outbox) filePath(id uuid.UUID) string {
	return filepath.Join(o.dir, id.String()+ballotFileExt)
}
