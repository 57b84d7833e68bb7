// Package models defines the tallier-side view of a ballot.
package models

import (
	"time"

	"github.com/google/uuid"
)

// EmittedAtLayout matches the wire layout of ballot timestamps.
const EmittedAtLayout = "2006-01-02T15:04:05"

// ReceivedBallot is a ballot as observed by the tallier. The lifecycle
// flags are monotonic: once Verified or Counted turns true it never turns
// back, and Counted implies Verified.
type ReceivedBallot struct {
	ID            uuid.UUID
	StationID     string
	EmittedAt     time.Time
	ReceivedAt    time.Time
	SealedPayload []byte
	Signature     []byte

	DecryptedCandidateID string
	Verified             bool
	Counted              bool
}

// NewReceivedBallot stamps the arrival time on a freshly received ballot.
func NewReceivedBallot(id uuid.UUID, stationID string, emittedAt time.Time, sealedPayload, signature []byte) *ReceivedBallot {
	return &ReceivedBallot{
		ID:            id,
		StationID:     stationID,
		EmittedAt:     emittedAt,
		ReceivedAt:    time.Now(),
		SealedPayload: sealedPayload,
		Signature:     signature,
	}
}

// EmittedAtString returns the timestamp exactly as it entered the
// signature input on the station.
func (b *ReceivedBallot) EmittedAtString() string {
	return b.EmittedAt.Format(EmittedAtLayout)
}

// SignedBytes recomputes the canonical byte string the station signed:
// UTF-8(id) ‖ UTF-8(station_id) ‖ UTF-8(emitted_at) ‖ sealed_payload.
func (b *ReceivedBallot) SignedBytes() []byte {
	header := b.ID.String() + b.StationID + b.EmittedAtString()
	out := make([]byte, 0, len(header)+len(b.SealedPayload))
	out = append(out, header...)
	out = append(out, b.SealedPayload...)
	return out
}
