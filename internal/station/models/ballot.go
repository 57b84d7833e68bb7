// Package models defines the station-side ballot record.
package models

import (
	"time"

	"github.com/google/uuid"
)

// EmittedAtLayout is the wire layout of ballot timestamps: ISO-8601 with
// second resolution and no zone designator.
const EmittedAtLayout = "2006-01-02T15:04:05"

// Ballot is a single voter's choice. It is mutable only until sealing:
// Seal populates SealedPayload and Signature, after which the record must
// not change (the signature covers every other field).
type Ballot struct {
	ID            uuid.UUID `json:"id"`
	StationID     string    `json:"station_id"`
	EmittedAt     time.Time `json:"emitted_at"`
	CandidateID   string    `json:"candidate_id"`
	SealedPayload []byte    `json:"sealed_payload,omitempty"`
	Signature     []byte    `json:"signature,omitempty"`
}

// NewBallot creates an unsealed ballot with a fresh id and the current
// wall-clock time truncated to second resolution.
func NewBallot(stationID, candidateID string) *Ballot {
	return &Ballot{
		ID:          uuid.New(),
		StationID:   stationID,
		EmittedAt:   time.Now().Truncate(time.Second),
		CandidateID: candidateID,
	}
}

// EmittedAtString returns the timestamp exactly as it travels on the wire
// and as it enters the signature input.
func (b *Ballot) EmittedAtString() string {
	return b.EmittedAt.Format(EmittedAtLayout)
}

// Sealed reports whether the ballot carries a payload and a signature.
func (b *Ballot) Sealed() bool {
	return len(b.SealedPayload) > 0 && len(b.Signature) > 0
}

// SignedBytes returns the canonical byte string the signature covers:
// UTF-8(id) ‖ UTF-8(station_id) ‖ UTF-8(emitted_at) ‖ sealed_payload,
// in that order and with no separator. The verifier recomputes this
// bit-for-bit.
func (b *Ballot) SignedBytes() []byte {
	header := b.ID.String() + b.StationID + b.EmittedAtString()
	out := make([]byte, 0, len(header)+len(b.SealedPayload))
	out = append(out, header...)
	out = append(out, b.SealedPayload...)
	return out
}
