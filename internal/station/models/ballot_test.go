package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBallot_PopulatesIdentity(t *testing.T) {
	b := NewBallot("M01", "C3")

	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, "M01", b.StationID)
	assert.Equal(t, "C3", b.CandidateID)
	assert.Equal(t, 0, b.EmittedAt.Nanosecond())
	assert.False(t, b.Sealed())
}

func TestBallot_EmittedAtString(t *testing.T) {
	b := &Ballot{EmittedAt: time.Date(2026, 5, 31, 9, 30, 15, 0, time.UTC)}
	assert.Equal(t, "2026-05-31T09:30:15", b.EmittedAtString())
}

func TestBallot_SignedBytes_CanonicalOrder(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := &Ballot{
		ID:            id,
		StationID:     "M01",
		EmittedAt:     time.Date(2026, 5, 31, 9, 30, 15, 0, time.UTC),
		SealedPayload: []byte{0xAA, 0xBB},
	}

	want := append([]byte(id.String()+"M01"+"2026-05-31T09:30:15"), 0xAA, 0xBB)
	assert.Equal(t, want, b.SignedBytes())
}

func TestBallot_SignedBytes_EmptyPayload(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	b := &Ballot{
		ID:        id,
		StationID: "M02",
		EmittedAt: time.Date(2026, 5, 31, 9, 30, 15, 0, time.UTC),
	}

	assert.Equal(t, []byte(id.String()+"M02"+"2026-05-31T09:30:15"), b.SignedBytes())
}

func TestBallot_JSONRoundTrip_PreservesSealedBytes(t *testing.T) {
	b := NewBallot("M01", "C3")
	b.SealedPayload = []byte{1, 2, 3, 4}
	b.Signature = []byte{5, 6, 7, 8}

	raw, err := json.Marshal(b)
	require.NoError(t, err)

	var got Ballot
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, b.StationID, got.StationID)
	assert.True(t, b.EmittedAt.Equal(got.EmittedAt))
	assert.Equal(t, b.CandidateID, got.CandidateID)
	assert.Equal(t, b.SealedPayload, got.SealedPayload)
	assert.Equal(t, b.Signature, got.Signature)
}
