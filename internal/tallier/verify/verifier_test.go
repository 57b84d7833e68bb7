package verify

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smodels "github.com/dmitrijs2005/urna/internal/station/models"
	"github.com/dmitrijs2005/urna/internal/station/sealer"
	"github.com/dmitrijs2005/urna/internal/tallier/models"
)

func sealedBallot(t *testing.T, s *sealer.Sealer) *smodels.Ballot {
	t.Helper()
	b := smodels.NewBallot("M01", "C3")
	require.NoError(t, s.Seal(b))
	return b
}

func received(b *smodels.Ballot) *models.ReceivedBallot {
	return models.NewReceivedBallot(b.ID, b.StationID, b.EmittedAt, b.SealedPayload, b.Signature)
}

func enrolledVerifier(t *testing.T, s *sealer.Sealer, stationID string) *Verifier {
	t.Helper()
	v := New()
	keyB64, err := s.PublicSigningKeyBase64()
	require.NoError(t, err)
	require.NoError(t, v.RegisterKey(stationID, keyB64))
	return v
}

func TestRegisterKey_RejectsGarbage(t *testing.T) {
	v := New()
	assert.Error(t, v.RegisterKey("M01", "!!not-base64!!"))
	assert.Error(t, v.RegisterKey("M01", "aGVsbG8="))
	assert.False(t, v.HasKey("M01"))
}

func TestRegisterKey_InstallsAndReplaces(t *testing.T) {
	s1, err := sealer.New()
	require.NoError(t, err)
	s2, err := sealer.New()
	require.NoError(t, err)

	v := enrolledVerifier(t, s1, "M01")
	assert.True(t, v.HasKey("M01"))

	// a ballot sealed by s1 verifies
	b := sealedBallot(t, s1)
	assert.True(t, v.VerifySignature(received(b)))

	// replacement: latest key wins, s1 ballots stop verifying
	keyB64, err := s2.PublicSigningKeyBase64()
	require.NoError(t, err)
	require.NoError(t, v.RegisterKey("M01", keyB64))

	assert.False(t, v.VerifySignature(received(sealedBallot(t, s1))))
	assert.True(t, v.VerifySignature(received(sealedBallot(t, s2))))
}

func TestVerifySignature_GenuineBallot(t *testing.T) {
	s, err := sealer.New()
	require.NoError(t, err)
	v := enrolledVerifier(t, s, "M01")

	rb := received(sealedBallot(t, s))
	assert.True(t, v.VerifySignature(rb))
	assert.True(t, rb.Verified)
}

func TestVerifySignature_NoEnrolledKeyFailsClosed(t *testing.T) {
	s, err := sealer.New()
	require.NoError(t, err)
	v := New()

	rb := received(sealedBallot(t, s))
	assert.False(t, v.VerifySignature(rb))
	assert.False(t, rb.Verified)
}

func TestVerifySignature_SingleBitAlterations(t *testing.T) {
	s, err := sealer.New()
	require.NoError(t, err)
	v := enrolledVerifier(t, s, "M01")

	t.Run("payload bit flip", func(t *testing.T) {
		rb := received(sealedBallot(t, s))
		rb.SealedPayload[5] ^= 0x01
		assert.False(t, v.VerifySignature(rb))
	})

	t.Run("signature byte increment", func(t *testing.T) {
		rb := received(sealedBallot(t, s))
		rb.Signature[0]++
		assert.False(t, v.VerifySignature(rb))
	})

	t.Run("station id swap", func(t *testing.T) {
		b := sealedBallot(t, s)
		keyB64, err := s.PublicSigningKeyBase64()
		require.NoError(t, err)
		require.NoError(t, v.RegisterKey("M99", keyB64))

		rb := models.NewReceivedBallot(b.ID, "M99", b.EmittedAt, b.SealedPayload, b.Signature)
		assert.False(t, v.VerifySignature(rb))
	})

	t.Run("timestamp shift", func(t *testing.T) {
		b := sealedBallot(t, s)
		rb := models.NewReceivedBallot(b.ID, b.StationID, b.EmittedAt.Add(time.Second), b.SealedPayload, b.Signature)
		assert.False(t, v.VerifySignature(rb))
	})

	t.Run("id swap", func(t *testing.T) {
		b := sealedBallot(t, s)
		rb := models.NewReceivedBallot(uuid.New(), b.StationID, b.EmittedAt, b.SealedPayload, b.Signature)
		assert.False(t, v.VerifySignature(rb))
	})
}
