package decrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smodels "github.com/dmitrijs2005/urna/internal/station/models"
	"github.com/dmitrijs2005/urna/internal/station/sealer"
	"github.com/dmitrijs2005/urna/internal/tallier/models"
)

func enrolledPair(t *testing.T, stationID string) (*sealer.Sealer, *Decryptor) {
	t.Helper()

	s, err := sealer.New()
	require.NoError(t, err)
	d, err := New()
	require.NoError(t, err)

	serverKey, err := d.PublicKeyBase64()
	require.NoError(t, err)
	wrapped, err := s.WrapSymmetricKeyFor(serverKey)
	require.NoError(t, err)
	require.NoError(t, d.RegisterStationKey(stationID, wrapped))

	return s, d
}

func received(b *smodels.Ballot) *models.ReceivedBallot {
	return models.NewReceivedBallot(b.ID, b.StationID, b.EmittedAt, b.SealedPayload, b.Signature)
}

func TestDecrypt_RecoversCandidateByteForByte(t *testing.T) {
	s, d := enrolledPair(t, "M01")

	for _, candidate := range []string{"C3", "a-much-longer-candidate-identifier", "ñ-unicode"} {
		b := smodels.NewBallot("M01", candidate)
		require.NoError(t, s.Seal(b))

		rb := received(b)
		require.NoError(t, d.Decrypt(rb))
		assert.Equal(t, candidate, rb.DecryptedCandidateID)
	}
}

func TestDecrypt_UnknownStation(t *testing.T) {
	s, err := sealer.New()
	require.NoError(t, err)
	d, err := New()
	require.NoError(t, err)

	b := smodels.NewBallot("M01", "C3")
	require.NoError(t, s.Seal(b))

	err = d.Decrypt(received(b))
	assert.Error(t, err)
}

func TestDecrypt_MalformedPayloads(t *testing.T) {
	s, d := enrolledPair(t, "M01")

	b := smodels.NewBallot("M01", "C3")
	require.NoError(t, s.Seal(b))

	tests := []struct {
		name   string
		mutate func(rb *models.ReceivedBallot)
	}{
		{"truncated below iv", func(rb *models.ReceivedBallot) { rb.SealedPayload = rb.SealedPayload[:8] }},
		{"ragged block length", func(rb *models.ReceivedBallot) { rb.SealedPayload = rb.SealedPayload[:len(rb.SealedPayload)-3] }},
		{"iv only", func(rb *models.ReceivedBallot) { rb.SealedPayload = rb.SealedPayload[:16] }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rb := received(b)
			rb.SealedPayload = append([]byte(nil), rb.SealedPayload...)
			tc.mutate(rb)

			err := d.Decrypt(rb)
			assert.Error(t, err)
			assert.Empty(t, rb.DecryptedCandidateID)
		})
	}
}

func TestRegisterStationKey_AcceptsWrappedKeyRejectsGarbage(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	s, err := sealer.New()
	require.NoError(t, err)

	serverKey, err := d.PublicKeyBase64()
	require.NoError(t, err)

	// a correctly wrapped 32-byte key registers fine
	wrapped, err := s.WrapSymmetricKeyFor(serverKey)
	require.NoError(t, err)
	assert.NoError(t, d.RegisterStationKey("M01", wrapped))

	// garbage does not
	assert.Error(t, d.RegisterStationKey("M02", "@@@"))
	assert.False(t, d.HasKey("M02"))
}

func TestRegisterStationKey_WrappedForWrongServer(t *testing.T) {
	s, err := sealer.New()
	require.NoError(t, err)

	d1, err := New()
	require.NoError(t, err)
	d2, err := New()
	require.NoError(t, err)

	key1, err := d1.PublicKeyBase64()
	require.NoError(t, err)
	wrapped, err := s.WrapSymmetricKeyFor(key1)
	require.NoError(t, err)

	// d2 cannot unwrap a key wrapped for d1
	assert.Error(t, d2.RegisterStationKey("M01", wrapped))
}
