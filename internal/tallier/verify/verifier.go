// Package verify authenticates received ballots against enrolled station
// signing keys.
package verify

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/urna/internal/common"
	"github.com/dmitrijs2005/urna/internal/tallier/models"
)

// Verifier holds the station_id → public key map. Keys install only
// through RegisterKey (out-of-band enrolment); a key arriving inline with
// a submission is never trusted, so a forged ballot cannot bring its own
// verification key. Re-registration replaces the previous key (latest
// wins). Safe for concurrent use.
type Verifier struct {
	mu   sync.RWMutex
	keys map[string]*rsa.PublicKey
}

func New() *Verifier {
	return &Verifier{keys: make(map[string]*rsa.PublicKey)}
}

// RegisterKey parses a base64 X.509 SubjectPublicKeyInfo payload and
// installs it for the station, replacing any previous key.
func (v *Verifier) RegisterKey(stationID, publicKeyB64 string) error {
	der, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return fmt.Errorf("decode station key: %w", err)
	}

	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return fmt.Errorf("parse station key: %w", err)
	}

	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return common.ErrInvalidKeyMaterial
	}

	v.mu.Lock()
	v.keys[stationID] = pub
	v.mu.Unlock()
	return nil
}

// HasKey reports whether the station has an enrolled signing key.
func (v *Verifier) HasKey(stationID string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.keys[stationID]
	return ok
}

// VerifySignature checks the ballot signature over the canonical byte
// string. A ballot from a station with no enrolled key fails closed.
func (v *Verifier) VerifySignature(b *models.ReceivedBallot) bool {
	v.mu.RLock()
	pub, ok := v.keys[b.StationID]
	v.mu.RUnlock()
	if !ok {
		return false
	}

	digest := sha256.Sum256(b.SignedBytes())
	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], b.Signature); err != nil {
		return false
	}

	b.Verified = true
	return true
}
