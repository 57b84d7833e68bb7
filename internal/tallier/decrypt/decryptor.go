// Package decrypt recovers the plaintext candidate id from a sealed
// payload using the station's unwrapped symmetric key.
package decrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/urna/internal/common"
	"github.com/dmitrijs2005/urna/internal/tallier/models"
)

const aesKeySize = 32

// Decryptor owns the tallier RSA keypair and the station_id → AES key map.
// Station keys arrive wrapped under the tallier's public key and are
// unwrapped once, at enrolment. Safe for concurrent use.
type Decryptor struct {
	keyPair *rsa.PrivateKey

	mu   sync.RWMutex
	keys map[string][]byte
}

// New generates the tallier RSA-2048 keypair. A failure here means the
// cryptographic provider is unusable and the tallier must not come up.
func New() (*Decryptor, error) {
	keyPair, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, fmt.Errorf("generate keypair: %w", err)
	}
	return &Decryptor{keyPair: keyPair, keys: make(map[string][]byte)}, nil
}

// PublicKeyBase64 returns the tallier public key as base64 X.509 SPKI,
// for stations to wrap their symmetric keys under.
func (d *Decryptor) PublicKeyBase64() (string, error) {
	der, err := x509.MarshalPKIXPublicKey(&d.keyPair.PublicKey)
	if err != nil {
		return "", fmt.Errorf("marshal public key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(der), nil
}

// RegisterStationKey unwraps a station's AES key and installs it,
// replacing any previous key for that station.
func (d *Decryptor) RegisterStationKey(stationID, wrappedKeyB64 string) error {
	wrapped, err := base64.StdEncoding.DecodeString(wrappedKeyB64)
	if err != nil {
		return fmt.Errorf("decode wrapped key: %w", err)
	}

	key, err := rsa.DecryptPKCS1v15(rand.Reader, d.keyPair, wrapped)
	if err != nil {
		return fmt.Errorf("unwrap station key: %w", err)
	}
	if len(key) != aesKeySize {
		return common.ErrInvalidKeyMaterial
	}

	d.mu.Lock()
	d.keys[stationID] = key
	d.mu.Unlock()
	return nil
}

// HasKey reports whether the station has a registered symmetric key.
func (d *Decryptor) HasKey(stationID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.keys[stationID]
	return ok
}

// Decrypt splits the sealed payload into IV and ciphertext, decrypts it
// with the station's key and installs the plaintext candidate id on the
// ballot. Any failure rejects the ballot.
func (d *Decryptor) Decrypt(b *models.ReceivedBallot) error {
	d.mu.RLock()
	key, ok := d.keys[b.StationID]
	d.mu.RUnlock()
	if !ok {
		return common.ErrUnknownStation
	}

	payload := b.SealedPayload
	if len(payload) < aes.BlockSize || (len(payload)-aes.BlockSize)%aes.BlockSize != 0 {
		return common.ErrDecryptionFailed
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("init cipher: %w", err)
	}

	iv := payload[:aes.BlockSize]
	ciphertext := payload[aes.BlockSize:]

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return err
	}

	b.DecryptedCandidateID = string(unpadded)
	return nil
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, common.ErrDecryptionFailed
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, common.ErrDecryptionFailed
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, common.ErrDecryptionFailed
		}
	}
	return data[:len(data)-n], nil
}
