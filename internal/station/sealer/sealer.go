// Package sealer turns plaintext ballots into sealed, signed wire records
// and exposes the key material the tallier needs to invert that
// transformation.
//
// Sealing is AES-256-CBC with PKCS#7 padding and a fresh random IV per
// ballot, the IV prepended to the ciphertext. The signature is SHA-256 with
// RSA PKCS#1 v1.5 over the ballot's canonical byte string.
package sealer

import (
	"bytes"
	"crypto"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/urna/internal/common"
	"github.com/dmitrijs2005/urna/internal/station/models"
)

const aesKeySize = 32

// Sealer owns a station's signing keypair and symmetric key. Safe for
// concurrent use; the key material never changes after construction.
type Sealer struct {
	signingKey *rsa.PrivateKey
	aesKey     []byte
}

// New generates an RSA-2048 signing keypair and an AES-256 key. A failure
// here means the cryptographic provider is unusable and the station must
// not come up.
func New() (*Sealer, error) {
	signingKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}

	aesKey := make([]byte, aesKeySize)
	if _, err := rand.Read(aesKey); err != nil {
		return nil, fmt.Errorf("generate symmetric key: %w", err)
	}

	return &Sealer{signingKey: signingKey, aesKey: aesKey}, nil
}

// Seal populates the ballot's SealedPayload and Signature in place. The
// plaintext candidate id stays on the record; only the sealed form travels.
func (s *Sealer) Seal(b *models.Ballot) error {
	block, err := aes.NewCipher(s.aesKey)
	if err != nil {
		return fmt.Errorf("init cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return fmt.Errorf("generate iv: %w", err)
	}

	plaintext := pkcs7Pad([]byte(b.CandidateID), aes.BlockSize)
	ciphertext := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, plaintext)

	b.SealedPayload = append(iv, ciphertext...)

	digest := sha256.Sum256(b.SignedBytes())
	signature, err := rsa.SignPKCS1v15(rand.Reader, s.signingKey, crypto.SHA256, digest[:])
	if err != nil {
		return fmt.Errorf("sign ballot: %w", err)
	}
	b.Signature = signature

	return nil
}

// Verify checks the ballot's signature against the station's own public
// key. Used by the operator self-test.
func (s *Sealer) Verify(b *models.Ballot) bool {
	digest := sha256.Sum256(b.SignedBytes())
	err := rsa.VerifyPKCS1v15(&s.signingKey.PublicKey, crypto.SHA256, digest[:], b.Signature)
	return err == nil
}

// Unseal decrypts a sealed payload with the station's own symmetric key.
// Used by the operator self-test to prove the round trip.
func (s *Sealer) Unseal(sealedPayload []byte) (string, error) {
	if len(sealedPayload) < aes.BlockSize || (len(sealedPayload)-aes.BlockSize)%aes.BlockSize != 0 {
		return "", common.ErrDecryptionFailed
	}

	block, err := aes.NewCipher(s.aesKey)
	if err != nil {
		return "", fmt.Errorf("init cipher: %w", err)
	}

	iv := sealedPayload[:aes.BlockSize]
	ciphertext := sealedPayload[aes.BlockSize:]

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return "", err
	}
	return string(unpadded), nil
}

// PublicSigningKeyBase64 returns the station's public signing key as
// base64-encoded X.509 SubjectPublicKeyInfo.
func (s *Sealer) PublicSigningKeyBase64() (string, error) {
	der, err := x509.MarshalPKIXPublicKey(&s.signingKey.PublicKey)
	if err != nil {
		return "", fmt.Errorf("marshal public key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(der), nil
}

// WrapSymmetricKeyFor encrypts the station's AES key under the tallier's
// RSA public key (X.509 SPKI, base64) and returns the wrapped key base64
// encoded. Called once at session start.
func (s *Sealer) WrapSymmetricKeyFor(tallierPublicKeyB64 string) (string, error) {
	der, err := base64.StdEncoding.DecodeString(tallierPublicKeyB64)
	if err != nil {
		return "", fmt.Errorf("decode tallier key: %w", err)
	}

	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return "", fmt.Errorf("parse tallier key: %w", err)
	}

	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return "", common.ErrInvalidKeyMaterial
	}

	wrapped, err := rsa.EncryptPKCS1v15(rand.Reader, pub, s.aesKey)
	if err != nil {
		return "", fmt.Errorf("wrap symmetric key: %w", err)
	}

	return base64.StdEncoding.EncodeToString(wrapped), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
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
