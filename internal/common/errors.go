// Package common defines shared constants and sentinel errors used across
// station and tallier layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Pipeline rejections. Each maps to exactly one audit record kind.
	ErrDuplicateBallot    = errors.New("duplicate ballot")
	ErrSignatureInvalid   = errors.New("signature verification failed")
	ErrDecryptionFailed   = errors.New("decryption failed")
	ErrMissingCandidate   = errors.New("missing decrypted candidate")
	ErrUnknownStation     = errors.New("unknown station")
	ErrStationNotEnrolled = errors.New("station not enrolled")

	// Key material errors.
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// Outbox errors.
	ErrBallotNotFound = errors.New("ballot not found")
	ErrNotSealed      = errors.New("ballot not sealed")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Generic/internal flow control.
	ErrorInternal = errors.New("internal error")
)
