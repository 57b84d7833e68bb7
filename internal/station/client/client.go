// Package client is the station's transport to the tallier.
package client

import (
	"context"

	"github.com/dmitrijs2005/urna/internal/station/models"
)

// Client abstracts the tallier RPC surface so the transmitter and the
// operator CLI can be tested against a fake.
type Client interface {
	Close() error

	// SubmitBallot returns the tallier's authoritative acknowledgement.
	// A false return is a logical reject; transport problems come back as
	// errors and leave the acknowledgement undefined.
	SubmitBallot(ctx context.Context, b *models.Ballot) (bool, error)

	Ping(ctx context.Context) error
	FetchServerPublicKey(ctx context.Context) (string, error)

	// RegisterStation enrols the station's key material and stores the
	// returned access token for subsequent calls.
	RegisterStation(ctx context.Context, stationID, wrappedAESKeyB64, signingKeyB64 string) error

	// CheckReceipts returns the subset of ids the tallier has admitted.
	CheckReceipts(ctx context.Context, ballotIDs []string) ([]string, error)
}
