// Package archive persists counted ballots to PostgreSQL for post-election
// reconciliation. The archive is strictly downstream of the aggregator:
// a write failure is logged by the caller but never affects an
// acknowledgement.
package archive

import (
	"context"

	"github.com/dmitrijs2005/urna/internal/tallier/models"
)

// Repository stores counted ballots.
type Repository interface {
	SaveCounted(ctx context.Context, b *models.ReceivedBallot) error
	CountArchived(ctx context.Context) (int64, error)
}
