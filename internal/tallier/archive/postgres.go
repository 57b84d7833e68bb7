package archive

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/urna/internal/dbx"
	"github.com/dmitrijs2005/urna/internal/tallier/archive/migrations"
	"github.com/dmitrijs2005/urna/internal/tallier/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Open connects to PostgreSQL, runs the embedded migrations and returns a
// ready repository together with the handle the caller must close.
func Open(ctx context.Context, dsn string) (*PostgresRepository, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.UpContext(ctx, db, "."); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("migration error: %w", err)
	}

	return NewPostgresRepository(db), db, nil
}

// SaveCounted inserts a counted ballot. Replayed inserts with the same id
// are ignored: the dedup set upstream already guarantees single admission,
// so a conflict here can only be a crash-replay artifact.
func (r *PostgresRepository) SaveCounted(ctx context.Context, b *models.ReceivedBallot) error {
	query := `
		INSERT INTO counted_ballots (id, station_id, candidate_id, emitted_at, received_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING;
	`
	_, err := r.db.ExecContext(ctx, query,
		b.ID.String(), b.StationID, b.DecryptedCandidateID, b.EmittedAt, b.ReceivedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// CountArchived returns the number of archived ballots.
func (r *PostgresRepository) CountArchived(ctx context.Context) (int64, error) {
	var n int64
	row := r.db.QueryRowContext(ctx, `SELECT count(*) FROM counted_ballots;`)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
