package archive

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/urna/internal/tallier/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func countedBallot() *models.ReceivedBallot {
	b := models.NewReceivedBallot(uuid.New(), "M01", time.Now().Truncate(time.Second), nil, nil)
	b.DecryptedCandidateID = "C3"
	b.Verified = true
	b.Counted = true
	return b
}

func TestSaveCounted_Inserts(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	b := countedBallot()

	mock.ExpectExec(`INSERT INTO counted_ballots .* ON CONFLICT \(id\) DO NOTHING;`).
		WithArgs(b.ID.String(), "M01", "C3", b.EmittedAt, b.ReceivedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveCounted(context.Background(), b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSaveCounted_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO counted_ballots`).
		WillReturnError(errors.New("connection reset"))

	if err := repo.SaveCounted(context.Background(), countedBallot()); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestCountArchived(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM counted_ballots;`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	n, err := repo.CountArchived(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 42 {
		t.Fatalf("got %d want 42", n)
	}
}
