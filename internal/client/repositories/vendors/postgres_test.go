package vendors

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/TheReeds/turisync/internal/client/models"
	"github.com/TheReeds/turisync/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestPostgresUpsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO vendors .* ON CONFLICT \(id\) DO UPDATE SET .*`).
		WithArgs(int64(7), "Vendor X", "crafts", "", "", "", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), &models.Vendor{ID: 7, Name: "Vendor X", Category: "crafts"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresDeleteByID_WrongRowsAffected(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM vendors WHERE id=\$1`).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteByID(context.Background(), 9)
	if err == nil {
		t.Fatalf("expected error for zero rows affected")
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT v\.id, .* FROM vendors v .* WHERE v\.id=\$1`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected common.ErrNotFound, got %v", err)
	}
}

func TestPostgresGetAll_ScansHydratedRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "name", "category", "phone", "email", "address", "municipality_id",
		"m_id", "m_name", "m_district",
	}).
		AddRow(int64(7), "Vendor X", "crafts", "", "", "", int64(3), int64(3), "Township Z", "North").
		AddRow(int64(8), "Vendor Y", "food", "", "", "", nil, nil, nil, nil)

	mock.ExpectQuery(`SELECT v\.id, .* FROM vendors v\s+LEFT JOIN vendor_municipality_links l .* ORDER BY v\.id`).
		WillReturnRows(rows)

	got, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 vendors, got %d", len(got))
	}
	if got[0].Municipality == nil || got[0].Municipality.Name != "Township Z" {
		t.Fatalf("expected hydrated municipality, got %+v", got[0].Municipality)
	}
	if got[1].Municipality != nil {
		t.Fatalf("expected nil municipality for unlinked vendor")
	}
}
