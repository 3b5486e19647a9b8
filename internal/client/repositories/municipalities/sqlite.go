// Package municipalities provides cache repositories for municipality
// records, backed by SQLite on devices and Postgres in the shared-cache
// deployment.
package municipalities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/TheReeds/turisync/internal/client/models"
	"github.com/TheReeds/turisync/internal/common"
	"github.com/TheReeds/turisync/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// UpsertRef upserts the basic projection. Fields the projection does not
// carry are left untouched on conflict and default to '' on insert, to be
// filled by a later full fetch.
func (r *SQLiteRepository) UpsertRef(ctx context.Context, ref models.MunicipalityRef) error {
	query := `INSERT INTO municipalities (id, name, district)
			VALUES (?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name,
				district = excluded.district
	`
	if _, err := r.db.ExecContext(ctx, query, ref.ID, ref.Name, ref.District); err != nil {
		return fmt.Errorf("failed to upsert municipality ref: %w", err)
	}
	return nil
}

// Upsert overwrites the full record by id.
func (r *SQLiteRepository) Upsert(ctx context.Context, m *models.Municipality) error {
	query := `INSERT INTO municipalities (id, name, district, province, region, description, image_url)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name,
				district = excluded.district,
				province = excluded.province,
				region = excluded.region,
				description = excluded.description,
				image_url = excluded.image_url
	`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Name, m.District, m.Province, m.Region, m.Description, m.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to upsert municipality: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) UpsertAll(ctx context.Context, ms []models.Municipality) error {
	for i := range ms {
		if err := r.Upsert(ctx, &ms[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Municipality, error) {
	query := `SELECT id, name, district, province, region, description, image_url
			FROM municipalities ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select municipalities: %w", err)
	}
	defer rows.Close()

	var result []models.Municipality
	for rows.Next() {
		var item models.Municipality
		if err := rows.Scan(&item.ID, &item.Name, &item.District,
			&item.Province, &item.Region, &item.Description, &item.ImageURL); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Municipality, error) {
	query := `SELECT id, name, district, province, region, description, image_url
			FROM municipalities WHERE id=?`
	row := r.db.QueryRowContext(ctx, query, id)

	m := &models.Municipality{}
	if err := row.Scan(&m.ID, &m.Name, &m.District,
		&m.Province, &m.Region, &m.Description, &m.ImageURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return m, nil
}
