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

// PostgresRepository implements Repository over Postgres for the shared-cache
// deployment.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) UpsertRef(ctx context.Context, ref models.MunicipalityRef) error {
	query := `INSERT INTO municipalities (id, name, district)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name,
				district = EXCLUDED.district
	`
	if _, err := r.db.ExecContext(ctx, query, ref.ID, ref.Name, ref.District); err != nil {
		return fmt.Errorf("failed to upsert municipality ref: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, m *models.Municipality) error {
	query := `INSERT INTO municipalities (id, name, district, province, region, description, image_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name,
				district = EXCLUDED.district,
				province = EXCLUDED.province,
				region = EXCLUDED.region,
				description = EXCLUDED.description,
				image_url = EXCLUDED.image_url
	`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Name, m.District, m.Province, m.Region, m.Description, m.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to upsert municipality: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpsertAll(ctx context.Context, ms []models.Municipality) error {
	for i := range ms {
		if err := r.Upsert(ctx, &ms[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Municipality, error) {
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

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Municipality, error) {
	query := `SELECT id, name, district, province, region, description, image_url
			FROM municipalities WHERE id=$1`
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
