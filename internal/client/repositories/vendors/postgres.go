package vendors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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

func (r *PostgresRepository) Upsert(ctx context.Context, v *models.Vendor) error {
	query := `INSERT INTO vendors (id, name, category, phone, email, address, municipality_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name,
				category = EXCLUDED.category,
				phone = EXCLUDED.phone,
				email = EXCLUDED.email,
				address = EXCLUDED.address,
				municipality_id = EXCLUDED.municipality_id
	`
	_, err := r.db.ExecContext(ctx, query,
		v.ID, v.Name, v.Category, v.Phone, v.Email, v.Address, v.MunicipalityID)
	if err != nil {
		return fmt.Errorf("failed to upsert vendor: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpsertAll(ctx context.Context, vs []models.Vendor) error {
	for i := range vs {
		if err := r.Upsert(ctx, &vs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Vendor, error) {
	rows, err := r.db.QueryContext(ctx, hydratingSelect+` ORDER BY v.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select vendors: %w", err)
	}
	defer rows.Close()
	return scanVendors(rows)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Vendor, error) {
	row := r.db.QueryRowContext(ctx, hydratingSelect+` WHERE v.id=$1`, id)

	v, err := scanVendor(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) GetByMunicipality(ctx context.Context, municipalityID int64) ([]models.Vendor, error) {
	rows, err := r.db.QueryContext(ctx, hydratingSelect+` WHERE l.municipality_id=$1 ORDER BY v.id`, municipalityID)
	if err != nil {
		return nil, fmt.Errorf("failed to select vendors by municipality: %w", err)
	}
	defer rows.Close()
	return scanVendors(rows)
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id int64) error {
	err := dbx.ExecExpectRows(ctx, r.db, 1, `DELETE FROM vendors WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteAllExcept(ctx context.Context, keep []int64) error {
	if len(keep) == 0 {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM vendors`); err != nil {
			return fmt.Errorf("failed to clear vendors: %w", err)
		}
		return nil
	}
	placeholders := make([]string, len(keep))
	args := make([]any, len(keep))
	for i, id := range keep {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf(`DELETE FROM vendors WHERE id NOT IN (%s)`, strings.Join(placeholders, ","))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to prune vendors: %w", err)
	}
	return nil
}
