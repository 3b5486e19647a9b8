// Package vendors provides cache repositories for vendor records, backed by
// SQLite on devices and Postgres in the shared-cache deployment.
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

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// hydratingSelect joins through the link table so the municipality projection
// always reflects the municipality's current stored fields.
const hydratingSelect = `SELECT v.id, v.name, v.category, v.phone, v.email, v.address, v.municipality_id,
			m.id, m.name, m.district
		FROM vendors v
		LEFT JOIN vendor_municipality_links l ON l.vendor_id = v.id
		LEFT JOIN municipalities m ON m.id = l.municipality_id`

// Upsert upserts a vendor by id. On conflict, all scalar columns and the
// foreign key are replaced.
func (r *SQLiteRepository) Upsert(ctx context.Context, v *models.Vendor) error {
	query := `INSERT INTO vendors (id, name, category, phone, email, address, municipality_id)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name,
				category = excluded.category,
				phone = excluded.phone,
				email = excluded.email,
				address = excluded.address,
				municipality_id = excluded.municipality_id
	`
	_, err := r.db.ExecContext(ctx, query,
		v.ID, v.Name, v.Category, v.Phone, v.Email, v.Address, v.MunicipalityID)
	if err != nil {
		return fmt.Errorf("failed to upsert vendor: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) UpsertAll(ctx context.Context, vs []models.Vendor) error {
	for i := range vs {
		if err := r.Upsert(ctx, &vs[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Vendor, error) {
	rows, err := r.db.QueryContext(ctx, hydratingSelect+` ORDER BY v.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select vendors: %w", err)
	}
	defer rows.Close()
	return scanVendors(rows)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Vendor, error) {
	row := r.db.QueryRowContext(ctx, hydratingSelect+` WHERE v.id=?`, id)

	v, err := scanVendor(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return v, nil
}

func (r *SQLiteRepository) GetByMunicipality(ctx context.Context, municipalityID int64) ([]models.Vendor, error) {
	rows, err := r.db.QueryContext(ctx, hydratingSelect+` WHERE l.municipality_id=? ORDER BY v.id`, municipalityID)
	if err != nil {
		return nil, fmt.Errorf("failed to select vendors by municipality: %w", err)
	}
	defer rows.Close()
	return scanVendors(rows)
}

// DeleteByID expects exactly one row to be affected.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	err := dbx.ExecExpectRows(ctx, r.db, 1, `DELETE FROM vendors WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteAllExcept(ctx context.Context, keep []int64) error {
	if len(keep) == 0 {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM vendors`); err != nil {
			return fmt.Errorf("failed to clear vendors: %w", err)
		}
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keep)), ",")
	query := fmt.Sprintf(`DELETE FROM vendors WHERE id NOT IN (%s)`, placeholders)
	args := make([]any, 0, len(keep))
	for _, id := range keep {
		args = append(args, id)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to prune vendors: %w", err)
	}
	return nil
}

// scanVendor reads one hydrated row. The municipality columns come from the
// LEFT JOIN and may all be NULL.
func scanVendor(scan func(dest ...any) error) (*models.Vendor, error) {
	var v models.Vendor
	var fk sql.NullInt64
	var mID sql.NullInt64
	var mName, mDistrict sql.NullString

	err := scan(&v.ID, &v.Name, &v.Category, &v.Phone, &v.Email, &v.Address, &fk,
		&mID, &mName, &mDistrict)
	if err != nil {
		return nil, err
	}
	if fk.Valid {
		id := fk.Int64
		v.MunicipalityID = &id
	}
	if mID.Valid {
		v.Municipality = &models.MunicipalityRef{
			ID:       mID.Int64,
			Name:     mName.String,
			District: mDistrict.String,
		}
	}
	return &v, nil
}

func scanVendors(rows *sql.Rows) ([]models.Vendor, error) {
	var result []models.Vendor
	for rows.Next() {
		v, err := scanVendor(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
