package links

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/TheReeds/turisync/internal/common"
	"github.com/TheReeds/turisync/internal/dbx"
)

// PostgresRepository implements Repository over Postgres, for deployments
// that run the cache as a shared backend service instead of an on-device
// database.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Replace(ctx context.Context, vendorID, municipalityID int64) error {
	if err := r.DeleteByVendorID(ctx, vendorID); err != nil {
		return err
	}
	query := `INSERT INTO vendor_municipality_links (vendor_id, municipality_id) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, vendorID, municipalityID); err != nil {
		return fmt.Errorf("failed to insert link: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByVendorID(ctx context.Context, vendorID int64) error {
	query := `DELETE FROM vendor_municipality_links WHERE vendor_id=$1`
	if _, err := r.db.ExecContext(ctx, query, vendorID); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteExcept(ctx context.Context, keep []int64) error {
	if len(keep) == 0 {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM vendor_municipality_links`); err != nil {
			return fmt.Errorf("failed to clear links: %w", err)
		}
		return nil
	}
	placeholders := make([]string, len(keep))
	args := make([]any, len(keep))
	for i, id := range keep {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf(`DELETE FROM vendor_municipality_links WHERE vendor_id NOT IN (%s)`,
		strings.Join(placeholders, ","))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to prune links: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByVendorID(ctx context.Context, vendorID int64) (int64, error) {
	query := `SELECT municipality_id FROM vendor_municipality_links WHERE vendor_id=$1`
	row := r.db.QueryRowContext(ctx, query, vendorID)

	var municipalityID int64
	if err := row.Scan(&municipalityID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrNotFound
		}
		return 0, fmt.Errorf("query row scan failed: %w", err)
	}
	return municipalityID, nil
}
