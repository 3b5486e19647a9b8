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

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Replace swaps the vendor's link for a fresh one. Run inside a transaction
// when readers must not observe the linkless window between the two steps.
func (r *SQLiteRepository) Replace(ctx context.Context, vendorID, municipalityID int64) error {
	if err := r.DeleteByVendorID(ctx, vendorID); err != nil {
		return err
	}
	query := `INSERT INTO vendor_municipality_links (vendor_id, municipality_id) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, vendorID, municipalityID); err != nil {
		return fmt.Errorf("failed to insert link: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteByVendorID(ctx context.Context, vendorID int64) error {
	query := `DELETE FROM vendor_municipality_links WHERE vendor_id=?`
	if _, err := r.db.ExecContext(ctx, query, vendorID); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteExcept(ctx context.Context, keep []int64) error {
	if len(keep) == 0 {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM vendor_municipality_links`); err != nil {
			return fmt.Errorf("failed to clear links: %w", err)
		}
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keep)), ",")
	query := fmt.Sprintf(`DELETE FROM vendor_municipality_links WHERE vendor_id NOT IN (%s)`, placeholders)
	args := make([]any, 0, len(keep))
	for _, id := range keep {
		args = append(args, id)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to prune links: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByVendorID(ctx context.Context, vendorID int64) (int64, error) {
	query := `SELECT municipality_id FROM vendor_municipality_links WHERE vendor_id=?`
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
