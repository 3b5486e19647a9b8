package vendors

import (
	"context"

	"github.com/TheReeds/turisync/internal/client/models"
)

// Repository describes CRUD and query operations for vendor records.
//
// Read methods hydrate the municipality projection by following the link
// table to the municipality's current stored fields, so a municipality update
// propagates to every vendor referencing it without rewriting vendor rows.
type Repository interface {
	// Upsert inserts a new vendor or overwrites an existing one by ID.
	Upsert(ctx context.Context, v *models.Vendor) error

	// UpsertAll upserts every vendor in vs.
	UpsertAll(ctx context.Context, vs []models.Vendor) error

	// GetAll returns all cached vendors ordered by id, hydrated.
	GetAll(ctx context.Context) ([]models.Vendor, error)

	// GetByID returns a hydrated vendor, or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Vendor, error)

	// GetByMunicipality returns hydrated vendors linked to municipalityID.
	GetByMunicipality(ctx context.Context, municipalityID int64) ([]models.Vendor, error)

	// DeleteByID removes the vendor row. The caller clears the relation link
	// in the same transaction; the referenced municipality is left alone
	// since other vendors may share it.
	DeleteByID(ctx context.Context, id int64) error

	// DeleteAllExcept removes vendors whose ids are not in keep. Used when an
	// authoritative full listing replaces the cache; an empty keep removes
	// every vendor.
	DeleteAllExcept(ctx context.Context, keep []int64) error
}
