package municipalities

import (
	"context"

	"github.com/TheReeds/turisync/internal/client/models"
)

// Repository describes CRUD and query operations for municipality records.
//
// Two upsert shapes exist because municipalities arrive by two routes: as the
// basic projection embedded in vendor payloads, and as full records from a
// dedicated municipality fetch. UpsertRef must never blank fields that only
// the full fetch provides.
type Repository interface {
	// UpsertRef stores the basic projection. On insert the remaining fields
	// start empty; on update only the projection's own fields are touched.
	UpsertRef(ctx context.Context, ref models.MunicipalityRef) error

	// Upsert inserts a complete record or overwrites an existing one by ID.
	Upsert(ctx context.Context, m *models.Municipality) error

	// UpsertAll upserts every record in ms.
	UpsertAll(ctx context.Context, ms []models.Municipality) error

	// GetAll returns all cached municipalities ordered by id.
	GetAll(ctx context.Context) ([]models.Municipality, error)

	// GetByID returns a municipality, or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Municipality, error)
}
