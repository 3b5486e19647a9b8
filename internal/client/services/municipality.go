package services

import (
	"context"
	"errors"

	"github.com/TheReeds/turisync/internal/client/client"
	"github.com/TheReeds/turisync/internal/client/models"
	"github.com/TheReeds/turisync/internal/client/remote"
	"github.com/TheReeds/turisync/internal/common"
	"github.com/TheReeds/turisync/internal/dbx"
	"github.com/TheReeds/turisync/internal/logging"
	"github.com/TheReeds/turisync/internal/result"
)

// MunicipalityService is the simpler instance of the same cache-aside
// pattern: no relations to normalize. Its persists also complete the
// placeholder fields of municipalities first seen as embedded projections in
// vendor payloads.
type MunicipalityService interface {
	WatchAll(ctx context.Context) <-chan result.Result[[]models.Municipality]
	WatchByID(ctx context.Context, id int64) <-chan result.Result[models.Municipality]
}

type municipalityService struct {
	engine
	store  *client.Store
	source remote.Source
}

// NewMunicipalityService builds the service over an initialized store and source.
func NewMunicipalityService(store *client.Store, source remote.Source, log logging.Logger) MunicipalityService {
	return &municipalityService{engine: engine{log: log}, store: store, source: source}
}

func (s *municipalityService) WatchAll(ctx context.Context) <-chan result.Result[[]models.Municipality] {
	return watch(ctx, &s.engine, syncQuery[[]models.Municipality]{
		key: "municipalities/all",
		local: func(ctx context.Context) ([]models.Municipality, bool, error) {
			ms, err := s.store.Municipalities(s.store.DB).GetAll(ctx)
			return ms, len(ms) > 0, err
		},
		remote: func(ctx context.Context) ([]models.Municipality, error) {
			payloads, err := s.source.FetchMunicipalities(ctx)
			if err != nil {
				return nil, err
			}
			// Municipalities are shared targets of relation links, so absent
			// ones are kept rather than pruned: dropping them could orphan
			// links of vendors fetched through a filtered query.
			if err := s.persistMunicipalities(ctx, payloads); err != nil {
				return nil, err
			}
			ms, err := s.store.Municipalities(s.store.DB).GetAll(ctx)
			if err != nil {
				return nil, err
			}
			if ms == nil {
				ms = []models.Municipality{}
			}
			return ms, nil
		},
	})
}

func (s *municipalityService) WatchByID(ctx context.Context, id int64) <-chan result.Result[models.Municipality] {
	return watch(ctx, &s.engine, syncQuery[models.Municipality]{
		key: "municipalities/id/" + formatID(id),
		local: func(ctx context.Context) (models.Municipality, bool, error) {
			m, err := s.store.Municipalities(s.store.DB).GetByID(ctx, id)
			if errors.Is(err, common.ErrNotFound) {
				return models.Municipality{}, false, nil
			}
			if err != nil {
				return models.Municipality{}, false, err
			}
			return *m, true, nil
		},
		remote: func(ctx context.Context) (models.Municipality, error) {
			payload, err := s.source.FetchMunicipalityByID(ctx, id)
			if err != nil {
				return models.Municipality{}, err
			}
			if err := s.persistMunicipalities(ctx, []remote.MunicipalityPayload{*payload}); err != nil {
				return models.Municipality{}, err
			}
			m, err := s.store.Municipalities(s.store.DB).GetByID(ctx, id)
			if err != nil {
				return models.Municipality{}, err
			}
			return *m, nil
		},
	})
}

func (s *municipalityService) persistMunicipalities(ctx context.Context, payloads []remote.MunicipalityPayload) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return dbx.WithTx(ctx, s.store.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		ms := make([]models.Municipality, 0, len(payloads))
		for i := range payloads {
			ms = append(ms, payloads[i].Model())
		}
		return s.store.Municipalities(tx).UpsertAll(ctx, ms)
	})
}
