package services

import (
	"context"
	"errors"

	"github.com/TheReeds/turisync/internal/client/client"
	"github.com/TheReeds/turisync/internal/client/models"
	"github.com/TheReeds/turisync/internal/client/remote"
	"github.com/TheReeds/turisync/internal/client/repositories/links"
	"github.com/TheReeds/turisync/internal/client/repositories/municipalities"
	"github.com/TheReeds/turisync/internal/client/repositories/vendors"
	"github.com/TheReeds/turisync/internal/common"
	"github.com/TheReeds/turisync/internal/dbx"
	"github.com/TheReeds/turisync/internal/logging"
	"github.com/TheReeds/turisync/internal/result"
	"github.com/google/uuid"
)

// VendorService synchronizes vendor records between the local cache and the
// marketplace API. Each operation produces one Result sequence per invocation
// and no other side channel; re-invoke to refresh.
type VendorService interface {
	WatchAll(ctx context.Context) <-chan result.Result[[]models.Vendor]
	WatchByID(ctx context.Context, id int64) <-chan result.Result[models.Vendor]
	WatchByMunicipality(ctx context.Context, municipalityID int64) <-chan result.Result[[]models.Vendor]

	// Delete removes the vendor remotely and then locally, together with its
	// relation link. The referenced municipality stays: other vendors may
	// share it.
	Delete(ctx context.Context, id int64) <-chan result.Result[int64]
}

type vendorService struct {
	engine
	store  *client.Store
	source remote.Source
}

// NewVendorService builds the service over an initialized store and source.
func NewVendorService(store *client.Store, source remote.Source, log logging.Logger) VendorService {
	return &vendorService{engine: engine{log: log}, store: store, source: source}
}

func (s *vendorService) WatchAll(ctx context.Context) <-chan result.Result[[]models.Vendor] {
	return watch(ctx, &s.engine, syncQuery[[]models.Vendor]{
		key: "vendors/all",
		local: func(ctx context.Context) ([]models.Vendor, bool, error) {
			vs, err := s.store.Vendors(s.store.DB).GetAll(ctx)
			return vs, len(vs) > 0, err
		},
		remote: func(ctx context.Context) ([]models.Vendor, error) {
			payloads, err := s.source.FetchVendors(ctx)
			if err != nil {
				return nil, err
			}
			// A full listing is authoritative even when empty: vendors the
			// remote no longer returns are dropped from the cache.
			if err := s.persistVendors(ctx, payloads, true); err != nil {
				return nil, err
			}
			vs, err := s.store.Vendors(s.store.DB).GetAll(ctx)
			if err != nil {
				return nil, err
			}
			if vs == nil {
				vs = []models.Vendor{}
			}
			return vs, nil
		},
	})
}

func (s *vendorService) WatchByID(ctx context.Context, id int64) <-chan result.Result[models.Vendor] {
	return watch(ctx, &s.engine, syncQuery[models.Vendor]{
		key: "vendors/id/" + formatID(id),
		local: func(ctx context.Context) (models.Vendor, bool, error) {
			v, err := s.store.Vendors(s.store.DB).GetByID(ctx, id)
			if errors.Is(err, common.ErrNotFound) {
				return models.Vendor{}, false, nil
			}
			if err != nil {
				return models.Vendor{}, false, err
			}
			return *v, true, nil
		},
		remote: func(ctx context.Context) (models.Vendor, error) {
			payload, err := s.source.FetchVendorByID(ctx, id)
			if err != nil {
				return models.Vendor{}, err
			}
			if err := s.persistVendors(ctx, []remote.VendorPayload{*payload}, false); err != nil {
				return models.Vendor{}, err
			}
			v, err := s.store.Vendors(s.store.DB).GetByID(ctx, id)
			if err != nil {
				return models.Vendor{}, err
			}
			return *v, nil
		},
	})
}

func (s *vendorService) WatchByMunicipality(ctx context.Context, municipalityID int64) <-chan result.Result[[]models.Vendor] {
	return watch(ctx, &s.engine, syncQuery[[]models.Vendor]{
		key: "vendors/municipality/" + formatID(municipalityID),
		local: func(ctx context.Context) ([]models.Vendor, bool, error) {
			vs, err := s.store.Vendors(s.store.DB).GetByMunicipality(ctx, municipalityID)
			return vs, len(vs) > 0, err
		},
		remote: func(ctx context.Context) ([]models.Vendor, error) {
			payloads, err := s.source.FetchVendorsByMunicipality(ctx, municipalityID)
			if err != nil {
				return nil, err
			}
			// A filtered listing only covers its own subset; no replace-all.
			if err := s.persistVendors(ctx, payloads, false); err != nil {
				return nil, err
			}
			vs, err := s.store.Vendors(s.store.DB).GetByMunicipality(ctx, municipalityID)
			if err != nil {
				return nil, err
			}
			if vs == nil {
				vs = []models.Vendor{}
			}
			return vs, nil
		},
	})
}

func (s *vendorService) Delete(ctx context.Context, id int64) <-chan result.Result[int64] {
	out := make(chan result.Result[int64], 2)
	bg := context.WithoutCancel(ctx)

	go func() {
		defer close(out)
		log := s.log.With("query", "vendors/delete", "invocation", uuid.NewString(), "id", id)

		out <- result.Loading[int64]()

		if err := s.source.DeleteVendor(bg, id); err != nil {
			log.Error(bg, "remote delete failed", "error", err)
			out <- result.Fail[int64](err.Error())
			return
		}

		s.writeMu.Lock()
		err := dbx.WithTx(bg, s.store.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
			if err := s.store.Links(tx).DeleteByVendorID(ctx, id); err != nil {
				return err
			}
			// The vendor may never have been cached; only a cached row needs
			// removing.
			if _, err := s.store.Vendors(tx).GetByID(ctx, id); errors.Is(err, common.ErrNotFound) {
				return nil
			} else if err != nil {
				return err
			}
			return s.store.Vendors(tx).DeleteByID(ctx, id)
		})
		s.writeMu.Unlock()
		if err != nil {
			log.Error(bg, "local delete failed", "error", err)
			out <- result.Fail[int64](err.Error())
			return
		}

		out <- result.Ok(id)
	}()

	return out
}

// persistVendors normalizes fetched payloads into the cache inside one
// transaction, so readers never observe a vendor without its relation link.
func (s *vendorService) persistVendors(ctx context.Context, payloads []remote.VendorPayload, replaceAll bool) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return dbx.WithTx(ctx, s.store.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		vr := s.store.Vendors(tx)
		mr := s.store.Municipalities(tx)
		lr := s.store.Links(tx)

		keep := make([]int64, 0, len(payloads))
		for i := range payloads {
			if err := normalizeVendor(ctx, &payloads[i], vr, mr, lr); err != nil {
				return err
			}
			keep = append(keep, payloads[i].ID)
		}

		if replaceAll {
			if err := lr.DeleteExcept(ctx, keep); err != nil {
				return err
			}
			if err := vr.DeleteAllExcept(ctx, keep); err != nil {
				return err
			}
		}
		return nil
	})
}

// normalizeVendor persists one fetched vendor: the embedded municipality
// projection first, then a fresh relation link, then the vendor row with its
// foreign key. The order keeps the store free of links pointing at
// municipalities that were never persisted. Without an embedded municipality
// any stale link is cleared and the foreign key stored as NULL.
func normalizeVendor(ctx context.Context, p *remote.VendorPayload, vr vendors.Repository, mr municipalities.Repository, lr links.Repository) error {
	if p.Municipality != nil {
		if err := mr.UpsertRef(ctx, p.Municipality.Ref()); err != nil {
			return err
		}
		if err := lr.Replace(ctx, p.ID, p.Municipality.ID); err != nil {
			return err
		}
	} else {
		if err := lr.DeleteByVendorID(ctx, p.ID); err != nil {
			return err
		}
	}
	v := p.Model()
	return vr.Upsert(ctx, &v)
}
