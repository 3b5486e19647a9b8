// Package remote is the network boundary of the client. The marketplace API
// wraps every response in a {success, message, data} envelope; this package
// translates that contract into payload values and wrapped errors, and the
// sync engine treats every failure it reports identically.
package remote

import (
	"context"

	"github.com/TheReeds/turisync/internal/client/models"
)

// Source is the authoritative side of the cache. The local store stands in
// for it when it is unreachable.
type Source interface {
	FetchVendors(ctx context.Context) ([]VendorPayload, error)
	FetchVendorByID(ctx context.Context, id int64) (*VendorPayload, error)
	FetchVendorsByMunicipality(ctx context.Context, municipalityID int64) ([]VendorPayload, error)
	DeleteVendor(ctx context.Context, id int64) error

	FetchMunicipalities(ctx context.Context) ([]MunicipalityPayload, error)
	FetchMunicipalityByID(ctx context.Context, id int64) (*MunicipalityPayload, error)
}

// VendorPayload is a vendor record as the API returns it, possibly embedding
// the basic projection of its municipality.
type VendorPayload struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`

	Municipality *MunicipalityPayload `json:"municipality,omitempty"`
}

// MunicipalityPayload carries municipality fields. Vendor listings embed only
// id, name and district; the dedicated municipality endpoints return the
// full record.
type MunicipalityPayload struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	District string `json:"district"`

	Province    string `json:"province,omitempty"`
	Region      string `json:"region,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Ref returns the basic projection of p.
func (p *MunicipalityPayload) Ref() models.MunicipalityRef {
	return models.MunicipalityRef{ID: p.ID, Name: p.Name, District: p.District}
}

// Model converts p to the cache model.
func (p *MunicipalityPayload) Model() models.Municipality {
	return models.Municipality{
		ID:          p.ID,
		Name:        p.Name,
		District:    p.District,
		Province:    p.Province,
		Region:      p.Region,
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
}

// Model converts p to the cache model, carrying the foreign key when a
// municipality is embedded. The hydrated projection is not copied here: read
// paths rebuild it from the link table.
func (p *VendorPayload) Model() models.Vendor {
	v := models.Vendor{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Phone:    p.Phone,
		Email:    p.Email,
		Address:  p.Address,
	}
	if p.Municipality != nil {
		id := p.Municipality.ID
		v.MunicipalityID = &id
	}
	return v
}
