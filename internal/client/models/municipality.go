package models

// Municipality is a secondary record referenced by many vendors. It is stored
// once under its own identifier so vendors can share it without duplication.
//
// Vendor payloads embed only the basic projection (id, name, district). When
// such a projection is persisted for a municipality the cache has never seen,
// the remaining fields stay empty until a dedicated municipality fetch fills
// them. That partial-record state is intentional.
type Municipality struct {
	ID       int64
	Name     string
	District string

	Province    string
	Region      string
	Description string
	ImageURL    string
}

// Ref returns the basic projection of m.
func (m *Municipality) Ref() MunicipalityRef {
	return MunicipalityRef{ID: m.ID, Name: m.Name, District: m.District}
}
