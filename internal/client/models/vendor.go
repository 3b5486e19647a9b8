// Package models defines the client-side records kept in the local cache and
// synchronized with the marketplace API.
package models

// Vendor is a marketplace vendor record. The remote API owns the record and
// assigns its identifier; the local copy is a cache that may be stale or
// partial.
type Vendor struct {
	// ID is assigned by the remote API and is the join key between the local
	// cache and the remote source.
	ID int64

	Name     string
	Category string
	Phone    string
	Email    string
	Address  string

	// MunicipalityID is the foreign key to the vendor's municipality.
	// Nil when the vendor is not linked to one.
	MunicipalityID *int64

	// Municipality is the basic projection for offline display. Read paths
	// hydrate it by following the link table to the municipality's current
	// stored fields, never from a denormalized copy in the vendor row.
	Municipality *MunicipalityRef
}

// MunicipalityRef is the small projection of a municipality embedded in
// vendor listings.
type MunicipalityRef struct {
	ID       int64
	Name     string
	District string
}
