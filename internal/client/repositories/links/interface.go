// Package links stores the explicit vendor→municipality association records.
// A link is kept separately from both entities so it can be replaced
// atomically when a vendor is re-linked to a different municipality.
package links

import "context"

// Repository describes the CRUD surface for relation links.
//
// At most one link exists per vendor. Replace keeps that invariant by
// deleting any previous link before inserting the new one; callers that need
// the swap to be invisible to readers run it inside a transaction
// (see dbx.WithTx).
type Repository interface {
	// Replace removes the vendor's current link, if any, and inserts a fresh
	// one pointing to municipalityID.
	Replace(ctx context.Context, vendorID, municipalityID int64) error

	// DeleteByVendorID clears the vendor's link. Deleting a missing link is
	// not an error.
	DeleteByVendorID(ctx context.Context, vendorID int64) error

	// DeleteExcept removes links of all vendors whose ids are not in keep.
	// An empty keep removes every link.
	DeleteExcept(ctx context.Context, keep []int64) error

	// GetByVendorID returns the linked municipality id, or common.ErrNotFound
	// when the vendor has no link.
	GetByVendorID(ctx context.Context, vendorID int64) (int64, error)
}
