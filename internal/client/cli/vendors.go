package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/TheReeds/turisync/internal/client/models"
)

func formatVendor(v models.Vendor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s", v.ID, v.Name)
	if v.Category != "" {
		fmt.Fprintf(&b, " (%s)", v.Category)
	}
	if v.Municipality != nil {
		fmt.Fprintf(&b, " @ %s, %s", v.Municipality.Name, v.Municipality.District)
	}
	return b.String()
}

func formatVendorList(vs []models.Vendor) string {
	if len(vs) == 0 {
		return "no vendors"
	}
	lines := make([]string, 0, len(vs))
	for _, v := range vs {
		lines = append(lines, formatVendor(v))
	}
	return strings.Join(lines, "\n")
}

func (a *App) ListVendors(ctx context.Context) {
	render(a.vendors.WatchAll(ctx), formatVendorList)
}

func (a *App) ShowVendor(ctx context.Context, id int64) {
	render(a.vendors.WatchByID(ctx, id), formatVendor)
}

func (a *App) ListVendorsByMunicipality(ctx context.Context, municipalityID int64) {
	render(a.vendors.WatchByMunicipality(ctx, municipalityID), formatVendorList)
}

func (a *App) DeleteVendor(ctx context.Context, id int64) {
	render(a.vendors.Delete(ctx, id), func(id int64) string {
		return fmt.Sprintf("vendor %d deleted", id)
	})
}
