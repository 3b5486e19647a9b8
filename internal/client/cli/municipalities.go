package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/TheReeds/turisync/internal/client/models"
)

func formatMunicipality(m models.Municipality) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s, %s", m.ID, m.Name, m.District)
	if m.Province != "" {
		fmt.Fprintf(&b, " (%s, %s)", m.Province, m.Region)
	}
	if m.Description != "" {
		fmt.Fprintf(&b, "\n%s", m.Description)
	}
	return b.String()
}

func formatMunicipalityList(ms []models.Municipality) string {
	if len(ms) == 0 {
		return "no municipalities"
	}
	lines := make([]string, 0, len(ms))
	for _, m := range ms {
		lines = append(lines, fmt.Sprintf("[%d] %s, %s", m.ID, m.Name, m.District))
	}
	return strings.Join(lines, "\n")
}

func (a *App) ListMunicipalities(ctx context.Context) {
	render(a.municipalities.WatchAll(ctx), formatMunicipalityList)
}

func (a *App) ShowMunicipality(ctx context.Context, id int64) {
	render(a.municipalities.WatchByID(ctx, id), formatMunicipality)
}
