package cli

import (
	"strings"
	"testing"

	"github.com/TheReeds/turisync/internal/client/models"
	"github.com/TheReeds/turisync/internal/result"
	"github.com/stretchr/testify/assert"
)

func resultsChan[T any](rs ...result.Result[T]) <-chan result.Result[T] {
	ch := make(chan result.Result[T], len(rs))
	for _, r := range rs {
		ch <- r
	}
	close(ch)
	return ch
}

func TestRender_PrintsEveryState(t *testing.T) {
	out := silencePrintln(t)

	render(resultsChan(
		result.Loading[string](),
		result.Ok("cached"),
		result.Fail[string]("server unreachable"),
	), func(s string) string { return s })

	joined := strings.Join(*out, "")
	assert.Contains(t, joined, "loading...")
	assert.Contains(t, joined, "cached")
	assert.Contains(t, joined, "error: server unreachable")
}

func TestFormatVendor(t *testing.T) {
	v := models.Vendor{ID: 7, Name: "Vendor X", Category: "restaurant",
		Municipality: &models.MunicipalityRef{ID: 3, Name: "Township", District: "North"}}

	s := formatVendor(v)
	assert.Equal(t, "[7] Vendor X (restaurant) @ Township, North", s)

	bare := models.Vendor{ID: 8, Name: "Vendor Z"}
	assert.Equal(t, "[8] Vendor Z", formatVendor(bare))
}

func TestFormatVendorList_Empty(t *testing.T) {
	assert.Equal(t, "no vendors", formatVendorList(nil))
}

func TestFormatMunicipality(t *testing.T) {
	m := models.Municipality{ID: 4, Name: "Township Z", District: "South", Province: "Prov", Region: "Reg"}
	assert.Equal(t, "[4] Township Z, South (Prov, Reg)", formatMunicipality(m))
}
