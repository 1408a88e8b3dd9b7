package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"fulfillo/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brandNames(id string) string {
	if id == "b1" {
		return "GlowSkin"
	}
	return id
}

func TestManifestFilename(t *testing.T) {
	now := time.Date(2023, 10, 25, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "fulfillo_outbound_2023-10-25.csv", ManifestFilename("outbound", now))
	assert.Equal(t, "fulfillo_returns_2023-10-25.csv", ManifestFilename("returns", now))
}

func TestWriteManifestCSV(t *testing.T) {
	orders := []models.Order{
		{ID: "#ORD-7721", BrandID: "b1", Customer: "Ahmed Ali", Status: models.OrderStatusShipped,
			Created: "2023-10-25", Carrier: "SMSA Express", Tracking: "TRK-1"},
		{ID: "#ORD-9000", BrandID: "b1", Customer: "Nora Said", Status: models.OrderStatusPacked,
			Created: "2023-10-26"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteManifestCSV(&buf, orders, brandNames))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Order ID", "Brand", "Customer", "Carrier", "Tracking", "Status", "Date"}, records[0])
	assert.Equal(t, []string{"#ORD-7721", "GlowSkin", "Ahmed Ali", "SMSA Express", "TRK-1", "SHIPPED", "2023-10-25"}, records[1])
	// Missing carrier and tracking get placeholder values.
	assert.Equal(t, []string{"#ORD-9000", "GlowSkin", "Nora Said", "Pending", "N/A", "PACKED", "2023-10-26"}, records[2])
}

func TestWritePrintManifest(t *testing.T) {
	orders := []models.Order{
		{ID: "#ORD-7721", BrandID: "b1", Customer: "Ahmed Ali", Status: models.OrderStatusNew,
			Total: 12000, Created: "2023-10-25", Carrier: "SMSA Express"},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePrintManifest(&buf, orders, brandNames))

	out := buf.String()
	assert.True(t, strings.Contains(out, "#ORD-7721"))
	assert.True(t, strings.Contains(out, "GlowSkin"))
	assert.True(t, strings.Contains(out, "120.00"))
	assert.True(t, strings.Contains(out, "1 order(s)"))
}
