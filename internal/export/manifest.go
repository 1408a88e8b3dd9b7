// Package export renders the externally observable artifacts of the
// dashboard: the shipping manifest CSV and the printable order manifest.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"fulfillo/internal/models"
)

// manifestHeader is the fixed column order of the shipping export
var manifestHeader = []string{"Order ID", "Brand", "Customer", "Carrier", "Tracking", "Status", "Date"}

// ManifestFilename builds the download name for a shipping export,
// e.g. fulfillo_outbound_2023-10-25.csv
func ManifestFilename(view string, now time.Time) string {
	return fmt.Sprintf("fulfillo_%s_%s.csv", view, now.Format("2006-01-02"))
}

// WriteManifestCSV writes the shipping queue as comma-separated rows.
// brandName resolves a brand ID to its display name. Orders with no
// carrier export as "Pending"; no tracking exports as "N/A".
func WriteManifestCSV(w io.Writer, orders []models.Order, brandName func(string) string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(manifestHeader); err != nil {
		return err
	}
	for _, o := range orders {
		carrier := o.Carrier
		if carrier == "" {
			carrier = "Pending"
		}
		tracking := o.Tracking
		if tracking == "" {
			tracking = "N/A"
		}
		row := []string{o.ID, brandName(o.BrandID), o.Customer, carrier, tracking, string(o.Status), o.Created}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePrintManifest renders a plain-text manifest of the selected
// orders for label and paperwork printing
func WritePrintManifest(w io.Writer, orders []models.Order, brandName func(string) string) error {
	if _, err := fmt.Fprintf(w, "FULFILLO ORDER MANIFEST — %d order(s)\n\n", len(orders)); err != nil {
		return err
	}
	for _, o := range orders {
		carrier := o.Carrier
		if carrier == "" {
			carrier = "Pending"
		}
		_, err := fmt.Fprintf(w, "%s\n  Brand:    %s\n  Customer: %s\n  Status:   %s\n  Carrier:  %s\n  Total:    %d.%02d\n  Date:     %s\n\n",
			o.ID, brandName(o.BrandID), o.Customer, o.Status, carrier, o.Total/100, o.Total%100, o.Created)
		if err != nil {
			return err
		}
	}
	return nil
}
