package printer

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
	"github.com/wrapcommand/wrapcommandai/internal/models"
)

// QuoteSheetConfig holds the shop branding for PDF output
type QuoteSheetConfig struct {
	ShopName string
	BaseURL  string // tracking links are BaseURL + /track/<order_number>
}

// GenerateQuotePDF renders a one-page printable quote sheet with a QR code
// linking to the shop's quote page.
func GenerateQuotePDF(cfg QuoteSheetConfig, q *models.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	shopName := cfg.ShopName
	if shopName == "" {
		shopName = "WrapCommandAI"
	}

	// Header
	pdf.SetFont("Arial", "B", 22)
	pdf.Cell(0, 12, shopName)
	pdf.Ln(14)
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(110, 110, 110)
	pdf.Cell(0, 6, fmt.Sprintf("Quote %s  -  %s", shortID(q.PublicID), q.CreatedAt.Format("Jan 2, 2006")))
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(12)

	// Vehicle block
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Vehicle")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("%d %s %s  (%s class)", q.VehicleYear, q.VehicleMake, q.VehicleModel, q.VehicleClass))
	pdf.Ln(7)
	pdf.Cell(0, 6, fmt.Sprintf("Wrap type: %s", q.WrapType))
	pdf.Ln(12)

	// Pricing block
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Estimate")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	rows := []struct {
		label string
		value string
	}{
		{"Coverage", fmt.Sprintf("%.0f sqft", q.Sqft)},
		{"Install labor", fmt.Sprintf("%.0f hours", q.LaborHours)},
		{"Material", fmt.Sprintf("$%.2f", q.MaterialCost)},
		{"Labor", fmt.Sprintf("$%.2f", q.LaborCost)},
	}
	for _, row := range rows {
		pdf.Cell(60, 7, row.label)
		pdf.Cell(0, 7, row.value)
		pdf.Ln(7)
	}
	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 15)
	pdf.Cell(60, 10, "Estimated total")
	pdf.Cell(0, 10, fmt.Sprintf("$%.0f - $%.0f", q.PriceLow, q.PriceHigh))
	pdf.Ln(14)

	if q.Message != "" {
		pdf.SetFont("Arial", "I", 11)
		pdf.MultiCell(0, 6, q.Message, "", "L", false)
		pdf.Ln(6)
	}

	// QR linking to the online quote
	quoteURL := fmt.Sprintf("%s/quote/%s", cfg.BaseURL, q.PublicID)
	png, err := qrcode.Encode(quoteURL, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("quote-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("quote-qr", 18, pdf.GetY(), 34, 34, false, opts, 0, "")
	pdf.SetXY(58, pdf.GetY()+12)
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(110, 110, 110)
	pdf.Cell(0, 6, "Scan to view or accept this quote online")
	pdf.SetTextColor(0, 0, 0)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// shortID trims a UUID down to the first block for display
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
