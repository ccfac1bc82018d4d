package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"imobiliare/internal/domain"
)

// Generator renders a user's wishlisted apartments as a PDF table.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

var columns = []struct {
	title string
	width float64
}{
	{"Address", 55},
	{"City", 25},
	{"Rooms", 15},
	{"Surface", 20},
	{"Price", 30},
	{"Owner", 45},
}

// Generate renders the given apartments into PDF bytes. An empty slice still
// produces a valid document with just the header row.
func (g *Generator) Generate(apartments []domain.Apartment) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(190, 10, "KeepITsimple Imobiliare - Wishlist", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range columns {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, ap := range apartments {
		owner := ""
		if ap.Owner != nil {
			owner = ap.Owner.Name
		}

		pdf.CellFormat(55, 8, ap.Address, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, ap.City, "1", 0, "L", false, 0, "")
		pdf.CellFormat(15, 8, fmt.Sprintf("%d", ap.Rooms), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%.1f", ap.Surface), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f EUR", ap.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 8, owner, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
