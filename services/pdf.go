package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tripplanner/metrics"
)

// Page geometry in points, measured from the bottom-left corner.
const (
	pdfHeaderTop   = 800.0
	pdfBodyTop     = 700.0
	pdfPageTop     = 800.0
	pdfBottomLimit = 100.0
	pdfLineHeight  = 20.0

	pdfHeaderX   = 100.0
	pdfDayX      = 100.0
	pdfStayX     = 120.0
	pdfActivityX = 140.0
)

type pdfLine struct {
	X    float64
	Y    float64
	Text string
}

type pdfPage []pdfLine

// layoutPDF positions every line of the printable itinerary. A new page
// starts once a day block leaves the cursor below pdfBottomLimit, so the
// number of pages grows with the number of days.
func layoutPDF(it *Itinerary) []pdfPage {
	header := []string{
		"Trip Itinerary - " + it.Location,
		fmt.Sprintf("Duration: %d days", it.Days),
		fmt.Sprintf("Budget: INR %.0f", it.Budget),
		"Preferred Transport: " + it.PreferredTransport,
		"Preferred Stay: " + it.PreferredStay,
	}

	pages := []pdfPage{{}}
	y := pdfHeaderTop
	for _, text := range header {
		pages[0] = append(pages[0], pdfLine{X: pdfHeaderX, Y: y, Text: text})
		y -= pdfLineHeight
	}

	y = pdfBodyTop
	pageBreak := false
	draw := func(x float64, text string) {
		if pageBreak {
			pages = append(pages, pdfPage{})
			y = pdfPageTop
			pageBreak = false
		}
		pages[len(pages)-1] = append(pages[len(pages)-1], pdfLine{X: x, Y: y, Text: text})
		y -= pdfLineHeight
	}

	for i, day := range it.Plans {
		draw(pdfDayX, fmt.Sprintf("Day %d: %s", i+1, day.Date))
		draw(pdfStayX, "Stay: "+humanizeName(day.Accommodation.Name))
		for _, act := range day.Activities {
			draw(pdfActivityX, fmt.Sprintf("- %s: %s", act.TimeSlot, act.Name))
		}
		if y < pdfBottomLimit {
			pageBreak = true
		}
	}
	return pages
}

// GeneratePDFBytes renders the itinerary as an A4 PDF and returns raw bytes.
func GeneratePDFBytes(it *Itinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Trip Itinerary - "+it.Location, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	_, pageHeight := pdf.GetPageSize()

	// ── Footer ────────────────────────────────────────────────
	pdf.SetFooterFunc(func() {
		pdf.SetY(-30)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Budget trip planner - estimated prices, not a booking confirmation - page %d", pdf.PageNo()),
			"", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	for _, page := range layoutPDF(it) {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "", 12)
		for _, line := range page {
			pdf.Text(line.X, pageHeight-line.Y, tr(line.Text))
		}
	}

	// ── Write to buffer ───────────────────────────────────────
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	metrics.ExportsRendered.WithLabelValues("pdf").Inc()
	return buf.Bytes(), nil
}

// humanizeName turns "budget_hotel" into "Budget Hotel".
func humanizeName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}
