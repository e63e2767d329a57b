package services

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/jung-kurt/gofpdf/v2"

	"invoice-backend/internal/billing"
	"invoice-backend/internal/metrics"
	"invoice-backend/internal/models"
	"invoice-backend/internal/storage"
)

// PDFService renders fully-aggregated invoices to PDF and optionally
// archives the result in object storage.
type PDFService struct {
	Store *storage.ObjectStore // nil disables backgrounds and archival
}

func NewPDFService(store *storage.ObjectStore) *PDFService {
	return &PDFService{Store: store}
}

// Render produces the PDF document for an invoice. Totals are expected to
// be current; callers recompute them before export.
func (s *PDFService) Render(ctx context.Context, inv *models.Invoice) ([]byte, error) {
	size := "A4"
	if inv.PageSize == "Letter" {
		size = "Letter"
	}

	pdf := gofpdf.New("P", "mm", size, "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	s.drawBackground(ctx, pdf, inv, pageW)

	// Header
	pdf.SetFont("Arial", "B", 22)
	pdf.CellFormat(contentW/2, 12, "INVOICE", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(contentW/2, 12, inv.InvoiceNumber, "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(contentW/2, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, fmt.Sprintf("Issued: %s    Due: %s", inv.IssueDate, inv.DueDate), "", 1, "R", false, 0, "")
	if inv.PeriodStart != "" && inv.PeriodEnd != "" {
		pdf.CellFormat(contentW/2, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW/2, 6, fmt.Sprintf("Period: %s to %s", inv.PeriodStart, inv.PeriodEnd), "", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// Parties
	half := contentW / 2
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(half, 7, "From", "B", 0, "L", false, 0, "")
	pdf.CellFormat(half, 7, "Bill To", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	fromLines := partyLines(inv.From)
	toLines := partyLines(inv.To)
	for i := 0; i < len(fromLines) || i < len(toLines); i++ {
		left, right := "", ""
		if i < len(fromLines) {
			left = fromLines[i]
		}
		if i < len(toLines) {
			right = toLines[i]
		}
		pdf.CellFormat(half, 5.5, left, "", 0, "L", false, 0, "")
		pdf.CellFormat(half, 5.5, right, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Billed time summary
	if inv.TotalHours > 0 {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(contentW*0.4, 7, "Work", "1", 0, "L", true, 0, "")
		pdf.CellFormat(contentW*0.15, 7, "Days", "1", 0, "C", true, 0, "")
		pdf.CellFormat(contentW*0.15, 7, "Hours", "1", 0, "C", true, 0, "")
		pdf.CellFormat(contentW*0.15, 7, "Rate", "1", 0, "C", true, 0, "")
		pdf.CellFormat(contentW*0.15, 7, "Amount", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(contentW*0.4, 7, fmt.Sprintf("Hourly work, %s to %s", inv.PeriodStart, inv.PeriodEnd), "1", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.15, 7, fmt.Sprintf("%d", inv.TotalDays), "1", 0, "C", false, 0, "")
		pdf.CellFormat(contentW*0.15, 7, fmt.Sprintf("%.1f", inv.TotalHours), "1", 0, "C", false, 0, "")
		pdf.CellFormat(contentW*0.15, 7, money(inv.HourlyRate), "1", 0, "C", false, 0, "")
		pdf.CellFormat(contentW*0.15, 7, money(inv.TotalHours*inv.HourlyRate), "1", 1, "R", false, 0, "")
		pdf.Ln(3)
	}

	// Line items
	if len(inv.LineItems) > 0 {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(contentW*0.55, 7, "Description", "1", 0, "L", true, 0, "")
		pdf.CellFormat(contentW*0.15, 7, "Qty", "1", 0, "C", true, 0, "")
		pdf.CellFormat(contentW*0.15, 7, "Unit Price", "1", 0, "C", true, 0, "")
		pdf.CellFormat(contentW*0.15, 7, "Amount", "1", 1, "C", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		for _, item := range inv.LineItems {
			desc := item.Description
			if len(desc) > 60 {
				desc = desc[:57] + "..."
			}
			pdf.CellFormat(contentW*0.55, 6.5, desc, "1", 0, "L", false, 0, "")
			pdf.CellFormat(contentW*0.15, 6.5, fmt.Sprintf("%g", item.Quantity), "1", 0, "C", false, 0, "")
			pdf.CellFormat(contentW*0.15, 6.5, money(item.UnitPrice), "1", 0, "R", false, 0, "")
			pdf.CellFormat(contentW*0.15, 6.5, money(item.Amount), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	// Totals block, right-aligned
	label := contentW * 0.55
	val := contentW * 0.45
	totalsRow := func(name, amount string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(label, 6.5, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(val*0.5, 6.5, name, "", 0, "R", false, 0, "")
		pdf.CellFormat(val*0.5, 6.5, amount, "", 1, "R", false, 0, "")
	}

	totalsRow("Subtotal", moneyWithCurrency(inv.Subtotal, inv.Currency), false)
	if inv.DiscountPercent > 0 {
		totalsRow(fmt.Sprintf("Discount (%g%%)", inv.DiscountPercent),
			"-"+moneyWithCurrency(inv.DiscountAmount, inv.Currency), false)
	}
	if inv.TaxPercent > 0 {
		totalsRow(fmt.Sprintf("Tax (%g%%)", inv.TaxPercent),
			moneyWithCurrency(inv.TaxAmount, inv.Currency), false)
	}
	totalsRow("Total Due", moneyWithCurrency(inv.TotalAmount, inv.Currency), true)

	if inv.PaymentTerms != "" {
		pdf.Ln(8)
		pdf.SetFont("Arial", "I", 9)
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Payment terms: %s", inv.PaymentTerms), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf render failed: %w", err)
	}

	metrics.PDFExportsTotal.Inc()
	return buf.Bytes(), nil
}

// RenderAndArchive renders the PDF and, when object storage is configured,
// uploads a copy. The archive key is "" when archival is disabled or fails;
// the export itself never fails on archival problems.
func (s *PDFService) RenderAndArchive(ctx context.Context, inv *models.Invoice) ([]byte, string, error) {
	pdfBytes, err := s.Render(ctx, inv)
	if err != nil {
		return nil, "", err
	}

	if s.Store == nil {
		return pdfBytes, "", nil
	}
	key, err := s.Store.PutPDF(ctx, inv.OwnerID, inv.InvoiceNumber, pdfBytes)
	if err != nil {
		log.Printf("[PDF] Archive upload failed for %s: %v", inv.InvoiceNumber, err)
		return pdfBytes, "", nil
	}
	return pdfBytes, key, nil
}

func (s *PDFService) drawBackground(ctx context.Context, pdf *gofpdf.Fpdf, inv *models.Invoice, pageW float64) {
	if s.Store == nil || inv.BackgroundDesign == "" {
		return
	}
	img, err := s.Store.GetDesign(ctx, inv.BackgroundDesign)
	if err != nil {
		log.Printf("[PDF] Background design %s unavailable: %v", inv.BackgroundDesign, err)
		return
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	pdf.RegisterImageOptionsReader(inv.BackgroundDesign, opts, bytes.NewReader(img))
	_, pageH := pdf.GetPageSize()
	pdf.ImageOptions(inv.BackgroundDesign, 0, 0, pageW, pageH, false, opts, 0, "")
}

func partyLines(p models.Party) []string {
	var lines []string
	if p.Name != "" {
		lines = append(lines, p.Name)
	}
	if p.JobTitle != "" {
		lines = append(lines, p.JobTitle)
	}
	if p.Address != "" {
		lines = append(lines, p.Address)
	}
	if p.Email != "" {
		lines = append(lines, p.Email)
	}
	if p.Phone != "" {
		lines = append(lines, p.Phone)
	}
	if p.TaxID != "" {
		lines = append(lines, "Tax ID: "+p.TaxID)
	}
	return lines
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", billing.Round2(v))
}

func moneyWithCurrency(v float64, currency string) string {
	return fmt.Sprintf("%.2f %s", billing.Round2(v), currency)
}
