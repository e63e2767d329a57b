package billing

import (
	"math"

	"invoice-backend/internal/models"
)

// Totals is the derived money/time summary of an invoice.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	TaxAmount      float64 `json:"tax_amount"`
	TotalAmount    float64 `json:"total_amount"`
	TotalDays      int     `json:"total_days"`
	TotalHours     float64 `json:"total_hours"`
}

// RecomputeLineItems returns a copy of items with each amount re-derived
// from quantity and unit price. Stored amounts are never trusted; a stale
// amount from an earlier edit must not leak into totals.
func RecomputeLineItems(items []models.LineItem) []models.LineItem {
	out := make([]models.LineItem, len(items))
	for i, item := range items {
		item.Amount = item.Quantity * item.UnitPrice
		out[i] = item
	}
	return out
}

// Aggregate derives all invoice totals. Only workday entries with hours > 0
// count toward billable time. Discount applies to the subtotal; tax applies
// to the discounted base. Plain float64 throughout, rounding happens at
// display time (Round2).
func Aggregate(workHours []models.DailyWorkHours, hourlyRate float64, items []models.LineItem, discountPercent, taxPercent float64) Totals {
	var t Totals

	for _, wh := range workHours {
		if !wh.IsWorkday || wh.Hours <= 0 {
			continue
		}
		t.TotalDays++
		t.TotalHours += wh.Hours
	}

	t.Subtotal = t.TotalHours * hourlyRate
	for _, item := range RecomputeLineItems(items) {
		t.Subtotal += item.Amount
	}

	t.DiscountAmount = t.Subtotal * discountPercent / 100
	taxable := t.Subtotal - t.DiscountAmount
	t.TaxAmount = taxable * taxPercent / 100
	t.TotalAmount = taxable + t.TaxAmount
	return t
}

// Round2 rounds a monetary value to 2 decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
