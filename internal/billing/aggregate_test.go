package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"invoice-backend/internal/models"
)

func TestAggregate(t *testing.T) {
	// 16 billable hours at 100/h plus a 50 line item, 10% discount, 10% tax.
	workHours := []models.DailyWorkHours{
		{Date: "2024-01-01", Hours: 8, IsWorkday: true},
		{Date: "2024-01-02", Hours: 8, IsWorkday: true},
		{Date: "2024-01-06", Hours: 8, IsWorkday: false}, // weekend, not billed
		{Date: "2024-01-03", Hours: 0, IsWorkday: true},  // zero hours, not billed
	}
	items := []models.LineItem{
		{Description: "Hosting", Quantity: 1, UnitPrice: 50},
	}

	totals := Aggregate(workHours, 100, items, 10, 10)

	assert.Equal(t, 1650.0, totals.Subtotal)
	assert.Equal(t, 165.0, totals.DiscountAmount)
	assert.Equal(t, 148.5, totals.TaxAmount)
	assert.Equal(t, 1633.5, totals.TotalAmount)
	assert.Equal(t, 2, totals.TotalDays)
	assert.Equal(t, 16.0, totals.TotalHours)
}

func TestAggregateIgnoresStaleAmounts(t *testing.T) {
	// Amount says 999 but quantity x price says 20; the stored amount
	// must be recomputed, never trusted.
	items := []models.LineItem{
		{Description: "Widgets", Quantity: 4, UnitPrice: 5, Amount: 999},
	}
	totals := Aggregate(nil, 0, items, 0, 0)
	assert.Equal(t, 20.0, totals.Subtotal)
	assert.Equal(t, 20.0, totals.TotalAmount)
}

func TestAggregateEmptyInvoice(t *testing.T) {
	totals := Aggregate(nil, 100, nil, 10, 10)
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.TotalAmount)
	assert.Zero(t, totals.TotalDays)
	assert.Zero(t, totals.TotalHours)
}

func TestRecomputeLineItems(t *testing.T) {
	items := []models.LineItem{
		{Quantity: 2, UnitPrice: 12.5, Amount: 1},
		{Quantity: 0.5, UnitPrice: 100},
	}
	out := RecomputeLineItems(items)
	assert.Equal(t, 25.0, out[0].Amount)
	assert.Equal(t, 50.0, out[1].Amount)
	// input untouched
	assert.Equal(t, 1.0, items[0].Amount)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 148.5, Round2(148.5))
	assert.Equal(t, 0.1, Round2(0.10000000000000009))
	assert.Equal(t, 2.68, Round2(2.675000001))
}
