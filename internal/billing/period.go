package billing

import (
	"time"

	"invoice-backend/internal/timeutil"
)

// Invoices are billed semi-monthly: the 1st batch covers days 1-15 of a
// month, the 2nd batch day 16 through the end of the month.
const (
	FirstBatch  = 1
	SecondBatch = 2

	batchBoundaryDay = 15
)

// Period is one semi-monthly billing window.
type Period struct {
	Start string `json:"start"` // "2006-01-02"
	End   string `json:"end"`   // "2006-01-02", inclusive
	Label string `json:"label"` // "Jan 2006"
	Batch int    `json:"batch"` // FirstBatch or SecondBatch
}

// CurrentPeriod returns the 1st batch of the reference date's month. Used
// when an owner has no prior invoices to roll over from.
func CurrentPeriod(ref time.Time) Period {
	return firstBatchOf(ref.Year(), ref.Month())
}

// NextPeriod derives the billing window that follows the given period end.
// A period ending on or before the 15th is followed by the 2nd batch of the
// same month; a period ending later is followed by the 1st batch of the next
// month, rolling the year forward past December.
func NextPeriod(priorEnd time.Time) Period {
	year, month := priorEnd.Year(), priorEnd.Month()

	if priorEnd.Day() <= batchBoundaryDay {
		last := timeutil.LastDayOfMonth(year, month)
		return Period{
			Start: timeutil.FormatDate(timeutil.Date(year, month, batchBoundaryDay+1)),
			End:   timeutil.FormatDate(timeutil.Date(year, month, last)),
			Label: timeutil.Date(year, month, 1).Format(timeutil.LabelLayout),
			Batch: SecondBatch,
		}
	}

	// time.Date normalizes December+1 into January of the next year.
	next := timeutil.Date(year, month+1, 1)
	return firstBatchOf(next.Year(), next.Month())
}

func firstBatchOf(year int, month time.Month) Period {
	return Period{
		Start: timeutil.FormatDate(timeutil.Date(year, month, 1)),
		End:   timeutil.FormatDate(timeutil.Date(year, month, batchBoundaryDay)),
		Label: timeutil.Date(year, month, 1).Format(timeutil.LabelLayout),
		Batch: FirstBatch,
	}
}
