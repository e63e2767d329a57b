package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-backend/internal/timeutil"
)

func TestCurrentPeriod(t *testing.T) {
	p := CurrentPeriod(timeutil.Date(2024, time.January, 22))
	assert.Equal(t, "2024-01-01", p.Start)
	assert.Equal(t, "2024-01-15", p.End)
	assert.Equal(t, "Jan 2024", p.Label)
	assert.Equal(t, FirstBatch, p.Batch)
}

func TestNextPeriod(t *testing.T) {
	tests := []struct {
		name      string
		priorEnd  string
		wantStart string
		wantEnd   string
		wantLabel string
		wantBatch int
	}{
		{
			name:      "mid-month end rolls to 2nd batch of same month",
			priorEnd:  "2024-01-15",
			wantStart: "2024-01-16",
			wantEnd:   "2024-01-31",
			wantLabel: "Jan 2024",
			wantBatch: SecondBatch,
		},
		{
			name:      "month-end rolls to 1st batch of next month",
			priorEnd:  "2024-01-31",
			wantStart: "2024-02-01",
			wantEnd:   "2024-02-15",
			wantLabel: "Feb 2024",
			wantBatch: FirstBatch,
		},
		{
			name:      "leap-year February 2nd batch ends on the 29th",
			priorEnd:  "2024-02-15",
			wantStart: "2024-02-16",
			wantEnd:   "2024-02-29",
			wantLabel: "Feb 2024",
			wantBatch: SecondBatch,
		},
		{
			name:      "non-leap February 2nd batch ends on the 28th",
			priorEnd:  "2023-02-15",
			wantStart: "2023-02-16",
			wantEnd:   "2023-02-28",
			wantLabel: "Feb 2023",
			wantBatch: SecondBatch,
		},
		{
			name:      "30-day month 2nd batch",
			priorEnd:  "2024-04-15",
			wantStart: "2024-04-16",
			wantEnd:   "2024-04-30",
			wantLabel: "Apr 2024",
			wantBatch: SecondBatch,
		},
		{
			name:      "December rollover advances the year",
			priorEnd:  "2024-12-31",
			wantStart: "2025-01-01",
			wantEnd:   "2025-01-15",
			wantLabel: "Jan 2025",
			wantBatch: FirstBatch,
		},
		{
			name:      "end before the 15th still yields 2nd batch of same month",
			priorEnd:  "2024-03-10",
			wantStart: "2024-03-16",
			wantEnd:   "2024-03-31",
			wantLabel: "Mar 2024",
			wantBatch: SecondBatch,
		},
		{
			name:      "end after the 15th but before month end rolls forward",
			priorEnd:  "2024-03-20",
			wantStart: "2024-04-01",
			wantEnd:   "2024-04-15",
			wantLabel: "Apr 2024",
			wantBatch: FirstBatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prior, err := timeutil.ParseDate(tt.priorEnd)
			require.NoError(t, err)

			p := NextPeriod(prior)
			assert.Equal(t, tt.wantStart, p.Start)
			assert.Equal(t, tt.wantEnd, p.End)
			assert.Equal(t, tt.wantLabel, p.Label)
			assert.Equal(t, tt.wantBatch, p.Batch)
		})
	}
}

func TestNextPeriodIsDeterministic(t *testing.T) {
	prior := timeutil.Date(2024, time.June, 15)
	assert.Equal(t, NextPeriod(prior), NextPeriod(prior))
}
