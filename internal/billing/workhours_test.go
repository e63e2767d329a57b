package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-backend/internal/timeutil"
)

func TestGenerateWorkHours(t *testing.T) {
	// 2024-06-01 is a Saturday.
	records, err := GenerateWorkHours("2024-06-01", "2024-06-15", 8)
	require.NoError(t, err)
	require.Len(t, records, 15)

	for i, rec := range records {
		want := timeutil.FormatDate(timeutil.Date(2024, time.June, i+1))
		assert.Equal(t, want, rec.Date)
		assert.Equal(t, 8.0, rec.Hours)

		day, err := timeutil.ParseDate(rec.Date)
		require.NoError(t, err)
		assert.Equal(t, !timeutil.IsWeekend(day), rec.IsWorkday, rec.Date)
	}

	// Two weekends in the first half of June 2024.
	weekends := 0
	for _, rec := range records {
		if !rec.IsWorkday {
			weekends++
		}
	}
	assert.Equal(t, 4, weekends)
}

func TestGenerateWorkHoursSpansBoundaries(t *testing.T) {
	t.Run("month boundary", func(t *testing.T) {
		records, err := GenerateWorkHours("2024-04-28", "2024-05-03", 6)
		require.NoError(t, err)
		require.Len(t, records, 6)
		assert.Equal(t, "2024-04-30", records[2].Date)
		assert.Equal(t, "2024-05-01", records[3].Date)
	})

	t.Run("year boundary", func(t *testing.T) {
		records, err := GenerateWorkHours("2024-12-30", "2025-01-02", 8)
		require.NoError(t, err)
		require.Len(t, records, 4)
		assert.Equal(t, "2025-01-01", records[2].Date)
	})

	t.Run("leap February", func(t *testing.T) {
		records, err := GenerateWorkHours("2024-02-01", "2024-02-29", 8)
		require.NoError(t, err)
		assert.Len(t, records, 29)

		records, err = GenerateWorkHours("2023-02-01", "2023-02-28", 8)
		require.NoError(t, err)
		assert.Len(t, records, 28)
	})

	t.Run("single day", func(t *testing.T) {
		records, err := GenerateWorkHours("2024-06-03", "2024-06-03", 7.5)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.True(t, records[0].IsWorkday)
	})
}

func TestGenerateWorkHoursErrors(t *testing.T) {
	_, err := GenerateWorkHours("2024-06-15", "2024-06-01", 8)
	assert.Error(t, err)

	_, err = GenerateWorkHours("June 1", "2024-06-15", 8)
	assert.Error(t, err)

	_, err = GenerateWorkHours("2024-06-01", "someday", 8)
	assert.Error(t, err)
}

func TestGenerateWorkHoursIdempotent(t *testing.T) {
	first, err := GenerateWorkHours("2024-01-16", "2024-01-31", 8)
	require.NoError(t, err)
	second, err := GenerateWorkHours("2024-01-16", "2024-01-31", 8)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
