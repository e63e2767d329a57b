package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", FormatDate(d))

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
}

func TestLastDayOfMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29}, // leap
		{2023, time.February, 28},
		{2100, time.February, 28}, // century non-leap
		{2000, time.February, 29}, // 400-year leap
		{2024, time.April, 30},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LastDayOfMonth(tt.year, tt.month), "%d-%d", tt.year, tt.month)
	}
}

func TestIsWeekend(t *testing.T) {
	// 2024-06-01 is a Saturday
	assert.True(t, IsWeekend(Date(2024, time.June, 1)))
	assert.True(t, IsWeekend(Date(2024, time.June, 2)))
	assert.False(t, IsWeekend(Date(2024, time.June, 3)))
	assert.False(t, IsWeekend(Date(2024, time.June, 7)))
}
