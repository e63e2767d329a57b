package billing

import (
	"fmt"

	"invoice-backend/internal/models"
	"invoice-backend/internal/timeutil"
)

// GenerateWorkHours expands an inclusive date range into one record per
// calendar day, in ascending order. Weekdays get the default hours and
// isWorkday=true; Saturdays and Sundays get the default hours with
// isWorkday=false so toggling a weekend on needs no re-entry of hours.
// Deterministic: identical inputs always produce the identical sequence.
func GenerateWorkHours(start, end string, defaultHours float64) ([]models.DailyWorkHours, error) {
	from, err := timeutil.ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	to, err := timeutil.ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("end date %s before start date %s", end, start)
	}

	var records []models.DailyWorkHours
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		records = append(records, models.DailyWorkHours{
			Date:      timeutil.FormatDate(d),
			Hours:     defaultHours,
			IsWorkday: !timeutil.IsWeekend(d),
		})
	}
	return records, nil
}
