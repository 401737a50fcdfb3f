package converter

import "time"

const (
	// DisplayDateLayout renders dates as dd/mm/yyyy.
	DisplayDateLayout = "02/01/2006"
	// DisplayTimeLayout renders times as HH:MM.
	DisplayTimeLayout = "15:04"
	// InputDateLayout is the YYYY-MM-DD layout of date inputs and query parameters.
	InputDateLayout = "2006-01-02"
)

// formatCalendarDate renders a date-only column. Those are stored at UTC midnight.
func formatCalendarDate(t *time.Time, layout string) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(layout)
}
