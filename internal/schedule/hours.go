package schedule

import "time"

// Service hours, minutes since local midnight.
const (
	OpeningMinute = 8 * 60  // 08:00
	ClosingMinute = 18 * 60 // 18:00
)

// WithinWorkingHours reports whether a booking window is acceptable:
// start and end reduced to minutes since midnight in local time must
// satisfy 08:00 <= start, end <= 18:00 and end > start. A window where
// end equals start is never acceptable.
func WithinWorkingHours(start, end time.Time) bool {
	s := start.Hour()*60 + start.Minute()
	e := end.Hour()*60 + end.Minute()
	return s >= OpeningMinute && e <= ClosingMinute && e > s
}
