package domain

import "time"

// Clock supplies the current time and resolves wall-clock times in a
// named time zone. Implementations must return UTC instants.
type Clock interface {
	NowUTC() time.Time
	// TodayAt returns today's date in tz at hours:minutes.
	TodayAt(tz string, hours, minutes int) time.Time
	// At returns the calendar date of day (read in UTC) at hours:minutes in tz.
	At(tz string, day time.Time, hours, minutes int) time.Time
}
