// Package clock provides the wall clock used by services and schedules.
package clock

import (
	"time"
	_ "time/tzdata"
)

// System is a domain.Clock backed by time.Now.
type System struct{}

func (System) NowUTC() time.Time { return time.Now().UTC() }

// TodayAt returns today's calendar date in tz at hours:minutes, as UTC.
func (s System) TodayAt(tz string, hours, minutes int) time.Time {
	loc := ParseTimezone(tz)
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), hours, minutes, 0, 0, loc).UTC()
}

// At returns the UTC calendar date of day at hours:minutes in tz, as UTC.
func (System) At(tz string, day time.Time, hours, minutes int) time.Time {
	loc := ParseTimezone(tz)
	y, m, d := day.UTC().Date()
	return time.Date(y, m, d, hours, minutes, 0, 0, loc).UTC()
}

// DayStart returns the start of the current day in tz, converted to UTC.
func DayStart(now time.Time, tz *time.Location) time.Time {
	local := now.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz).UTC()
}

// ParseTimezone parses a timezone name, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
