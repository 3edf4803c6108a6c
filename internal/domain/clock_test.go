package domain

import (
	"time"
	_ "time/tzdata"
)

// fakeClock is a fixed Clock for tests.
type fakeClock struct {
	now time.Time
}

func (c fakeClock) NowUTC() time.Time { return c.now.UTC() }

func (c fakeClock) TodayAt(tz string, hours, minutes int) time.Time {
	return c.At(tz, c.now, hours, minutes)
}

func (c fakeClock) At(tz string, day time.Time, hours, minutes int) time.Time {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}
	y, m, d := day.UTC().Date()
	return time.Date(y, m, d, hours, minutes, 0, 0, loc).UTC()
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptrTime(t time.Time) *time.Time { return &t }
