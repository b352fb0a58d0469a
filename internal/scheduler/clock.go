package scheduler

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Date identifies a calendar day. It carries no zone; two Dates are equal when
// their year, month and day match.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the normalised date for the supplied components, so
// NewDate(2024, time.January, 32) yields 2024-02-01.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the wall-clock day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD value.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return DateOf(t), nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight UTC of the day. It exists for calendar arithmetic only.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	return d.Time().Compare(other.Time())
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TimeOfDay is a wall-clock time expressed in minutes after midnight. The valid
// range is Midnight through EndOfDay; EndOfDay (24:00) is only meaningful as
// the end of an interval.
type TimeOfDay int

const (
	// Midnight is 00:00.
	Midnight TimeOfDay = 0
	// EndOfDay is 24:00.
	EndOfDay TimeOfDay = 24 * 60
)

// Clock returns the TimeOfDay for hour:minute.
func Clock(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses an HH:MM value. "24:00" is accepted.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	value = strings.TrimSpace(value)
	if value == "24:00" {
		return EndOfDay, nil
	}
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", value)
	}
	return Clock(t.Hour(), t.Minute()), nil
}

// Hour returns the hour component.
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component.
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// Valid reports whether t lies within Midnight..EndOfDay.
func (t TimeOfDay) Valid() bool {
	return t >= Midnight && t <= EndOfDay
}

// Add returns t shifted by d, truncated to whole minutes. The result is not
// wrapped around midnight; callers validate it with Valid.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return t + TimeOfDay(d/time.Minute)
}

// Sub returns the duration t-u.
func (t TimeOfDay) Sub(u TimeOfDay) time.Duration {
	return time.Duration(t-u) * time.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func minTime(a, b TimeOfDay) TimeOfDay {
	if a < b {
		return a
	}
	return b
}

func maxTime(a, b TimeOfDay) TimeOfDay {
	if a > b {
		return a
	}
	return b
}
