package dateutil

import (
	"errors"
	"fmt"
	"time"
)

const isoLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

var (
	// ErrInvalidDate is returned when year/month/day does not name a real day
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidWeek is returned when a week date names a week that does not exist
	ErrInvalidWeek = errors.New("invalid week")
)

// Date represents a calendar day in the proleptic Gregorian calendar
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a validated Date
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < 1 {
		return Date{}, fmt.Errorf("%w: year %d must be >= 1", ErrInvalidDate, year)
	}
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d out of range [1-12]", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: day %d out of range for %d-%02d", ErrInvalidDate, day, year, month)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustDate is like NewDate but panics on invalid input
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the calendar date of t in t's location
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a strict YYYY-MM-DD date
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	d := FromTime(t)
	if d.Year < 1 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// Today returns the calendar date of now. The caller supplies the instant so
// that nothing in this package reads the clock.
func Today(now time.Time) Date {
	return FromTime(now)
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Weekday returns the ISO weekday number (1=Monday ... 7=Sunday)
func (d Date) Weekday() int {
	wd := int(d.Time().Weekday())
	if wd == 0 {
		wd = 7 // Sunday = 7
	}
	return wd
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly before other
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly after other
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// MinDate is the earliest representable Date
var MinDate = Date{Year: 1, Month: time.January, Day: 1}

// AddDays returns the date n days after d (n may be negative). Results
// before MinDate are clamped to MinDate.
func AddDays(d Date, n int) Date {
	r := FromTime(d.Time().AddDate(0, 0, n))
	if r.Year < 1 {
		return MinDate
	}
	return r
}

// DaysBetween returns the signed number of days from a to b
func DaysBetween(a, b Date) int {
	// Unix seconds instead of Sub: time.Duration saturates after ~292 years.
	return int((b.Time().Unix() - a.Time().Unix()) / secondsPerDay)
}

// IsLeapYear reports whether year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// StartOfWeek returns the Monday of the ISO week containing d
func StartOfWeek(d Date) Date {
	return AddDays(d, -(d.Weekday() - 1))
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
