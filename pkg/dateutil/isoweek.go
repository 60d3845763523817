package dateutil

import (
	"fmt"
	"time"
)

// WeekDate is an ISO-8601 week date
type WeekDate struct {
	Year    int // ISO year, may differ from the calendar year around Jan 1
	Week    int // 1-53
	Weekday int // 1=Monday ... 7=Sunday
}

func (w WeekDate) String() string {
	return fmt.Sprintf("%04d-W%02d-%d", w.Year, w.Week, w.Weekday)
}

// ISOWeekDateOf returns the ISO week date of d. The week containing a date is
// the Monday-Sunday week holding that date's Thursday, and the ISO year is the
// calendar year of that Thursday.
func ISOWeekDateOf(d Date) WeekDate {
	wd := d.Weekday()
	thursday := AddDays(d, 4-wd)
	jan1, _ := NewDate(thursday.Year, time.January, 1)
	return WeekDate{
		Year:    thursday.Year,
		Week:    DaysBetween(jan1, thursday)/7 + 1,
		Weekday: wd,
	}
}

// WeeksInYear returns 52 or 53. A year has 53 ISO weeks when Jan 1 is a
// Thursday, or when it is a leap year and Jan 1 is a Wednesday.
func WeeksInYear(year int) int {
	jan1 := Date{Year: year, Month: time.January, Day: 1}.Weekday()
	if jan1 == 4 || (jan1 == 3 && IsLeapYear(year)) {
		return 53
	}
	return 52
}

// FirstMonday returns the Monday of ISO week 1, i.e. the Monday on or before January 4th
func FirstMonday(year int) Date {
	return StartOfWeek(Date{Year: year, Month: time.January, Day: 4})
}

// DateOf converts an ISO week date to a calendar date
func DateOf(w WeekDate) (Date, error) {
	if w.Year < 1 {
		return Date{}, fmt.Errorf("%w: year %d must be >= 1", ErrInvalidWeek, w.Year)
	}
	if w.Weekday < 1 || w.Weekday > 7 {
		return Date{}, fmt.Errorf("%w: weekday %d out of range [1-7]", ErrInvalidWeek, w.Weekday)
	}
	if weeks := WeeksInYear(w.Year); w.Week < 1 || w.Week > weeks {
		return Date{}, fmt.Errorf("%w: week %d of %d (year has %d weeks)", ErrInvalidWeek, w.Week, w.Year, weeks)
	}
	return AddDays(FirstMonday(w.Year), (w.Week-1)*7+(w.Weekday-1)), nil
}
