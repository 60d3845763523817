// Package cwver implements calendar-week version strings of the form
// <yy>w<ww>.<d>, e.g. 21w45.7 for Sunday of ISO week 45 in 2021.
package cwver

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/username/cwver/pkg/dateutil"
)

var versionRegex = regexp.MustCompile(`^(\d{2})w(\d{2})\.(\d)$`)

// Version is a parsed cw version string
type Version struct {
	Year    int // two-digit year 0-99
	Week    int // ISO week 1-53
	Weekday int // ISO weekday 1-7
}

// Parse parses a <yy>w<ww>.<d> string. Only the lexical bounds of week and
// weekday are checked here; whether the week exists in that year is checked
// when the version is converted to a date.
func Parse(s string) (Version, error) {
	m := versionRegex.FindStringSubmatch(s)
	if m == nil {
		return Version{}, newError(s, ErrMalformed, "expected <yy>w<ww>.<d>")
	}

	// The regex guarantees plain digits, Atoi cannot fail.
	yy, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])
	weekday, _ := strconv.Atoi(m[3])

	if week < 1 || week > 53 {
		return Version{}, newError(s, ErrOutOfRange, "week %d not in range [1-53]", week)
	}
	if weekday < 1 || weekday > 7 {
		return Version{}, newError(s, ErrOutOfRange, "day of week %d not in range [1-7]", weekday)
	}

	return Version{Year: yy, Week: week, Weekday: weekday}, nil
}

// MustParse is like Parse but panics on error
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String formats the version as <yy>w<ww>.<d>
func (v Version) String() string {
	return fmt.Sprintf("%02dw%02d.%d", v.Year, v.Week, v.Weekday)
}

// Format is the inverse of Parse
func Format(v Version) string {
	return v.String()
}

// Converter converts between versions and dates under a century policy
type Converter struct {
	Century CenturyPolicy
}

// NewConverter creates a Converter; a nil policy means Century2000
func NewConverter(policy CenturyPolicy) Converter {
	if policy == nil {
		policy = Century2000
	}
	return Converter{Century: policy}
}

// DefaultConverter uses Century2000
var DefaultConverter = NewConverter(Century2000)

// century returns the bound policy; the zero Converter uses Century2000
func (c Converter) century() CenturyPolicy {
	if c.Century == nil {
		return Century2000
	}
	return c.Century
}

// ToDate resolves v to a calendar date
func (c Converter) ToDate(v Version) (dateutil.Date, error) {
	if v.Year < 0 || v.Year > 99 || v.Week < 1 || v.Week > 53 || v.Weekday < 1 || v.Weekday > 7 {
		return dateutil.Date{}, newError(v.String(), ErrOutOfRange, "field outside lexical bounds")
	}
	w := dateutil.WeekDate{
		Year:    c.century().FullYear(v.Year),
		Week:    v.Week,
		Weekday: v.Weekday,
	}
	d, err := dateutil.DateOf(w)
	if err != nil {
		return dateutil.Date{}, newError(v.String(), ErrInvalidWeek,
			"ISO year %d has %d weeks", w.Year, dateutil.WeeksInYear(w.Year))
	}
	return d, nil
}

// FromDate returns the version naming d
func (c Converter) FromDate(d dateutil.Date) (Version, error) {
	w := dateutil.ISOWeekDateOf(d)
	yy, ok := c.century().TwoDigit(w.Year)
	if !ok {
		return Version{}, newError(d.String(), ErrYearOutOfCentury, "ISO year %d has no two-digit form", w.Year)
	}
	return Version{Year: yy, Week: w.Week, Weekday: w.Weekday}, nil
}

// ToDate resolves v using Century2000
func ToDate(v Version) (dateutil.Date, error) {
	return DefaultConverter.ToDate(v)
}

// FromDate converts d using Century2000
func FromDate(d dateutil.Date) (Version, error) {
	return DefaultConverter.FromDate(d)
}
