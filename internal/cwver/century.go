package cwver

// CenturyPolicy maps the two-digit year of a version string to a full year
// and back. The format carries no century digit, so every conversion goes
// through exactly one policy.
type CenturyPolicy interface {
	// FullYear maps yy (0-99) to a full year
	FullYear(yy int) int

	// TwoDigit maps a full year to yy; ok is false when year is outside the window
	TwoDigit(year int) (yy int, ok bool)
}

// FixedCentury places all two-digit years in [Base, Base+99]
type FixedCentury struct {
	Base int
}

// Century2000 maps 00-99 to 2000-2099. Dates before 2000 or after 2099
// cannot be written as version strings under this policy.
var Century2000 = FixedCentury{Base: 2000}

func (c FixedCentury) FullYear(yy int) int {
	return c.Base + yy
}

func (c FixedCentury) TwoDigit(year int) (int, bool) {
	if year < c.Base || year > c.Base+99 {
		return 0, false
	}
	return year - c.Base, true
}
