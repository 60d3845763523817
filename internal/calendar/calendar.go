package calendar

import (
	"fmt"

	"github.com/username/cwver/pkg/dateutil"
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeShortened
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeShortened:
		return "shortened"
	default:
		return fmt.Sprintf("DayType(%d)", int(t))
	}
}

// ParseDayType parses the textual day type used in calendar files
func ParseDayType(s string) (DayType, error) {
	switch s {
	case "workday":
		return DayTypeWorkday, nil
	case "weekend":
		return DayTypeWeekend, nil
	case "holiday":
		return DayTypeHoliday, nil
	case "shortened":
		return DayTypeShortened, nil
	default:
		return 0, fmt.Errorf("unknown day type: %s", s)
	}
}

// DayInfo represents an explicit entry for a specific day
type DayInfo struct {
	Date dateutil.Date
	Type DayType
	Note string
}

// IsWorkday reports whether the day counts as a working day.
// Shortened days are still working days.
func (d DayInfo) IsWorkday() bool {
	return d.Type == DayTypeWorkday || d.Type == DayTypeShortened
}

// Calendar overrides the weekday rule for individual days
type Calendar interface {
	// GetDayInfo returns the explicit entry for date; ok is false when the
	// calendar has no opinion and the weekday rule applies
	GetDayInfo(date dateutil.Date) (info *DayInfo, ok bool)
}
