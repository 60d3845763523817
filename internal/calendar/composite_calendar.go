package calendar

import (
	"fmt"

	"github.com/username/cwver/pkg/dateutil"
	"go.uber.org/zap"
)

// CompositeCalendar consults several calendars in order; the first one that
// has an entry for a day wins
type CompositeCalendar struct {
	calendars []Calendar
	logger    *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(logger *zap.Logger, calendars ...Calendar) *CompositeCalendar {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompositeCalendar{
		calendars: calendars,
		logger:    logger,
	}
}

// GetDayInfo returns the entry of the first calendar that knows the day
func (cc *CompositeCalendar) GetDayInfo(date dateutil.Date) (*DayInfo, bool) {
	for i, cal := range cc.calendars {
		if info, ok := cal.GetDayInfo(date); ok {
			cc.logger.Debug("Calendar entry found",
				zap.Stringer("date", date),
				zap.Int("calendar", i),
				zap.Stringer("type", info.Type))
			return info, true
		}
	}
	return nil, false
}

// LoadFiles loads every FileCalendar among the composed calendars
func (cc *CompositeCalendar) LoadFiles() error {
	for _, cal := range cc.calendars {
		if fc, ok := cal.(*FileCalendar); ok {
			if err := fc.Load(); err != nil {
				return fmt.Errorf("failed to load calendar %s: %w", fc.filePath, err)
			}
		}
	}
	return nil
}

// FromFiles builds a composite calendar over the given files and loads them.
// Earlier files take precedence.
func FromFiles(paths []string, logger *zap.Logger) (*CompositeCalendar, error) {
	cals := make([]Calendar, 0, len(paths))
	for _, p := range paths {
		cals = append(cals, NewFileCalendar(p, logger))
	}

	cc := NewCompositeCalendar(logger, cals...)
	if err := cc.LoadFiles(); err != nil {
		return nil, err
	}
	return cc, nil
}
