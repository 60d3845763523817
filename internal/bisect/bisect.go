// Package bisect finds the workday midpoint of a regression range spanned by
// two cw versions.
package bisect

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/username/cwver/internal/calendar"
	"github.com/username/cwver/internal/cwver"
	"github.com/username/cwver/pkg/dateutil"
)

// ErrNoWorkdaysInRange means no day in the range qualifies as a workday
var ErrNoWorkdaysInRange = errors.New("no workdays in range")

// Result is the outcome of a bisection step
type Result struct {
	Start dateutil.Date
	End   dateutil.Date

	// WorkdayCount is the number of workdays in [Start, End]
	WorkdayCount int

	// Midpoints holds one date for an odd WorkdayCount and the two central
	// candidates, chronologically ordered, for an even one
	Midpoints []dateutil.Date
}

// Span is the distance in workdays from the first to the last workday of the range
func (r Result) Span() int {
	return r.WorkdayCount - 1
}

// Converged reports whether the range holds at most two workdays, so the
// midpoints are the endpoints themselves and there is nothing left to split
func (r Result) Converged() bool {
	return r.WorkdayCount <= 2
}

type options struct {
	calendar  calendar.Calendar
	converter cwver.Converter
	logger    *zap.Logger
}

// Option configures Bisect
type Option func(*options)

// WithCalendar lets explicit calendar entries override the weekday policy
func WithCalendar(cal calendar.Calendar) Option {
	return func(o *options) {
		o.calendar = cal
	}
}

// WithConverter sets the century policy used to resolve versions
func WithConverter(conv cwver.Converter) Option {
	return func(o *options) {
		o.converter = conv
	}
}

// WithLogger sets the logger used for debug tracing
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		converter: cwver.DefaultConverter,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Bisect returns the workday midpoint(s) of the range spanned by a and b.
// Argument order does not matter.
func Bisect(a, b cwver.Version, policy WorkdayPolicy, opts ...Option) (Result, error) {
	o := buildOptions(opts)

	from, err := o.converter.ToDate(a)
	if err != nil {
		return Result{}, err
	}
	till, err := o.converter.ToDate(b)
	if err != nil {
		return Result{}, err
	}

	return bisectDates(from, till, policy, o)
}

// BisectDates is Bisect for already resolved dates
func BisectDates(a, b dateutil.Date, policy WorkdayPolicy, opts ...Option) (Result, error) {
	return bisectDates(a, b, policy, buildOptions(opts))
}

func bisectDates(a, b dateutil.Date, policy WorkdayPolicy, o options) (Result, error) {
	start, end := a, b
	if end.Before(start) {
		start, end = end, start
	}

	workdays := Workdays(start, end, policy, o.calendar)

	o.logger.Debug("Enumerated regression range",
		zap.Stringer("start", start),
		zap.Stringer("end", end),
		zap.Stringer("policy", policy),
		zap.Int("workdays", len(workdays)))

	count := len(workdays)
	if count == 0 {
		return Result{}, fmt.Errorf("%w: %s .. %s (workdays %s)", ErrNoWorkdaysInRange, start, end, policy)
	}

	var midpoints []dateutil.Date
	if count%2 == 1 {
		midpoints = []dateutil.Date{workdays[(count-1)/2]}
	} else {
		midpoints = []dateutil.Date{workdays[count/2-1], workdays[count/2]}
	}

	return Result{
		Start:        start,
		End:          end,
		WorkdayCount: count,
		Midpoints:    midpoints,
	}, nil
}

// Workdays returns the workdays in [start, end] in chronological order. An
// entry in cal takes precedence over the weekday policy; cal may be nil.
func Workdays(start, end dateutil.Date, policy WorkdayPolicy, cal calendar.Calendar) []dateutil.Date {
	var out []dateutil.Date
	for d := start; !d.After(end); d = dateutil.AddDays(d, 1) {
		if IsWorkday(d, policy, cal) {
			out = append(out, d)
		}
	}
	return out
}

// IsWorkday reports whether d counts as a workday
func IsWorkday(d dateutil.Date, policy WorkdayPolicy, cal calendar.Calendar) bool {
	if cal != nil {
		if info, ok := cal.GetDayInfo(d); ok {
			return info.IsWorkday()
		}
	}
	return policy.Contains(d.Weekday())
}
