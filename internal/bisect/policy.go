package bisect

import (
	"fmt"
	"strconv"
	"strings"
)

// WorkdayPolicy is the set of ISO weekdays (1=Monday ... 7=Sunday) counted as workdays
type WorkdayPolicy struct {
	days [8]bool
}

// DefaultPolicy returns Monday-Friday
func DefaultPolicy() WorkdayPolicy {
	return NewPolicy(1, 2, 3, 4, 5)
}

// NewPolicy builds a policy from weekday numbers; values outside 1-7 are ignored
func NewPolicy(days ...int) WorkdayPolicy {
	var p WorkdayPolicy
	for _, d := range days {
		if d >= 1 && d <= 7 {
			p.days[d] = true
		}
	}
	return p
}

// ParsePolicy parses a comma-separated weekday list such as "1,2,3,4,5"
func ParsePolicy(s string) (WorkdayPolicy, error) {
	var p WorkdayPolicy
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		d, err := strconv.Atoi(part)
		if err != nil {
			return WorkdayPolicy{}, fmt.Errorf("failed to parse workday %q", part)
		}
		if d < 1 || d > 7 {
			return WorkdayPolicy{}, fmt.Errorf("given workday %d not in range [1-7]", d)
		}
		p.days[d] = true
	}
	return p, nil
}

// Contains reports whether the ISO weekday counts as a workday
func (p WorkdayPolicy) Contains(weekday int) bool {
	return weekday >= 1 && weekday <= 7 && p.days[weekday]
}

// Days returns the workday numbers in ascending order
func (p WorkdayPolicy) Days() []int {
	var out []int
	for d := 1; d <= 7; d++ {
		if p.days[d] {
			out = append(out, d)
		}
	}
	return out
}

// Empty reports whether no weekday is a workday
func (p WorkdayPolicy) Empty() bool {
	return len(p.Days()) == 0
}

// String formats the policy the way ParsePolicy reads it
func (p WorkdayPolicy) String() string {
	days := p.Days()
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}
