package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// DurationRange is the numeric form of a free-text time descriptor such as
// "30-60 minutes" or "2-4 hours". Values are minutes. A zero range means the
// descriptor could not be parsed.
type DurationRange struct {
	Min int
	Max int
}

// IsZero reports whether no duration could be parsed.
func (d DurationRange) IsZero() bool {
	return d.Min == 0 && d.Max == 0
}

// Allocation splits the lower bound of the range into preparation,
// execution, and debrief minutes using fixed 30/50/20 fractions. A zero
// range is treated as a one-hour session so downstream consumers always get
// non-negative minutes. The three parts always sum to the total.
func (d DurationRange) Allocation() (prep, exec, debrief int) {
	total := d.Min
	if total <= 0 {
		total = 60
	}
	prep = total * 3 / 10
	exec = total / 2
	debrief = total - prep - exec
	return prep, exec, debrief
}

var durationTokens = regexp.MustCompile(`(\d+)\s*(minutes?|mins?|hours?|hrs?|days?)?`)

// ParseDuration extracts a minute range from a time-required descriptor.
// Single values yield Min == Max. Each number is scaled by its own unit, so
// mixed descriptors like "90 minutes to 2 hours" come out right; a number
// without a unit inherits the unit of the following number ("2-4 hours").
// Unparseable input yields the zero range, never an error.
func ParseDuration(raw string) DurationRange {
	matches := durationTokens.FindAllStringSubmatch(strings.ToLower(raw), 2)
	if len(matches) == 0 {
		return DurationRange{}
	}

	values := make([]int, len(matches))
	units := make([]int, len(matches))
	for i, m := range matches {
		values[i], _ = strconv.Atoi(m[1])
		units[i] = unitMinutes(m[2])
	}
	for i := len(units) - 2; i >= 0; i-- {
		if units[i] == 0 {
			units[i] = units[i+1]
		}
	}

	min := scale(values[0], units[0])
	max := min
	if len(values) > 1 {
		max = scale(values[1], units[1])
	}
	if max < min {
		min, max = max, min
	}
	return DurationRange{Min: min, Max: max}
}

func unitMinutes(word string) int {
	switch {
	case strings.HasPrefix(word, "hour"), strings.HasPrefix(word, "hr"):
		return 60
	case strings.HasPrefix(word, "day"):
		return 8 * 60
	case word == "":
		return 0
	default:
		return 1
	}
}

// scale treats a unitless number as minutes.
func scale(value, unit int) int {
	if unit == 0 {
		unit = 1
	}
	return value * unit
}
