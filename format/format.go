// Package format turns a chart value into display text according to a
// format pattern. A pattern is either one of the named rules below or a
// printf-style verb such as "%.01f".
package format

import (
	"fmt"
	"strconv"
	"strings"
)

type Tag uint8

const (
	Printf Tag = iota
	Duration
	MetricDistance
	ImperialDistance
	MetricElevation
	ImperialElevation
	Calories
	Joules
	RestingHeartRate42Day
	RestingHeartRate
)

// Default is the pattern used when none is configured.
const Default = "%.01f"

const (
	metersPerKilometer = 1000.0
	metersPerMile      = 1609.0
	feetPerMeter       = 3.28084
	joulesPerKilojoule = 1000.0
)

// prefixes is ordered so that longer patterns sharing a prefix win.
var prefixes = []struct {
	prefix string
	tag    Tag
}{
	{"hhmmss", Duration},
	{"metricDist", MetricDistance},
	{"imperialDist", ImperialDistance},
	{"metricElev", MetricElevation},
	{"imperialElev", ImperialElevation},
	{"calories", Calories},
	{"joules", Joules},
	{"RHR42D", RestingHeartRate42Day},
	{"RHR", RestingHeartRate},
}

// ParseTag identifies the rule selected by pattern. Anything that does not
// start with a known rule name is a printf pattern.
func ParseTag(pattern string) Tag {
	for _, p := range prefixes {
		if strings.HasPrefix(pattern, p.prefix) {
			return p.tag
		}
	}
	return Printf
}

func (t Tag) String() string {
	switch t {
	case Printf:
		return "printf"
	case Duration:
		return "hhmmss"
	case MetricDistance:
		return "metricDist"
	case ImperialDistance:
		return "imperialDist"
	case MetricElevation:
		return "metricElev"
	case ImperialElevation:
		return "imperialElev"
	case Calories:
		return "calories"
	case Joules:
		return "joules"
	case RestingHeartRate42Day:
		return "RHR42D"
	case RestingHeartRate:
		return "RHR"
	default:
		return "?"
	}
}

// Value formats v with pattern.
func Value(pattern string, v float64) string {
	switch ParseTag(pattern) {
	case Duration:
		return hoursMinutes(int(v)) + " "
	case MetricDistance:
		return strconv.Itoa(int(v/metersPerKilometer)) + "km"
	case ImperialDistance:
		return strconv.Itoa(int(v/metersPerMile)) + "mi"
	case MetricElevation:
		return strconv.Itoa(int(v)) + "m"
	case ImperialElevation:
		return strconv.Itoa(int(v*feetPerMeter)) + "ft"
	case Calories:
		return strconv.Itoa(int(v)) + "kCal"
	case Joules:
		return strconv.Itoa(int(v/joulesPerKilojoule)) + "kJ"
	case RestingHeartRate42Day, RestingHeartRate:
		return strconv.Itoa(int(v))
	default:
		return fmt.Sprintf(pattern, v)
	}
}

// hoursMinutes renders a number of seconds as "1h 05m", or "12m" below an
// hour. Minutes are only padded when they are between one and nine.
func hoursMinutes(seconds int) string {
	minutes := seconds / 60
	hours := minutes / 60
	minutes %= 60
	if hours > 0 && minutes > 0 && minutes < 10 {
		return fmt.Sprintf("%dh %02dm", hours, minutes)
	} else if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
