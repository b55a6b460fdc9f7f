package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTag(t *testing.T) {
	for _, tc := range []struct {
		pattern string
		expect  Tag
	}{
		{"%.01f", Printf},
		{"", Printf},
		{"hhmmss", Duration},
		{"metricDist", MetricDistance},
		{"imperialDistance", ImperialDistance},
		{"metricElev", MetricElevation},
		{"imperialElev", ImperialElevation},
		{"calories", Calories},
		{"joules", Joules},
		{"RHR42D", RestingHeartRate42Day},
		{"RHR", RestingHeartRate},
	} {
		t.Run(tc.pattern, func(t *testing.T) {
			assert.Equal(t, tc.expect, ParseTag(tc.pattern))
		})
	}
}

func TestTagStringRoundTrip(t *testing.T) {
	for tag := Duration; tag <= RestingHeartRate; tag++ {
		assert.Equal(t, tag, ParseTag(tag.String()), "tag %d", tag)
	}
	assert.Equal(t, "?", Tag(200).String())
}

func TestValue(t *testing.T) {
	for _, tc := range []struct {
		name    string
		pattern string
		value   float64
		expect  string
	}{
		{"printf default", Default, 3.14159, "3.1"},
		{"printf integer", "%.0f bpm", 61.6, "62 bpm"},
		{"minutes only", "hhmmss", 754, "12m "},
		{"hours and minutes", "hhmmss", 3900, "1h 05m "},
		{"whole hours", "hhmmss", 7200, "2h 0m "},
		{"double digit minutes", "hhmmss", 4500, "1h 15m "},
		{"kilometers", "metricDist", 42195, "42km"},
		{"miles", "imperialDist", 16090, "10mi"},
		{"meters", "metricElev", 120.7, "120m"},
		{"feet", "imperialElev", 100, "328ft"},
		{"calories", "calories", 512.9, "512kCal"},
		{"kilojoules", "joules", 2500, "2kJ"},
		{"resting heart rate", "RHR", 52.8, "52"},
		{"resting heart rate average", "RHR42D", 55.2, "55"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, Value(tc.pattern, tc.value))
		})
	}
}
