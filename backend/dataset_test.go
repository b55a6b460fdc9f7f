package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetConstruction(t *testing.T) {
	type testcase struct {
		name    string
		ds      *Dataset
		labels  []string
		values  []float64
		targets []float64
	}
	for _, tc := range []testcase{
		{
			name:    "empty",
			ds:      NewDataset(),
			labels:  []string{},
			values:  []float64{},
			targets: []float64{},
		},
		{
			name:    "zero value",
			ds:      &Dataset{},
			labels:  []string{},
			values:  []float64{},
			targets: []float64{},
		},
		{
			name:    "values",
			ds:      FromValues([]float64{1, 3}),
			labels:  []string{"", ""},
			values:  []float64{1, 3},
			targets: []float64{0, 0},
		},
		{
			name:    "labeled",
			ds:      FromLabeled([]Labeled{{"M", 6}, {"T", 2}}),
			labels:  []string{"M", "T"},
			values:  []float64{6, 2},
			targets: []float64{0, 0},
		},
		{
			name:    "full points",
			ds:      NewDataset(DataPoint{"M", 6, 8}, DataPoint{"T", 2, 4}),
			labels:  []string{"M", "T"},
			values:  []float64{6, 2},
			targets: []float64{8, 4},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.labels, tc.ds.Labels())
			assert.Equal(t, tc.values, tc.ds.Values())
			assert.Equal(t, tc.targets, tc.ds.Targets())
			assert.Equal(t, len(tc.values), tc.ds.Len())
		})
	}
}

func TestDatasetReplace(t *testing.T) {
	ds := FromValues([]float64{1, 2, 3})
	notified := 0
	ds.OnChange(func() { notified++ })

	input := []DataPoint{{Label: "a", Value: 10, Target: 5}}
	ds.Replace(input)
	require.Equal(t, 1, notified)
	assert.Equal(t, []float64{10}, ds.Values())
	assert.Equal(t, []float64{5}, ds.Targets())
	assert.Equal(t, 10.0, ds.Normalized().Scale)

	// The dataset must not alias the caller's slice.
	input[0].Value = 99
	assert.Equal(t, 10.0, ds.At(0).Value)

	ds.Replace(nil)
	assert.Equal(t, 2, notified)
	assert.Equal(t, 0, ds.Len())
	assert.Equal(t, NormalizedSeries{Values: []float64{}, Targets: []float64{}, Scale: 1}, ds.Normalized())
}

func TestDatasetAtOutOfRange(t *testing.T) {
	ds := FromValues([]float64{1})
	assert.Panics(t, func() { ds.At(1) })
	assert.Panics(t, func() { ds.At(-1) })
	assert.NotPanics(t, func() { ds.At(0) })
}

func TestDatasetPointsIsCopy(t *testing.T) {
	ds := NewDataset(DataPoint{Label: "a", Value: 1})
	pts := ds.Points()
	pts[0].Value = 7
	assert.Equal(t, 1.0, ds.At(0).Value)
}
