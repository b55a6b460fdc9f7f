package pie

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlicesQuarters(t *testing.T) {
	slices := Slices([]float64{10, 10, 10, 10})
	require.Len(t, slices, 4)
	for i, s := range slices {
		assert.Equal(t, float64(i*90), s.StartDegree)
		assert.Equal(t, float64((i+1)*90), s.EndDegree)
		assert.Equal(t, 10.0, s.Value)
	}
}

func TestSlicesEmpty(t *testing.T) {
	assert.Empty(t, Slices(nil))
}

func TestSlicesAllZero(t *testing.T) {
	slices := Slices([]float64{0, 0, 0})
	require.Len(t, slices, 3)
	for _, s := range slices {
		assert.Equal(t, 0.0, s.StartDegree)
		assert.Equal(t, 0.0, s.EndDegree)
		assert.False(t, math.IsNaN(s.EndDegree))
	}
}

func TestSlicesDrift(t *testing.T) {
	values := make([]float64, 97)
	for i := range values {
		values[i] = 0.1 * float64(i%7+1)
	}
	slices := Slices(values)
	require.Len(t, slices, len(values))
	assert.Equal(t, 0.0, slices[0].StartDegree)
	assert.Equal(t, 360.0, slices[len(slices)-1].EndDegree)
	for i := 1; i < len(slices); i++ {
		assert.Equal(t, slices[i-1].EndDegree, slices[i].StartDegree, "slice %d must start where %d ends", i, i-1)
		assert.Less(t, slices[i].StartDegree, slices[i].EndDegree)
	}
}

func TestSlicesUneven(t *testing.T) {
	slices := Slices([]float64{1, 2, 1})
	assert.Equal(t, []Slice{
		{StartDegree: 0, EndDegree: 90, Value: 1},
		{StartDegree: 90, EndDegree: 270, Value: 2},
		{StartDegree: 270, EndDegree: 360, Value: 1},
	}, slices)
}

var square = Rect{Max: Point{X: 100, Y: 100}}

func TestIsPointInCircle(t *testing.T) {
	type testcase struct {
		name   string
		pt     Point
		bounds Rect
		expect bool
	}
	for _, tc := range []testcase{
		{name: "center", pt: Point{50, 50}, bounds: square, expect: true},
		{name: "on edge", pt: Point{50, 0}, bounds: square, expect: true},
		{name: "corner", pt: Point{2, 2}, bounds: square, expect: false},
		{name: "outside", pt: Point{150, 50}, bounds: square, expect: false},
		{
			name:   "wide rect uses shorter side",
			pt:     Point{70, 25},
			bounds: Rect{Max: Point{X: 200, Y: 50}},
			expect: false,
		},
		{
			name:   "wide rect near center",
			pt:     Point{110, 25},
			bounds: Rect{Max: Point{X: 200, Y: 50}},
			expect: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, IsPointInCircle(tc.pt, tc.bounds))
		})
	}
}

func TestDegreeForPoint(t *testing.T) {
	type testcase struct {
		name   string
		pt     Point
		expect float64
	}
	for _, tc := range []testcase{
		{name: "top", pt: Point{50, 10}, expect: 0},
		{name: "right", pt: Point{90, 50}, expect: 90},
		{name: "bottom", pt: Point{50, 90}, expect: 180},
		{name: "left", pt: Point{10, 50}, expect: 270},
		{name: "upper right", pt: Point{60, 40}, expect: 45},
		{name: "upper left", pt: Point{40, 40}, expect: 315},
	} {
		t.Run(tc.name, func(t *testing.T) {
			deg := DegreeForPoint(tc.pt, square)
			assert.InDelta(t, tc.expect, deg, 1e-9)
			assert.GreaterOrEqual(t, deg, 0.0)
			assert.Less(t, deg, 360.0)
		})
	}
}

func TestHitTest(t *testing.T) {
	slices := Slices([]float64{10, 10, 10, 10})
	assert.Equal(t, 0, HitTest(slices, 45))
	assert.Equal(t, 1, HitTest(slices, 135))
	assert.Equal(t, 3, HitTest(slices, 359.5))
	// Boundaries belong to no slice.
	assert.Equal(t, -1, HitTest(slices, 0))
	assert.Equal(t, -1, HitTest(slices, 90))
	assert.Equal(t, -1, HitTest(Slices([]float64{0, 0}), 10))
	assert.Equal(t, -1, HitTest(nil, 10))
}

func TestIndex(t *testing.T) {
	values := []float64{10, 10, 10, 10}
	assert.Equal(t, 0, Index(values, Point{60, 40}, square))
	assert.Equal(t, 2, Index(values, Point{40, 60}, square))
	assert.Equal(t, -1, Index(values, Point{1, 1}, square))
}
