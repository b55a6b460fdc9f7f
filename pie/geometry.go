// Package pie partitions a series into pie slices and hit tests pointer
// positions against them.
//
// Angles are in degrees, start at 12 o'clock and grow clockwise in screen
// coordinates, where y grows downward.
package pie

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Slice is the angular extent of one value.
type Slice struct {
	StartDegree, EndDegree float64
	Value                  float64
}

// Point is a position in the same coordinate space as the pie's bounds.
type Point struct {
	X, Y float64
}

// Rect is an axis aligned rectangle, Min inclusive.
type Rect struct {
	Min, Max Point
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Center() Point {
	return Point{X: r.Min.X + r.Dx()/2, Y: r.Min.Y + r.Dy()/2}
}

// Radius of the circle inscribed in r.
func (r Rect) Radius() float64 {
	return min(r.Dx(), r.Dy()) / 2
}

// drift is the largest distance from a full circle that is attributed to
// floating point accumulation.
const drift = 1e-9

// Slices partitions values into consecutive slices proportional to each
// value's share of their sum. A zero sum is treated as one, so an all-zero
// series yields degenerate slices rather than dividing by zero.
func Slices(values []float64) []Slice {
	total := floats.Sum(values)
	if total == 0 {
		total = 1
	}
	out := make([]Slice, 0, len(values))
	lastEnd := 0.0
	for _, v := range values {
		end := lastEnd + (v/total)*360
		out = append(out, Slice{StartDegree: lastEnd, EndDegree: end, Value: v})
		lastEnd = end
	}
	if n := len(out); n > 0 && math.Abs(out[n-1].EndDegree-360) < drift {
		out[n-1].EndDegree = 360
	}
	return out
}

// IsPointInCircle reports whether pt lies within the circle inscribed in
// bounds. Points on the circle count as inside.
func IsPointInCircle(pt Point, bounds Rect) bool {
	c := bounds.Center()
	return math.Hypot(pt.X-c.X, pt.Y-c.Y) <= bounds.Radius()
}

// DegreeForPoint returns the angle of pt around the center of bounds, in
// [0,360).
func DegreeForPoint(pt Point, bounds Rect) float64 {
	c := bounds.Center()
	deg := math.Atan2(pt.X-c.X, c.Y-pt.Y) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// HitTest returns the index of the first slice strictly containing angle, or
// -1 when the angle sits on a boundary or outside every slice.
func HitTest(slices []Slice, angle float64) int {
	for i, s := range slices {
		if s.StartDegree < angle && angle < s.EndDegree {
			return i
		}
	}
	return -1
}

// Index combines the circle test, angle and hit test for a pointer at pt.
func Index(values []float64, pt Point, bounds Rect) int {
	if !IsPointInCircle(pt, bounds) {
		return -1
	}
	return HitTest(Slices(values), DegreeForPoint(pt, bounds))
}
