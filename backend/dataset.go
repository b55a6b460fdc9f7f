package backend

import "fmt"

// DataPoint is one labeled entry of a chart. A Target of zero means that no
// target was provided for the point.
type DataPoint struct {
	Label  string
	Value  float64
	Target float64
}

// Labeled is a value with a label and no target.
type Labeled struct {
	Label string
	Value float64
}

// Dataset is the ordered sequence of points driving one chart instance. Its
// order defines the x-axis order of bar and line charts and the slice order of
// pie charts. The only mutation is a wholesale [Dataset.Replace]; every
// derived view is computed from the current points on demand.
//
// A Dataset is not safe for concurrent use. It is meant to be owned by the
// goroutine that draws the chart.
type Dataset struct {
	points    []DataPoint
	observers []func()
}

// NewDataset builds a dataset from full (label, value, target) points.
func NewDataset(points ...DataPoint) *Dataset {
	d := &Dataset{}
	d.points = append(d.points, points...)
	return d
}

// FromValues builds a dataset of unlabeled values without targets.
func FromValues(values []float64) *Dataset {
	d := &Dataset{points: make([]DataPoint, len(values))}
	for i, v := range values {
		d.points[i] = DataPoint{Value: v}
	}
	return d
}

// FromLabeled builds a dataset of labeled values without targets.
func FromLabeled(values []Labeled) *Dataset {
	d := &Dataset{points: make([]DataPoint, len(values))}
	for i, v := range values {
		d.points[i] = DataPoint{Label: v.Label, Value: v.Value}
	}
	return d
}

// Replace swaps the entire contents of the dataset and notifies observers
// registered with [Dataset.OnChange].
func (d *Dataset) Replace(points []DataPoint) {
	d.points = append(d.points[:0:0], points...)
	for _, f := range d.observers {
		f()
	}
}

// OnChange registers f to be invoked after every call to [Dataset.Replace].
func (d *Dataset) OnChange(f func()) {
	d.observers = append(d.observers, f)
}

func (d *Dataset) Len() int {
	return len(d.points)
}

// At returns the point at index i. Callers must keep i within [0, Len()); an
// out of range index is a programming error and panics.
func (d *Dataset) At(i int) DataPoint {
	if i < 0 || i >= len(d.points) {
		panic(fmt.Sprintf("backend: dataset index %d out of range [0,%d)", i, len(d.points)))
	}
	return d.points[i]
}

// Points returns a copy of the points in the dataset.
func (d *Dataset) Points() []DataPoint {
	return append([]DataPoint(nil), d.points...)
}

func (d *Dataset) Values() []float64 {
	out := make([]float64, len(d.points))
	for i, p := range d.points {
		out[i] = p.Value
	}
	return out
}

func (d *Dataset) Targets() []float64 {
	out := make([]float64, len(d.points))
	for i, p := range d.points {
		out[i] = p.Target
	}
	return out
}

func (d *Dataset) Labels() []string {
	out := make([]string, len(d.points))
	for i, p := range d.points {
		out[i] = p.Label
	}
	return out
}
