// Package interaction maps drag gestures over a chart onto the data under the
// pointer.
package interaction

import (
	"math"

	"git.sr.ht/~whereswaldon/touchcharts/backend"
	"git.sr.ht/~whereswaldon/touchcharts/pie"
	"golang.org/x/exp/constraints"
)

// State is the current interaction with a chart. Labels read it to decide
// whether to show their title or the value under the pointer.
type State struct {
	// PointerFraction is the pointer's horizontal position as a fraction of
	// the chart width, or -1 when no interaction is in progress.
	PointerFraction float64
	// ActiveIndex is the dataset index under the pointer, or -1.
	ActiveIndex   int
	CurrentLabel  string
	CurrentValue  float64
	CurrentTarget float64
	InProgress    bool
}

// Idle is the state of a chart nobody is touching.
var Idle = State{PointerFraction: -1, ActiveIndex: -1}

// Mapper owns the interaction state of one chart. It is driven by drag
// events and must only be used from the goroutine handling input.
type Mapper struct {
	state     State
	observers []func(State)
}

func NewMapper() *Mapper {
	return &Mapper{state: Idle}
}

func (m *Mapper) State() State {
	return m.state
}

// OnChange registers f to be invoked with the new state whenever it changes.
func (m *Mapper) OnChange(f func(State)) {
	m.observers = append(m.observers, f)
}

func (m *Mapper) set(s State) {
	if s == m.state {
		return
	}
	m.state = s
	for _, f := range m.observers {
		f(s)
	}
}

func clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	return max(lo, min(hi, v))
}

func floor[T constraints.Float](a T) T {
	return T(math.Floor(float64(a)))
}

// IndexForFraction maps a fraction of the chart width onto one of n equally
// wide cells. Cell i covers [i/n, (i+1)/n). Fractions outside [0,1) clamp to
// the first or last cell. It returns -1 when n is zero.
func IndexForFraction(fraction float64, n int) int {
	if n <= 0 {
		return -1
	}
	if math.IsNaN(fraction) {
		return 0
	}
	cell := floor(fraction * float64(n))
	return int(clamp(cell, 0, float64(n-1)))
}

// DragChanged moves the interaction to the cell under fraction. It reports
// whether the interaction is active afterwards. Against an empty dataset it
// does nothing.
func (m *Mapper) DragChanged(fraction float64, ds *backend.Dataset) bool {
	index := IndexForFraction(fraction, ds.Len())
	if index < 0 {
		return m.state.InProgress
	}
	if math.IsNaN(fraction) {
		fraction = 0
	}
	p := ds.At(index)
	m.set(State{
		PointerFraction: max(0, fraction),
		ActiveIndex:     index,
		CurrentLabel:    p.Label,
		CurrentValue:    p.Value,
		CurrentTarget:   p.Target,
		InProgress:      true,
	})
	return true
}

// PieDragChanged selects the pie slice under pt, where bounds is the
// rectangle the pie is inscribed in. Touching outside the pie or exactly on
// a slice boundary ends the interaction.
func (m *Mapper) PieDragChanged(pt pie.Point, bounds pie.Rect, ds *backend.Dataset) bool {
	index := pie.Index(ds.Values(), pt, bounds)
	if index < 0 {
		m.DragEnded()
		return false
	}
	p := ds.At(index)
	m.set(State{
		PointerFraction: pie.DegreeForPoint(pt, bounds) / 360,
		ActiveIndex:     index,
		CurrentLabel:    p.Label,
		CurrentValue:    p.Value,
		CurrentTarget:   p.Target,
		InProgress:      true,
	})
	return true
}

// DragEnded returns the mapper to Idle, whatever its previous state.
func (m *Mapper) DragEnded() {
	m.set(Idle)
}

// Size is a scale factor applied to a chart cell.
type Size struct {
	Width, Height float32
}

var (
	NeutralSize    = Size{Width: 1, Height: 1}
	EmphasizedSize = Size{Width: 1.4, Height: 1.1}
)

// ScaleForIndex returns EmphasizedSize for the bar cell at index when the
// pointer fraction falls inside it, and NeutralSize otherwise.
func ScaleForIndex(fraction float64, index, n int) Size {
	if n <= 0 {
		return NeutralSize
	}
	lo := float64(index) / float64(n)
	hi := float64(index+1) / float64(n)
	if lo <= fraction && fraction < hi {
		return EmphasizedSize
	}
	return NeutralSize
}
