package main

import (
	"image"
	"testing"

	"gioui.org/f32"
	"git.sr.ht/~whereswaldon/touchcharts/backend"
	"github.com/stretchr/testify/assert"
)

func weekly() *backend.Dataset {
	return backend.NewDataset(
		backend.DataPoint{Label: "M", Value: 1},
		backend.DataPoint{Label: "T", Value: 2},
		backend.DataPoint{Label: "W", Value: 3},
	)
}

func TestChartPointerBeforeLayout(t *testing.T) {
	c := NewChart(barChart, weekly())
	c.pointerAt(f32.Pt(10, 10))
	assert.False(t, c.Mapper.State().InProgress)
}

func TestChartPointerBar(t *testing.T) {
	c := NewChart(barChart, weekly())
	c.plot = image.Pt(300, 100)
	c.pointerAt(f32.Pt(120, 50))
	s := c.Mapper.State()
	assert.True(t, s.InProgress)
	assert.Equal(t, 1, s.ActiveIndex)
	assert.Equal(t, "T", s.CurrentLabel)
	assert.InDelta(t, 0.4, s.PointerFraction, 1e-9)

	// Dragging past the edge clamps to the last point.
	c.pointerAt(f32.Pt(450, 50))
	assert.Equal(t, 2, c.Mapper.State().ActiveIndex)
}

func TestChartPointerPie(t *testing.T) {
	c := NewChart(pieChart, weekly())
	c.plot = image.Pt(100, 100)
	// Just right of twelve o'clock lands in the first slice.
	c.pointerAt(f32.Pt(55, 10))
	s := c.Mapper.State()
	assert.True(t, s.InProgress)
	assert.Equal(t, 0, s.ActiveIndex)

	// Leaving the circle ends the interaction.
	c.pointerAt(f32.Pt(1, 1))
	assert.False(t, c.Mapper.State().InProgress)
}

func TestChartKindString(t *testing.T) {
	assert.Equal(t, "bar", barChart.String())
	assert.Equal(t, "line", lineChart.String())
	assert.Equal(t, "pie", pieChart.String())
	assert.Equal(t, "?", chartKind(9).String())
}

func TestRotate(t *testing.T) {
	assert.Equal(t, colors[0], rotate(0))
	assert.Equal(t, colors[1], rotate(len(colors)+1))
	assert.Equal(t, uint8(10), withAlpha(rotate(2), 10).A)
}
