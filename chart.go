package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"git.sr.ht/~whereswaldon/touchcharts/backend"
	"git.sr.ht/~whereswaldon/touchcharts/format"
	"git.sr.ht/~whereswaldon/touchcharts/interaction"
	"git.sr.ht/~whereswaldon/touchcharts/pie"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

type chartKind uint8

const (
	barChart chartKind = iota
	lineChart
	pieChart
)

func (k chartKind) String() string {
	switch k {
	case barChart:
		return "bar"
	case lineChart:
		return "line"
	case pieChart:
		return "pie"
	default:
		return "?"
	}
}

// Chart draws one view of the shared dataset and turns drags across it into
// interaction state.
type Chart struct {
	kind   chartKind
	ds     *backend.Dataset
	Mapper *interaction.Mapper

	keyTable component.GridState
	// plot is the size of the plot area in the last frame, used to turn
	// pointer positions into fractions.
	plot image.Point
}

func NewChart(kind chartKind, ds *backend.Dataset) *Chart {
	return &Chart{
		kind:   kind,
		ds:     ds,
		Mapper: interaction.NewMapper(),
	}
}

func (c *Chart) Update(gtx C) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: c,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Press, pointer.Drag:
			c.pointerAt(e.Position)
		case pointer.Release, pointer.Cancel:
			c.Mapper.DragEnded()
		}
	}
}

func (c *Chart) pointerAt(pos f32.Point) {
	if c.plot.X <= 0 || c.plot.Y <= 0 {
		return
	}
	switch c.kind {
	case pieChart:
		c.Mapper.PieDragChanged(
			pie.Point{X: float64(pos.X), Y: float64(pos.Y)},
			pie.Rect{Max: pie.Point{X: float64(c.plot.X), Y: float64(c.plot.Y)}},
			c.ds,
		)
	default:
		c.Mapper.DragChanged(float64(pos.X)/float64(c.plot.X), c.ds)
	}
}

// Layout draws the plot above a key table listing every data point.
func (c *Chart) Layout(gtx C, th *material.Theme, pattern string) D {
	c.Update(gtx)
	if c.ds.Len() == 0 {
		return layout.Center.Layout(gtx, material.Body1(th, "No data yet.").Layout)
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(1, func(gtx C) D {
			return layout.UniformInset(8).Layout(gtx, func(gtx C) D {
				return c.layoutPlot(gtx, th)
			})
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Max.Y = min(gtx.Constraints.Max.Y, gtx.Dp(200))
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return c.layoutKey(gtx, th, pattern)
		}),
	)
}

func (c *Chart) layoutPlot(gtx C, th *material.Theme) D {
	c.plot = gtx.Constraints.Max
	area := clip.Rect{Max: c.plot}.Push(gtx.Ops)
	event.Op(gtx.Ops, c)
	area.Pop()
	switch c.kind {
	case barChart:
		c.layoutBars(gtx, th)
	case lineChart:
		c.layoutLine(gtx, th)
	case pieChart:
		c.layoutPie(gtx)
	}
	return D{Size: c.plot}
}

func (c *Chart) layoutBars(gtx C, th *material.Theme) {
	norm := c.ds.Normalized()
	n := len(norm.Values)
	state := c.Mapper.State()
	size := layout.FPt(c.plot)
	baseline := size.Y
	barSpace := size.Y
	if norm.IsNegativeDomain {
		baseline = size.Y / 2
		barSpace = size.Y / 2
	}
	spacing := size.X / float32(n*3)
	cellWidth := (size.X - spacing*float32(n-1)) / float32(n)
	minBar := float32(gtx.Dp(1))
	targets := backend.TargetsPresent(norm.Targets)
	for i, v := range norm.Values {
		scale := interaction.ScaleForIndex(state.PointerFraction, i, n)
		cellX := float32(i) * (cellWidth + spacing)
		width := cellWidth * scale.Width
		x := cellX + (cellWidth-width)/2
		if targets && norm.Targets[i] > 0 {
			h := float32(norm.Targets[i]) * barSpace * scale.Height
			fillRect(gtx.Ops, withAlpha(rotate(i), 0x4c), x, baseline-h, x+width, baseline)
		}
		if v == 0 {
			fillRect(gtx.Ops, th.Fg, x, baseline-minBar, x+width, baseline)
			continue
		}
		h := float32(math.Abs(v)) * barSpace * scale.Height
		if v > 0 {
			fillRect(gtx.Ops, rotate(i), x, baseline-h, x+width, baseline)
		} else {
			fillRect(gtx.Ops, rotate(i), x, baseline, x+width, baseline+h)
		}
	}
}

func (c *Chart) layoutLine(gtx C, th *material.Theme) {
	norm := c.ds.Normalized()
	size := layout.FPt(c.plot)
	rangeInterval := float32(norm.Range)
	if rangeInterval == 0 {
		rangeInterval = 1
	}
	top := float32(maxOf(norm.Values))
	bottom := top - rangeInterval
	pointAt := func(i, n int, v float64) f32.Point {
		x := size.X / 2
		if n > 1 {
			x = float32(i) / float32(n-1) * size.X
		}
		y := size.Y - (float32(v)-bottom)/rangeInterval*size.Y
		return f32.Pt(x, y)
	}
	width := float32(gtx.Dp(2))
	if backend.TargetsPresent(norm.Targets) {
		strokeSeries(gtx.Ops, targetLineColor, width, norm.Targets, pointAt)
	}
	strokeSeries(gtx.Ops, rotate(0), width, norm.Values, pointAt)

	state := c.Mapper.State()
	if !state.InProgress {
		return
	}
	x := float32(state.PointerFraction) * size.X
	fillRect(gtx.Ops, th.Fg, x-width/2, 0, x+width/2, size.Y)
	if state.ActiveIndex >= 0 && state.ActiveIndex < len(norm.Values) {
		pt := pointAt(state.ActiveIndex, len(norm.Values), norm.Values[state.ActiveIndex])
		r := float32(gtx.Dp(5))
		dot := clip.Ellipse{Min: image.Pt(int(pt.X-r), int(pt.Y-r)), Max: image.Pt(int(pt.X+r), int(pt.Y+r))}
		paint.FillShape(gtx.Ops, rotate(0), dot.Op(gtx.Ops))
	}
}

func (c *Chart) layoutPie(gtx C) {
	bounds := pie.Rect{Max: pie.Point{X: float64(c.plot.X), Y: float64(c.plot.Y)}}
	center := bounds.Center()
	radius := float32(bounds.Radius())
	state := c.Mapper.State()
	for i, s := range pie.Slices(c.ds.Values()) {
		if s.EndDegree <= s.StartDegree {
			continue
		}
		r := radius
		if state.InProgress && state.ActiveIndex == i {
			r *= 1.1
		}
		path := wedge(gtx.Ops, f32.Pt(float32(center.X), float32(center.Y)), r, s.StartDegree, s.EndDegree)
		paint.FillShape(gtx.Ops, rotate(i), clip.Outline{Path: path}.Op())
	}
}

// wedge builds a pie slice between two angles measured clockwise from twelve
// o'clock.
func wedge(ops *op.Ops, center f32.Point, r float32, startDeg, endDeg float64) clip.PathSpec {
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(center)
	steps := max(1, int(ceil((endDeg-startDeg)/2)))
	for i := 0; i <= steps; i++ {
		deg := startDeg + (endDeg-startDeg)*float64(i)/float64(steps)
		rad := deg * math.Pi / 180
		p.LineTo(f32.Pt(
			center.X+r*float32(math.Sin(rad)),
			center.Y-r*float32(math.Cos(rad)),
		))
	}
	p.Close()
	return p.End()
}

func strokeSeries(ops *op.Ops, col color.NRGBA, width float32, series []float64, pointAt func(i, n int, v float64) f32.Point) {
	if len(series) == 0 {
		return
	}
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(pointAt(0, len(series), series[0]))
	for i := 1; i < len(series); i++ {
		p.LineTo(pointAt(i, len(series), series[i]))
	}
	paint.FillShape(ops, col, clip.Stroke{Path: p.End(), Width: width}.Op())
}

func fillRect(ops *op.Ops, col color.NRGBA, x0, y0, x1, y1 float32) {
	r := clip.Rect{
		Min: image.Pt(int(floor(x0)), int(floor(y0))),
		Max: image.Pt(int(ceil(x1)), int(ceil(y1))),
	}
	paint.FillShape(ops, col, r.Op())
}

func maxOf(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Max(s)
}

func (c *Chart) layoutKey(gtx C, th *material.Theme, pattern string) D {
	table := component.Table(th, &c.keyTable)
	table.HScrollbarStyle.Indicator.MinorWidth = 0
	table.HScrollbarStyle.Track.MinorPadding = 0
	table.VScrollbarStyle.Indicator.MinorWidth = 0
	table.VScrollbarStyle.Track.MinorPadding = 0
	colorColWidth := gtx.Dp(50)
	numberColWidth := gtx.Dp(100)
	labelColWidth := gtx.Constraints.Max.X - colorColWidth - 2*numberColWidth - gtx.Dp(table.VScrollbarStyle.Width())
	rowHeight := gtx.Sp(20)
	const (
		colorCol = iota
		labelCol
		valueCol
		targetCol
		numCols
	)
	points := c.ds.Points()
	values := c.ds.Values()
	targets := c.ds.Targets()
	active := c.Mapper.State()
	return table.Layout(gtx, len(points)+1, numCols,
		func(axis layout.Axis, index, constraint int) int {
			if axis == layout.Vertical {
				return min(constraint, rowHeight)
			}
			var size int
			switch index {
			case colorCol:
				size = colorColWidth
			case labelCol:
				size = labelColWidth
			case valueCol, targetCol:
				size = numberColWidth
			}
			return min(size, constraint)
		},
		func(gtx C, index int) D {
			var l material.LabelStyle
			switch index {
			case colorCol:
				l = material.Body1(th, "Color")
			case labelCol:
				l = material.Body1(th, "Label")
				l.Alignment = text.Middle
			case valueCol:
				l = material.Body1(th, "Value")
				l.Alignment = text.End
			case targetCol:
				l = material.Body1(th, "Target")
				l.Alignment = text.End
			default:
				l = material.Body1(th, "???")
			}
			l.Color = th.ContrastFg
			return layout.Background{}.Layout(gtx,
				func(gtx C) D {
					paint.FillShape(gtx.Ops, th.ContrastBg, clip.Rect{Max: gtx.Constraints.Max}.Op())
					return D{Size: gtx.Constraints.Min}
				}, l.Layout,
			)
		},
		func(gtx C, row, col int) (dims D) {
			defer func() {
				dims.Size = gtx.Constraints.Constrain(dims.Size)
			}()
			if active.InProgress && row == active.ActiveIndex {
				paint.FillShape(gtx.Ops, withAlpha(rotate(row), 50), clip.Rect{Max: gtx.Constraints.Max}.Op())
			}
			return layout.UniformInset(2).Layout(gtx, func(gtx C) D {
				if row == len(points) {
					switch col {
					case labelCol:
						return material.Body2(th, "Total").Layout(gtx)
					case valueCol:
						return numberLabel(th, pattern, floats.Sum(values)).Layout(gtx)
					case targetCol:
						return numberLabel(th, pattern, floats.Sum(targets)).Layout(gtx)
					default:
						return D{Size: gtx.Constraints.Min}
					}
				}
				p := points[row]
				switch col {
				case colorCol:
					return layout.Center.Layout(gtx, func(gtx C) D {
						sideLen := gtx.Dp(10)
						sz := image.Pt(sideLen, sideLen)
						paint.FillShape(gtx.Ops, rotate(row), clip.Rect{Max: sz}.Op())
						return D{Size: sz}
					})
				case labelCol:
					label := p.Label
					if label == "" {
						label = fmt.Sprintf("#%d", row+1)
					}
					return material.Body2(th, label).Layout(gtx)
				case valueCol:
					return numberLabel(th, pattern, p.Value).Layout(gtx)
				case targetCol:
					if p.Target == 0 {
						return D{Size: gtx.Constraints.Min}
					}
					return numberLabel(th, pattern, p.Target).Layout(gtx)
				default:
					return D{Size: gtx.Constraints.Max}
				}
			})
		})
}

func numberLabel(th *material.Theme, pattern string, v float64) material.LabelStyle {
	l := material.Body2(th, format.Value(pattern, v))
	l.Alignment = text.End
	l.MaxLines = 1
	return l
}

func ceil[T constraints.Integer | constraints.Float](a T) T {
	return T(math.Ceil(float64(a)))
}

func floor[T constraints.Integer | constraints.Float](a T) T {
	return T(math.Floor(float64(a)))
}
