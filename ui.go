package main

import (
	"image"
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"git.sr.ht/~whereswaldon/touchcharts/backend"
	"git.sr.ht/~whereswaldon/touchcharts/config"
	"git.sr.ht/~whereswaldon/touchcharts/interaction"
	"git.sr.ht/~whereswaldon/touchcharts/labels"
	"github.com/rs/zerolog"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var openIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.FileFolderOpen)
	return icon
}()

// captionSize is the text size of the smaller runs inside a label.
const captionSize = 12

var tabStyle = labels.Style{Kind: labels.Legend}

// UI is responsible for holding the state of and drawing the top-level UI.
type UI struct {
	ws   backend.WindowState
	expl *explorer.Explorer
	log  zerolog.Logger
	ds   *backend.Dataset

	charts  map[string]*Chart
	tab     widget.Enum
	openBtn widget.Clickable

	title   string
	pattern string
	label   labels.Style

	th            *material.Theme
	updateStream  *stream.Stream[backend.Update]
	datasourceErr string
}

func NewUI(ws backend.WindowState, expl *explorer.Explorer, cfg config.Config, log zerolog.Logger) *UI {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
	ui := &UI{
		ws:           ws,
		th:           th,
		expl:         expl,
		log:          log,
		ds:           backend.NewDataset(),
		tab:          widget.Enum{Value: cfg.Chart},
		title:        cfg.Title,
		pattern:      cfg.LabelFormat,
		label:        labels.Style{Kind: labels.Title},
		updateStream: stream.New(ws.Controller, ws.Bundle.Datasource.Updates),
	}
	ui.charts = map[string]*Chart{
		config.ChartBar:  NewChart(barChart, ui.ds),
		config.ChartLine: NewChart(lineChart, ui.ds),
		config.ChartPie:  NewChart(pieChart, ui.ds),
	}
	for _, c := range ui.charts {
		chartLog := log.With().Stringer("chart", c.kind).Logger()
		c.Mapper.OnChange(func(s interaction.State) {
			chartLog.Debug().
				Int("index", s.ActiveIndex).
				Float64("fraction", s.PointerFraction).
				Str("label", labels.Text(ui.title, ui.pattern, s)).
				Msg("interaction changed")
		})
	}
	// Interactions refer to indices of the old points, so they cannot
	// survive a replacement.
	ui.ds.OnChange(func() {
		for _, c := range ui.charts {
			c.Mapper.DragEnded()
		}
	})
	return ui
}

func (ui *UI) activeChart() *Chart {
	if c, ok := ui.charts[ui.tab.Value]; ok {
		return c
	}
	return ui.charts[config.ChartBar]
}

// Update the state of the UI from input and backend events.
func (ui *UI) Update(gtx C) {
	if u, ok := ui.updateStream.ReadNew(gtx); ok {
		ui.apply(u)
	}
	previous := ui.tab.Value
	if ui.tab.Update(gtx) && previous != ui.tab.Value {
		if c, ok := ui.charts[previous]; ok {
			c.Mapper.DragEnded()
		}
	}
	if ui.openBtn.Clicked(gtx) {
		go func() {
			if err := ui.ws.Bundle.Datasource.LoadFromFile(ui.expl); err != nil {
				ui.log.Error().Err(err).Msg("opening dataset")
			}
		}()
	}
}

func (ui *UI) apply(u backend.Update) {
	if u.Err != nil {
		ui.datasourceErr = u.Err.Error()
		if len(u.Points) == 0 {
			return
		}
	} else {
		ui.datasourceErr = ""
	}
	ui.log.Info().Str("source", u.Source).Int("points", len(u.Points)).Msg("dataset loaded")
	ui.ds.Replace(u.Points)
}

// TabStyle draws one choice of a widget.Enum as a bordered label. The label
// takes its size, padding and colour from a labels.Style.
type TabStyle struct {
	state  *widget.Enum
	label  material.LabelStyle
	border widget.Border
	insets labels.Insets
	value  string
	fill   color.NRGBA
}

func Tab(th *material.Theme, state *widget.Enum, style labels.Style, value, display string) TabStyle {
	ts := TabStyle{
		state: state,
		label: material.Label(th, unit.Sp(style.TextSize()), display),
		border: widget.Border{
			Width:        1,
			CornerRadius: 4,
			Color:        th.ContrastBg,
		},
		insets: style.Insets(),
		value:  value,
	}
	ts.label.Alignment = text.Middle
	ts.label.MaxLines = 1
	ts.label.Color = style.TextColor(th.Fg, secondaryTextColor)
	if state.Value == value {
		ts.label.Color = th.ContrastFg
		ts.fill = th.ContrastBg
	}
	return ts
}

func (t TabStyle) Layout(gtx C) D {
	inset := layout.Inset{
		Top:    unit.Dp(t.insets.Top),
		Bottom: unit.Dp(max(t.insets.Bottom, t.insets.Top)),
		Left:   unit.Dp(t.insets.Leading),
		Right:  unit.Dp(t.insets.Trailing),
	}
	return layout.UniformInset(2).Layout(gtx, func(gtx C) D {
		return t.border.Layout(gtx, func(gtx C) D {
			return t.state.Layout(gtx, t.value, func(gtx C) D {
				return layout.Background{}.Layout(gtx, func(gtx C) D {
					paint.FillShape(gtx.Ops, t.fill, clip.Rect{Max: gtx.Constraints.Min}.Op())
					return D{Size: gtx.Constraints.Min}
				}, func(gtx C) D {
					return inset.Layout(gtx, t.label.Layout)
				})
			})
		})
	})
}

// layoutLabel draws the chart title, or the value under the pointer while
// the active chart is being dragged.
func (ui *UI) layoutLabel(gtx C) D {
	segs := labels.Compose(ui.title, ui.pattern, ui.activeChart().Mapper.State())
	insets := ui.label.Insets()
	textColor := ui.label.TextColor(ui.th.Fg, secondaryTextColor)
	children := make([]layout.FlexChild, 0, len(segs))
	for _, seg := range segs {
		size := ui.label.TextSize()
		if seg.Caption {
			size = captionSize
		}
		l := material.Label(ui.th, unit.Sp(size), seg.Text)
		l.Color = textColor
		l.MaxLines = 1
		children = append(children, layout.Rigid(l.Layout))
	}
	return layout.Inset{
		Top:    unit.Dp(insets.Top),
		Left:   unit.Dp(insets.Leading),
		Bottom: unit.Dp(insets.Bottom),
		Right:  unit.Dp(insets.Trailing),
	}.Layout(gtx, func(gtx C) D {
		return layout.Flex{Alignment: layout.Baseline}.Layout(gtx, children...)
	})
}

// Layout the UI into the provided context.
func (ui *UI) Layout(gtx C) D {
	ui.Update(gtx)
	return layout.Flex{
		Axis: layout.Vertical,
	}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, Tab(ui.th, &ui.tab, tabStyle, config.ChartBar, "Bar").Layout),
				layout.Flexed(1, Tab(ui.th, &ui.tab, tabStyle, config.ChartLine, "Line").Layout),
				layout.Flexed(1, Tab(ui.th, &ui.tab, tabStyle, config.ChartPie, "Pie").Layout),
				layout.Rigid(func(gtx C) D {
					btn := material.IconButton(ui.th, &ui.openBtn, openIcon, "Open dataset")
					btn.Size = unit.Dp(20)
					btn.Inset = layout.UniformInset(6)
					return layout.UniformInset(2).Layout(gtx, btn.Layout)
				}),
			)
		}),
		layout.Rigid(ui.layoutLabel),
		layout.Rigid(func(gtx C) D {
			if len(ui.datasourceErr) == 0 {
				return D{}
			}
			l := material.Body1(ui.th, ui.datasourceErr)
			l.Color = color.NRGBA{R: 150, A: 255}
			return l.Layout(gtx)
		}),
		layout.Flexed(1, func(gtx C) D {
			gtx.Constraints.Min = image.Point{X: gtx.Constraints.Max.X}
			return ui.activeChart().Layout(gtx, ui.th, ui.pattern)
		}),
	)
}
