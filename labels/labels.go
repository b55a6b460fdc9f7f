// Package labels describes chart labels: how each kind of label is sized and
// coloured, and what text it shows while the chart is being touched.
package labels

import (
	"image/color"
	"strconv"
	"strings"

	"git.sr.ht/~whereswaldon/touchcharts/format"
	"git.sr.ht/~whereswaldon/touchcharts/interaction"
)

type Kind uint8

const (
	Title Kind = iota
	SubTitle
	LargeTitle
	Legend
	Custom
)

func (k Kind) String() string {
	switch k {
	case Title:
		return "title"
	case SubTitle:
		return "subtitle"
	case LargeTitle:
		return "large title"
	case Legend:
		return "legend"
	case Custom:
		return "custom"
	default:
		return "?"
	}
}

// Insets are paddings in device independent pixels.
type Insets struct {
	Top, Leading, Bottom, Trailing float32
}

// Style selects a label's geometry. Size, Padding and Color are only read
// for the Custom kind; the other kinds have fixed values.
type Style struct {
	Kind    Kind
	Size    float32
	Padding Insets
	Color   color.NRGBA
}

func CustomStyle(size float32, padding Insets, c color.NRGBA) Style {
	return Style{Kind: Custom, Size: size, Padding: padding, Color: c}
}

// TextSize returns the font size in scaled pixels.
func (s Style) TextSize() float32 {
	switch s.Kind {
	case Title:
		return 32
	case SubTitle:
		return 24
	case LargeTitle:
		return 38
	case Legend:
		return 14
	default:
		return s.Size
	}
}

func (s Style) Insets() Insets {
	switch s.Kind {
	case Title:
		return Insets{Top: 16, Leading: 8, Trailing: 8}
	case SubTitle:
		return Insets{Top: 8, Leading: 8, Trailing: 8}
	case LargeTitle:
		return Insets{Top: 24, Leading: 8, Trailing: 8}
	case Legend:
		return Insets{Top: 4, Leading: 8, Trailing: 8}
	default:
		return s.Padding
	}
}

// TextColor picks between the theme's primary and secondary text colours.
// Custom labels use their own colour.
func (s Style) TextColor(primary, secondary color.NRGBA) color.NRGBA {
	switch s.Kind {
	case Legend:
		return secondary
	case Custom:
		return s.Color
	default:
		return primary
	}
}

// Segment is a run of label text. Captions are drawn smaller than the label
// itself.
type Segment struct {
	Text    string
	Caption bool
}

// Compose returns the text a label shows. An idle chart shows title. While
// an interaction is in progress the label shows the current value, its
// percentage of the target, and the target itself when the value is zero.
// The "RHR" pattern shows the point's label followed by captioned resting
// heart rate and 42 day average values.
func Compose(title, pattern string, s interaction.State) []Segment {
	if !s.InProgress {
		return []Segment{{Text: title}}
	}
	v, t := s.CurrentValue, s.CurrentTarget
	if pattern == "RHR" {
		segs := []Segment{{Text: s.CurrentLabel}}
		if v > 0 {
			segs = append(segs,
				Segment{Text: "  RHR ", Caption: true},
				Segment{Text: format.Value(pattern, v)},
			)
		}
		if t > 0 {
			segs = append(segs,
				Segment{Text: "  42D ", Caption: true},
				Segment{Text: format.Value("RHR42D", t)},
			)
		}
		return segs
	}
	var b strings.Builder
	if v > 0 {
		b.WriteString(format.Value(pattern, v))
		b.WriteString(" ")
	}
	if t > 0 {
		b.WriteString("(" + strconv.Itoa(int(v/t*100)) + "%)")
	}
	if v == 0 && t > 0 {
		b.WriteString(" (" + format.Value(pattern, t) + ")")
	} else {
		b.WriteString(" ")
	}
	return []Segment{{Text: b.String()}}
}

// Text joins the segments returned by Compose.
func Text(title, pattern string, s interaction.State) string {
	var b strings.Builder
	for _, seg := range Compose(title, pattern, s) {
		b.WriteString(seg.Text)
	}
	return b.String()
}
