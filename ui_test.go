package main

import (
	"testing"

	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"git.sr.ht/~whereswaldon/touchcharts/labels"
	"github.com/stretchr/testify/assert"
)

func TestTabStyle(t *testing.T) {
	th := material.NewTheme()
	state := &widget.Enum{Value: "bar"}

	selected := Tab(th, state, tabStyle, "bar", "Bar")
	assert.Equal(t, th.ContrastFg, selected.label.Color)
	assert.Equal(t, th.ContrastBg, selected.fill)
	assert.Equal(t, unit.Sp(14), selected.label.TextSize)
	assert.Equal(t, tabStyle.Insets(), selected.insets)

	other := Tab(th, state, tabStyle, "pie", "Pie")
	assert.Equal(t, secondaryTextColor, other.label.Color)
	assert.Zero(t, other.fill.A)

	custom := Tab(th, state, labels.CustomStyle(20, labels.Insets{Top: 2}, colors[3]), "line", "Line")
	assert.Equal(t, colors[3], custom.label.Color)
	assert.Equal(t, unit.Sp(20), custom.label.TextSize)
}
