package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type cellStyle struct {
	fill   color.Color
	stroke color.Color
	text   color.Color
}

// cell is a tappable rounded label used for days and years.
type cell struct {
	widget.BaseWidget

	Label    string
	style    cellStyle
	size     fyne.Size
	OnTapped func()
}

func newCell(label string, style cellStyle, size fyne.Size, onTapped func()) *cell {
	c := &cell{Label: label, style: style, size: size, OnTapped: onTapped}
	c.ExtendBaseWidget(c)
	return c
}

// Tapped implements fyne.Tappable.
func (c *cell) Tapped(*fyne.PointEvent) {
	if c.OnTapped != nil {
		c.OnTapped()
	}
}

func (c *cell) CreateRenderer() fyne.WidgetRenderer {
	minSize := canvas.NewRectangle(color.Transparent)
	minSize.SetMinSize(c.size)

	fill := c.style.fill
	if fill == nil {
		fill = color.Transparent
	}
	bg := canvas.NewRectangle(fill)
	bg.CornerRadius = c.size.Height / 2
	if c.style.stroke != nil {
		bg.StrokeColor = c.style.stroke
		bg.StrokeWidth = 1
	}

	text := canvas.NewText(c.Label, c.style.text)
	text.Alignment = fyne.TextAlignCenter

	return widget.NewSimpleRenderer(container.NewStack(minSize, bg, container.NewCenter(text)))
}
