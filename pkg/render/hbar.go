package render

import (
	"image"
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// HBarItem is one horizontal bar. Items render top to bottom in the
// order given; the caller owns the ordering.
type HBarItem struct {
	Label      string
	Value      float64
	Color      drawing.Color
	Annotation string // optional text behind the bar end, e.g. "n=4"
}

// HBarFigure rasterizes a horizontal bar panel with per-bar labels.
// go-chart only draws vertical bars, so this panel is drawn directly.
func HBarFigure(title, xLabel string, items []HBarItem, width, height int) *Figure {
	if len(items) == 0 {
		return nil
	}
	t := activeTheme()
	f := NewFigure(width, height)

	labelW := 0
	maxVal := 0.0
	for _, it := range items {
		if w := textWidth(it.Label); w > labelW {
			labelW = w
		}
		if !math.IsNaN(it.Value) && it.Value > maxVal {
			maxVal = it.Value
		}
	}
	if maxVal <= 0 {
		maxVal = 1
	}

	const (
		topPad    = 36
		bottomPad = 40
		rightPad  = 70
	)
	left := labelW + 20
	plotW := width - left - rightPad
	plotH := height - topPad - bottomPad
	rowH := float64(plotH) / float64(len(items))
	barH := int(rowH * 0.68)
	if barH < 4 {
		barH = 4
	}

	drawTextCentered(f.Img, width/2, 20, title, toRGBA(t.Text))

	for i, it := range items {
		yTop := topPad + int(float64(i)*rowH+(rowH-float64(barH))/2)
		val := it.Value
		if math.IsNaN(val) || val < 0 {
			val = 0
		}
		barW := int(val / maxVal * float64(plotW))
		fillRect(f.Img, image.Rect(left, yTop, left+barW, yTop+barH), toRGBA(it.Color))
		strokeRect(f.Img, image.Rect(left, yTop, left+barW, yTop+barH),
			toRGBA(t.Background))
		textY := yTop + barH/2 + 4
		drawText(f.Img, left-labelW-10, textY, it.Label, toRGBA(t.Text))
		if it.Annotation != "" {
			drawText(f.Img, left+barW+6, textY, it.Annotation,
				toRGBA(drawing.ColorFromHex("666666")))
		}
	}

	// axis line and x label
	fillRect(f.Img, image.Rect(left, topPad, left+1, height-bottomPad), toRGBA(t.Text))
	drawTextCentered(f.Img, left+plotW/2, height-12, xLabel, toRGBA(t.Text))
	return f
}
