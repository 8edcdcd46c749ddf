package render

import (
	"fmt"
	"image"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// HeatmapFigure rasterizes a labeled value grid. Cells are shaded on a
// linear ramp from the low to the high color; cell values are printed
// with a contrast-aware text color and a gradient legend sits on the
// right edge.
func HeatmapFigure(
	title string,
	rowLabels, colLabels []string,
	cells [][]int,
	width, height int,
) *Figure {
	if len(rowLabels) == 0 || len(colLabels) == 0 {
		return nil
	}
	t := activeTheme()
	f := NewFigure(width, height)

	low := drawing.ColorFromHex("F5F5F5")
	high := drawing.ColorFromHex("2166AC")

	maxVal := 0
	for _, row := range cells {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}

	labelW := 0
	for _, l := range rowLabels {
		if w := textWidth(l); w > labelW {
			labelW = w
		}
	}

	const (
		topPad    = 40
		bottomPad = 46
		legendW   = 60
	)
	left := labelW + 20
	gridW := width - left - legendW - 30
	gridH := height - topPad - bottomPad
	cellW := gridW / len(colLabels)
	cellH := gridH / len(rowLabels)

	drawTextCentered(f.Img, width/2, 22, title, toRGBA(t.Text))

	for i, rowLabel := range rowLabels {
		y0 := topPad + i*cellH
		drawText(f.Img, left-labelW-10, y0+cellH/2+4, rowLabel, toRGBA(t.Text))
		for j := range colLabels {
			v := cells[i][j]
			frac := 0.0
			if maxVal > 0 {
				frac = float64(v) / float64(maxVal)
			}
			x0 := left + j*cellW
			cell := lerpColor(low, high, frac)
			fillRect(f.Img, image.Rect(x0, y0, x0+cellW, y0+cellH), toRGBA(cell))
			strokeRect(f.Img, image.Rect(x0, y0, x0+cellW, y0+cellH),
				toRGBA(t.Background))
			textCol := toRGBA(t.Text)
			if frac > 0.6 {
				textCol = toRGBA(drawing.ColorWhite)
			}
			drawTextCentered(f.Img, x0+cellW/2, y0+cellH/2+4,
				fmt.Sprintf("%d", v), textCol)
		}
	}

	for j, colLabel := range colLabels {
		x0 := left + j*cellW
		drawTextCentered(f.Img, x0+cellW/2, topPad+gridH+18, colLabel, toRGBA(t.Text))
	}

	// gradient legend
	lx := left + gridW + 16
	for i := 0; i < gridH; i++ {
		frac := 1.0 - float64(i)/float64(gridH)
		fillRect(f.Img, image.Rect(lx, topPad+i, lx+16, topPad+i+1),
			toRGBA(lerpColor(low, high, frac)))
	}
	strokeRect(f.Img, image.Rect(lx, topPad, lx+16, topPad+gridH), toRGBA(t.Grid))
	drawText(f.Img, lx+20, topPad+10, fmt.Sprintf("%d", maxVal), toRGBA(t.Text))
	drawText(f.Img, lx+20, topPad+gridH, "0", toRGBA(t.Text))

	return f
}

func lerpColor(a, b drawing.Color, frac float64) drawing.Color {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*frac)
	}
	return drawing.Color{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: 255,
	}
}
