package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Figure is a rendered chart. The caller owns the image after rendering.
type Figure struct {
	Img    *image.RGBA
	Width  int
	Height int
}

// NewFigure allocates a blank canvas filled with the theme background.
func NewFigure(width, height int) *Figure {
	t := activeTheme()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(toRGBA(t.Background)),
		image.Point{}, draw.Src)
	return &Figure{Img: img, Width: width, Height: height}
}

// FromImage wraps an already rendered image.
func FromImage(img image.Image) *Figure {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &Figure{Img: rgba, Width: b.Dx(), Height: b.Dy()}
}

const suptitleBand = 36

// ComposeRows stacks panels vertically into one figure. An optional
// suptitle is drawn in a band above the first panel. Panel heights add
// up, so total height grows with the panel count.
func ComposeRows(suptitle string, panels []*Figure) *Figure {
	if len(panels) == 0 {
		return nil
	}
	width := 0
	height := 0
	for _, p := range panels {
		if p.Width > width {
			width = p.Width
		}
		height += p.Height
	}
	if suptitle != "" {
		height += suptitleBand
	}
	out := NewFigure(width, height)
	y := 0
	if suptitle != "" {
		drawTextCentered(out.Img, width/2, suptitleBand/2+4, suptitle,
			toRGBA(activeTheme().Text))
		y = suptitleBand
	}
	for _, p := range panels {
		r := image.Rect(0, y, p.Width, y+p.Height)
		draw.Draw(out.Img, r, p.Img, image.Point{}, draw.Src)
		y += p.Height
	}
	return out
}

// ComposeCols places panels side by side.
func ComposeCols(panels []*Figure) *Figure {
	if len(panels) == 0 {
		return nil
	}
	width := 0
	height := 0
	for _, p := range panels {
		width += p.Width
		if p.Height > height {
			height = p.Height
		}
	}
	out := NewFigure(width, height)
	x := 0
	for _, p := range panels {
		r := image.Rect(x, 0, x+p.Width, p.Height)
		draw.Draw(out.Img, r, p.Img, image.Point{}, draw.Src)
		x += p.Width
	}
	return out
}

// AddWatermark overlays the theme watermark in the bottom-right corner.
func AddWatermark(f *Figure) {
	if f == nil {
		return
	}
	t := activeTheme()
	w := textWidth(t.Watermark)
	drawText(f.Img, f.Width-w-8, f.Height-6, t.Watermark,
		color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xFF})
}

// SaveFigure writes the figure as a png file.
func SaveFigure(f *Figure, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return png.Encode(out, f.Img)
}

// LegendEntry is one swatch + label pair for LegendOverlay.
type LegendEntry struct {
	Label string
	Color drawing.Color
}

// LegendOverlay paints a small legend box in the top-right corner of the
// figure. Used where go-chart's built-in legend would list every series.
func LegendOverlay(f *Figure, entries []LegendEntry) {
	if f == nil || len(entries) == 0 {
		return
	}
	const (
		lineH   = 16
		swatchW = 18
		pad     = 8
	)
	boxW := 0
	for _, e := range entries {
		if w := textWidth(e.Label); w > boxW {
			boxW = w
		}
	}
	boxW += swatchW + 3*pad
	boxH := len(entries)*lineH + pad
	x0 := f.Width - boxW - 12
	y0 := 12
	fillRect(f.Img, image.Rect(x0, y0, x0+boxW, y0+boxH),
		color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xE6})
	strokeRect(f.Img, image.Rect(x0, y0, x0+boxW, y0+boxH),
		toRGBA(activeTheme().Grid))
	for i, e := range entries {
		y := y0 + pad/2 + i*lineH
		fillRect(f.Img, image.Rect(x0+pad, y+5, x0+pad+swatchW, y+9), toRGBA(e.Color))
		drawText(f.Img, x0+pad+swatchW+pad/2, y+12, e.Label, toRGBA(activeTheme().Text))
	}
}

func drawText(img *image.RGBA, x, y int, s string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func drawTextCentered(img *image.RGBA, cx, y int, s string, col color.Color) {
	drawText(img, cx-textWidth(s)/2, y, s, col)
}

func textWidth(s string) int {
	return len(s) * basicfont.Face7x13.Advance
}

func fillRect(img *image.RGBA, r image.Rectangle, col color.Color) {
	draw.Draw(img, r, image.NewUniform(col), image.Point{}, draw.Over)
}

func strokeRect(img *image.RGBA, r image.Rectangle, col color.Color) {
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), col)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), col)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), col)
	fillRect(img, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), col)
}
