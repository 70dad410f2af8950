package render

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// WrapText breaks text into lines no wider than maxWidth pixels, measured
// with the real font metrics. A single word wider than maxWidth gets its own
// line rather than being split mid-word.
func WrapText(text string, face font.Face, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var current []string
	for _, word := range words {
		trial := strings.Join(append(current, word), " ")
		if StringWidth(face, trial) <= maxWidth || len(current) == 0 {
			current = append(current, word)
			continue
		}
		lines = append(lines, strings.Join(current, " "))
		current = []string{word}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// StringWidth measures the advance of s in whole pixels.
func StringWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// LineHeight returns the pixel height of one text line including leading.
func LineHeight(face font.Face, spacing float64) int {
	h := face.Metrics().Height.Ceil()
	return int(float64(h) * spacing)
}

// DrawString renders s onto dst with the top of the line at (x, y); a small
// offset shadow is drawn first when shadow is set.
func DrawString(dst *image.NRGBA, face font.Face, s string, x, y int, col color.NRGBA, shadow bool) {
	ascent := face.Metrics().Ascent.Ceil()
	if shadow {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(color.NRGBA{0, 0, 0, 160}),
			Face: face,
			Dot:  fixed.P(x+2, y+ascent+2),
		}
		d.DrawString(s)
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+ascent),
	}
	d.DrawString(s)
}

// blendPixel composites src over the destination pixel at (x, y).
func blendPixel(dst *image.NRGBA, x, y int, src color.NRGBA) {
	if !(image.Pt(x, y).In(dst.Rect)) || src.A == 0 {
		return
	}
	if src.A == 255 {
		dst.SetNRGBA(x, y, src)
		return
	}
	old := dst.NRGBAAt(x, y)
	a := int(src.A)
	inv := 255 - a
	dst.SetNRGBA(x, y, color.NRGBA{
		R: uint8((int(src.R)*a + int(old.R)*inv) / 255),
		G: uint8((int(src.G)*a + int(old.G)*inv) / 255),
		B: uint8((int(src.B)*a + int(old.B)*inv) / 255),
		A: 255,
	})
}

// inRounded reports whether (x, y) lies inside the rounded rectangle.
func inRounded(r image.Rectangle, radius, x, y int) bool {
	if !(image.Pt(x, y).In(r)) {
		return false
	}
	cx, cy := x, y
	if x < r.Min.X+radius {
		cx = r.Min.X + radius
	} else if x >= r.Max.X-radius {
		cx = r.Max.X - radius - 1
	}
	if y < r.Min.Y+radius {
		cy = r.Min.Y + radius
	} else if y >= r.Max.Y-radius {
		cy = r.Max.Y - radius - 1
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

// FillRoundedRect paints a rounded rectangle, alpha-blending fill over dst.
func FillRoundedRect(dst *image.NRGBA, r image.Rectangle, radius int, fill color.NRGBA) {
	if radius < 0 {
		radius = 0
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if inRounded(r, radius, x, y) {
				blendPixel(dst, x, y, fill)
			}
		}
	}
}

// StrokeRoundedRect draws just the border ring of a rounded rectangle.
func StrokeRoundedRect(dst *image.NRGBA, r image.Rectangle, radius, width int, border color.NRGBA) {
	inner := image.Rect(r.Min.X+width, r.Min.Y+width, r.Max.X-width, r.Max.Y-width)
	innerRadius := radius - width
	if innerRadius < 0 {
		innerRadius = 0
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if inRounded(r, radius, x, y) && !inRounded(inner, innerRadius, x, y) {
				blendPixel(dst, x, y, border)
			}
		}
	}
}
