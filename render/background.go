package render

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/disintegration/imaging"
	"github.com/fogleman/ease"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Background styles
const (
	BackgroundSolid     = "solid"
	BackgroundImage     = "image"
	BackgroundGradient  = "gradient"
	BackgroundParticles = "particles"
	BackgroundShapes    = "shapes"
)

const particleCount = 40

type particle struct {
	x      float64 // horizontal position, fraction of width
	y      float64 // initial vertical position, fraction of height
	speed  float64 // vertical drift per clip, fraction of height
	radius float64 // pixels
	phase  float64 // alpha envelope offset
}

// Compositor produces the per-frame background layer. Its appearance for a
// given elapsed-time fraction depends only on the construction parameters;
// cosmetic randomness is drawn once from the seed at construction time.
type Compositor struct {
	width, height int
	style         string
	base          color.NRGBA
	image         *image.NRGBA
	top, bottom   colorful.Color
	particles     []particle
}

// NewCompositor builds a compositor for one render. img may be nil; a nil
// image with style "image" degrades to the solid fallback color, per the
// asset-failure contract.
func NewCompositor(width, height int, style string, base color.NRGBA, img *image.NRGBA, seed int64) *Compositor {
	c := &Compositor{
		width:  width,
		height: height,
		style:  style,
		base:   base,
		top:    fromNRGBA(base),
		bottom: fromNRGBA(base).BlendHcl(colorful.Color{R: 0.05, G: 0.05, B: 0.16}, 0.6),
	}

	if style == BackgroundImage {
		if img != nil {
			c.image = imaging.Resize(img, width, height, imaging.Lanczos)
		} else {
			c.style = BackgroundSolid
		}
	}

	if c.style == BackgroundParticles || c.style == BackgroundShapes {
		rng := rand.New(rand.NewSource(seed))
		c.particles = make([]particle, particleCount)
		for i := range c.particles {
			c.particles[i] = particle{
				x:      rng.Float64(),
				y:      rng.Float64(),
				speed:  0.1 + rng.Float64()*0.3,
				radius: 2 + rng.Float64()*6,
				phase:  rng.Float64(),
			}
		}
	}

	return c
}

// Layer returns a freshly allocated background raster for the elapsed-time
// fraction t in [0, 1]. Safe to call once per frame; no internal state is
// mutated.
func (c *Compositor) Layer(t float64) *image.NRGBA {
	switch c.style {
	case BackgroundImage:
		return imaging.Clone(c.image)
	case BackgroundGradient:
		return c.gradientLayer(t)
	case BackgroundParticles:
		return c.particleLayer(t, false)
	case BackgroundShapes:
		return c.particleLayer(t, true)
	default:
		return imaging.New(c.width, c.height, c.base)
	}
}

// gradientLayer paints a vertical gradient whose endpoints shimmer on sine
// offsets of the elapsed time, row color interpolated in HCL space.
func (c *Compositor) gradientLayer(t float64) *image.NRGBA {
	img := imaging.New(c.width, c.height, color.NRGBA{A: 255})
	shimmer := 0.04*math.Sin(t*5*2*math.Pi) + 0.03*math.Cos(t*4*2*math.Pi)

	for y := 0; y < c.height; y++ {
		p := float64(y) / float64(c.height)
		col := c.top.BlendHcl(c.bottom, clamp01(p+shimmer))
		row := toNRGBA(col, 255)
		for x := 0; x < c.width; x++ {
			img.SetNRGBA(x, y, row)
		}
	}
	return img
}

// particleLayer drifts seeded particles upward over the base gradient. Each
// particle's position and brightness are pure functions of t; the alpha
// envelope eases in and out so particles never pop.
func (c *Compositor) particleLayer(t float64, shapes bool) *image.NRGBA {
	img := c.gradientLayer(t)

	for _, p := range c.particles {
		y := math.Mod(p.y-p.speed*t+1, 1)
		x := p.x + 0.02*math.Sin((t+p.phase)*2*math.Pi)

		// Triangle envelope through the particle's own cycle, eased.
		cycle := math.Mod(t+p.phase, 1)
		gain := ease.InOutQuad(1 - math.Abs(2*cycle-1))
		alpha := uint8(200 * gain)
		if alpha == 0 {
			continue
		}

		px := int(x * float64(c.width))
		py := int(y * float64(c.height))
		r := p.radius
		if shapes {
			r *= 3
			alpha /= 2
		}
		fillCircle(img, px, py, int(r), color.NRGBA{255, 255, 255, alpha})
	}
	return img
}

func fillCircle(dst *image.NRGBA, cx, cy, r int, col color.NRGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				blendPixel(dst, x, y, col)
			}
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
