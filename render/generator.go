package render

import (
	"errors"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"math"

	"reelsmith/config"
	"reelsmith/types"

	"github.com/disintegration/imaging"
	"github.com/fogleman/ease"
	"golang.org/x/image/font"
)

// Animation kinds
const (
	AnimTypewriter = "typewriter"
	AnimSlideUp    = "slideup"
	AnimSlideLeft  = "slideleft"
	AnimFade       = "fade"
	AnimFadeBounce = "fadebounce"
	AnimPulse      = "pulse"
)

// ErrTextTooLong is returned when the message exceeds the configured bound.
var ErrTextTooLong = errors.New("message text exceeds maximum length")

// Generator renders the ordered frame sequence for one request. Every frame
// is a pure function of its index and the construction inputs; the only
// randomness is the particle seed fixed at construction.
type Generator struct {
	req        types.RenderRequest
	tmpl       Template
	comp       *Compositor
	quoteFace  font.Face
	authorFace font.Face
	logo       *image.NRGBA
	textColor  color.NRGBA

	total        int
	revealFrames int
	textRunes    []rune
	box          image.Rectangle
}

// ApplyDefaults fills the zero-valued request fields with the configured
// defaults and clamps duration. It does not mutate its argument.
func ApplyDefaults(req types.RenderRequest) types.RenderRequest {
	if req.Duration <= 0 {
		req.Duration = config.DefaultDuration
	}
	req.Duration = math.Min(req.Duration, config.MaxDuration)
	if req.FPS <= 0 {
		req.FPS = config.DefaultFPS
	}
	if req.Width <= 0 {
		req.Width = config.VideoWidth
	}
	if req.Height <= 0 {
		req.Height = config.VideoHeight
	}
	if req.Animation == "" {
		req.Animation = AnimTypewriter
	}
	if req.Background == "" {
		if req.BackgroundURL != "" {
			req.Background = BackgroundImage
		} else {
			req.Background = BackgroundGradient
		}
	}
	if req.Seed == 0 {
		req.Seed = deriveSeed(req.UUID + req.Text)
	}
	return req
}

// NewGenerator prepares a frame generator. background and logo may be nil;
// both degrade to deterministic fallbacks rather than failing the sequence.
func NewGenerator(req types.RenderRequest, background, logo *image.NRGBA) (*Generator, error) {
	req = ApplyDefaults(req)

	if len([]rune(req.Text)) > config.MaxTextLength {
		return nil, fmt.Errorf("%w: %d runes (max %d)", ErrTextTooLong, len([]rune(req.Text)), config.MaxTextLength)
	}

	tmpl := LookupTemplate(req.Template)
	textColor := tmpl.TextColor
	if req.TextColor != "" {
		textColor = ParseHex(req.TextColor, tmpl.TextColor)
	}

	quoteFace, err := QuoteFace(float64(req.Height) / 36)
	if err != nil {
		return nil, err
	}
	authorFace, err := AuthorFace(float64(req.Height) / 46)
	if err != nil {
		return nil, err
	}

	total := FrameCount(req.Duration, req.FPS)
	boxW := int(float64(req.Width) * 0.8)
	boxH := int(float64(req.Height) * 0.55)
	boxX := (req.Width - boxW) / 2
	boxY := (req.Height - boxH) / 2

	return &Generator{
		req:          req,
		tmpl:         tmpl,
		comp:         NewCompositor(req.Width, req.Height, req.Background, FallbackColor, background, req.Seed),
		quoteFace:    quoteFace,
		authorFace:   authorFace,
		logo:         logo,
		textColor:    textColor,
		total:        total,
		revealFrames: RevealFrames(total, config.RevealFraction),
		textRunes:    []rune(req.Text),
		box:          image.Rect(boxX, boxY, boxX+boxW, boxY+boxH),
	}, nil
}

// FrameCount returns the total number of frames in the sequence.
func (g *Generator) FrameCount() int { return g.total }

// Request returns the normalized request the generator was built from.
func (g *Generator) Request() types.RenderRequest { return g.req }

// Frame renders frame i. The result depends only on i and the construction
// inputs.
func (g *Generator) Frame(i int) (*image.NRGBA, error) {
	if i < 0 || i >= g.total {
		return nil, fmt.Errorf("frame index %d out of range [0, %d)", i, g.total)
	}
	t := float64(i) / float64(g.total)
	img := g.comp.Layer(t)

	// Empty message: background-only frames for the whole clip.
	if len(g.textRunes) == 0 {
		return img, nil
	}

	g.drawLogo(img)
	if g.tmpl.Box {
		g.drawBox(img)
	}
	g.drawText(img, i)
	g.drawAuthor(img, i)
	return img, nil
}

// Render walks the sequence in order, invoking fn once per frame.
func (g *Generator) Render(fn func(i int, frame *image.NRGBA) error) error {
	for i := 0; i < g.total; i++ {
		frame, err := g.Frame(i)
		if err != nil {
			return err
		}
		if err := fn(i, frame); err != nil {
			return err
		}
	}
	return nil
}

// Poster renders the first fully revealed frame, used for the PNG output.
func (g *Generator) Poster() (*image.NRGBA, error) {
	i := g.revealFrames
	if i >= g.total {
		i = g.total - 1
	}
	if i < 0 {
		i = 0
	}
	return g.Frame(i)
}

func (g *Generator) drawLogo(img *image.NRGBA) {
	logo := g.logo
	if logo == nil {
		logo = fallbackLogo(g.authorFace)
	}
	var pt image.Point
	switch g.tmpl.LogoPosition {
	case "top_center":
		pt = image.Pt((g.req.Width-logo.Rect.Dx())/2, 60)
	case "top_left":
		pt = image.Pt(40, 40)
	default:
		return
	}
	res := imaging.Overlay(img, logo, pt, 1.0)
	copy(img.Pix, res.Pix)
}

func (g *Generator) drawBox(img *image.NRGBA) {
	shadow := g.box.Add(image.Pt(8, 8))
	FillRoundedRect(img, shadow, 25, color.NRGBA{0, 0, 0, 80})
	FillRoundedRect(img, g.box, 25, color.NRGBA{0, 0, 0, g.tmpl.BoxOpacity})
	StrokeRoundedRect(img, g.box, 25, 4, g.tmpl.BorderColor)
}

// drawText lays out the visible portion of the message and paints it centered
// in the content box, applying the request's animation kind.
func (g *Generator) drawText(img *image.NRGBA, frameIdx int) {
	t := float64(frameIdx) / float64(g.total)
	visible := string(g.textRunes)
	col := g.textColor
	dx, dy := 0, 0

	var revealP float64 = 1
	if g.revealFrames > 0 && frameIdx < g.revealFrames {
		revealP = float64(frameIdx) / float64(g.revealFrames)
	}

	switch g.req.Animation {
	case AnimSlideUp:
		dy = int((1 - ease.OutCubic(revealP)) * float64(g.req.Height) / 3)
	case AnimSlideLeft:
		dx = -int((1 - ease.OutCubic(revealP)) * float64(g.req.Width) / 2)
	case AnimFade:
		col = withAlpha(col, uint8(255*ease.OutQuad(revealP)))
	case AnimFadeBounce:
		col = withAlpha(col, uint8(255*ease.OutQuad(revealP)))
		dy = -int((1 - ease.OutBounce(revealP)) * float64(g.req.Height) / 4)
	case AnimPulse:
		gain := 1 + 0.1*math.Sin(3*t*2*math.Pi)
		col = scaleBrightness(col, gain)
	default: // typewriter
		n := VisibleRunes(len(g.textRunes), frameIdx, g.revealFrames)
		visible = string(g.textRunes[:n])
	}
	if visible == "" || col.A == 0 {
		return
	}

	maxWidth := g.box.Dx() - 80
	if !g.tmpl.Box {
		maxWidth = g.req.Width - 100
	}
	lines := WrapText(visible, g.quoteFace, maxWidth)
	lineH := LineHeight(g.quoteFace, 1.25)
	totalH := len(lines) * lineH

	startY := (g.req.Height - totalH) / 2
	if g.tmpl.Box {
		startY = g.box.Min.Y + (g.box.Dy()-totalH)/2
	}

	for i, line := range lines {
		w := StringWidth(g.quoteFace, line)
		x := (g.req.Width - w) / 2
		if g.tmpl.Box {
			x = g.box.Min.X + (g.box.Dx()-w)/2
		}
		DrawString(img, g.quoteFace, line, x+dx, startY+i*lineH+dy, col, true)
	}
}

func (g *Generator) drawAuthor(img *image.NRGBA, frameIdx int) {
	if g.req.Author == "" {
		return
	}
	alpha := AuthorAlpha(frameIdx, g.total, config.AuthorFadeStart, config.AuthorFadeWindow)
	if alpha == 0 {
		return
	}
	text := "— " + g.req.Author
	w := StringWidth(g.authorFace, text)

	var x, y int
	switch g.tmpl.AuthorPosition {
	case "bottom_center":
		x = (g.req.Width - w) / 2
		y = g.req.Height - 140
	case "inside_bottom":
		x = g.box.Max.X - w - 40
		y = g.box.Max.Y - 70
	default: // bottom_right
		if g.tmpl.Box {
			x = g.box.Max.X - w - 40
			y = g.box.Max.Y - 70
		} else {
			x = g.req.Width - w - 60
			y = g.req.Height - 120
		}
	}
	DrawString(img, g.authorFace, text, x, y, withAlpha(g.tmpl.AuthorColor, alpha), false)
}

// fallbackLogo draws a deterministic placeholder when the brand logo asset
// cannot be fetched.
func fallbackLogo(face font.Face) *image.NRGBA {
	logo := imaging.New(200, 64, color.NRGBA{})
	FillRoundedRect(logo, image.Rect(0, 10, 200, 54), 8, color.NRGBA{255, 215, 0, 200})
	DrawString(logo, face, "REELSMITH", 16, 16, color.NRGBA{0, 0, 0, 255}, false)
	return logo
}

func scaleBrightness(c color.NRGBA, gain float64) color.NRGBA {
	scale := func(v uint8) uint8 {
		f := float64(v) * gain
		if f > 255 {
			f = 255
		}
		if f < 0 {
			f = 0
		}
		return uint8(f)
	}
	return color.NRGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

func deriveSeed(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	seed := int64(h.Sum64())
	if seed == 0 {
		seed = 1
	}
	return seed
}
