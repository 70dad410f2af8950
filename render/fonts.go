package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

var (
	fontOnce   sync.Once
	quoteFont  *sfnt.Font
	authorFont *sfnt.Font
	fontErr    error
)

func loadFonts() {
	quoteFont, fontErr = opentype.Parse(gobold.TTF)
	if fontErr != nil {
		return
	}
	authorFont, fontErr = opentype.Parse(goregular.TTF)
}

func newFace(f *sfnt.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// QuoteFace returns the bold face used for the message text.
func QuoteFace(size float64) (font.Face, error) {
	fontOnce.Do(loadFonts)
	if fontErr != nil {
		return nil, fmt.Errorf("failed to parse embedded fonts: %w", fontErr)
	}
	return newFace(quoteFont, size)
}

// AuthorFace returns the regular face used for the attribution line.
func AuthorFace(size float64) (font.Face, error) {
	fontOnce.Do(loadFonts)
	if fontErr != nil {
		return nil, fmt.Errorf("failed to parse embedded fonts: %w", fontErr)
	}
	return newFace(authorFont, size)
}
