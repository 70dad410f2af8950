package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// RenderRequest describes one image or video generation. It is immutable for
// the lifetime of the render; every frame is derived from it plus an elapsed
// time fraction.
type RenderRequest struct {
	UUID          string  `json:"uuid,omitempty"`
	Text          string  `json:"text"`
	Author        string  `json:"author,omitempty"`
	Duration      float64 `json:"duration,omitempty"`
	FPS           int     `json:"fps,omitempty"`
	Width         int     `json:"width,omitempty"`
	Height        int     `json:"height,omitempty"`
	Template      string  `json:"template,omitempty"`
	Animation     string  `json:"animation,omitempty"`
	Background    string  `json:"background,omitempty"`     // "image", "gradient", "particles", "shapes", "solid"
	BackgroundURL string  `json:"background_url,omitempty"` // asset URL when Background is "image"
	TextColor     string  `json:"text_color,omitempty"`     // hex, overrides the template
	Seed          int64   `json:"seed,omitempty"`           // cosmetic randomness; 0 means derive from UUID
	Status        string  `json:"status,omitempty"`         // set by queue producers
}

// Asset is one record from the asset search API
type Asset struct {
	ThumbnailSrc string `json:"thumbnail_src"`
	ImgURL       string `json:"img_url"`
	SourceSite   string `json:"source_site,omitempty"`
	Resolution   string `json:"resolution,omitempty"`
	Title        string `json:"title,omitempty"`
	Ext          string `json:"ext,omitempty"`
}

// KeywordSuggestion is a related-search hint returned alongside results
type KeywordSuggestion struct {
	Keyword string `json:"keyword"`
	Score   int    `json:"score,omitempty"`
}

// Cue is one timed caption segment of a transcript
type Cue struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// ClipSuggestion is a recommended transcript excerpt worth clipping
type ClipSuggestion struct {
	Title      string   `json:"title"`
	Start      float64  `json:"start"`
	End        float64  `json:"end"`
	Timestamp  string   `json:"timestamp"`
	Hook       string   `json:"hook"`
	Keywords   []string `json:"keywords,omitempty"`
	Confidence float64  `json:"confidence"`
	Platform   string   `json:"platform"`
}

// LogEntry is a single timestamped progress line attached to a job
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// GenerateID creates a short stable ID from a string (URL, query, ...)
func GenerateID(s string) string {
	hash := sha256.Sum256([]byte(s))
	return hex.EncodeToString(hash[:])[:16]
}
