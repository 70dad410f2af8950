package config

import "time"

// Render Constants
const (
	// MaxConcurrentRenders limits the number of video jobs rendered simultaneously
	MaxConcurrentRenders = 3

	// DefaultFPS is the frame rate used when a request does not specify one
	DefaultFPS = 24

	// DefaultDuration is the clip length in seconds when unspecified
	DefaultDuration = 10.0

	// MaxDuration is the maximum allowed clip length in seconds
	MaxDuration = 60.0

	// MaxTextLength is the maximum number of characters in a message
	MaxTextLength = 200

	// RevealFraction is the share of the clip during which text is disclosed
	RevealFraction = 0.7

	// AuthorFadeStart is the point (fraction of total duration) where the
	// author line begins fading in
	AuthorFadeStart = 0.8

	// AuthorFadeWindow is the length of the author fade as a fraction of
	// total duration
	AuthorFadeWindow = 0.2
)

// Video Output Constants
const (
	// VideoWidth is the default output width (9:16 aspect ratio)
	VideoWidth = 1080

	// VideoHeight is the default output height (9:16 aspect ratio)
	VideoHeight = 1920

	// VideoCodec is the video encoding codec
	VideoCodec = "libx264"

	// VideoPreset is the ffmpeg encoding speed preset
	VideoPreset = "fast"

	// VideoCRF is the constant rate factor for libx264
	VideoCRF = "23"

	// PixelFormat keeps the output playable on every player
	PixelFormat = "yuv420p"
)

// Network Constants
const (
	// FetchTimeout bounds a single asset download
	FetchTimeout = 15 * time.Second

	// SearchTimeout bounds a call to the asset search API
	SearchTimeout = 10 * time.Second

	// AssetCacheTTL is how long fetched asset bytes stay cached
	AssetCacheTTL = time.Hour

	// SearchCacheTTL is how long search responses stay cached
	SearchCacheTTL = 10 * time.Minute

	// SessionTTL is how long a UI session survives without activity
	SessionTTL = 24 * time.Hour
)

// Directory Constants
const (
	// OutputDir is the directory for generated artifacts
	OutputDir = "output"
)

// YouTube Constants
const (
	// YouTubeCategoryID for People & Blogs
	YouTubeCategoryID = "22"

	// YouTubePrivacyStatus sets uploaded video visibility
	YouTubePrivacyStatus = "public"
)
