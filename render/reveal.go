package render

import "math"

// FrameCount returns the number of frames for a clip: floor(duration * fps).
func FrameCount(durationSec float64, fps int) int {
	if durationSec <= 0 || fps <= 0 {
		return 0
	}
	return int(math.Floor(durationSec * float64(fps)))
}

// RevealFrames returns how many frames make up the reveal phase.
func RevealFrames(totalFrames int, fraction float64) int {
	if fraction <= 0 {
		return 0
	}
	if fraction >= 1 {
		return totalFrames
	}
	return int(float64(totalFrames) * fraction)
}

// VisibleRunes returns how many runes of a textLen-rune message are shown at
// frame i. The count grows linearly over the reveal phase and saturates at
// textLen for every hold-phase frame. It is non-decreasing in i.
func VisibleRunes(textLen, frameIdx, revealFrames int) int {
	if textLen <= 0 || frameIdx < 0 {
		return 0
	}
	if revealFrames <= 0 || frameIdx >= revealFrames {
		return textLen
	}
	progress := float64(frameIdx) / float64(revealFrames)
	n := int(math.Round(float64(textLen) * progress))
	if n > textLen {
		n = textLen
	}
	return n
}

// AuthorAlpha returns the attribution line opacity at frame i. The fade
// occupies its own sub-window of the hold phase: zero before startFrac of the
// clip, ramping linearly to 255 over windowFrac.
func AuthorAlpha(frameIdx, totalFrames int, startFrac, windowFrac float64) uint8 {
	if totalFrames <= 0 || windowFrac <= 0 {
		return 0
	}
	start := float64(totalFrames) * startFrac
	window := float64(totalFrames) * windowFrac
	if float64(frameIdx) < start {
		return 0
	}
	p := (float64(frameIdx) - start) / window
	if p >= 1 {
		return 255
	}
	return uint8(255 * p)
}
