package transcript

import (
	"strings"
	"testing"
	"unicode/utf8"

	"reelsmith/types"
)

func insuranceCues() []types.Cue {
	return []types.Cue{
		{Text: "So many people ask me about life insurance", Start: 0, End: 4},
		{Text: "and whether their family would really be covered.", Start: 4, End: 9},
		{Text: "Here is the honest answer.", Start: 9, End: 12},
		{Text: "Um, anyway, the weather was nice last weekend.", Start: 12, End: 16},
		{Text: "You need living benefits because a critical illness", Start: 16, End: 21},
		{Text: "can push a working family into bankruptcy fast.", Start: 21, End: 26},
	}
}

func TestSuggestClipsFindsScoredSegments(t *testing.T) {
	clips := SuggestClips(insuranceCues(), DefaultScoreConfig())
	if len(clips) == 0 {
		t.Fatalf("expected at least one suggestion")
	}

	for _, c := range clips {
		dur := c.End - c.Start
		if dur < MinClipSeconds || dur > MaxClipSeconds {
			t.Errorf("clip %q duration %v out of bounds", c.Title, dur)
		}
		if len(c.Keywords) == 0 {
			t.Errorf("clip %q has no keywords", c.Title)
		}
		if c.Confidence <= 0 || c.Confidence > 1 {
			t.Errorf("clip %q confidence %v out of (0,1]", c.Title, c.Confidence)
		}
		want := FormatTimestamp(c.Start) + " - " + FormatTimestamp(c.End)
		if c.Timestamp != want {
			t.Errorf("clip %q timestamp = %q; want %q", c.Title, c.Timestamp, want)
		}
	}

	// The bankruptcy segment scores on keywords, triggers and benefits; the
	// small-talk one must not appear at all.
	for _, c := range clips {
		for _, kw := range c.Keywords {
			if kw == "weather" {
				t.Fatalf("small talk segment should be filtered: %+v", c)
			}
		}
	}

	for i := 1; i < len(clips); i++ {
		if clips[i].Confidence > clips[i-1].Confidence {
			t.Fatalf("clips not sorted by confidence: %v", clips)
		}
	}
}

func TestSuggestClipsEmptyInput(t *testing.T) {
	if got := SuggestClips(nil, DefaultScoreConfig()); got != nil {
		t.Fatalf("nil cues should yield nil, got %v", got)
	}
}

func TestPlatformHint(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{15, "tiktok"},
		{30, "tiktok"},
		{45, "shorts"},
		{60, "shorts"},
		{120, "youtube"},
	}
	for _, tt := range tests {
		if got := platformHint(tt.seconds); got != tt.want {
			t.Errorf("platformHint(%v) = %q; want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestClipHookTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("ü", 200)
	hook := clipHook(long)
	if !utf8.ValidString(hook) {
		t.Fatalf("hook is not valid UTF-8: %q", hook)
	}
	if got := utf8.RuneCountInString(hook); got != 120 {
		t.Errorf("rune count = %d; want 120", got)
	}
	if !strings.HasSuffix(hook, "...") {
		t.Errorf("hook missing ellipsis: %q", hook)
	}
}

func TestClipHookFirstSentence(t *testing.T) {
	hook := clipHook("Protect your family. The rest can wait.")
	if hook != "Protect your family." {
		t.Errorf("hook = %q", hook)
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{65, "1:05"},
		{3599, "59:59"},
		{3661, "1:01:01"},
	}
	for _, tt := range tests {
		if got := FormatTimestamp(tt.seconds); got != tt.want {
			t.Errorf("FormatTimestamp(%v) = %q; want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestEmbedURL(t *testing.T) {
	got := EmbedURL("dQw4w9WgXcQ", 12.7, 48.2)
	want := "https://www.youtube.com/embed/dQw4w9WgXcQ?start=12&end=48&autoplay=0&rel=0"
	if got != want {
		t.Fatalf("EmbedURL = %q; want %q", got, want)
	}
}
