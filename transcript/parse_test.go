package transcript

import (
	"math"
	"testing"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:04,500
Welcome back to the channel.

2
00:00:04,500 --> 00:00:09,250
Today we cover life insurance
and living benefits.

3
00:01:02,000 --> 00:01:05,000
See you next time.`

func TestParseSRT(t *testing.T) {
	cues := ParseSRT(sampleSRT)
	if len(cues) != 3 {
		t.Fatalf("got %d cues; want 3", len(cues))
	}

	if cues[0].Text != "Welcome back to the channel." {
		t.Errorf("cue 0 text = %q", cues[0].Text)
	}
	if cues[0].Start != 1.0 || cues[0].End != 4.5 {
		t.Errorf("cue 0 timing = %v-%v", cues[0].Start, cues[0].End)
	}

	if cues[1].Text != "Today we cover life insurance and living benefits." {
		t.Errorf("multi-line cue not joined: %q", cues[1].Text)
	}
	if math.Abs(cues[1].End-9.25) > 1e-9 {
		t.Errorf("cue 1 end = %v; want 9.25", cues[1].End)
	}

	if cues[2].Start != 62.0 {
		t.Errorf("cue 2 start = %v; want 62", cues[2].Start)
	}
}

func TestParseBracketed(t *testing.T) {
	src := `[00:00:05] Today we're talking about insurance
[00:00:12] and why your family needs coverage.
random line without a timestamp
[00:01:00] That's all for today.`

	cues := ParseBracketed(src)
	if len(cues) != 3 {
		t.Fatalf("got %d cues; want 3", len(cues))
	}
	if cues[0].Start != 5 || cues[0].End != 12 {
		t.Errorf("cue 0 timing = %v-%v", cues[0].Start, cues[0].End)
	}
	if cues[1].Start != 12 || cues[1].End != 60 {
		t.Errorf("cue 1 timing = %v-%v", cues[1].Start, cues[1].End)
	}
	if cues[2].End != 70 {
		t.Errorf("final cue should get a nominal end, got %v", cues[2].End)
	}
}

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://example.com/watch", ""},
	}
	for _, tt := range tests {
		if got := ExtractVideoID(tt.url); got != tt.want {
			t.Errorf("ExtractVideoID(%q) = %q; want %q", tt.url, got, tt.want)
		}
	}
}
