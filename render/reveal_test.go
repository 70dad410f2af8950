package render

import "testing"

func TestFrameCount(t *testing.T) {
	cases := []struct {
		name     string
		duration float64
		fps      int
		want     int
	}{
		{"ten seconds at 24fps", 10, 24, 240},
		{"fractional duration floors", 2.5, 24, 60},
		{"sub-frame remainder floors", 1.99, 10, 19},
		{"zero duration", 0, 24, 0},
		{"negative duration", -1, 24, 0},
		{"zero fps", 10, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FrameCount(c.duration, c.fps); got != c.want {
				t.Fatalf("FrameCount(%v, %d) = %d; want %d", c.duration, c.fps, got, c.want)
			}
		})
	}
}

func TestVisibleRunesMonotonic(t *testing.T) {
	const textLen = 37
	const reveal = 168

	prev := 0
	for i := 0; i < 240; i++ {
		n := VisibleRunes(textLen, i, reveal)
		if n < prev {
			t.Fatalf("visible count decreased at frame %d: %d -> %d", i, prev, n)
		}
		if n > textLen {
			t.Fatalf("visible count %d exceeds text length at frame %d", n, i)
		}
		prev = n
	}
}

func TestVisibleRunesWorkedExample(t *testing.T) {
	// "HELLO WORLD" at 10s, 24fps, reveal fraction 0.7: 168 reveal frames,
	// full text from frame 168 through 239.
	const textLen = 11
	total := FrameCount(10, 24)
	reveal := RevealFrames(total, 0.7)

	if total != 240 {
		t.Fatalf("total frames = %d; want 240", total)
	}
	if reveal != 168 {
		t.Fatalf("reveal frames = %d; want 168", reveal)
	}
	if got := VisibleRunes(textLen, 0, reveal); got != 0 {
		t.Fatalf("frame 0 shows %d runes; want 0", got)
	}
	if got := VisibleRunes(textLen, 84, reveal); got != 6 {
		t.Fatalf("halfway frame shows %d runes; want 6", got)
	}
	for i := reveal; i < total; i++ {
		if got := VisibleRunes(textLen, i, reveal); got != textLen {
			t.Fatalf("hold frame %d shows %d runes; want %d", i, got, textLen)
		}
	}
}

func TestVisibleRunesFullAtFirstHoldFrame(t *testing.T) {
	for _, textLen := range []int{1, 11, 200} {
		if got := VisibleRunes(textLen, 168, 168); got != textLen {
			t.Fatalf("first hold frame shows %d of %d runes", got, textLen)
		}
	}
}

func TestAuthorAlpha(t *testing.T) {
	const total = 240 // 10s at 24fps, fade from frame 192 over 48 frames

	cases := []struct {
		name  string
		frame int
		want  uint8
		exact bool
	}{
		{"before fade", 0, 0, true},
		{"just before start", 191, 0, true},
		{"at start", 192, 0, true},
		{"fully faded in", 240, 255, true},
		{"after window", 239, 249, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := AuthorAlpha(c.frame, total, 0.8, 0.2)
			if c.exact && got != c.want {
				t.Fatalf("AuthorAlpha(%d) = %d; want %d", c.frame, got, c.want)
			}
			if !c.exact && got < c.want {
				t.Fatalf("AuthorAlpha(%d) = %d; want at least %d", c.frame, got, c.want)
			}
		})
	}

	// Fade must be non-decreasing.
	prev := uint8(0)
	for i := 0; i < total; i++ {
		a := AuthorAlpha(i, total, 0.8, 0.2)
		if a < prev {
			t.Fatalf("author alpha decreased at frame %d: %d -> %d", i, prev, a)
		}
		prev = a
	}
}
