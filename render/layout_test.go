package render

import (
	"strings"
	"testing"
)

func TestWrapTextRespectsMaxWidth(t *testing.T) {
	face, err := QuoteFace(52)
	if err != nil {
		t.Fatalf("QuoteFace: %v", err)
	}

	text := "CREATE AMAZING CONTENT WITH SIMPLE LAYOUT OPTIMIZATION FOR EVERY CHANNEL"
	const maxWidth = 400

	lines := WrapText(text, face, maxWidth)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping to produce multiple lines, got %d", len(lines))
	}

	for _, line := range lines {
		// Multi-word lines must fit; a single over-long word is allowed its
		// own line.
		if strings.Contains(line, " ") && StringWidth(face, line) > maxWidth {
			t.Fatalf("line %q is %dpx wide, max %d", line, StringWidth(face, line), maxWidth)
		}
	}

	// No words lost or duplicated.
	if joined := strings.Join(lines, " "); joined != text {
		t.Fatalf("wrap altered content:\n got %q\nwant %q", joined, text)
	}
}

func TestWrapTextSingleLongWord(t *testing.T) {
	face, err := QuoteFace(52)
	if err != nil {
		t.Fatalf("QuoteFace: %v", err)
	}

	lines := WrapText("SUPERCALIFRAGILISTICEXPIALIDOCIOUS", face, 50)
	if len(lines) != 1 {
		t.Fatalf("expected one line for a single word, got %d", len(lines))
	}
}

func TestWrapTextEmpty(t *testing.T) {
	face, err := QuoteFace(52)
	if err != nil {
		t.Fatalf("QuoteFace: %v", err)
	}
	if lines := WrapText("   ", face, 100); lines != nil {
		t.Fatalf("expected nil for blank input, got %v", lines)
	}
}

func TestLookupTemplate(t *testing.T) {
	if tmpl := LookupTemplate("bold"); tmpl.Name != "bold" || !tmpl.Box {
		t.Fatalf("bold template not resolved: %+v", tmpl)
	}
	if tmpl := LookupTemplate("nonsense"); tmpl.Name != "classic" {
		t.Fatalf("unknown template should fall back to classic, got %q", tmpl.Name)
	}
	if tmpl := LookupTemplate("minimal"); tmpl.Box {
		t.Fatalf("minimal template should have no box")
	}
}

func TestParseHex(t *testing.T) {
	cases := []struct {
		in       string
		wantR    uint8
		fallback bool
	}{
		{"#FFD700", 255, false},
		{"#000000", 0, false},
		{"not-a-color", 0, true},
		{"", 0, true},
	}

	for _, c := range cases {
		got := ParseHex(c.in, FallbackColor)
		if c.fallback {
			if got != FallbackColor {
				t.Fatalf("ParseHex(%q) = %v; want fallback", c.in, got)
			}
			continue
		}
		if got.R != c.wantR {
			t.Fatalf("ParseHex(%q).R = %d; want %d", c.in, got.R, c.wantR)
		}
	}
}
