package transcript

import (
	"regexp"
	"strconv"
	"strings"

	"reelsmith/types"
)

var (
	srtTimeRe = regexp.MustCompile(`(\d{1,2}):(\d{2}):(\d{2})[,.](\d{3})\s*-->\s*(\d{1,2}):(\d{2}):(\d{2})[,.](\d{3})`)
	bracketRe = regexp.MustCompile(`^\[(?:(\d+):)?(\d+):(\d+)\]\s*(.*)$`)
	videoIDRe = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})(?:[?&/#].*)?$`)
)

// ParseSRT parses SubRip caption text into cues. Index lines and blank lines
// are skipped; multi-line cue text is joined with spaces.
func ParseSRT(src string) []types.Cue {
	var cues []types.Cue
	var cur *types.Cue

	for _, line := range strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if cur != nil && cur.Text != "" {
				cues = append(cues, *cur)
			}
			cur = nil
			continue
		}

		if m := srtTimeRe.FindStringSubmatch(line); m != nil {
			if cur != nil && cur.Text != "" {
				cues = append(cues, *cur)
			}
			cur = &types.Cue{
				Start: srtSeconds(m[1], m[2], m[3], m[4]),
				End:   srtSeconds(m[5], m[6], m[7], m[8]),
			}
			continue
		}

		if cur == nil {
			continue // cue index or stray text before any timing line
		}
		if cur.Text != "" {
			cur.Text += " "
		}
		cur.Text += line
	}
	if cur != nil && cur.Text != "" {
		cues = append(cues, *cur)
	}
	return cues
}

// ParseBracketed parses "[HH:MM:SS] text" transcript lines, the format the
// read-along exports use. Each cue ends where the next one starts; the last
// cue gets a nominal ten seconds.
func ParseBracketed(src string) []types.Cue {
	var cues []types.Cue
	for _, line := range strings.Split(src, "\n") {
		m := bracketRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		hours := 0
		if m[1] != "" {
			hours, _ = strconv.Atoi(m[1])
		}
		minutes, _ := strconv.Atoi(m[2])
		seconds, _ := strconv.Atoi(m[3])
		cues = append(cues, types.Cue{
			Start: float64(hours*3600 + minutes*60 + seconds),
			Text:  m[4],
		})
	}
	for i := range cues {
		if i+1 < len(cues) {
			cues[i].End = cues[i+1].Start
		} else {
			cues[i].End = cues[i].Start + 10
		}
	}
	return cues
}

func srtSeconds(h, m, s, ms string) float64 {
	hi, _ := strconv.Atoi(h)
	mi, _ := strconv.Atoi(m)
	si, _ := strconv.Atoi(s)
	msi, _ := strconv.Atoi(ms)
	return float64(hi*3600+mi*60+si) + float64(msi)/1000
}

// ExtractVideoID pulls the 11-character video ID out of a YouTube URL. It
// also accepts a bare ID.
func ExtractVideoID(url string) string {
	if len(url) == 11 && !strings.ContainsAny(url, ":/?&") {
		return url
	}
	if m := videoIDRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}
