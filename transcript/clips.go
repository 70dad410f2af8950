package transcript

import (
	"fmt"
	"sort"
	"strings"

	"reelsmith/types"
)

// Clip length bounds in seconds. Anything shorter is a fragment, anything
// longer loses the short-form audience.
const (
	MinClipSeconds = 3.0
	MaxClipSeconds = 180.0
)

// ScoreConfig holds the keyword lists a transcript is scored against. The
// defaults target insurance content but callers can supply their own domain.
type ScoreConfig struct {
	Keywords          []string
	EmotionalTriggers []string
	BenefitIndicators []string
	CallToActions     []string
}

// DefaultScoreConfig returns the insurance-domain scoring lists.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		Keywords: []string{
			"insurance", "policy", "coverage", "premium", "deductible", "claim", "benefits",
			"life insurance", "health insurance", "family", "covered", "protection", "retirement",
			"inheritance", "children", "money", "bankruptcy", "living benefits", "accident", "illness",
			"income replacement", "cash value", "terminal illness", "critical illness", "disability",
			"401k", "annuity",
		},
		EmotionalTriggers: []string{"family", "children", "protect", "bankruptcy", "wise", "legacy"},
		BenefitIndicators: []string{"covered", "benefits", "money", "income", "cash"},
		CallToActions:     []string{"should", "need", "must", "why", "get", "join"},
	}
}

// segmentScore is the per-segment breakdown used to rank candidates.
type segmentScore struct {
	keywords []string
	triggers int
	benefits int
	ctas     int
	complete bool
}

func scoreText(text string, cfg ScoreConfig) segmentScore {
	lower := strings.ToLower(text)

	var s segmentScore
	for _, kw := range cfg.Keywords {
		if strings.Contains(lower, kw) {
			s.keywords = append(s.keywords, kw)
		}
	}
	for _, w := range cfg.EmotionalTriggers {
		if strings.Contains(lower, w) {
			s.triggers++
		}
	}
	for _, w := range cfg.BenefitIndicators {
		if strings.Contains(lower, w) {
			s.benefits++
		}
	}
	for _, w := range cfg.CallToActions {
		if strings.Contains(lower, w) {
			s.ctas++
		}
	}
	trimmed := strings.TrimSpace(text)
	s.complete = strings.HasSuffix(trimmed, ".") ||
		strings.HasSuffix(trimmed, "!") ||
		strings.HasSuffix(trimmed, "?")
	return s
}

func (s segmentScore) total() int {
	score := len(s.keywords) + s.triggers + s.benefits + s.ctas
	if s.complete {
		score++
	}
	return score
}

// SuggestClips groups contiguous cues into candidate clips, scores each group
// against cfg and returns the suggestions worth publishing, best first. A
// group closes when a cue ends a sentence and the group is at least
// MinClipSeconds long, or when adding a cue would exceed MaxClipSeconds.
func SuggestClips(cues []types.Cue, cfg ScoreConfig) []types.ClipSuggestion {
	if len(cues) == 0 {
		return nil
	}

	var groups [][]types.Cue
	var current []types.Cue
	for _, cue := range cues {
		if len(current) > 0 && cue.End-current[0].Start > MaxClipSeconds {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, cue)

		trimmed := strings.TrimSpace(cue.Text)
		sentenceEnd := strings.HasSuffix(trimmed, ".") ||
			strings.HasSuffix(trimmed, "!") ||
			strings.HasSuffix(trimmed, "?")
		if sentenceEnd && cue.End-current[0].Start >= MinClipSeconds {
			groups = append(groups, current)
			current = nil
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	var out []types.ClipSuggestion
	for _, group := range groups {
		start, end := group[0].Start, group[len(group)-1].End
		if end-start < MinClipSeconds {
			continue
		}

		var parts []string
		for _, cue := range group {
			parts = append(parts, strings.TrimSpace(cue.Text))
		}
		text := strings.Join(parts, " ")

		score := scoreText(text, cfg)
		if len(score.keywords) == 0 {
			continue
		}

		out = append(out, types.ClipSuggestion{
			Title:      clipTitle(score.keywords, text),
			Start:      start,
			End:        end,
			Timestamp:  fmt.Sprintf("%s - %s", FormatTimestamp(start), FormatTimestamp(end)),
			Hook:       clipHook(text),
			Keywords:   score.keywords,
			Confidence: confidence(score),
			Platform:   platformHint(end - start),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out
}

func clipTitle(keywords []string, text string) string {
	if len(keywords) > 0 {
		kw := keywords[0]
		return strings.ToUpper(kw[:1]) + kw[1:] + " insight"
	}
	words := strings.Fields(text)
	if len(words) > 6 {
		words = words[:6]
	}
	return strings.Join(words, " ")
}

// clipHook is the first sentence, capped for caption overlays.
func clipHook(text string) string {
	for _, end := range []string{". ", "! ", "? "} {
		if idx := strings.Index(text, end); idx > 0 {
			text = text[:idx+1]
			break
		}
	}
	if r := []rune(text); len(r) > 120 {
		text = string(r[:117]) + "..."
	}
	return text
}

// confidence maps a raw score onto (0, 1]. Four scoring hits is already a
// strong segment.
func confidence(s segmentScore) float64 {
	c := float64(s.total()) / 8.0
	if c > 1 {
		c = 1
	}
	return c
}

// platformHint suggests where a clip of this length plays best.
func platformHint(seconds float64) string {
	switch {
	case seconds <= 30:
		return "tiktok"
	case seconds <= 60:
		return "shorts"
	default:
		return "youtube"
	}
}

// FormatTimestamp renders seconds as M:SS or H:MM:SS for display.
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
