package keywords

import (
	"context"
	"reflect"
	"testing"
)

func TestFallback(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "skips short words and strips punctuation",
			text: "Life is what happens, when you're busy making other plans!",
			want: []string{"life", "what", "happens", "when", "you're"},
		},
		{
			name: "caps at five keywords",
			text: "protect your family today with comprehensive affordable insurance coverage plans",
			want: []string{"protect", "your", "family", "today", "with"},
		},
		{
			name: "short text yields fewer",
			text: "Dream big.",
			want: []string{"dream"},
		},
		{
			name: "empty text yields none",
			text: "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fallback(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Fallback(%q) = %v; want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseKeywordJSON(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{
			name:  "bare array",
			reply: `["ocean", "waves", "sunset"]`,
			want:  []string{"ocean", "waves", "sunset"},
		},
		{
			name:  "array inside prose",
			reply: "Here you go:\n```json\n[\"Family\", \" home \"]\n```",
			want:  []string{"family", "home"},
		},
		{
			name:  "no array",
			reply: "I cannot help with that.",
			want:  nil,
		},
		{
			name:  "malformed json",
			reply: `["unterminated`,
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseKeywordJSON(tt.reply)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseKeywordJSON(%q) = %v; want %v", tt.reply, got, tt.want)
			}
		})
	}
}

func TestHeuristicExtractorNeverFails(t *testing.T) {
	h := &HeuristicExtractor{}
	got, err := h.Extract(context.Background(), "Secure tomorrow, starting today")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("expected keywords, got none")
	}
	if h.ModelName() != "heuristic" {
		t.Fatalf("ModelName = %q", h.ModelName())
	}
}
