package video

import (
	"strings"
	"testing"

	"reelsmith/types"
)

func TestGenerateMetadata(t *testing.T) {
	req := types.RenderRequest{
		Text:   "Protect what matters most",
		Author: "A. Advisor",
	}
	md := GenerateMetadata(req, []string{"family", "life insurance"})

	if !strings.Contains(md.Title, "Protect what matters most") {
		t.Errorf("title = %q", md.Title)
	}
	if !strings.Contains(md.Title, "A. Advisor") {
		t.Errorf("title should carry the author: %q", md.Title)
	}
	if !strings.Contains(md.Description, "#lifeinsurance") {
		t.Errorf("keyword hashtags missing from description: %q", md.Description)
	}
	if !strings.Contains(md.Description, "#shorts") {
		t.Errorf("description = %q", md.Description)
	}
	if md.CategoryID == "" {
		t.Errorf("category must be set")
	}

	var sawKeywordTag bool
	for _, tag := range md.Tags {
		if tag == "family" {
			sawKeywordTag = true
		}
	}
	if !sawKeywordTag {
		t.Errorf("tags should include keywords: %v", md.Tags)
	}
}

func TestGenerateMetadataTruncatesLongTitles(t *testing.T) {
	req := types.RenderRequest{Text: strings.Repeat("long quote ", 20)}
	md := GenerateMetadata(req, nil)

	if len(md.Title) > 100 {
		t.Fatalf("title length %d > 100", len(md.Title))
	}
	if !strings.HasSuffix(md.Title, "...") {
		t.Fatalf("truncated title should end with ellipsis: %q", md.Title)
	}
}
