package keywords

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

const maxKeywords = 5

// Extractor turns quote text into a handful of search keywords for finding
// matching background assets.
type Extractor interface {
	Extract(ctx context.Context, text string) ([]string, error)
	ModelName() string
}

// NewDefaultExtractor returns a Cohere-backed extractor when COHERE_API_KEY
// is set, otherwise the heuristic fallback.
func NewDefaultExtractor(preferredModel string) Extractor {
	if key := os.Getenv("COHERE_API_KEY"); key != "" {
		model := preferredModel
		if model == "" {
			model = "command-r"
		}
		// Force HTTP/1.1; the Cohere endpoint intermittently resets HTTP/2 streams
		httpClient := &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
				ForceAttemptHTTP2: false,
			},
		}
		client := cohereclient.NewClient(
			cohereclient.WithToken(key),
			cohereclient.WithHTTPClient(httpClient),
		)
		return &CohereExtractor{client: client, model: model}
	}
	return &HeuristicExtractor{}
}

// CohereExtractor asks a chat model for keywords and expects a JSON array
// back. Any malformed response degrades to the heuristic.
type CohereExtractor struct {
	client *cohereclient.Client
	model  string
}

func (c *CohereExtractor) ModelName() string { return c.model }

func (c *CohereExtractor) Extract(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	prompt := fmt.Sprintf(
		"Extract up to %d short visual search keywords from this quote, for finding a matching stock background image. "+
			"Respond with only a JSON array of lowercase strings, no prose.\n\nQuote: %q",
		maxKeywords, text,
	)

	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message: prompt,
		Model:   &c.model,
	})
	if err != nil {
		return nil, fmt.Errorf("cohere chat error: %w", err)
	}

	parsed := parseKeywordJSON(resp.Text)
	if len(parsed) == 0 {
		return Fallback(text), nil
	}
	if len(parsed) > maxKeywords {
		parsed = parsed[:maxKeywords]
	}
	return parsed, nil
}

// parseKeywordJSON pulls a JSON string array out of a chat reply, tolerating
// surrounding prose or markdown fences.
func parseKeywordJSON(reply string) []string {
	start := strings.Index(reply, "[")
	end := strings.LastIndex(reply, "]")
	if start < 0 || end <= start {
		return nil
	}
	var words []string
	if err := json.Unmarshal([]byte(reply[start:end+1]), &words); err != nil {
		return nil
	}
	var out []string
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// HeuristicExtractor is the no-API-key path. It never fails.
type HeuristicExtractor struct{}

func (h *HeuristicExtractor) ModelName() string { return "heuristic" }

func (h *HeuristicExtractor) Extract(_ context.Context, text string) ([]string, error) {
	return Fallback(text), nil
}

// Fallback picks the first few substantial words of the text, stripped of
// punctuation. Words of 3 characters or fewer are skipped.
func Fallback(text string) []string {
	var out []string
	for _, word := range strings.Fields(text) {
		word = strings.ToLower(strings.Trim(word, ",.!?;:\"'"))
		if len(word) <= 3 {
			continue
		}
		out = append(out, word)
		if len(out) == maxKeywords {
			break
		}
	}
	return out
}
