package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"reelsmith/config"
	"reelsmith/types"
)

// SearchParams are the query parameters understood by the moonshine search
// API.
type SearchParams struct {
	Query    string
	Type     string // style/category tag, e.g. "backgrounds", "typography"
	MinWidth int
	Ext      string
	Limit    int
	Quality  bool
}

// SearchResult is the decoded search response.
type SearchResult struct {
	Assets      []types.Asset             `json:"assets"`
	Suggestions []types.KeywordSuggestion `json:"suggestions,omitempty"`
}

type searchEnvelope struct {
	Results struct {
		Assets []types.Asset `json:"assets"`
	} `json:"results"`
	Suggestions struct {
		Keywords []types.KeywordSuggestion `json:"keywords"`
	} `json:"suggestions"`
}

// SearchClient queries an asset search endpoint, caching responses briefly
// so repeated identical searches within a session stay off the network.
type SearchClient struct {
	baseURL string
	client  *http.Client
	cache   Cache
}

// NewSearchClient builds a search client. cache may be nil.
func NewSearchClient(baseURL string, cache Cache) *SearchClient {
	return &SearchClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: config.SearchTimeout},
		cache:   cache,
	}
}

// Search runs one query against the endpoint.
func (c *SearchClient) Search(ctx context.Context, p SearchParams) (*SearchResult, error) {
	q := url.Values{}
	q.Set("q", p.Query)
	if p.Type != "" {
		q.Set("t", p.Type)
	}
	if p.MinWidth > 0 {
		q.Set("w", strconv.Itoa(p.MinWidth))
	}
	if p.Ext != "" {
		q.Set("e", p.Ext)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Quality {
		q.Set("quality", "true")
	}
	full := c.baseURL + "?" + q.Encode()
	cacheKey := "search:" + types.GenerateID(full)

	if c.cache != nil {
		if b, ok := c.cache.Get(ctx, cacheKey); ok {
			var cached SearchResult
			if err := json.Unmarshal(b, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, full, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: search returned status %d", ErrFetch, resp.StatusCode)
	}

	var envelope searchEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	result := &SearchResult{
		Assets:      envelope.Results.Assets,
		Suggestions: envelope.Suggestions.Keywords,
	}

	if c.cache != nil {
		if b, err := json.Marshal(result); err == nil {
			c.cache.Set(ctx, cacheKey, b, config.SearchCacheTTL)
		}
	}
	return result, nil
}
