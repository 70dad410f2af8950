package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"

	"reelsmith/config"
	"reelsmith/types"

	"github.com/disintegration/imaging"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Expected failure modes. Callers substitute a fallback only for these;
// anything else is treated as a programming error and propagates.
var (
	ErrFetch  = errors.New("asset fetch failed")
	ErrDecode = errors.New("asset decode failed")
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Fetcher downloads remote assets with a single attempt and a short fixed
// timeout, caching raw bytes by URL for the session.
type Fetcher struct {
	client *http.Client
	cache  Cache
	proxy  string // optional CORS-bypass prefix
}

// NewFetcher builds a fetcher. cache may be nil to disable caching.
func NewFetcher(cache Cache, proxyPrefix string) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: config.FetchTimeout},
		cache:  cache,
		proxy:  proxyPrefix,
	}
}

// Bytes fetches raw bytes from url. One attempt, no retry; any transport or
// non-200 outcome wraps ErrFetch.
func (f *Fetcher) Bytes(ctx context.Context, url string) ([]byte, error) {
	cacheKey := types.GenerateID(url)
	if f.cache != nil {
		if b, ok := f.cache.Get(ctx, cacheKey); ok {
			return b, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.proxy+url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d for %s", ErrFetch, resp.StatusCode, url)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	if f.cache != nil {
		f.cache.Set(ctx, cacheKey, b, config.AssetCacheTTL)
	}
	return b, nil
}

// Image fetches url, decodes it and resizes to exactly width x height.
func (f *Fetcher) Image(ctx context.Context, url string, width, height int) (*image.NRGBA, error) {
	b, err := f.Bytes(ctx, url)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return imaging.Resize(img, width, height, imaging.Lanczos), nil
}

// IsExpected reports whether err is one of the failure modes that get a
// fallback substitution rather than aborting generation.
func IsExpected(err error) bool {
	return errors.Is(err, ErrFetch) || errors.Is(err, ErrDecode)
}
