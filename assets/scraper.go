package assets

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageImages fetches an HTML page and returns the absolute URLs of every
// <img> it references, in document order and deduplicated. Scheme-relative
// and page-relative sources are resolved against the page URL; data URIs are
// skipped.
func (f *Fetcher) PageImages(ctx context.Context, pageURL string) ([]string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid page url: %v", ErrFetch, err)
	}

	body, err := f.Bytes(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	seen := make(map[string]bool)
	var urls []string
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok || src == "" || strings.HasPrefix(src, "data:") {
			return
		}
		resolved := resolveImageURL(base, src)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		urls = append(urls, resolved)
	})
	return urls, nil
}

func resolveImageURL(base *url.URL, src string) string {
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	ref, err := url.Parse(src)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
