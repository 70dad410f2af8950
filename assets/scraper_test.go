package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

const scrapePage = `<!DOCTYPE html>
<html><body>
  <img src="/images/hero.jpg">
  <img src="//cdn.example.com/banner.png">
  <img src="https://other.example.org/abs.webp">
  <img src="relative/photo.jpeg">
  <img src="data:image/gif;base64,R0lGODlhAQABAAAAACw=">
  <img src="/images/hero.jpg">
  <img alt="no source">
</body></html>`

func TestPageImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(scrapePage))
	}))
	defer srv.Close()

	f := NewFetcher(nil, "")
	urls, err := f.PageImages(context.Background(), srv.URL+"/gallery/index.html")
	if err != nil {
		t.Fatalf("PageImages: %v", err)
	}

	want := []string{
		srv.URL + "/images/hero.jpg",
		"https://cdn.example.com/banner.png",
		"https://other.example.org/abs.webp",
		srv.URL + "/gallery/relative/photo.jpeg",
	}
	if !reflect.DeepEqual(urls, want) {
		t.Fatalf("urls = %v\nwant   %v", urls, want)
	}
}

func TestPageImagesFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	f := NewFetcher(nil, "")
	if _, err := f.PageImages(context.Background(), srv.URL+"/page"); !IsExpected(err) {
		t.Fatalf("fetch failure should be expected, got %v", err)
	}
}
