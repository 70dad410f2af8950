package api

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reelsmith/assets"
	"reelsmith/jobs"
	"reelsmith/keywords"
	"reelsmith/pipeline"
	"reelsmith/session"

	"github.com/gin-gonic/gin"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fetcher := assets.NewFetcher(nil, "")
	return NewRouter(Deps{
		Fetcher:   fetcher,
		Search:    assets.NewSearchClient("http://127.0.0.1:1", nil),
		Sessions:  session.NewMemoryStore(),
		Extractor: &keywords.HeuristicExtractor{},
		Jobs:      jobs.NewStore(),
		Processor: pipeline.NewProcessor(fetcher, nil, nil, t.TempDir()),
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "healthy") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestRenderImageReturnsPNG(t *testing.T) {
	router := testRouter(t)

	body := `{"text":"HELLO WORLD","duration":2,"fps":12,"width":180,"height":320,"background":"gradient"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/render/image", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q", ct)
	}

	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 180 || img.Bounds().Dy() != 320 {
		t.Fatalf("image is %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRenderImageRejectsOversizedText(t *testing.T) {
	router := testRouter(t)

	payload, _ := json.Marshal(map[string]any{"text": strings.Repeat("A", 500)})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/render/image", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestRenderVideoQueuesJob(t *testing.T) {
	router := testRouter(t)

	body := `{"text":"HELLO","duration":1,"fps":4,"width":90,"height":160}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/render/video", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.ID == "" {
		t.Fatalf("response missing job id: %s", w.Body.String())
	}

	// The job is immediately pollable.
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/api/jobs/"+resp.ID, nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("poll status = %d", w2.Code)
	}
}

func TestRenderVideoRequiresContent(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/render/video", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestJobStatusNotFound(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestKeywordExtraction(t *testing.T) {
	router := testRouter(t)

	body := `{"quote":"Protect your family with smart coverage"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/keywords", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Keywords []string `json:"keywords"`
		Model    string   `json:"model"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Keywords) == 0 || resp.Model != "heuristic" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestTemplateList(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/render/templates", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Templates []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		} `json:"templates"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Templates) < 4 {
		t.Fatalf("got %d templates", len(resp.Templates))
	}
	if resp.Templates[0].Name != "bold" || resp.Templates[0].Description == "" {
		t.Fatalf("templates not sorted with descriptions: %+v", resp.Templates[0])
	}
}

func TestSessionRoundTrip(t *testing.T) {
	router := testRouter(t)

	put := httptest.NewRequest(http.MethodPut, "/api/session/s1",
		strings.NewReader(`{"query":"ocean"}`))
	put.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, put)
	if w.Code != http.StatusOK {
		t.Fatalf("put status = %d", w.Code)
	}

	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/api/session/s1", nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("get status = %d", w2.Code)
	}

	var state session.State
	if err := json.Unmarshal(w2.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.ID != "s1" || state.Query != "ocean" {
		t.Fatalf("state = %+v", state)
	}
}

func TestSessionSelect(t *testing.T) {
	router := testRouter(t)

	sel := httptest.NewRequest(http.MethodPost, "/api/session/s2/select",
		strings.NewReader(`{"img_url":"https://example.com/a.png","source_site":"example"}`))
	sel.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, sel)
	if w.Code != http.StatusOK {
		t.Fatalf("select status = %d", w.Code)
	}

	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/api/session/s2", nil))

	var state session.State
	if err := json.Unmarshal(w2.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if state.Selected == nil || state.Selected.ImgURL != "https://example.com/a.png" {
		t.Fatalf("selected = %+v", state.Selected)
	}
}

func TestTranscriptClipsFromSRT(t *testing.T) {
	router := testRouter(t)

	srt := "1\n00:00:00,000 --> 00:00:06,000\nYour family needs life insurance coverage today.\n"
	payload, _ := json.Marshal(map[string]string{
		"srt":       srt,
		"video_url": "https://youtu.be/dQw4w9WgXcQ",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/transcript/clips", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Count   int      `json:"count"`
		VideoID string   `json:"video_id"`
		Embeds  []string `json:"embeds"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count == 0 {
		t.Fatalf("expected clip suggestions: %s", w.Body.String())
	}
	if resp.VideoID != "dQw4w9WgXcQ" || len(resp.Embeds) != resp.Count {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestTranscriptClipsRequiresCues(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/transcript/clips", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}
