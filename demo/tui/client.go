package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"reelsmith/jobs"
	"reelsmith/types"
)

// RenderClient is a thin HTTP client for the render API
type RenderClient struct {
	baseURL string
	client  *http.Client
}

// NewRenderClient creates a new render API client
func NewRenderClient(baseURL string) *RenderClient {
	return &RenderClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Health checks whether the render API is reachable
func (c *RenderClient) Health() error {
	resp, err := c.client.Get(c.baseURL + "/api/health")
	if err != nil {
		return fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}
	return nil
}

// SubmitRender queues a video render and returns the job ID
func (c *RenderClient) SubmitRender(req types.RenderRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Post(c.baseURL+"/api/render/video", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to submit render: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}

	var accepted struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&accepted); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return accepted.ID, nil
}

// GetJob fetches the current status of a render job
func (c *RenderClient) GetJob(id string) (*jobs.Status, error) {
	resp, err := c.client.Get(c.baseURL + "/api/jobs/" + id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}

	var status jobs.Status
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &status, nil
}
