package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"viralengine-backend/internal/models"
)

// MediaForge renders a script timeline into a video. The orchestrator
// degrades to an empty media result when rendering fails.
type MediaForge interface {
	Render(ctx context.Context, timeline []models.TimelineEntry, captions []models.Caption) (*models.MediaResult, error)
}

// RenderClient talks to an external render service over HTTP.
type RenderClient struct {
	BaseURL string
	Client  *http.Client
}

func NewRenderClient(baseURL string) *RenderClient {
	return &RenderClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 5 * time.Minute},
	}
}

type renderRequest struct {
	Timeline []models.TimelineEntry `json:"timeline"`
	Captions []models.Caption       `json:"captions"`
}

func (r *RenderClient) Render(ctx context.Context, timeline []models.TimelineEntry, captions []models.Caption) (*models.MediaResult, error) {
	if r.BaseURL == "" {
		return nil, fmt.Errorf("render service not configured")
	}

	body, err := json.Marshal(renderRequest{Timeline: timeline, Captions: captions})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.BaseURL+"/render", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("render service: status %d", resp.StatusCode)
	}

	var result models.MediaResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}
