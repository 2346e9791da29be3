package services

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// InfrastructureChecker pings the optional collaborators at startup. Results
// are advisory: a dead renderer or cache degrades output, never blocks it.
type InfrastructureChecker struct {
	RendererURL string
	OllamaURL   string
	Redis       *redis.Client
	Client      *http.Client
}

func NewInfrastructureChecker(rendererURL, ollamaURL string, redisClient *redis.Client) *InfrastructureChecker {
	return &InfrastructureChecker{
		RendererURL: rendererURL,
		OllamaURL:   ollamaURL,
		Redis:       redisClient,
		Client:      &http.Client{Timeout: 3 * time.Second},
	}
}

// Verify reports reachability of each configured collaborator. Unconfigured
// collaborators are omitted from the result.
func (c *InfrastructureChecker) Verify(ctx context.Context) map[string]bool {
	result := make(map[string]bool)

	if c.RendererURL != "" {
		result["renderer"] = c.ping(ctx, c.RendererURL)
	}
	if c.OllamaURL != "" {
		result["ollama"] = c.ping(ctx, c.OllamaURL)
	}
	if c.Redis != nil {
		result["redis"] = c.Redis.Ping(ctx).Err() == nil
	}
	return result
}

func (c *InfrastructureChecker) ping(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode < 500
}
