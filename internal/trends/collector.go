package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"viralengine-backend/internal/models"
)

const (
	cacheKey = "trends:latest"
	cacheTTL = 15 * time.Minute
)

// Collector supplies the trend snapshot consumed by script synthesis.
type Collector interface {
	Latest(ctx context.Context) (*models.TrendsSnapshot, error)
	Save(ctx context.Context, snapshot *models.TrendsSnapshot) error
}

// FileCollector reads and writes timestamped trend manifests in a directory,
// with an optional Redis read-through cache in front of the filesystem.
type FileCollector struct {
	Dir   string
	Redis *redis.Client
}

func NewFileCollector(dir string, redisClient *redis.Client) *FileCollector {
	return &FileCollector{Dir: dir, Redis: redisClient}
}

// Latest returns the cached snapshot when present, otherwise the newest
// manifest file on disk.
func (c *FileCollector) Latest(ctx context.Context) (*models.TrendsSnapshot, error) {
	if c.Redis != nil {
		if data, err := c.Redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var snapshot models.TrendsSnapshot
			if err := json.Unmarshal(data, &snapshot); err == nil {
				return &snapshot, nil
			}
		}
	}

	matches, err := filepath.Glob(filepath.Join(c.Dir, "current_trends_*.json"))
	if err != nil || len(matches) == 0 {
		return nil, fmt.Errorf("no trend manifests in %s", c.Dir)
	}
	sort.Strings(matches)
	newest := matches[len(matches)-1]

	data, err := os.ReadFile(newest)
	if err != nil {
		return nil, err
	}
	var snapshot models.TrendsSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", newest, err)
	}

	c.cache(ctx, &snapshot)
	return &snapshot, nil
}

// Save writes a timestamped manifest and refreshes the cache.
func (c *FileCollector) Save(ctx context.Context, snapshot *models.TrendsSnapshot) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	name := fmt.Sprintf("current_trends_%s.json", snapshot.GeneratedAt.UTC().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(c.Dir, name), data, 0o644); err != nil {
		return err
	}
	c.cache(ctx, snapshot)
	return nil
}

func (c *FileCollector) cache(ctx context.Context, snapshot *models.TrendsSnapshot) {
	if c.Redis == nil {
		return
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := c.Redis.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
		log.Printf("trends cache write failed: %v", err)
	}
}

// FallbackSnapshot is the built-in trend data used when no collector output
// is available. Generation must never stall on missing trends.
func FallbackSnapshot() *models.TrendsSnapshot {
	return &models.TrendsSnapshot{
		Source:      "fallback",
		GeneratedAt: time.Now().UTC(),
		Period:      "last_7_days",
		SEOKeywords: []string{
			"AILifeHacks",
			"BudgetTravel2026",
			"MicroHabits",
			"EcoMinimalism",
			"QuickFixes",
		},
		HookPatterns: []models.HookPattern{
			{
				Pattern:        "pattern_interrupt",
				Example:        "Stop scrolling. This changes everything about {topic}.",
				ConversionRate: "high",
			},
			{
				Pattern:        "negative_frame",
				Example:        "You've been doing {topic} wrong your whole life.",
				ConversionRate: "high",
			},
			{
				Pattern:        "curiosity_gap",
				Example:        "The {topic} secret nobody talks about.",
				ConversionRate: "medium",
			},
			{
				Pattern:        "question_hook",
				Example:        "What if {topic} took you five minutes a day?",
				ConversionRate: "medium",
			},
		},
	}
}
