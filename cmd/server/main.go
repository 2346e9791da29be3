package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"viralengine-backend/internal/config"
	"viralengine-backend/internal/generator"
	"viralengine-backend/internal/handlers"
	"viralengine-backend/internal/logstream"
	"viralengine-backend/internal/orchestrator"
	"viralengine-backend/internal/router"
	"viralengine-backend/internal/script"
	"viralengine-backend/internal/services"
	"viralengine-backend/internal/store"
	"viralengine-backend/internal/trends"
	"viralengine-backend/internal/websocket"
)

func main() {
	log.Println("🚀 Starting Viral Engine Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Prepare Workspace ────
	for _, dir := range []string{cfg.AssetsDir(), cfg.RenderDir(), cfg.TrendsDir(), cfg.ReviewDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("✗ Workspace setup failed: %v", err)
		}
	}
	cleanupOldFiles(cfg.AssetsDir(), cfg.RenderDir())
	log.Println("✓ Workspace ready")

	// ──── Step 3: Connect Redis (optional) ────
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠ Invalid REDIS_URL, continuing without cache: %v", err)
		} else {
			redisClient = redis.NewClient(opts)
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			if err := redisClient.Ping(ctx).Err(); err != nil {
				log.Printf("⚠ Redis unreachable, continuing without cache: %v", err)
				redisClient = nil
			} else {
				log.Println("✓ Redis connected")
			}
			cancel()
		}
	}

	// ──── Step 4: Initialize Generator Tiers ────
	ctx := context.Background()
	var tiers []generator.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := generator.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("⚠ Gemini client initialization failed: %v", err)
		} else {
			defer gemini.Close()
			tiers = append(tiers, gemini)
			log.Println("✓ Gemini generator ready")
		}
	}
	if cfg.OllamaBaseURL != "" {
		tiers = append(tiers, generator.NewOllamaGenerator(cfg.OllamaBaseURL, cfg.OllamaModel))
		log.Println("✓ Ollama generator ready")
	}
	if len(tiers) == 0 {
		log.Println("⚠ No remote generators configured, templates only")
	}

	// ──── Step 5: Build the Pipeline ────
	jobStore := store.NewJobStore(cfg.WorkspaceDir)
	jobStore.Load()

	broadcaster := logstream.NewBroadcaster()
	engine := script.NewEngine(tiers, script.NewComposer(), cfg.ScriptDurationSeconds)
	engine.Logf = broadcaster.Logf

	trendCollector := trends.NewFileCollector(cfg.TrendsDir(), redisClient)
	infraChecker := services.NewInfrastructureChecker(cfg.RendererURL, cfg.OllamaBaseURL, redisClient)
	analyzer := services.NewProfitAnalyzer(cfg.ReviewDir())
	social := services.NewSocialService(cfg.StateSecret, nil, nil)

	var media services.MediaForge
	if cfg.RendererURL != "" {
		media = services.NewRenderClient(cfg.RendererURL)
	}

	orch := &orchestrator.Orchestrator{
		Store:        jobStore,
		Engine:       engine,
		Trends:       trendCollector,
		Infra:        infraChecker,
		Media:        media,
		Monetization: analyzer,
		Broadcaster:  broadcaster,
		AssetsDir:    cfg.AssetsDir(),
		RenderDir:    cfg.RenderDir(),
	}

	// ──── Step 6: Handlers & Router ────
	jobHandler := handlers.NewJobHandler(orch, jobStore, cfg.RenderDir())
	socialHandler := handlers.NewSocialHandler(social, jobStore, cfg.SocialRedirectURI)
	wsHub := websocket.NewHub(broadcaster)
	log.Println("✓ WebSocket hub started")

	r := router.New(jobHandler, socialHandler, wsHub, cfg.FrontendURL, cfg.GenerateRateLimit)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		jobStore.Save()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Viral Engine Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/v1/ws/logs", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}

// cleanupOldFiles removes working files older than 24 hours so a long-lived
// process does not accumulate stale assets.
func cleanupOldFiles(dirs ...string) {
	cutoff := time.Now().Add(-24 * time.Hour)
	removed := 0
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if info.ModTime().Before(cutoff) {
				if err := os.Remove(filepath.Join(dir, entry.Name())); err == nil {
					removed++
				}
			}
		}
	}
	if removed > 0 {
		log.Printf("Cleaned up %d stale workspace files", removed)
	}
}
