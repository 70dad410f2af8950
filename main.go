package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"reelsmith/api"
	"reelsmith/assets"
	"reelsmith/config"
	"reelsmith/jobs"
	"reelsmith/keywords"
	"reelsmith/pipeline"
	"reelsmith/session"
	"reelsmith/storage"
	"reelsmith/transcript"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	ctx := context.Background()

	cache := assets.NewCacheFromEnv()
	fetcher := assets.NewFetcher(cache, config.CORSProxyPrefix())
	search := assets.NewSearchClient(config.SearchBaseURL(), cache)
	sessions := session.NewStoreFromEnv()
	extractor := keywords.NewDefaultExtractor(os.Getenv("COHERE_MODEL"))

	var yt *transcript.Service
	if key := os.Getenv("YOUTUBE_API_KEY"); key != "" {
		svc, err := transcript.NewService(ctx, key)
		if err != nil {
			log.Printf("⚠️  YouTube API unavailable: %v", err)
		} else {
			yt = svc
		}
	}

	artifacts, err := storage.NewFromEnv(ctx)
	if err != nil {
		log.Printf("⚠️  S3 unavailable: %v (artifact upload disabled)", err)
	}
	if artifacts == nil {
		log.Println("S3 not configured; artifacts stay on local disk")
	}

	store := jobs.NewStore()
	processor := pipeline.NewProcessor(fetcher, artifacts, nil, config.OutputDir)

	r := api.NewRouter(api.Deps{
		Fetcher:    fetcher,
		Search:     search,
		Sessions:   sessions,
		Extractor:  extractor,
		Transcript: yt,
		Jobs:       store,
		Processor:  processor,
	})

	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/assets/search")
	log.Println("  POST /api/assets/scrape")
	log.Println("  POST /api/keywords")
	log.Println("  GET  /api/session/:id")
	log.Println("  PUT  /api/session/:id")
	log.Println("  POST /api/session/:id/select")
	log.Println("  GET  /api/render/templates")
	log.Println("  POST /api/render/image")
	log.Println("  POST /api/render/video")
	log.Println("  GET  /api/jobs")
	log.Println("  GET  /api/jobs/:id")
	log.Println("  GET  /api/jobs/:id/download")
	log.Println("  POST /api/transcript/clips")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
