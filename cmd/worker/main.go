package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reelsmith/assets"
	"reelsmith/config"
	"reelsmith/jobs"
	"reelsmith/kafka"
	"reelsmith/pipeline"
	"reelsmith/storage"
	"reelsmith/video"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	log.Println("🤖 Render Worker Starting...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cache := assets.NewCacheFromEnv()
	fetcher := assets.NewFetcher(cache, config.CORSProxyPrefix())

	artifacts, err := storage.NewFromEnv(ctx)
	if err != nil {
		log.Printf("⚠️  S3 unavailable: %v (artifact upload disabled)", err)
	}

	var uploader *video.Uploader
	if saFile := os.Getenv("YOUTUBE_SERVICE_ACCOUNT_FILE"); saFile != "" {
		uploader, err = video.NewUploader(saFile)
		if err != nil {
			log.Printf("⚠️  YouTube uploader unavailable: %v (publishing disabled)", err)
			uploader = nil
		} else {
			log.Println("✅ YouTube client initialized")
		}
	}

	store := jobs.NewStore()
	processor := pipeline.NewProcessor(fetcher, artifacts, uploader, config.OutputDir)

	consumer, err := kafka.NewRenderConsumer(kafka.ConsumerConfig{
		Brokers: kafka.GetKafkaBrokers(),
		Topic:   kafka.GetKafkaTopic(),
		GroupID: kafka.GetKafkaGroupID(),
	}, store, processor)
	if err != nil {
		log.Fatalf("❌ Failed to create Kafka consumer: %v", err)
	}

	if err := consumer.Start(ctx); err != nil {
		log.Fatalf("❌ Failed to start Kafka consumer: %v", err)
	}

	// Wait for interrupt signal
	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigterm:
		log.Println("Received termination signal")
	case <-ctx.Done():
		log.Println("Context canceled")
	}

	cancel()

	// Give some time for in-flight renders to complete
	time.Sleep(2 * time.Second)

	if err := consumer.Close(); err != nil {
		log.Printf("Error closing consumer: %v", err)
	}
}
