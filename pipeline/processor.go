package pipeline

import (
	"context"
	"fmt"
	"image"
	"log"
	"path/filepath"

	"reelsmith/assets"
	"reelsmith/config"
	"reelsmith/jobs"
	"reelsmith/render"
	"reelsmith/storage"
	"reelsmith/types"
	"reelsmith/video"
)

// Processor runs render requests end to end: fetch assets, generate frames,
// encode, and optionally push artifacts to S3 and YouTube.
type Processor struct {
	fetcher   *assets.Fetcher
	artifacts *storage.ArtifactStore // nil disables upload
	uploader  *video.Uploader        // nil disables publishing
	outputDir string

	// Bounds simultaneous frame generation; encoding is memory-heavy.
	sem chan struct{}
}

// NewProcessor wires a processor. artifacts and uploader may be nil.
func NewProcessor(fetcher *assets.Fetcher, artifacts *storage.ArtifactStore, uploader *video.Uploader, outputDir string) *Processor {
	if outputDir == "" {
		outputDir = config.OutputDir
	}
	return &Processor{
		fetcher:   fetcher,
		artifacts: artifacts,
		uploader:  uploader,
		outputDir: outputDir,
		sem:       make(chan struct{}, config.MaxConcurrentRenders),
	}
}

// buildGenerator fetches the request's remote assets and constructs the
// frame generator. Fetch and decode failures degrade to the solid fallback
// background; anything unexpected propagates.
func (p *Processor) buildGenerator(ctx context.Context, req types.RenderRequest, report func(string)) (*render.Generator, error) {
	req = render.ApplyDefaults(req)

	var background *image.NRGBA
	if req.Background == render.BackgroundImage && req.BackgroundURL != "" {
		img, err := p.fetcher.Image(ctx, req.BackgroundURL, req.Width, req.Height)
		switch {
		case err == nil:
			background = img
		case assets.IsExpected(err):
			report(fmt.Sprintf("background unavailable, using fallback: %v", err))
		default:
			return nil, err
		}
	}

	var logo *image.NRGBA
	if logoURL := config.LogoURL(); logoURL != "" {
		img, err := p.fetcher.Image(ctx, logoURL, 200, 64)
		switch {
		case err == nil:
			logo = img
		case assets.IsExpected(err):
			report(fmt.Sprintf("logo unavailable, using drawn fallback: %v", err))
		default:
			return nil, err
		}
	}

	return render.NewGenerator(req, background, logo)
}

// RenderImage produces the single poster frame for a request, synchronously.
func (p *Processor) RenderImage(ctx context.Context, req types.RenderRequest) (*image.NRGBA, error) {
	gen, err := p.buildGenerator(ctx, req, func(msg string) {
		log.Printf("⚠️  %s", msg)
	})
	if err != nil {
		return nil, err
	}
	return gen.Poster()
}

// ProcessJob runs the full video pipeline for a queued job, driving its
// state machine. It blocks until the job completes or fails.
func (p *Processor) ProcessJob(ctx context.Context, job *jobs.Job) {
	p.sem <- struct{}{}
	defer func() { <-p.sem }()

	req := job.Request()
	log.Printf("🎬 Job %s: rendering %q", job.ID(), req.Text)

	job.SetState(jobs.StateFetching)
	gen, err := p.buildGenerator(ctx, req, job.AddLog)
	if err != nil {
		job.SetError(fmt.Errorf("failed to prepare render: %w", err))
		return
	}

	job.SetState(jobs.StateRendering)
	outputPath := filepath.Join(p.outputDir, job.ID()+".mp4")

	err = video.EncodeSequence(gen, gen.Request().FPS, outputPath, func(i, total int) {
		job.SetProgress(i+1, total)
		if i+1 == total {
			job.SetState(jobs.StateEncoding)
		}
	})
	if err != nil {
		job.SetError(fmt.Errorf("failed to encode video: %w", err))
		return
	}
	job.SetOutputPath(outputPath)

	// The full-text hold frame doubles as a poster image next to the video.
	posterPath := filepath.Join(p.outputDir, job.ID()+".png")
	if poster, err := gen.Poster(); err != nil {
		job.AddLog(fmt.Sprintf("poster render failed: %v", err))
		posterPath = ""
	} else if err := video.WritePNG(posterPath, poster); err != nil {
		job.AddLog(fmt.Sprintf("poster write failed: %v", err))
		posterPath = ""
	}

	if p.artifacts != nil || p.uploader != nil {
		job.SetState(jobs.StateUploading)
	}

	if p.artifacts != nil {
		key, err := p.artifacts.UploadArtifact(ctx, job.ID(), outputPath)
		if err != nil {
			job.SetError(fmt.Errorf("failed to upload artifact: %w", err))
			return
		}
		job.SetArtifactKey(key)

		manifest := map[string]any{
			"request":  gen.Request(),
			"artifact": key,
			"frames":   gen.FrameCount(),
		}
		if posterPath != "" {
			posterKey, err := p.artifacts.UploadArtifact(ctx, job.ID(), posterPath)
			if err != nil {
				job.AddLog(fmt.Sprintf("poster upload failed: %v", err))
			} else {
				manifest["poster"] = posterKey
			}
		}
		if _, err := p.artifacts.UploadManifest(ctx, job.ID(), manifest); err != nil {
			job.AddLog(fmt.Sprintf("manifest upload failed: %v", err))
		}
	}

	if p.uploader != nil {
		md := video.GenerateMetadata(req, nil)
		videoID, err := p.uploader.UploadVideo(outputPath, md)
		if err != nil {
			job.SetError(fmt.Errorf("failed to publish video: %w", err))
			return
		}
		job.SetVideoID(videoID)
	}

	job.SetState(jobs.StateComplete)
	log.Printf("✅ Job %s complete: %s", job.ID(), outputPath)
}
