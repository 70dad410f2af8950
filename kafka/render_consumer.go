package kafka

import (
	"context"
	"log"

	"reelsmith/jobs"
	"reelsmith/pipeline"
	"reelsmith/types"
)

// NewRenderConsumer consumes render requests off the queue and runs them
// through the pipeline. Validation failures are marked and skipped;
// processing failures stay unmarked for retry.
func NewRenderConsumer(config ConsumerConfig, store *jobs.Store, processor *pipeline.Processor) (*Consumer, error) {
	handler := &TypedMessageHandler[types.RenderRequest]{
		Validate: func(msg *types.RenderRequest) bool {
			if msg.Status != "" && msg.Status != "success" {
				log.Printf("⚠️  Skipping message with status: %s", msg.Status)
				return false
			}
			if msg.Text == "" && msg.BackgroundURL == "" {
				log.Printf("❌ Message has neither text nor background, skipping")
				return false
			}
			if msg.Duration < 0 {
				log.Printf("❌ Message has negative duration, skipping")
				return false
			}
			return true
		},
		Process: func(ctx context.Context, msg *types.RenderRequest) error {
			job := store.Create(*msg)
			log.Printf("🎬 Processing render: UUID=%s", job.ID())

			processor.ProcessJob(ctx, job)

			if status := job.GetStatus(); status.State == jobs.StateError {
				// Failures land on the job record; requeueing a bad request
				// would just fail the same way.
				log.Printf("❌ Render %s failed: %s", job.ID(), status.Error)
				return nil
			}
			log.Printf("✅ Successfully rendered: UUID=%s", job.ID())
			return nil
		},
		AlwaysMark: true,
	}

	config.Handler = handler
	return NewConsumer(config)
}
