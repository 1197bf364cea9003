package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sitelog/sitelog-api/pkg/jobs"
)

// BlobCleanup deletes orphaned upload files in the background. A
// project cascade removes records synchronously; the files they pointed
// at are cleaned up here so the delete request never waits on disk.
type BlobCleanup struct {
	queue  *jobs.Queue
	logger *zap.Logger
}

// NewBlobCleanup constructs the cleanup worker pool.
func NewBlobCleanup(blobs blobDeleter, logger *zap.Logger) *BlobCleanup {
	if logger == nil {
		logger = zap.NewNop()
	}
	cleanup := &BlobCleanup{logger: logger}
	cleanup.queue = jobs.NewQueue("blob-cleanup", func(_ context.Context, job jobs.Job) error {
		locator, ok := job.Payload.(string)
		if !ok {
			return fmt.Errorf("unexpected payload %T", job.Payload)
		}
		return blobs.Delete(locator)
	}, jobs.QueueConfig{
		Workers:    2,
		MaxRetries: 3,
		RetryDelay: 2 * time.Second,
		Logger:     logger,
	})
	return cleanup
}

// Start launches the workers.
func (b *BlobCleanup) Start(ctx context.Context) {
	b.queue.Start(ctx)
}

// Stop drains the workers.
func (b *BlobCleanup) Stop() {
	b.queue.Stop()
}

// Schedule queues the locators for deletion. Failures are logged; the
// records are already gone so there is nothing to roll back.
func (b *BlobCleanup) Schedule(locators ...string) {
	if b == nil {
		return
	}
	for _, locator := range locators {
		if locator == "" {
			continue
		}
		if err := b.queue.Enqueue(jobs.Job{Type: "delete-blob", Payload: locator}); err != nil {
			b.logger.Warn("failed to queue blob cleanup", zap.String("locator", locator), zap.Error(err))
		}
	}
}
