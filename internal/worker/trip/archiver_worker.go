package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/trip-microservice/internal/domain"
	"github.com/trip-microservice/internal/domain/repository"
	"github.com/trip-microservice/internal/usecase"
	"github.com/trip-microservice/internal/worker"
	"go.uber.org/zap"
)

const (
	maxBatchSize    = 20
	emptyQueueSleep = 100 * time.Millisecond
)

// ArchiverWorker consumes trip.planned events and persists them to Postgres.
type ArchiverWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	archiveUC    *usecase.TripArchiveUseCase
	consumerName string
}

// NewArchiverWorker - creates a new ArchiverWorker
func NewArchiverWorker(
	streamRepo repository.StreamRepository,
	archiveUC *usecase.TripArchiveUseCase,
	consumerGroup string,
	logger *zap.Logger,
) *ArchiverWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &ArchiverWorker{
		BaseWorker:   worker.NewBaseWorker("trip-archiver", consumerGroup, logger),
		streamRepo:   streamRepo,
		archiveUC:    archiveUC,
		consumerName: consumerName,
	}
}

// Start runs the consume loop until stopped.
func (w *ArchiverWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ArchiverWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamTripPlanned, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch reads and archives one batch of events. Returns how many
// messages were processed.
func (w *ArchiverWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamTripPlanned,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	processed := 0
	for _, msg := range messages {
		var event domain.TripPlannedEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK malformed messages so they do not stay pending forever
			_ = w.streamRepo.AckMessage(ctx, domain.StreamTripPlanned, w.ConsumerGroup(), msg.ID)
			continue
		}

		if err := w.archiveUC.ArchiveEvent(ctx, &event); err != nil {
			// left unacked for redelivery
			logger.Error("Failed to archive trip, leaving message pending",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			continue
		}

		if err := w.streamRepo.AckMessage(ctx, domain.StreamTripPlanned, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Warn("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			continue
		}

		processed++
	}

	return processed, nil
}
