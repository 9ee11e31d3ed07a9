package usecase

import (
	"context"

	"github.com/trip-microservice/internal/domain"
	"github.com/trip-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

// TripArchiveUseCase persists trip.planned events consumed by the worker.
type TripArchiveUseCase struct {
	tripRepo repository.TripRepository
	logger   *zap.Logger
}

// NewTripArchiveUseCase - creates a new TripArchiveUseCase
func NewTripArchiveUseCase(tripRepo repository.TripRepository, logger *zap.Logger) *TripArchiveUseCase {
	return &TripArchiveUseCase{
		tripRepo: tripRepo,
		logger:   logger,
	}
}

// ArchiveEvent stores one planned trip.
func (uc *TripArchiveUseCase) ArchiveEvent(ctx context.Context, event *domain.TripPlannedEvent) error {
	record := &domain.TripRecord{
		ID:               event.TripID,
		Origin:           event.Origin,
		Destination:      event.Destination,
		OriginCode:       event.OriginCode,
		DestinationCode:  event.DestinationCode,
		TravelDate:       event.TravelDate,
		TrainOptionCount: event.TrainOptionCount,
		TopService:       event.TopService,
		TopPrice:         event.TopPrice,
		TopFeatures:      event.TopFeatures,
		CreatedAt:        event.PlannedAt,
	}

	if err := uc.tripRepo.SaveTrip(ctx, record); err != nil {
		uc.logger.Error("Failed to archive trip",
			zap.String("trip_id", event.TripID.String()),
			zap.Error(err))
		return err
	}

	uc.logger.Debug("Trip archived",
		zap.String("trip_id", event.TripID.String()))
	return nil
}
