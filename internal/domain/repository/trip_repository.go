package repository

import (
	"context"

	"github.com/trip-microservice/internal/domain"
)

// TripRepository - persistence for archived trips.
type TripRepository interface {
	// SaveTrip inserts an archived trip row.
	SaveTrip(ctx context.Context, trip *domain.TripRecord) error

	// RecentTrips returns the newest archived trips, newest first.
	RecentTrips(ctx context.Context, limit int) ([]domain.TripRecord, error)
}
