package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/trip-microservice/internal/domain"
	"github.com/trip-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

type tripRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewTripRepository - creates a new trip repository
func NewTripRepository(db *DB, logger *zap.Logger) repository.TripRepository {
	return &tripRepository{
		db:     db,
		logger: logger,
	}
}

// tripRow mirrors the trips table. TopFeatures needs the pq array adapter
// for scanning text[].
type tripRow struct {
	ID               uuid.UUID      `db:"id"`
	Origin           string         `db:"origin"`
	Destination      string         `db:"destination"`
	OriginCode       *string        `db:"origin_code"`
	DestinationCode  *string        `db:"destination_code"`
	TravelDate       string         `db:"travel_date"`
	TrainOptionCount int            `db:"train_option_count"`
	TopService       string         `db:"top_service"`
	TopPrice         string         `db:"top_price"`
	TopFeatures      pq.StringArray `db:"top_features"`
	CreatedAt        time.Time      `db:"created_at"`
}

func (row *tripRow) toDomain() domain.TripRecord {
	return domain.TripRecord{
		ID:               row.ID,
		Origin:           row.Origin,
		Destination:      row.Destination,
		OriginCode:       row.OriginCode,
		DestinationCode:  row.DestinationCode,
		TravelDate:       row.TravelDate,
		TrainOptionCount: row.TrainOptionCount,
		TopService:       row.TopService,
		TopPrice:         row.TopPrice,
		TopFeatures:      row.TopFeatures,
		CreatedAt:        row.CreatedAt,
	}
}

const saveTripQuery = `
	INSERT INTO trips (
		id, origin, destination, origin_code, destination_code,
		travel_date, train_option_count, top_service, top_price,
		top_features, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (id) DO NOTHING`

// SaveTrip inserts an archived trip. Replays of the same event are no-ops.
func (r *tripRepository) SaveTrip(ctx context.Context, trip *domain.TripRecord) error {
	_, err := r.db.ExecContext(ctx, saveTripQuery,
		trip.ID,
		trip.Origin,
		trip.Destination,
		trip.OriginCode,
		trip.DestinationCode,
		trip.TravelDate,
		trip.TrainOptionCount,
		trip.TopService,
		trip.TopPrice,
		pq.Array(trip.TopFeatures),
		trip.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save trip",
			zap.String("trip_id", trip.ID.String()),
			zap.Error(err))
		return fmt.Errorf("save trip: %w", err)
	}

	return nil
}

const recentTripsQuery = `
	SELECT id, origin, destination, origin_code, destination_code,
	       travel_date, train_option_count, top_service, top_price,
	       top_features, created_at
	FROM trips
	ORDER BY created_at DESC
	LIMIT $1`

// RecentTrips returns the newest archived trips.
func (r *tripRepository) RecentTrips(ctx context.Context, limit int) ([]domain.TripRecord, error) {
	rows, err := r.db.QueryxContext(ctx, recentTripsQuery, limit)
	if err != nil {
		r.logger.Error("Failed to query recent trips", zap.Error(err))
		return nil, fmt.Errorf("recent trips: %w", err)
	}
	defer rows.Close()

	trips := make([]domain.TripRecord, 0, limit)
	for rows.Next() {
		var row tripRow
		if err := rows.StructScan(&row); err != nil {
			r.logger.Error("Failed to scan trip row", zap.Error(err))
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		trips = append(trips, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent trips rows: %w", err)
	}

	return trips, nil
}
