package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamTripPlanned = "stream:trip:planned"
)

// TripPlannedEvent is published after every successful plan and consumed by
// the archiver worker.
type TripPlannedEvent struct {
	TripID           uuid.UUID `json:"trip_id"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	OriginCode       *string   `json:"origin_code,omitempty"`
	DestinationCode  *string   `json:"destination_code,omitempty"`
	TravelDate       string    `json:"travel_date"`
	TrainOptionCount int       `json:"train_option_count"`
	TopService       string    `json:"top_service,omitempty"`
	TopPrice         string    `json:"top_price,omitempty"`
	TopFeatures      []string  `json:"top_features,omitempty"`
	PlannedAt        time.Time `json:"planned_at"`
}

// TripRecord - an archived trip as stored in Postgres.
type TripRecord struct {
	ID               uuid.UUID `json:"id" db:"id"`
	Origin           string    `json:"origin" db:"origin"`
	Destination      string    `json:"destination" db:"destination"`
	OriginCode       *string   `json:"origin_code,omitempty" db:"origin_code"`
	DestinationCode  *string   `json:"destination_code,omitempty" db:"destination_code"`
	TravelDate       string    `json:"travel_date" db:"travel_date"`
	TrainOptionCount int       `json:"train_option_count" db:"train_option_count"`
	TopService       string    `json:"top_service,omitempty" db:"top_service"`
	TopPrice         string    `json:"top_price,omitempty" db:"top_price"`
	TopFeatures      []string  `json:"top_features,omitempty" db:"top_features"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// StreamMessage - a raw message read from a Redis Stream.
type StreamMessage struct {
	ID   string
	Data string
}
