package repository

import (
	"context"

	"github.com/trip-microservice/internal/domain"
)

// TrainProvider - adapter over one external train search API. Each
// implementation owns its provider's payload shape and returns normalized
// records; the date is already in the provider's DD-MM-YYYY order.
type TrainProvider interface {
	// Name identifies the provider in logs and result source tags.
	Name() string

	// Search returns the trains running between two station codes on a date.
	Search(ctx context.Context, src, dst, date string) ([]domain.TrainRecord, error)
}
