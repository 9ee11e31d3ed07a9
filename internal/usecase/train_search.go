package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/trip-microservice/internal/domain"
	"github.com/trip-microservice/internal/domain/repository"
	"github.com/trip-microservice/internal/pkg/utils"
	"go.uber.org/zap"
)

const (
	// maxTrainOptions caps how many trains are formatted for display.
	maxTrainOptions = 10

	trainRating = 4.5
)

var trainFeatures = []string{"Reserved Seating", "Onboard Catering", "AC Coaches"}

// TrainSearchUseCase orchestrates the two train providers: the primary is
// tried once, and any failure triggers a single attempt against the
// fallback. No backoff, no further retries.
type TrainSearchUseCase struct {
	primary  repository.TrainProvider
	fallback repository.TrainProvider
	logger   *zap.Logger
}

// NewTrainSearchUseCase - creates a new TrainSearchUseCase
func NewTrainSearchUseCase(
	primary repository.TrainProvider,
	fallback repository.TrainProvider,
	logger *zap.Logger,
) *TrainSearchUseCase {
	return &TrainSearchUseCase{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// toProviderDate converts YYYY-MM-DD to the DD-MM-YYYY order both providers
// expect.
func toProviderDate(date string) string {
	parts := strings.Split(date, "-")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "-")
}

// Search queries trains between two station codes on a YYYY-MM-DD date.
// Exactly one provider answers a successful search; the fallback is only
// invoked after the primary fails. Both failing returns the last error.
func (uc *TrainSearchUseCase) Search(
	ctx context.Context,
	originCode, destCode, date string,
) (*domain.TrainSearchResult, error) {
	providerDate := toProviderDate(date)

	uc.logger.Info("Searching trains",
		zap.String("src", originCode),
		zap.String("dst", destCode),
		zap.String("date", providerDate))

	trains, err := uc.primary.Search(ctx, originCode, destCode, providerDate)
	if err == nil {
		uc.logger.Info("Primary train provider answered",
			zap.String("provider", uc.primary.Name()),
			zap.Int("train_count", len(trains)))
		return &domain.TrainSearchResult{
			Trains: trains,
			Source: uc.primary.Name(),
		}, nil
	}

	uc.logger.Warn("Primary train provider failed, trying fallback",
		zap.String("provider", uc.primary.Name()),
		zap.Error(err))

	trains, err = uc.fallback.Search(ctx, originCode, destCode, providerDate)
	if err != nil {
		uc.logger.Error("Fallback train provider failed",
			zap.String("provider", uc.fallback.Name()),
			zap.Error(err))
		return nil, fmt.Errorf("all train providers failed: %w", err)
	}

	uc.logger.Info("Fallback train provider answered",
		zap.String("provider", uc.fallback.Name()),
		zap.Int("train_count", len(trains)))

	return &domain.TrainSearchResult{
		Trains:   trains,
		Source:   uc.fallback.Name(),
		Fallback: true,
	}, nil
}

// Options runs a search and formats it for display. The returned list is
// never empty: unresolved stations, provider failures and empty routes all
// degrade to a single placeholder option. The found flag reports whether
// real train data is present.
func (uc *TrainSearchUseCase) Options(
	ctx context.Context,
	origin, destination string,
	originCode, destCode string,
	date string,
) (options []domain.TransportOption, found bool) {
	if originCode == "" || destCode == "" {
		missing := make([]string, 0, 2)
		if originCode == "" {
			missing = append(missing, origin)
		}
		if destCode == "" {
			missing = append(missing, destination)
		}

		uc.logger.Info("Skipping train search, unresolved station codes",
			zap.Strings("cities", missing))

		return []domain.TransportOption{{
			Service:  fmt.Sprintf("No railway station found for: %s", strings.Join(missing, ", ")),
			Price:    "---",
			Duration: "---",
			Features: []string{"Try major cities like Mumbai, Delhi, Bangalore"},
			Eco:      true,
		}}, false
	}

	result, err := uc.Search(ctx, originCode, destCode, date)
	if err != nil || len(result.Trains) == 0 {
		return []domain.TransportOption{{
			Service:  "No trains found for this route",
			Price:    "---",
			Duration: "---",
			Features: []string{"Try different dates", "Check route availability"},
			Eco:      true,
		}}, false
	}

	return formatTrainOptions(result.Trains), true
}

// formatTrainOptions converts up to maxTrainOptions normalized records into
// the display shape. The first entry is flagged popular, all entries eco.
func formatTrainOptions(trains []domain.TrainRecord) []domain.TransportOption {
	if len(trains) > maxTrainOptions {
		trains = trains[:maxTrainOptions]
	}

	options := make([]domain.TransportOption, 0, len(trains))
	for i, train := range trains {
		options = append(options, domain.TransportOption{
			Service:       train.Name,
			TrainNumber:   train.Number,
			Price:         utils.LowestFare(train.Fare, train.Availability),
			Duration:      utils.FormatDuration(train.DurationMinutes),
			Rating:        trainRating,
			Features:      trainFeatures,
			Availability:  train.Availability,
			DepartureTime: train.DepartureTime,
			ArrivalTime:   train.ArrivalTime,
			Distance:      train.Distance,
			Popular:       i == 0,
			Eco:           true,
		})
	}
	return options
}
