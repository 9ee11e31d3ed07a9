package usecase

import (
	"context"
	"fmt"

	"github.com/trip-microservice/internal/domain"
	"github.com/trip-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

const stationPromptTemplate = `What is the main railway station code for %s in India? ` +
	`Reply with only the station code (like NDLS, CSMT, MAS, SBC, etc.). ` +
	`If no major railway station exists, reply "NO_STATION".`

// StationResolver maps free-text city names to railway station codes: the
// static table first, then one best-effort generative call on a miss.
type StationResolver struct {
	generative repository.GenerativeRepository
	logger     *zap.Logger
}

// NewStationResolver - creates a new StationResolver
func NewStationResolver(generative repository.GenerativeRepository, logger *zap.Logger) *StationResolver {
	return &StationResolver{
		generative: generative,
		logger:     logger,
	}
}

// Resolve returns the station code for a city, or ok=false when none can be
// determined. It never returns an error: every failure path degrades to a
// miss so one unresolvable city cannot fail a whole trip plan.
func (r *StationResolver) Resolve(ctx context.Context, city string) (string, bool) {
	if code, ok := domain.StationCodeForCity(city); ok {
		r.logger.Debug("Station code resolved from static table",
			zap.String("city", city),
			zap.String("code", code))
		return code, true
	}

	text, err := r.generative.GenerateText(ctx, fmt.Sprintf(stationPromptTemplate, city))
	if err != nil {
		r.logger.Warn("Generative station lookup failed",
			zap.String("city", city),
			zap.Error(err))
		return "", false
	}

	if text == domain.NoStationSentinel {
		r.logger.Info("No station code found for city",
			zap.String("city", city))
		return "", false
	}

	// The model output is free text; only accept it when it has the
	// station-code shape.
	if !domain.IsValidStationCode(text) {
		r.logger.Warn("Rejecting generative output without station-code shape",
			zap.String("city", city),
			zap.String("output", text))
		return "", false
	}

	r.logger.Info("Station code resolved via generative lookup",
		zap.String("city", city),
		zap.String("code", text))
	return text, true
}
