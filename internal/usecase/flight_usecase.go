package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/trip-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

// FlightUseCase proxies the external flight board provider with a short
// Redis cache in front of it.
type FlightUseCase struct {
	flightRepo repository.FlightRepository
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	cacheTTL   time.Duration
}

// NewFlightUseCase - creates a new FlightUseCase
func NewFlightUseCase(
	flightRepo repository.FlightRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *FlightUseCase {
	return &FlightUseCase{
		flightRepo: flightRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

// GetAirportFlights returns the provider payload for an airport, cached
// under flights:<code>. Cache failures are non-fatal on both paths.
func (uc *FlightUseCase) GetAirportFlights(ctx context.Context, airportCode string) (json.RawMessage, error) {
	code := strings.ToUpper(strings.TrimSpace(airportCode))
	cacheKey := "flights:" + code

	if cached, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && cached != nil {
		uc.logger.Debug("Flight board served from cache",
			zap.String("airport_code", code))
		return json.RawMessage(cached), nil
	}

	raw, err := uc.flightRepo.GetAirportFlights(ctx, code)
	if err != nil {
		uc.logger.Error("Failed to fetch flight board",
			zap.String("airport_code", code),
			zap.Error(err))
		return nil, err
	}

	if err := uc.cacheRepo.Set(ctx, cacheKey, raw, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache flight board",
			zap.String("airport_code", code),
			zap.Error(err))
	}

	return raw, nil
}
