package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/trip-microservice/internal/domain"
	"github.com/trip-microservice/internal/domain/repository"
	"github.com/trip-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// Static option lists for modes without a real integration yet. Returned as
// fresh copies so callers cannot mutate shared state.
var staticCarOptions = []domain.TransportOption{
	{
		Service:  "Ola Premium",
		Price:    "₹1,200",
		Duration: "16h 30m",
		Rating:   4.8,
		Features: []string{"AC", "Professional Driver", "GPS Tracking"},
		Savings:  "15% off",
	},
	{
		Service:  "Uber Black",
		Price:    "₹1,500",
		Duration: "16h 15m",
		Rating:   4.9,
		Features: []string{"Luxury Vehicle", "Premium Service", "Wi-Fi Available"},
		Popular:  true,
	},
}

var staticBusOptions = []domain.TransportOption{
	{
		Service:   "Volvo Sleeper",
		Price:     "₹800",
		Duration:  "18h 30m",
		Rating:    4.2,
		Features:  []string{"Sleeper Berths", "AC", "Entertainment"},
		BestValue: true,
	},
	{
		Service:  "Premium Coach",
		Price:    "₹1,200",
		Duration: "17h 50m",
		Rating:   4.4,
		Features: []string{"Reclining Seats", "Entertainment System", "Refreshments"},
	},
}

var staticFlightOptions = []domain.TransportOption{
	{
		Service:  "IndiGo Economy",
		Price:    "₹4,500",
		Duration: "2h 15m",
		Rating:   4.6,
		Features: []string{"Fastest Option", "In-flight Service"},
		Fastest:  true,
	},
	{
		Service:  "Air India Business",
		Price:    "₹12,000",
		Duration: "2h 15m",
		Rating:   4.9,
		Features: []string{"Premium Lounge Access", "Priority Check-in", "Gourmet Meals"},
		Luxury:   true,
	},
}

func cloneOptions(options []domain.TransportOption) []domain.TransportOption {
	out := make([]domain.TransportOption, len(options))
	copy(out, options)
	for i := range out {
		if out[i].Features != nil {
			features := make([]string, len(out[i].Features))
			copy(features, out[i].Features)
			out[i].Features = features
		}
	}
	return out
}

// TripUseCase orchestrates trip planning: concurrent station resolution,
// train search with provider fallback, static options for the other modes,
// and a fire-and-forget archive event.
type TripUseCase struct {
	resolver    *StationResolver
	trainSearch *TrainSearchUseCase
	tripRepo    repository.TripRepository
	streamRepo  repository.StreamRepository
	logger      *zap.Logger
}

// NewTripUseCase - creates a new TripUseCase. tripRepo and streamRepo may be
// nil when history archiving is disabled.
func NewTripUseCase(
	resolver *StationResolver,
	trainSearch *TrainSearchUseCase,
	tripRepo repository.TripRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *TripUseCase {
	return &TripUseCase{
		resolver:    resolver,
		trainSearch: trainSearch,
		tripRepo:    tripRepo,
		streamRepo:  streamRepo,
		logger:      logger,
	}
}

// PlanTrip resolves both endpoints, searches trains and assembles the full
// transport option bundle. Resolver and provider failures degrade into
// placeholder options; only unexpected internal failures surface as errors.
func (uc *TripUseCase) PlanTrip(ctx context.Context, req dto.TripPlanRequest) (*dto.TripPlanResponse, error) {
	uc.logger.Info("Planning trip",
		zap.String("origin", req.Origin),
		zap.String("destination", req.Destination),
		zap.String("start_date", req.StartDate))

	// Resolve origin and destination concurrently. The join is
	// all-or-nothing per side: a failed resolution marks that side
	// unresolved instead of failing the plan.
	type resolution struct {
		index int
		code  string
		ok    bool
	}

	resultsChan := make(chan resolution, 2)
	for i, city := range []string{req.Origin, req.Destination} {
		go func(idx int, name string) {
			code, ok := uc.resolver.Resolve(ctx, name)
			resultsChan <- resolution{index: idx, code: code, ok: ok}
		}(i, city)
	}

	var codes [2]string
	for i := 0; i < 2; i++ {
		res := <-resultsChan
		if res.ok {
			codes[res.index] = res.code
		}
	}
	close(resultsChan)

	originCode, destCode := codes[0], codes[1]
	uc.logger.Info("Station codes resolved",
		zap.String("origin_code", originCode),
		zap.String("dest_code", destCode))

	trainOptions, found := uc.trainSearch.Options(
		ctx,
		req.Origin, req.Destination,
		originCode, destCode,
		req.StartDate,
	)

	resp := &dto.TripPlanResponse{
		Success: true,
		TripData: dto.TripData{
			Origin:            req.Origin,
			Destination:       req.Destination,
			OriginStationCode: optionalCode(originCode),
			DestStationCode:   optionalCode(destCode),
			StartDate:         req.StartDate,
			EndDate:           req.EndDate,
			Budget:            req.Budget,
			Preferences:       req.Preferences,
		},
		TransportOptions: dto.TransportOptions{
			Train:  trainOptions,
			Car:    cloneOptions(staticCarOptions),
			Bus:    cloneOptions(staticBusOptions),
			Flight: cloneOptions(staticFlightOptions),
		},
	}

	uc.publishPlannedEvent(ctx, &req, resp, found)

	return resp, nil
}

// RecentTrips lists the newest archived trips.
func (uc *TripUseCase) RecentTrips(ctx context.Context, req dto.RecentTripsRequest) (*dto.RecentTripsResponse, error) {
	limit := req.Limit
	if limit == 0 {
		limit = 20
	}

	trips, err := uc.tripRepo.RecentTrips(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to list recent trips", zap.Error(err))
		return nil, err
	}

	return &dto.RecentTripsResponse{
		Trips: trips,
		Total: len(trips),
	}, nil
}

// publishPlannedEvent emits a trip.planned event for the archiver worker.
// Publishing is fire-and-forget: a failure is logged and never fails the plan.
func (uc *TripUseCase) publishPlannedEvent(
	ctx context.Context,
	req *dto.TripPlanRequest,
	resp *dto.TripPlanResponse,
	trainsFound bool,
) {
	if uc.streamRepo == nil {
		return
	}

	event := domain.TripPlannedEvent{
		TripID:          uuid.New(),
		Origin:          req.Origin,
		Destination:     req.Destination,
		OriginCode:      resp.TripData.OriginStationCode,
		DestinationCode: resp.TripData.DestStationCode,
		TravelDate:      req.StartDate,
		PlannedAt:       time.Now().UTC(),
	}

	if trainsFound {
		event.TrainOptionCount = len(resp.TransportOptions.Train)
		top := resp.TransportOptions.Train[0]
		event.TopService = top.Service
		event.TopPrice = top.Price
		event.TopFeatures = top.Features
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamTripPlanned, event); err != nil {
		uc.logger.Warn("Failed to publish trip planned event",
			zap.String("trip_id", event.TripID.String()),
			zap.Error(err))
		return
	}

	uc.logger.Debug("Trip planned event published",
		zap.String("trip_id", event.TripID.String()))
}

func optionalCode(code string) *string {
	if code == "" {
		return nil
	}
	return &code
}
