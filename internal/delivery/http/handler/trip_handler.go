package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/trip-microservice/internal/pkg/errors"
	"github.com/trip-microservice/internal/pkg/utils"
	"github.com/trip-microservice/internal/pkg/validator"
	"github.com/trip-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// TripPlanner - the planning operations the handler exposes over HTTP.
// Satisfied by usecase.TripUseCase.
type TripPlanner interface {
	PlanTrip(ctx context.Context, req dto.TripPlanRequest) (*dto.TripPlanResponse, error)
	RecentTrips(ctx context.Context, req dto.RecentTripsRequest) (*dto.RecentTripsResponse, error)
}

// TripHandler - handler for trip planning and history
type TripHandler struct {
	tripUC TripPlanner
	logger *zap.Logger
}

// NewTripHandler - creates a new TripHandler
func NewTripHandler(tripUC TripPlanner, logger *zap.Logger) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
		logger: logger,
	}
}

// PlanTrip godoc
// @Summary Plan a trip between two cities
// @Description Resolves station codes, searches trains with provider fallback and returns transport options for all modes
// @Tags trips
// @Accept json
// @Produce json
// @Param request body dto.TripPlanRequest true "Trip parameters"
// @Success 200 {object} dto.TripPlanResponse
// @Failure 400 {object} dto.TripPlanError
// @Router /api/trips/plan [post]
func (h *TripHandler) PlanTrip(c *fiber.Ctx) error {
	var req dto.TripPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.TripPlanError{
			Success: false,
			Error:   errors.ErrMissingTripFields.Message,
		})
	}

	// The legacy contract fixes this exact message for any missing field.
	if !req.HasRequiredFields() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.TripPlanError{
			Success: false,
			Error:   errors.ErrMissingTripFields.Message,
		})
	}

	result, err := h.tripUC.PlanTrip(c.Context(), req)
	if err != nil {
		h.logger.Error("Trip planning failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.TripPlanError{
			Success: false,
			Error:   "Failed to plan trip. Please try again.",
		})
	}

	return c.JSON(result)
}

// RecentTrips godoc
// @Summary List recently planned trips
// @Tags trips
// @Produce json
// @Param limit query int false "Maximum number of trips" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.SuccessResponse{data=dto.RecentTripsResponse}
// @Router /api/trips/recent [get]
func (h *TripHandler) RecentTrips(c *fiber.Ctx) error {
	req := dto.RecentTripsRequest{
		Limit: c.QueryInt("limit"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.tripUC.RecentTrips(c.Context(), req)
	if err != nil {
		return utils.SendError(c, errors.ErrDatabaseError)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
