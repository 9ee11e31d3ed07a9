package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/trip-microservice/internal/pkg/errors"
	"github.com/trip-microservice/internal/pkg/utils"
	"github.com/trip-microservice/internal/pkg/validator"
	"github.com/trip-microservice/internal/usecase"
	"github.com/trip-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

// TransportHandler - handler for standalone transport data endpoints
type TransportHandler struct {
	flightUC *usecase.FlightUseCase
	logger   *zap.Logger
}

// NewTransportHandler - creates a new TransportHandler
func NewTransportHandler(flightUC *usecase.FlightUseCase, logger *zap.Logger) *TransportHandler {
	return &TransportHandler{
		flightUC: flightUC,
		logger:   logger,
	}
}

// GetAirportFlights godoc
// @Summary Live flight board for an airport
// @Description Proxies the flight data provider, cached per airport code
// @Tags transport
// @Produce json
// @Param airportCode path string true "IATA or ICAO airport code" example(BOM)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/transport/flights/{airportCode} [get]
func (h *TransportHandler) GetAirportFlights(c *fiber.Ctx) error {
	req := dto.FlightOptionsRequest{
		AirportCode: strings.TrimSpace(c.Params("airportCode")),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidAirportCode)
	}

	raw, err := h.flightUC.GetAirportFlights(c.Context(), req.AirportCode)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}
