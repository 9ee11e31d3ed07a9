package aerodata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/trip-microservice/internal/config"
	"github.com/trip-microservice/internal/domain/repository"
	"github.com/trip-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	host       string
	logger     *zap.Logger
}

// NewClient creates the flight status provider client (RapidAPI AeroDataBox).
func NewClient(cfg *config.RapidAPIConfig, logger *zap.Logger) repository.FlightRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		host:    cfg.Host,
		logger:  logger,
	}
}

type providerError struct {
	Message string `json:"message"`
}

// GetAirportFlights fetches the departure/arrival board for an airport and
// returns the provider payload verbatim. Provider error statuses are
// preserved so the handler can pass them through.
func (c *client) GetAirportFlights(ctx context.Context, airportCode string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("offsetMinutes", "-120")
	params.Set("durationMinutes", "720")
	params.Set("withLeg", "true")
	params.Set("direction", "Both")
	params.Set("withCancelled", "true")
	params.Set("withCodeshared", "true")
	params.Set("withCargo", "true")
	params.Set("withPrivate", "true")
	params.Set("withLocation", "false")

	reqURL := fmt.Sprintf("%s/flights/airports/icao/%s?%s", c.baseURL, airportCode, params.Encode())

	c.logger.Debug("Calling flight status API",
		zap.String("airport_code", airportCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, errors.ErrProviderUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Flight status API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))

		message := "Error fetching flight data from external API"
		var provErr providerError
		if err := json.Unmarshal(body, &provErr); err == nil && provErr.Message != "" {
			message = provErr.Message
		}
		return nil, errors.New("FLIGHT_PROVIDER_ERROR", message, resp.StatusCode)
	}

	c.logger.Debug("Flight status API call successful",
		zap.Int("body_size", len(body)))

	return json.RawMessage(body), nil
}
