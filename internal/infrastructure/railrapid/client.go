package railrapid

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/trip-microservice/internal/config"
	"github.com/trip-microservice/internal/domain"
	"github.com/trip-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

// ProviderName tags search results answered by this provider.
const ProviderName = "railrapid"

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	host       string
	logger     *zap.Logger
}

// NewClient creates the primary train search provider client (RapidAPI).
// The request timeout doubles as the upper bound on the primary search call.
func NewClient(cfg *config.RailAPIConfig, logger *zap.Logger) repository.TrainProvider {
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

func (c *client) Name() string {
	return ProviderName
}

// searchResponse - provider payload: the record list is nested under
// data.trainList and per-class availability lives in availabilityCache.
type searchResponse struct {
	Data struct {
		TrainList []trainEntry `json:"trainList"`
	} `json:"data"`
}

type trainEntry struct {
	TrainNumber       string            `json:"trainNumber"`
	TrainName         string            `json:"trainName"`
	Duration          int               `json:"duration"` // minutes
	DepartureTime     string            `json:"departureTime"`
	ArrivalTime       string            `json:"arrivalTime"`
	Distance          string            `json:"distance"`
	Fare              int               `json:"fare"`
	AvailabilityCache map[string]string `json:"availabilityCache"`
}

// Search queries trains between two station codes. The date must already be
// in the provider's DD-MM-YYYY order.
func (c *client) Search(ctx context.Context, src, dst, date string) ([]domain.TrainRecord, error) {
	params := url.Values{}
	params.Set("fromStationCode", src)
	params.Set("toStationCode", dst)
	params.Set("dateOfJourney", date)

	reqURL := fmt.Sprintf("%s/api/v3/trainBetweenStations?%s", c.baseURL, params.Encode())

	c.logger.Debug("Calling primary train API",
		zap.String("src", src),
		zap.String("dst", dst),
		zap.String("date", date))

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
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Primary train API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("train API error: status %d", resp.StatusCode)
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	trains := make([]domain.TrainRecord, 0, len(searchResp.Data.TrainList))
	for _, entry := range searchResp.Data.TrainList {
		trains = append(trains, domain.TrainRecord{
			Number:          entry.TrainNumber,
			Name:            entry.TrainName,
			DurationMinutes: entry.Duration,
			DepartureTime:   entry.DepartureTime,
			ArrivalTime:     entry.ArrivalTime,
			Distance:        entry.Distance,
			Fare:            entry.Fare,
			Availability:    entry.AvailabilityCache,
		})
	}

	c.logger.Debug("Primary train API call successful",
		zap.Int("train_count", len(trains)))

	return trains, nil
}
