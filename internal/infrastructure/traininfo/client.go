package traininfo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/trip-microservice/internal/config"
	"github.com/trip-microservice/internal/domain"
	"github.com/trip-microservice/internal/domain/repository"
	"go.uber.org/zap"
)

// ProviderName tags search results answered by this provider.
const ProviderName = "traininfo"

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient creates the fallback train search provider client. It is only
// consulted after the primary provider fails.
func NewClient(cfg *config.TrainInfoConfig, logger *zap.Logger) repository.TrainProvider {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

func (c *client) Name() string {
	return ProviderName
}

type searchRequest struct {
	Src  string `json:"src"`
	Dst  string `json:"dst"`
	Date string `json:"date"`
}

// searchResponse - this provider returns records directly under "trains"
// with a flat per-class availability map and no explicit fares.
type searchResponse struct {
	Trains []trainEntry `json:"trains"`
}

type trainEntry struct {
	TrainNumber   string            `json:"trainNumber"`
	TrainName     string            `json:"trainName"`
	Duration      int               `json:"duration"` // minutes
	DepartureTime string            `json:"departureTime"`
	ArrivalTime   string            `json:"arrivalTime"`
	Distance      string            `json:"distance"`
	Availability  map[string]string `json:"availability"`
}

// Search posts a flat {src, dst, date} body with the date in DD-MM-YYYY order.
func (c *client) Search(ctx context.Context, src, dst, date string) ([]domain.TrainRecord, error) {
	body, err := json.Marshal(searchRequest{Src: src, Dst: dst, Date: date})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	c.logger.Debug("Calling fallback train API",
		zap.String("src", src),
		zap.String("dst", dst),
		zap.String("date", date))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("Fallback train API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return nil, fmt.Errorf("train API error: status %d", resp.StatusCode)
	}

	var searchResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	trains := make([]domain.TrainRecord, 0, len(searchResp.Trains))
	for _, entry := range searchResp.Trains {
		trains = append(trains, domain.TrainRecord{
			Number:          entry.TrainNumber,
			Name:            entry.TrainName,
			DurationMinutes: entry.Duration,
			DepartureTime:   entry.DepartureTime,
			ArrivalTime:     entry.ArrivalTime,
			Distance:        entry.Distance,
			Availability:    entry.Availability,
		})
	}

	c.logger.Debug("Fallback train API call successful",
		zap.Int("train_count", len(trains)))

	return trains, nil
}
