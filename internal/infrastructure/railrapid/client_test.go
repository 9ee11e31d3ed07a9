package railrapid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-microservice/internal/config"
)

func TestClient_Search(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("successful search normalizes trainList entries", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "CSMT", r.URL.Query().Get("fromStationCode"))
			assert.Equal(t, "MAS", r.URL.Query().Get("toStationCode"))
			assert.Equal(t, "05-03-2024", r.URL.Query().Get("dateOfJourney"))
			assert.Equal(t, "test_key", r.Header.Get("x-rapidapi-key"))
			assert.Equal(t, "rail.example.test", r.Header.Get("x-rapidapi-host"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"data": {
					"trainList": [
						{
							"trainNumber": "12163",
							"trainName": "Dadar Chennai Express",
							"duration": 1410,
							"departureTime": "20:30",
							"arrivalTime": "20:00",
							"distance": "1283",
							"fare": 890,
							"availabilityCache": {"SL": "AVAILABLE-0043", "3A": "GNWL12/WL5"}
						},
						{
							"trainNumber": "11041",
							"trainName": "Mumbai Chennai Express",
							"duration": 1555,
							"departureTime": "14:00",
							"arrivalTime": "15:55",
							"distance": "1279",
							"availabilityCache": {"SL": "CURR_AVBL-0010"}
						}
					]
				}
			}`))
		}))
		defer server.Close()

		cfg := &config.RailAPIConfig{
			BaseURL:        server.URL,
			APIKey:         "test_key",
			Host:           "rail.example.test",
			RequestTimeout: 15,
		}

		client := NewClient(cfg, logger)
		assert.Equal(t, ProviderName, client.Name())

		trains, err := client.Search(context.Background(), "CSMT", "MAS", "05-03-2024")
		require.NoError(t, err)
		require.Len(t, trains, 2)

		assert.Equal(t, "12163", trains[0].Number)
		assert.Equal(t, "Dadar Chennai Express", trains[0].Name)
		assert.Equal(t, 1410, trains[0].DurationMinutes)
		assert.Equal(t, 890, trains[0].Fare)
		assert.Equal(t, "AVAILABLE-0043", trains[0].Availability["SL"])

		// no explicit fare on the second entry
		assert.Equal(t, 0, trains[1].Fare)
	})

	t.Run("non-success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"message":"rate limit exceeded"}`))
		}))
		defer server.Close()

		cfg := &config.RailAPIConfig{
			BaseURL:        server.URL,
			APIKey:         "test_key",
			Host:           "rail.example.test",
			RequestTimeout: 15,
		}

		client := NewClient(cfg, logger)

		trains, err := client.Search(context.Background(), "CSMT", "MAS", "05-03-2024")
		assert.Error(t, err)
		assert.Nil(t, trains)
		assert.Contains(t, err.Error(), "status 429")
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>gateway timeout</html>`))
		}))
		defer server.Close()

		cfg := &config.RailAPIConfig{
			BaseURL:        server.URL,
			APIKey:         "test_key",
			Host:           "rail.example.test",
			RequestTimeout: 15,
		}

		client := NewClient(cfg, logger)

		_, err := client.Search(context.Background(), "CSMT", "MAS", "05-03-2024")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode response")
	})

	t.Run("empty train list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":{"trainList":[]}}`))
		}))
		defer server.Close()

		cfg := &config.RailAPIConfig{
			BaseURL:        server.URL,
			APIKey:         "test_key",
			Host:           "rail.example.test",
			RequestTimeout: 15,
		}

		client := NewClient(cfg, logger)

		trains, err := client.Search(context.Background(), "SBC", "MAS", "05-03-2024")
		require.NoError(t, err)
		assert.Empty(t, trains)
	})
}
