//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type TripPlannedEvent struct {
	TripID           uuid.UUID `json:"trip_id"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	OriginCode       *string   `json:"origin_code,omitempty"`
	DestinationCode  *string   `json:"destination_code,omitempty"`
	TravelDate       string    `json:"travel_date"`
	TrainOptionCount int       `json:"train_option_count"`
	TopService       string    `json:"top_service,omitempty"`
	TopPrice         string    `json:"top_price,omitempty"`
	TopFeatures      []string  `json:"top_features,omitempty"`
	PlannedAt        time.Time `json:"planned_at"`
}

func ptr[T any](v T) *T {
	return &v
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Test event for the archiver worker
	event := TripPlannedEvent{
		TripID:           uuid.New(),
		Origin:           "Mumbai",
		Destination:      "Chennai",
		OriginCode:       ptr("CSMT"),
		DestinationCode:  ptr("MAS"),
		TravelDate:       "2024-03-05",
		TrainOptionCount: 3,
		TopService:       "Dadar Chennai Express",
		TopPrice:         "₹890",
		TopFeatures:      []string{"Reserved Seating", "Onboard Catering", "AC Coaches"},
		PlannedAt:        time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:trip:planned",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:trip:planned\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Trip ID: %s\n", event.TripID)
	fmt.Printf("   Route: %s -> %s on %s\n", event.Origin, event.Destination, event.TravelDate)
	fmt.Println("\nRun the worker (cmd/worker) and check the trips table for the archived row.")
}
