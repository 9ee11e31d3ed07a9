package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-microservice/internal/domain"
	redisRepo "github.com/trip-microservice/internal/repository/redis"
)

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "",
		DB:       1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := client.Ping(ctx).Err()
	if err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, "test:stream:trip:planned")

	return client
}

func strPtr(s string) *string {
	return &s
}

// TestStreamRepository_CreateConsumerGroup tests consumer group creation
func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	logger := zap.NewNop()
	repo := redisRepo.NewStreamRepository(client, logger)
	ctx := context.Background()

	streamName := "test:stream:trip:planned"
	groupName := "test-group"

	defer func() {
		client.Del(ctx, streamName)
	}()

	err := repo.CreateConsumerGroup(ctx, streamName, groupName)
	require.NoError(t, err)

	groups, err := client.XInfoGroups(ctx, streamName).Result()
	require.NoError(t, err)
	assert.Len(t, groups, 1)
	assert.Equal(t, groupName, groups[0].Name)

	// Creating again should not error (BUSYGROUP handled)
	err = repo.CreateConsumerGroup(ctx, streamName, groupName)
	assert.NoError(t, err)
}

// TestStreamRepository_PublishToStream tests message publishing
func TestStreamRepository_PublishToStream(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	logger := zap.NewNop()
	repo := redisRepo.NewStreamRepository(client, logger)
	ctx := context.Background()

	streamName := "test:stream:trip:planned"

	defer func() {
		client.Del(ctx, streamName)
	}()

	tripID := uuid.New()
	event := &domain.TripPlannedEvent{
		TripID:           tripID,
		Origin:           "Mumbai",
		Destination:      "Chennai",
		OriginCode:       strPtr("CSMT"),
		DestinationCode:  strPtr("MAS"),
		TravelDate:       "2024-03-05",
		TrainOptionCount: 3,
		TopService:       "Dadar Chennai Express",
		TopPrice:         "₹890",
		PlannedAt:        time.Now().UTC(),
	}

	err := repo.PublishToStream(ctx, streamName, event)
	require.NoError(t, err)

	messages, err := client.XRead(ctx, &redis.XReadArgs{
		Streams: []string{streamName, "0"},
		Count:   1,
	}).Result()
	require.NoError(t, err)
	assert.Len(t, messages, 1)
	assert.Len(t, messages[0].Messages, 1)

	msg := messages[0].Messages[0]
	dataStr, ok := msg.Values["data"].(string)
	require.True(t, ok)

	var receivedEvent domain.TripPlannedEvent
	err = json.Unmarshal([]byte(dataStr), &receivedEvent)
	require.NoError(t, err)
	assert.Equal(t, tripID, receivedEvent.TripID)
	assert.Equal(t, "Mumbai", receivedEvent.Origin)
	require.NotNil(t, receivedEvent.OriginCode)
	assert.Equal(t, "CSMT", *receivedEvent.OriginCode)
	assert.Equal(t, 3, receivedEvent.TrainOptionCount)
}

// TestStreamRepository_ConsumeBatch tests batch consumption
func TestStreamRepository_ConsumeBatch(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	logger := zap.NewNop()
	repo := redisRepo.NewStreamRepository(client, logger)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	streamName := "test:stream:trip:planned"
	groupName := "test-consumer-group"
	consumerName := "test-consumer"

	defer func() {
		client.Del(context.Background(), streamName)
	}()

	err := repo.CreateConsumerGroup(ctx, streamName, groupName)
	require.NoError(t, err)

	tripID := uuid.New()
	testEvent := &domain.TripPlannedEvent{
		TripID:      tripID,
		Origin:      "Delhi",
		Destination: "Jaipur",
		TravelDate:  "2024-04-10",
		PlannedAt:   time.Now().UTC(),
	}

	err = repo.PublishToStream(ctx, streamName, testEvent)
	require.NoError(t, err)

	messages, err := repo.ConsumeBatch(ctx, streamName, groupName, consumerName, 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.NotEmpty(t, messages[0].ID)

	var receivedEvent domain.TripPlannedEvent
	err = json.Unmarshal([]byte(messages[0].Data), &receivedEvent)
	require.NoError(t, err)
	assert.Equal(t, tripID, receivedEvent.TripID)
	assert.Equal(t, "Delhi", receivedEvent.Origin)
	assert.Equal(t, "Jaipur", receivedEvent.Destination)
}

// TestStreamRepository_ConsumeBatch_Empty tests that an empty stream is not an error
func TestStreamRepository_ConsumeBatch_Empty(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	logger := zap.NewNop()
	repo := redisRepo.NewStreamRepository(client, logger)
	ctx := context.Background()

	streamName := "test:stream:trip:planned"
	groupName := "test-empty-group"

	defer func() {
		client.Del(ctx, streamName)
	}()

	err := repo.CreateConsumerGroup(ctx, streamName, groupName)
	require.NoError(t, err)

	messages, err := repo.ConsumeBatch(ctx, streamName, groupName, "test-consumer", 10)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

// TestStreamRepository_AckMessage tests message acknowledgment
func TestStreamRepository_AckMessage(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	logger := zap.NewNop()
	repo := redisRepo.NewStreamRepository(client, logger)
	ctx := context.Background()

	streamName := "test:stream:trip:planned"
	groupName := "test-ack-group"
	consumerName := "test-consumer"

	defer func() {
		client.Del(ctx, streamName)
	}()

	err := repo.CreateConsumerGroup(ctx, streamName, groupName)
	require.NoError(t, err)

	testEvent := &domain.TripPlannedEvent{
		TripID: uuid.New(),
		Origin: "Mumbai",
	}
	err = repo.PublishToStream(ctx, streamName, testEvent)
	require.NoError(t, err)

	messages, err := repo.ConsumeBatch(ctx, streamName, groupName, consumerName, 1)
	require.NoError(t, err)
	require.Len(t, messages, 1)

	pending, err := client.XPending(ctx, streamName, groupName).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending.Count)

	err = repo.AckMessage(ctx, streamName, groupName, messages[0].ID)
	require.NoError(t, err)

	pending, err = client.XPending(ctx, streamName, groupName).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)
}
