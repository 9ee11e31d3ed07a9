package trip_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-microservice/internal/domain"
	"github.com/trip-microservice/internal/usecase"
	tripworker "github.com/trip-microservice/internal/worker/trip"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

// MockTripRepository is a mock of TripRepository
type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) SaveTrip(ctx context.Context, trip *domain.TripRecord) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) RecentTrips(ctx context.Context, limit int) ([]domain.TripRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TripRecord), args.Error(1)
}

func newWorker(streamRepo *MockStreamRepository, tripRepo *MockTripRepository) *tripworker.ArchiverWorker {
	logger := zap.NewNop()
	archiveUC := usecase.NewTripArchiveUseCase(tripRepo, logger)
	return tripworker.NewArchiverWorker(streamRepo, archiveUC, "test-group", logger)
}

func TestArchiverWorker_Name(t *testing.T) {
	w := newWorker(&MockStreamRepository{}, &MockTripRepository{})
	assert.Equal(t, "trip-archiver", w.Name())
}

func TestArchiverWorker_Stop(t *testing.T) {
	w := newWorker(&MockStreamRepository{}, &MockTripRepository{})

	require.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())

	// Stopping twice must not panic
	assert.NoError(t, w.Stop())
}

func TestArchiverWorker_ArchivesAndAcks(t *testing.T) {
	streamRepo := &MockStreamRepository{}
	tripRepo := &MockTripRepository{}

	tripID := uuid.New()
	event := domain.TripPlannedEvent{
		TripID:      tripID,
		Origin:      "Mumbai",
		Destination: "Chennai",
		TravelDate:  "2024-03-05",
		PlannedAt:   time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamTripPlanned, "test-group").
		Return(nil).Once()
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamTripPlanned, "test-group", mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{{ID: "1-0", Data: string(payload)}}, nil).Once()
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamTripPlanned, "test-group", mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil)
	streamRepo.On("AckMessage", mock.Anything, domain.StreamTripPlanned, "test-group", "1-0").
		Return(nil).Once()

	tripRepo.On("SaveTrip", mock.Anything, mock.MatchedBy(func(trip *domain.TripRecord) bool {
		return trip.ID == tripID && trip.Origin == "Mumbai"
	})).Return(nil).Once()

	w := newWorker(streamRepo, tripRepo)

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	time.Sleep(300 * time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}

	streamRepo.AssertExpectations(t)
	tripRepo.AssertExpectations(t)
}

func TestArchiverWorker_MalformedMessageIsAcked(t *testing.T) {
	streamRepo := &MockStreamRepository{}
	tripRepo := &MockTripRepository{}

	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamTripPlanned, "test-group").
		Return(nil).Once()
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamTripPlanned, "test-group", mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{{ID: "2-0", Data: "not json"}}, nil).Once()
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamTripPlanned, "test-group", mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil)
	streamRepo.On("AckMessage", mock.Anything, domain.StreamTripPlanned, "test-group", "2-0").
		Return(nil).Once()

	w := newWorker(streamRepo, tripRepo)

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	time.Sleep(300 * time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}

	tripRepo.AssertNotCalled(t, "SaveTrip")
	streamRepo.AssertExpectations(t)
}

func TestArchiverWorker_FailedArchiveLeavesMessagePending(t *testing.T) {
	streamRepo := &MockStreamRepository{}
	tripRepo := &MockTripRepository{}

	event := domain.TripPlannedEvent{TripID: uuid.New(), Origin: "Delhi"}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamTripPlanned, "test-group").
		Return(nil).Once()
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamTripPlanned, "test-group", mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{{ID: "3-0", Data: string(payload)}}, nil).Once()
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamTripPlanned, "test-group", mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil)

	tripRepo.On("SaveTrip", mock.Anything, mock.Anything).
		Return(assert.AnError).Once()

	w := newWorker(streamRepo, tripRepo)

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	time.Sleep(300 * time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}

	streamRepo.AssertNotCalled(t, "AckMessage")
	tripRepo.AssertExpectations(t)
}
