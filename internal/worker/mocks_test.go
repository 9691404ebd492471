package worker

import (
	"context"
	"sync"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/notify"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockVenueRepo struct {
	mock.Mock
}

func (m *MockVenueRepo) Create(ctx context.Context, venue *entity.Venue) error {
	return m.Called(ctx, venue).Error(0)
}

func (m *MockVenueRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Venue), args.Error(1)
}

func (m *MockVenueRepo) FindAll(ctx context.Context) ([]*entity.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Venue), args.Error(1)
}

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *MockBookingRepo) CreateWithQuota(ctx context.Context, booking *entity.Booking, customerID uuid.UUID) error {
	return m.Called(ctx, booking, customerID).Error(0)
}

func (m *MockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) FindByVenueAndDate(ctx context.Context, venueID uuid.UUID, date time.Time) ([]*entity.Booking, error) {
	args := m.Called(ctx, venueID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *MockBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func testConfig() *utils.Config {
	return &utils.Config{
		Booking: utils.BookingConfig{
			ToleranceMinutes: 15,
			MinDpPercentage:  50,
		},
		Worker: utils.WorkerConfig{
			SweepIntervalSeconds:   30,
			MonitorIntervalSeconds: 30,
		},
	}
}

// captureNotifier records events for assertions.
type captureNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (c *captureNotifier) Notify(_ context.Context, event notify.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureNotifier) Events() []notify.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]notify.Event, len(c.events))
	copy(out, c.events)
	return out
}
