package usecase

import (
	"context"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"

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

type MockCourtRepo struct {
	mock.Mock
}

func (m *MockCourtRepo) Create(ctx context.Context, court *entity.Court) error {
	return m.Called(ctx, court).Error(0)
}

func (m *MockCourtRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Court), args.Error(1)
}

func (m *MockCourtRepo) FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.Court, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Court), args.Error(1)
}

type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepo) FindByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.Customer, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepo) UpdateQuota(ctx context.Context, id uuid.UUID, quota int) error {
	return m.Called(ctx, id, quota).Error(0)
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

func newTestRepository(venue *MockVenueRepo, court *MockCourtRepo, customer *MockCustomerRepo, booking *MockBookingRepo) *repository.Repository {
	return &repository.Repository{
		Venue:    venue,
		Court:    court,
		Customer: customer,
		Booking:  booking,
	}
}
