package usecase

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/dto/request"
	"venue-booking/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bookingFixture struct {
	venueRepo    *MockVenueRepo
	courtRepo    *MockCourtRepo
	customerRepo *MockCustomerRepo
	bookingRepo  *MockBookingRepo
	clock        *clockwork.FakeClock
	service      BookingService

	venue    *entity.Venue
	court    *entity.Court
	customer *entity.Customer
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	f := &bookingFixture{
		venueRepo:    new(MockVenueRepo),
		courtRepo:    new(MockCourtRepo),
		customerRepo: new(MockCustomerRepo),
		bookingRepo:  new(MockBookingRepo),
		clock:        clockwork.NewFakeClockAt(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)),
	}

	repo := newTestRepository(f.venueRepo, f.courtRepo, f.customerRepo, f.bookingRepo)
	f.service = NewBookingService(repo, f.clock, zap.NewNop())

	venueID := uuid.New()
	f.venue = &entity.Venue{
		Base:             entity.Base{ID: venueID},
		Name:             "GOR Sejahtera",
		BookingTolerance: 15,
		MinDpPercentage:  50,
	}
	f.court = &entity.Court{
		Base:        entity.Base{ID: uuid.New()},
		VenueID:     venueID,
		Name:        "Court 1",
		HourlyPrice: 50000,
	}
	f.customer = &entity.Customer{
		Base:    entity.Base{ID: uuid.New()},
		VenueID: venueID,
		Name:    "Budi",
		Phone:   "08123456789",
		Quota:   3,
	}

	return f
}

func (f *bookingFixture) createRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		VenueID:       f.venue.ID.String(),
		CourtID:       f.court.ID.String(),
		BookingDate:   "2025-06-01",
		StartTime:     "18:00",
		DurationHours: 2,
		CustomerName:  "Budi",
		Phone:         "08123456789",
	}
}

func TestCreateBookingResolvesStatus(t *testing.T) {
	tests := []struct {
		name       string
		paidAmount int64
		wantStatus entity.BookingStatus
	}{
		{"no payment is unpaid", 0, entity.BookingStatusUnpaid},
		{"partial payment is deposit", 40000, entity.BookingStatusDeposit},
		{"full payment is paid", 100000, entity.BookingStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)
			f.venueRepo.On("FindByID", mock.Anything, f.venue.ID).Return(f.venue, nil)
			f.courtRepo.On("FindByID", mock.Anything, f.court.ID).Return(f.court, nil)
			f.bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil)

			req := f.createRequest()
			req.PaidAmount = tt.paidAmount

			resp, err := f.service.CreateBooking(context.Background(), req)

			require.NoError(t, err)
			assert.Equal(t, string(tt.wantStatus), resp.Status)
			// Price defaults to the court rate times the duration.
			assert.Equal(t, int64(100000), resp.Price)
			f.bookingRepo.AssertNotCalled(t, "CreateWithQuota", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateBookingWithQuota(t *testing.T) {
	f := newBookingFixture(t)
	f.venueRepo.On("FindByID", mock.Anything, f.venue.ID).Return(f.venue, nil)
	f.courtRepo.On("FindByID", mock.Anything, f.court.ID).Return(f.court, nil)
	f.customerRepo.On("FindByID", mock.Anything, f.customer.ID).Return(f.customer, nil)

	var created *entity.Booking
	f.bookingRepo.On("CreateWithQuota", mock.Anything, mock.AnythingOfType("*entity.Booking"), f.customer.ID).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Booking)
		}).
		Return(nil)

	req := f.createRequest()
	req.CustomerID = f.customer.ID.String()
	req.UseQuota = true

	resp, err := f.service.CreateBooking(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPaid), resp.Status)
	require.NotNil(t, created)
	assert.True(t, created.UsedQuota)
	// A quota booking is settled in full, no cash outstanding.
	assert.Equal(t, created.Price, created.PaidAmount)
	f.bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBookingQuotaExhausted(t *testing.T) {
	f := newBookingFixture(t)
	f.customer.Quota = 0
	f.venueRepo.On("FindByID", mock.Anything, f.venue.ID).Return(f.venue, nil)
	f.courtRepo.On("FindByID", mock.Anything, f.court.ID).Return(f.court, nil)
	f.customerRepo.On("FindByID", mock.Anything, f.customer.ID).Return(f.customer, nil)

	req := f.createRequest()
	req.CustomerID = f.customer.ID.String()
	req.UseQuota = true

	_, err := f.service.CreateBooking(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	f.bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.bookingRepo.AssertNotCalled(t, "CreateWithQuota", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBookingQuotaRequiresCustomer(t *testing.T) {
	f := newBookingFixture(t)
	f.venueRepo.On("FindByID", mock.Anything, f.venue.ID).Return(f.venue, nil)
	f.courtRepo.On("FindByID", mock.Anything, f.court.ID).Return(f.court, nil)

	req := f.createRequest()
	req.UseQuota = true

	_, err := f.service.CreateBooking(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestCreateBookingDepositPolicyBlocks(t *testing.T) {
	f := newBookingFixture(t)
	f.venue.DepositPolicyEnabled = true
	f.venue.MinDepositAmount = 50000
	f.venueRepo.On("FindByID", mock.Anything, f.venue.ID).Return(f.venue, nil)
	f.courtRepo.On("FindByID", mock.Anything, f.court.ID).Return(f.court, nil)

	req := f.createRequest()
	req.PaidAmount = 20000

	_, err := f.service.CreateBooking(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	f.bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBookingRejectsForeignCourt(t *testing.T) {
	f := newBookingFixture(t)
	f.court.VenueID = uuid.New()
	f.venueRepo.On("FindByID", mock.Anything, f.venue.ID).Return(f.venue, nil)
	f.courtRepo.On("FindByID", mock.Anything, f.court.ID).Return(f.court, nil)

	_, err := f.service.CreateBooking(context.Background(), f.createRequest())

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestCreateBookingVenueNotFound(t *testing.T) {
	f := newBookingFixture(t)
	f.venueRepo.On("FindByID", mock.Anything, f.venue.ID).Return(nil, nil)

	_, err := f.service.CreateBooking(context.Background(), f.createRequest())

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateBookingFullPaymentGoesStraightToPaid(t *testing.T) {
	f := newBookingFixture(t)
	booking := &entity.Booking{
		Base:       entity.Base{ID: uuid.New()},
		VenueID:    f.venue.ID,
		CourtID:    f.court.ID,
		Price:      100000,
		PaidAmount: 0,
		Status:     entity.BookingStatusUnpaid,
	}
	f.bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	f.bookingRepo.On("Update", mock.Anything, booking).Return(nil)

	paid := int64(100000)
	resp, err := f.service.UpdateBooking(context.Background(), booking.ID.String(), &request.UpdateBookingRequest{
		PaidAmount: &paid,
	})

	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPaid), resp.Status)
}

func TestUpdateBookingKeepsQuotaBookingPaid(t *testing.T) {
	f := newBookingFixture(t)
	booking := &entity.Booking{
		Base:       entity.Base{ID: uuid.New()},
		VenueID:    f.venue.ID,
		CourtID:    f.court.ID,
		Price:      100000,
		PaidAmount: 100000,
		Status:     entity.BookingStatusPaid,
		UsedQuota:  true,
	}
	f.bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	f.bookingRepo.On("Update", mock.Anything, booking).Return(nil)

	// Even lowering the recorded payment cannot demote a quota booking.
	paid := int64(0)
	resp, err := f.service.UpdateBooking(context.Background(), booking.ID.String(), &request.UpdateBookingRequest{
		PaidAmount: &paid,
	})

	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPaid), resp.Status)
}

func TestUpdateBookingBlocksTerminalStatuses(t *testing.T) {
	for _, status := range []entity.BookingStatus{entity.BookingStatusCancelled, entity.BookingStatusCompleted} {
		t.Run(string(status), func(t *testing.T) {
			f := newBookingFixture(t)
			booking := &entity.Booking{
				Base:   entity.Base{ID: uuid.New()},
				Status: status,
			}
			f.bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

			name := "Siti"
			_, err := f.service.UpdateBooking(context.Background(), booking.ID.String(), &request.UpdateBookingRequest{
				CustomerName: &name,
			})

			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
			f.bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestDeleteBookingNeverRestoresQuota(t *testing.T) {
	f := newBookingFixture(t)
	booking := &entity.Booking{
		Base:      entity.Base{ID: uuid.New()},
		VenueID:   f.venue.ID,
		UsedQuota: true,
	}
	f.bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	f.bookingRepo.On("Delete", mock.Anything, booking.ID).Return(nil)

	err := f.service.DeleteBooking(context.Background(), booking.ID.String())

	require.NoError(t, err)
	f.customerRepo.AssertNotCalled(t, "UpdateQuota", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckInBooking(t *testing.T) {
	t.Run("paid booking completes on check-in", func(t *testing.T) {
		f := newBookingFixture(t)
		booking := &entity.Booking{
			Base:       entity.Base{ID: uuid.New()},
			Price:      100000,
			PaidAmount: 100000,
			Status:     entity.BookingStatusPaid,
		}
		f.bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
		f.bookingRepo.On("Update", mock.Anything, booking).Return(nil)

		resp, err := f.service.CheckInBooking(context.Background(), booking.ID.String())

		require.NoError(t, err)
		assert.Equal(t, string(entity.BookingStatusCompleted), resp.Status)
		require.NotNil(t, booking.CheckInTime)
		assert.Equal(t, f.clock.Now(), *booking.CheckInTime)
	})

	t.Run("deposit booking keeps its status", func(t *testing.T) {
		f := newBookingFixture(t)
		booking := &entity.Booking{
			Base:       entity.Base{ID: uuid.New()},
			Price:      100000,
			PaidAmount: 60000,
			Status:     entity.BookingStatusDeposit,
		}
		f.bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
		f.bookingRepo.On("Update", mock.Anything, booking).Return(nil)

		resp, err := f.service.CheckInBooking(context.Background(), booking.ID.String())

		require.NoError(t, err)
		assert.Equal(t, string(entity.BookingStatusDeposit), resp.Status)
		assert.NotNil(t, booking.CheckInTime)
	})

	t.Run("double check-in is rejected", func(t *testing.T) {
		f := newBookingFixture(t)
		checkedIn := f.clock.Now().Add(-time.Hour)
		booking := &entity.Booking{
			Base:        entity.Base{ID: uuid.New()},
			Status:      entity.BookingStatusPaid,
			CheckInTime: &checkedIn,
		}
		f.bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

		_, err := f.service.CheckInBooking(context.Background(), booking.ID.String())

		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("cancelled booking cannot check in", func(t *testing.T) {
		f := newBookingFixture(t)
		booking := &entity.Booking{
			Base:   entity.Base{ID: uuid.New()},
			Status: entity.BookingStatusCancelled,
		}
		f.bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

		_, err := f.service.CheckInBooking(context.Background(), booking.ID.String())

		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})
}

func TestHoldAndReleaseCartAreIdempotent(t *testing.T) {
	f := newBookingFixture(t)
	booking := &entity.Booking{
		Base:   entity.Base{ID: uuid.New()},
		Status: entity.BookingStatusUnpaid,
	}
	f.bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	f.bookingRepo.On("Update", mock.Anything, booking).Return(nil)

	_, err := f.service.HoldInCart(context.Background(), booking.ID.String())
	require.NoError(t, err)
	require.NotNil(t, booking.InCartSince)
	first := *booking.InCartSince

	f.clock.Advance(5 * time.Minute)

	// Holding again does not refresh the timestamp.
	_, err = f.service.HoldInCart(context.Background(), booking.ID.String())
	require.NoError(t, err)
	assert.Equal(t, first, *booking.InCartSince)
	f.bookingRepo.AssertNumberOfCalls(t, "Update", 1)

	_, err = f.service.ReleaseCart(context.Background(), booking.ID.String())
	require.NoError(t, err)
	assert.Nil(t, booking.InCartSince)

	// Releasing an already released booking writes nothing.
	_, err = f.service.ReleaseCart(context.Background(), booking.ID.String())
	require.NoError(t, err)
	f.bookingRepo.AssertNumberOfCalls(t, "Update", 2)
}

func TestListBookingsDefaultsToToday(t *testing.T) {
	f := newBookingFixture(t)
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	f.bookingRepo.On("FindByVenueAndDate", mock.Anything, f.venue.ID, today).
		Return([]*entity.Booking{}, nil)

	_, err := f.service.ListBookings(context.Background(), f.venue.ID.String(), "")

	require.NoError(t, err)
	f.bookingRepo.AssertExpectations(t)
}
