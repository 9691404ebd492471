package usecase

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/apperror"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID string) error
	CheckInBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	HoldInCart(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ReleaseCart(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, venueID, date string) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo  *repository.Repository
	clock clockwork.Clock
	log   *zap.Logger
}

func NewBookingService(repo *repository.Repository, clock clockwork.Clock, log *zap.Logger) BookingService {
	return &bookingService{
		repo:  repo,
		clock: clock,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, apperror.Validation("invalid venue ID format %s", req.VenueID)
	}

	courtID, err := uuid.Parse(req.CourtID)
	if err != nil {
		return nil, apperror.Validation("invalid court ID format %s", req.CourtID)
	}

	bookingDate, err := utils.ParseDate(req.BookingDate)
	if err != nil {
		return nil, apperror.Validation("invalid booking date %s", req.BookingDate)
	}

	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("load venue %s: %w", req.VenueID, err)
	}
	if venue == nil {
		return nil, apperror.NotFound("venue %s not found", req.VenueID)
	}

	court, err := s.repo.Court.FindByID(ctx, courtID)
	if err != nil {
		return nil, fmt.Errorf("load court %s: %w", req.CourtID, err)
	}
	if court == nil {
		return nil, apperror.NotFound("court %s not found", req.CourtID)
	}
	if court.VenueID != venue.ID {
		return nil, apperror.Validation("court %s does not belong to venue %s", req.CourtID, req.VenueID)
	}

	// Default the price from the court rate when none is supplied.
	price := req.Price
	if price == 0 {
		price = court.HourlyPrice * int64(req.DurationHours)
	}
	paidAmount := req.PaidAmount

	// Quota path needs a known customer with remaining credit.
	var customer *entity.Customer
	var customerID *uuid.UUID
	if req.CustomerID != "" {
		id, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return nil, apperror.Validation("invalid customer ID format %s", req.CustomerID)
		}
		customer, err = s.repo.Customer.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load customer %s: %w", req.CustomerID, err)
		}
		if customer == nil {
			return nil, apperror.NotFound("customer %s not found", req.CustomerID)
		}
		customerID = &customer.ID
	}

	if req.UseQuota {
		if customer == nil {
			return nil, apperror.Validation("quota booking requires a customer")
		}
		if customer.Quota <= 0 {
			return nil, apperror.Conflict("customer %s has no remaining quota", customer.ID.String())
		}
		paidAmount = price
	}

	if err := EvaluateDepositPolicy(venue, paidAmount, true, req.UseQuota); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		VenueID:       venue.ID,
		CourtID:       court.ID,
		CustomerID:    customerID,
		BookingDate:   bookingDate,
		StartTime:     req.StartTime,
		DurationHours: req.DurationHours,
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Price:         price,
		PaidAmount:    paidAmount,
		Status:        ResolvePaymentStatus(price, paidAmount, req.UseQuota),
		UsedQuota:     req.UseQuota,
	}

	// Quota consumption and booking creation commit together or not at all.
	if req.UseQuota {
		err = s.repo.Booking.CreateWithQuota(ctx, booking, customer.ID)
	} else {
		err = s.repo.Booking.Create(ctx, booking)
	}
	if err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("venue_id", req.VenueID),
			zap.String("court_id", req.CourtID),
			zap.Bool("use_quota", req.UseQuota),
		)
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("venue_id", req.VenueID),
		zap.String("court_id", req.CourtID),
		zap.String("status", string(booking.Status)),
		zap.Int64("price", booking.Price),
		zap.Int64("paid_amount", booking.PaidAmount),
		zap.Bool("use_quota", booking.UsedQuota),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == entity.BookingStatusCancelled || booking.Status == entity.BookingStatusCompleted {
		return nil, apperror.Validation("booking status is %s, cannot modify", booking.Status)
	}

	if req.CourtID != nil {
		courtID, err := uuid.Parse(*req.CourtID)
		if err != nil {
			return nil, apperror.Validation("invalid court ID format %s", *req.CourtID)
		}
		court, err := s.repo.Court.FindByID(ctx, courtID)
		if err != nil {
			return nil, fmt.Errorf("load court %s: %w", *req.CourtID, err)
		}
		if court == nil || court.VenueID != booking.VenueID {
			return nil, apperror.Validation("court %s does not belong to venue %s", *req.CourtID, booking.VenueID.String())
		}
		booking.CourtID = court.ID
	}
	if req.BookingDate != nil {
		date, err := utils.ParseDate(*req.BookingDate)
		if err != nil {
			return nil, apperror.Validation("invalid booking date %s", *req.BookingDate)
		}
		booking.BookingDate = date
	}
	if req.StartTime != nil {
		booking.StartTime = *req.StartTime
	}
	if req.DurationHours != nil {
		booking.DurationHours = *req.DurationHours
	}
	if req.CustomerName != nil {
		booking.CustomerName = *req.CustomerName
	}
	if req.Phone != nil {
		booking.Phone = *req.Phone
	}

	// Payment updates re-derive the status. Quota bookings stay paid.
	if req.Price != nil || req.PaidAmount != nil {
		if req.Price != nil {
			booking.Price = *req.Price
		}
		if req.PaidAmount != nil {
			booking.PaidAmount = *req.PaidAmount
		}
		booking.Status = ResolvePaymentStatus(booking.Price, booking.PaidAmount, booking.UsedQuota)
	}

	booking.UpdatedAt = s.clock.Now()

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, err
	}

	s.log.Info("Booking updated",
		zap.String("booking_id", bookingID),
		zap.String("status", string(booking.Status)),
		zap.Int64("paid_amount", booking.PaidAmount),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	// Quota spent on this booking is never restored, even on deletion.
	if err := s.repo.Booking.Delete(ctx, booking.ID); err != nil {
		s.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return err
	}

	return nil
}

func (s *bookingService) CheckInBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.CheckInTime != nil {
		return nil, apperror.Validation("booking %s is already checked in", bookingID)
	}
	if booking.Status == entity.BookingStatusCancelled {
		return nil, apperror.Validation("booking %s is cancelled, cannot check in", bookingID)
	}

	now := s.clock.Now()
	booking.CheckInTime = &now
	if booking.Status == entity.BookingStatusPaid {
		booking.Status = entity.BookingStatusCompleted
	}
	booking.UpdatedAt = now

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to check in booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, err
	}

	s.log.Info("Booking checked in",
		zap.String("booking_id", bookingID),
		zap.String("status", string(booking.Status)),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) HoldInCart(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.InCartSince == nil {
		now := s.clock.Now()
		booking.InCartSince = &now
		booking.UpdatedAt = now
		if err := s.repo.Booking.Update(ctx, booking); err != nil {
			return nil, err
		}
		s.log.Info("Booking held in cart", zap.String("booking_id", bookingID))
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ReleaseCart(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.InCartSince != nil {
		booking.InCartSince = nil
		booking.UpdatedAt = s.clock.Now()
		if err := s.repo.Booking.Update(ctx, booking); err != nil {
			return nil, err
		}
		s.log.Info("Booking released from cart", zap.String("booking_id", bookingID))
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, venueID, date string) ([]response.BookingResponse, error) {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, apperror.Validation("invalid venue ID format %s", venueID)
	}

	day := s.clock.Now()
	if date != "" {
		day, err = utils.ParseDate(date)
		if err != nil {
			return nil, apperror.Validation("invalid date %s", date)
		}
	}

	bookings, err := s.repo.Booking.FindByVenueAndDate(ctx, id, utils.DateOnly(day))
	if err != nil {
		s.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("venue_id", venueID),
			zap.String("date", date),
		)
		return nil, err
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperror.Validation("invalid booking ID format %s", bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, apperror.NotFound("booking %s not found", bookingID)
	}

	return booking, nil
}
