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

type VenueService interface {
	CreateVenue(ctx context.Context, req *request.CreateVenueRequest) (*response.VenueResponse, error)
	GetVenueByID(ctx context.Context, venueID string) (*response.VenueResponse, error)
	CreateCourt(ctx context.Context, venueID string, req *request.CreateCourtRequest) (*response.CourtResponse, error)
	ListCourts(ctx context.Context, venueID string) ([]response.CourtResponse, error)
}

type venueService struct {
	repo   *repository.Repository
	config *utils.Config
	clock  clockwork.Clock
	log    *zap.Logger
}

func NewVenueService(repo *repository.Repository, config *utils.Config, clock clockwork.Clock, log *zap.Logger) VenueService {
	return &venueService{
		repo:   repo,
		config: config,
		clock:  clock,
		log:    log.With(zap.String("service", "venue")),
	}
}

func (s *venueService) CreateVenue(ctx context.Context, req *request.CreateVenueRequest) (*response.VenueResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create venue validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Fall back to the configured defaults when the venue leaves these unset.
	tolerance := req.BookingTolerance
	if tolerance == 0 {
		tolerance = s.config.Booking.ToleranceMinutes
	}
	minDp := req.MinDpPercentage
	if minDp == 0 {
		minDp = s.config.Booking.MinDpPercentage
	}

	now := s.clock.Now()
	venue := &entity.Venue{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:                 req.Name,
		BookingTolerance:     tolerance,
		MinDpPercentage:      minDp,
		DepositPolicyEnabled: req.DepositPolicyEnabled,
		MinDepositAmount:     req.MinDepositAmount,
		OpenHour:             req.OpenHour,
		CloseHour:            req.CloseHour,
	}

	if err := s.repo.Venue.Create(ctx, venue); err != nil {
		s.log.Error("Failed to create venue", zap.Error(err), zap.String("name", req.Name))
		return nil, err
	}

	s.log.Info("Venue created",
		zap.String("venue_id", venue.ID.String()),
		zap.String("name", venue.Name),
		zap.Int("booking_tolerance", venue.BookingTolerance),
		zap.Int("min_dp_percentage", venue.MinDpPercentage),
	)

	resp := response.VenueToResponse(venue)
	return &resp, nil
}

func (s *venueService) GetVenueByID(ctx context.Context, venueID string) (*response.VenueResponse, error) {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, apperror.Validation("invalid venue ID format %s", venueID)
	}

	venue, err := s.repo.Venue.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load venue %s: %w", venueID, err)
	}
	if venue == nil {
		return nil, apperror.NotFound("venue %s not found", venueID)
	}

	resp := response.VenueToResponse(venue)
	return &resp, nil
}

func (s *venueService) CreateCourt(ctx context.Context, venueID string, req *request.CreateCourtRequest) (*response.CourtResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, apperror.Validation("invalid venue ID format %s", venueID)
	}

	venue, err := s.repo.Venue.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load venue %s: %w", venueID, err)
	}
	if venue == nil {
		return nil, apperror.NotFound("venue %s not found", venueID)
	}

	now := s.clock.Now()
	court := &entity.Court{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		VenueID:     venue.ID,
		Name:        req.Name,
		HourlyPrice: req.HourlyPrice,
	}

	if err := s.repo.Court.Create(ctx, court); err != nil {
		s.log.Error("Failed to create court",
			zap.Error(err),
			zap.String("venue_id", venueID),
		)
		return nil, err
	}

	s.log.Info("Court created",
		zap.String("court_id", court.ID.String()),
		zap.String("venue_id", venueID),
		zap.String("name", court.Name),
	)

	resp := response.CourtToResponse(court)
	return &resp, nil
}

func (s *venueService) ListCourts(ctx context.Context, venueID string) ([]response.CourtResponse, error) {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, apperror.Validation("invalid venue ID format %s", venueID)
	}

	courts, err := s.repo.Court.FindByVenueID(ctx, id)
	if err != nil {
		return nil, err
	}

	responses := make([]response.CourtResponse, len(courts))
	for i, court := range courts {
		responses[i] = response.CourtToResponse(court)
	}
	return responses, nil
}
