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

type CustomerService interface {
	CreateCustomer(ctx context.Context, req *request.CreateCustomerRequest) (*response.CustomerResponse, error)
	GetCustomerByID(ctx context.Context, customerID string) (*response.CustomerResponse, error)
	// UpdateQuota sets the customer's session credits to an absolute value
	// (manual top-up or correction by venue staff).
	UpdateQuota(ctx context.Context, customerID string, req *request.UpdateQuotaRequest) (*response.CustomerResponse, error)
}

type customerService struct {
	repo  repository.CustomerRepository
	clock clockwork.Clock
	log   *zap.Logger
}

func NewCustomerService(repo repository.CustomerRepository, clock clockwork.Clock, log *zap.Logger) CustomerService {
	return &customerService{
		repo:  repo,
		clock: clock,
		log:   log.With(zap.String("service", "customer")),
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, req *request.CreateCustomerRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create customer validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, apperror.Validation("invalid venue ID format %s", req.VenueID)
	}

	now := s.clock.Now()
	customer := &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		VenueID:  venueID,
		Name:     req.Name,
		Phone:    req.Phone,
		Quota:    req.Quota,
		IsMember: req.IsMember,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		s.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("venue_id", req.VenueID),
		)
		return nil, err
	}

	s.log.Info("Customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("venue_id", req.VenueID),
		zap.Int("quota", customer.Quota),
	)

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*response.CustomerResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, apperror.Validation("invalid customer ID format %s", customerID)
	}

	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load customer %s: %w", customerID, err)
	}
	if customer == nil {
		return nil, apperror.NotFound("customer %s not found", customerID)
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) UpdateQuota(ctx context.Context, customerID string, req *request.UpdateQuotaRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, apperror.Validation("invalid customer ID format %s", customerID)
	}

	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load customer %s: %w", customerID, err)
	}
	if customer == nil {
		return nil, apperror.NotFound("customer %s not found", customerID)
	}

	if err := s.repo.UpdateQuota(ctx, id, req.Quota); err != nil {
		s.log.Error("Failed to update customer quota",
			zap.Error(err),
			zap.String("customer_id", customerID),
		)
		return nil, err
	}

	s.log.Info("Customer quota updated",
		zap.String("customer_id", customerID),
		zap.Int("old_quota", customer.Quota),
		zap.Int("new_quota", req.Quota),
	)

	customer.Quota = req.Quota
	resp := response.CustomerToResponse(customer)
	return &resp, nil
}
