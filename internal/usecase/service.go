package usecase

import (
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/utils"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

type Service struct {
	Venue    VenueService
	Customer CustomerService
	Booking  BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, clock clockwork.Clock, log *zap.Logger) *Service {
	return &Service{
		Venue:    NewVenueService(repo, config, clock, log),
		Customer: NewCustomerService(repo.Customer, clock, log),
		Booking:  NewBookingService(repo, clock, log),
	}
}
