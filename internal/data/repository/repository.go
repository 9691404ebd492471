package repository

import (
	"venue-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Venue    VenueRepository
	Court    CourtRepository
	Customer CustomerRepository
	Booking  BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Venue:    NewVenueRepository(db, log),
		Court:    NewCourtRepository(db, log),
		Customer: NewCustomerRepository(db, log),
		Booking:  NewBookingRepository(db, log),
	}
}
