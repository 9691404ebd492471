package worker

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/notify"
	"venue-booking/pkg/utils"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// NoShowSweep cancels bookings whose payment deadline has passed. It runs a
// best-effort, non-transactional pass: each expired booking is deleted
// independently, a failed delete is logged and left for the next tick.
type NoShowSweep struct {
	repo     *repository.Repository
	notifier notify.Notifier
	clock    clockwork.Clock
	log      *zap.Logger
}

func NewNoShowSweep(repo *repository.Repository, notifier notify.Notifier, clock clockwork.Clock, log *zap.Logger) *NoShowSweep {
	return &NoShowSweep{
		repo:     repo,
		notifier: notifier,
		clock:    clock,
		log:      log.With(zap.String("worker", "noshow_sweep")),
	}
}

// Run executes a single sweep pass over every venue's bookings for today.
func (s *NoShowSweep) Run(ctx context.Context) {
	venues, err := s.repo.Venue.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load venues for sweep", zap.Error(err))
		return
	}

	for _, venue := range venues {
		s.sweepVenue(ctx, venue)
	}
}

func (s *NoShowSweep) sweepVenue(ctx context.Context, venue *entity.Venue) {
	now := s.clock.Now()

	bookings, err := s.repo.Booking.FindByVenueAndDate(ctx, venue.ID, utils.DateOnly(now))
	if err != nil {
		s.log.Warn("Failed to load bookings for sweep",
			zap.Error(err),
			zap.String("venue_id", venue.ID.String()),
		)
		return
	}

	for _, booking := range bookings {
		if booking.SweepPhase(now, venue.ToleranceDuration(), venue.MinDpPercentage) != entity.SweepExpired {
			continue
		}

		if err := s.repo.Booking.Delete(ctx, booking.ID); err != nil {
			// Leave it for the next tick; the expiry condition still holds.
			s.log.Warn("Failed to cancel expired booking",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
				zap.String("venue_id", venue.ID.String()),
			)
			continue
		}

		s.log.Info("Booking auto-cancelled as no-show",
			zap.String("booking_id", booking.ID.String()),
			zap.String("venue_id", venue.ID.String()),
			zap.String("customer_name", booking.CustomerName),
			zap.Time("created_at", booking.CreatedAt),
			zap.Time("deadline", booking.NoShowDeadline(venue.ToleranceDuration())),
		)

		s.notifier.Notify(ctx, notify.Event{
			Type:      notify.EventBookingExpired,
			VenueID:   venue.ID.String(),
			BookingID: booking.ID.String(),
			Message:   fmt.Sprintf("Booking for %s auto-cancelled: payment deadline passed", booking.CustomerName),
			At:        now,
		})
	}
}
