package worker

import (
	"context"
	"sync"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/notify"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// MonitorStatus is a snapshot of the reconciliation loop's state.
type MonitorStatus struct {
	LastCheckedAt time.Time
	BookingCount  int
	HasBookings   bool
	IsChecking    bool
	Err           error
}

// BookingMonitor keeps a local cache of a venue's bookings for the current
// day aligned with the authoritative store. At most one fetch is in flight;
// a tick arriving while one is outstanding is dropped, not queued, so a slow
// store silently lengthens the effective poll interval.
type BookingMonitor struct {
	venueID  uuid.UUID
	repo     repository.BookingRepository
	notifier notify.Notifier
	clock    clockwork.Clock
	log      *zap.Logger

	mu          sync.Mutex
	active      bool
	checking    bool
	bookings    []*entity.Booking
	hasBookings *bool
	lastChecked time.Time
	lastErr     error
}

func NewBookingMonitor(venueID uuid.UUID, repo repository.BookingRepository, notifier notify.Notifier, clock clockwork.Clock, log *zap.Logger) *BookingMonitor {
	return &BookingMonitor{
		venueID:  venueID,
		repo:     repo,
		notifier: notifier,
		clock:    clock,
		log:      log.With(zap.String("worker", "booking_monitor"), zap.String("venue_id", venueID.String())),
	}
}

// Activate arms the monitor. Ticks before activation and after Stop are
// no-ops.
func (m *BookingMonitor) Activate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = true
}

// Stop disarms the monitor and clears all cached state so nothing stale
// leaks into a later activation. An in-flight fetch is not cancelled; its
// completion is discarded by the active check in Tick.
func (m *BookingMonitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = false
	m.checking = false
	m.bookings = nil
	m.hasBookings = nil
	m.lastChecked = time.Time{}
	m.lastErr = nil
}

// Tick runs one reconciliation round against the authoritative store.
func (m *BookingMonitor) Tick(ctx context.Context) {
	m.mu.Lock()
	if !m.active || m.checking {
		// Drop, don't queue.
		m.mu.Unlock()
		return
	}
	m.checking = true
	m.mu.Unlock()

	now := m.clock.Now()
	bookings, err := m.repo.FindByVenueAndDate(ctx, m.venueID, utils.DateOnly(now))

	var event *notify.Event

	m.mu.Lock()
	if !m.active {
		// Stopped while the fetch was in flight; discard the result.
		m.mu.Unlock()
		return
	}
	m.checking = false
	m.lastChecked = now

	if err != nil {
		// Keep the previous cache; the next tick retries naturally.
		m.lastErr = err
		m.mu.Unlock()
		m.log.Warn("Reconciliation fetch failed", zap.Error(err))
		return
	}
	m.lastErr = nil

	if bookingsDiffer(m.bookings, bookings) {
		m.bookings = bookings
		m.log.Debug("Booking cache refreshed", zap.Int("count", len(bookings)))
	}

	has := len(bookings) > 0
	if m.hasBookings != nil && *m.hasBookings != has {
		msg := "Venue no longer has bookings for today"
		if has {
			msg = "Venue has bookings for today"
		}
		event = &notify.Event{
			Type:    notify.EventBookingsChanged,
			VenueID: m.venueID.String(),
			Message: msg,
			At:      now,
		}
	}
	m.hasBookings = &has
	m.mu.Unlock()

	if event != nil {
		m.notifier.Notify(ctx, *event)
	}
}

// Status reports the current monitor state.
func (m *BookingMonitor) Status() MonitorStatus {
	m.mu.Lock()
	defer m.mu.Unlock()

	status := MonitorStatus{
		LastCheckedAt: m.lastChecked,
		BookingCount:  len(m.bookings),
		IsChecking:    m.checking,
		Err:           m.lastErr,
	}
	if m.hasBookings != nil {
		status.HasBookings = *m.hasBookings
	}
	return status
}

// Bookings returns the last reconciled booking list.
func (m *BookingMonitor) Bookings() []*entity.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bookings
}

// bookingsDiffer compares two lists keyed by booking ID. A pure reorder
// with identical field values is not a change.
func bookingsDiffer(prev, next []*entity.Booking) bool {
	if len(prev) != len(next) {
		return true
	}

	byID := make(map[uuid.UUID]*entity.Booking, len(prev))
	for _, b := range prev {
		byID[b.ID] = b
	}

	for _, b := range next {
		p, ok := byID[b.ID]
		if !ok {
			return true
		}
		if p.Status != b.Status ||
			p.PaidAmount != b.PaidAmount ||
			p.IsNoShow != b.IsNoShow ||
			!equalTimePtr(p.CheckInTime, b.CheckInTime) ||
			!equalTimePtr(p.InCartSince, b.InCartSince) {
			return true
		}
	}

	return false
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
