package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusUnpaid    BookingStatus = "unpaid"
	BookingStatusDeposit   BookingStatus = "deposit"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// SweepPhase is the explicit state a booking occupies with respect to the
// no-show sweep. The deadline is always anchored at CreatedAt; holding the
// booking in a cart pauses evaluation without moving the deadline.
type SweepPhase int

const (
	SweepSettled SweepPhase = iota // paid, checked in, cancelled, or enough DP
	SweepPaused                    // in cart, deadline suspended while held
	SweepActive                    // unpaid/partial, deadline still in the future
	SweepExpired                   // deadline passed, eligible for cancellation
)

type Booking struct {
	Base
	VenueID       uuid.UUID     `db:"venue_id"`
	CourtID       uuid.UUID     `db:"court_id"`
	CustomerID    *uuid.UUID    `db:"customer_id"`
	BookingDate   time.Time     `db:"booking_date"`
	StartTime     string        `db:"start_time"`
	DurationHours int           `db:"duration_hours"`
	CustomerName  string        `db:"customer_name"`
	Phone         string        `db:"phone"`
	Price         int64         `db:"price"`
	PaidAmount    int64         `db:"paid_amount"`
	Status        BookingStatus `db:"status"`
	UsedQuota     bool          `db:"used_quota"`
	CheckInTime   *time.Time    `db:"check_in_time"`
	IsNoShow      bool          `db:"is_no_show"`
	InCartSince   *time.Time    `db:"in_cart_since"`
}

// PaidPercent returns the paid portion of the price in whole percent.
// A non-positive price counts as 0% paid.
func (b *Booking) PaidPercent() int {
	if b.Price <= 0 {
		return 0
	}
	return int(b.PaidAmount * 100 / b.Price)
}

// NoShowDeadline is the moment the booking expires if payment stays below
// the venue minimum. Anchored at CreatedAt, never reset by cart holds.
func (b *Booking) NoShowDeadline(tolerance time.Duration) time.Time {
	return b.CreatedAt.Add(tolerance)
}

// SweepPhase evaluates the booking against the no-show rules at the given
// instant. minDpPercent is the venue minimum down-payment percentage.
func (b *Booking) SweepPhase(now time.Time, tolerance time.Duration, minDpPercent int) SweepPhase {
	switch b.Status {
	case BookingStatusPaid, BookingStatusCancelled, BookingStatusCompleted:
		return SweepSettled
	}
	if b.CheckInTime != nil {
		return SweepSettled
	}
	if b.InCartSince != nil {
		return SweepPaused
	}
	if b.PaidPercent() >= minDpPercent {
		return SweepSettled
	}
	// Without a creation time there is no deadline to enforce.
	if b.CreatedAt.IsZero() {
		return SweepSettled
	}
	if now.After(b.NoShowDeadline(tolerance)) {
		return SweepExpired
	}
	return SweepActive
}
