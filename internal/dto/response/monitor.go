package response

import (
	"time"
)

// MonitorStatusResponse mirrors the reconciliation loop's status record.
type MonitorStatusResponse struct {
	VenueID       string     `json:"venue_id"`
	LastCheckedAt *time.Time `json:"last_checked_at,omitempty"`
	BookingCount  int        `json:"booking_count"`
	HasBookings   bool       `json:"has_bookings"`
	IsChecking    bool       `json:"is_checking"`
	Error         string     `json:"error,omitempty"`
}
