package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string     `json:"id"`
	VenueID       string     `json:"venue_id"`
	CourtID       string     `json:"court_id"`
	CustomerID    string     `json:"customer_id,omitempty"`
	BookingDate   string     `json:"booking_date"`
	StartTime     string     `json:"start_time"`
	DurationHours int        `json:"duration_hours"`
	CustomerName  string     `json:"customer_name"`
	Phone         string     `json:"phone"`
	Price         int64      `json:"price"`
	PaidAmount    int64      `json:"paid_amount"`
	Status        string     `json:"status"`
	UsedQuota     bool       `json:"used_quota"`
	CheckInTime   *time.Time `json:"check_in_time,omitempty"`
	IsNoShow      bool       `json:"is_no_show"`
	InCartSince   *time.Time `json:"in_cart_since,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID.String(),
		VenueID:       b.VenueID.String(),
		CourtID:       b.CourtID.String(),
		BookingDate:   b.BookingDate.Format("2006-01-02"),
		StartTime:     b.StartTime,
		DurationHours: b.DurationHours,
		CustomerName:  b.CustomerName,
		Phone:         b.Phone,
		Price:         b.Price,
		PaidAmount:    b.PaidAmount,
		Status:        string(b.Status),
		UsedQuota:     b.UsedQuota,
		CheckInTime:   b.CheckInTime,
		IsNoShow:      b.IsNoShow,
		InCartSince:   b.InCartSince,
		CreatedAt:     b.CreatedAt,
	}

	if b.CustomerID != nil {
		resp.CustomerID = b.CustomerID.String()
	}

	return resp
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		responses[i] = BookingToResponse(b)
	}
	return responses
}
