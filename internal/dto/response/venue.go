package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type VenueResponse struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	BookingTolerance     int       `json:"booking_tolerance"`
	MinDpPercentage      int       `json:"min_dp_percentage"`
	DepositPolicyEnabled bool      `json:"deposit_policy_enabled"`
	MinDepositAmount     int64     `json:"min_deposit_amount"`
	OpenHour             int       `json:"open_hour"`
	CloseHour            int       `json:"close_hour"`
	CreatedAt            time.Time `json:"created_at"`
}

func VenueToResponse(v *entity.Venue) VenueResponse {
	return VenueResponse{
		ID:                   v.ID.String(),
		Name:                 v.Name,
		BookingTolerance:     v.BookingTolerance,
		MinDpPercentage:      v.MinDpPercentage,
		DepositPolicyEnabled: v.DepositPolicyEnabled,
		MinDepositAmount:     v.MinDepositAmount,
		OpenHour:             v.OpenHour,
		CloseHour:            v.CloseHour,
		CreatedAt:            v.CreatedAt,
	}
}

type CourtResponse struct {
	ID          string    `json:"id"`
	VenueID     string    `json:"venue_id"`
	Name        string    `json:"name"`
	HourlyPrice int64     `json:"hourly_price"`
	CreatedAt   time.Time `json:"created_at"`
}

func CourtToResponse(c *entity.Court) CourtResponse {
	return CourtResponse{
		ID:          c.ID.String(),
		VenueID:     c.VenueID.String(),
		Name:        c.Name,
		HourlyPrice: c.HourlyPrice,
		CreatedAt:   c.CreatedAt,
	}
}
