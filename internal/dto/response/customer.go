package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type CustomerResponse struct {
	ID        string    `json:"id"`
	VenueID   string    `json:"venue_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Quota     int       `json:"quota"`
	IsMember  bool      `json:"is_member"`
	CreatedAt time.Time `json:"created_at"`
}

func CustomerToResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID.String(),
		VenueID:   c.VenueID.String(),
		Name:      c.Name,
		Phone:     c.Phone,
		Quota:     c.Quota,
		IsMember:  c.IsMember,
		CreatedAt: c.CreatedAt,
	}
}
