package entity

import (
	"github.com/google/uuid"
)

type Court struct {
	Base
	VenueID     uuid.UUID `db:"venue_id"`
	Name        string    `db:"name"`
	HourlyPrice int64     `db:"hourly_price"`
}
