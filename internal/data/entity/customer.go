package entity

import (
	"github.com/google/uuid"
)

type Customer struct {
	Base
	VenueID  uuid.UUID `db:"venue_id"`
	Name     string    `db:"name"`
	Phone    string    `db:"phone"`
	Quota    int       `db:"quota"`
	IsMember bool      `db:"is_member"`
}
