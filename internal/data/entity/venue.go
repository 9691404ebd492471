package entity

import (
	"time"
)

type Venue struct {
	Base
	Name                 string `db:"name"`
	BookingTolerance     int    `db:"booking_tolerance"` // minutes
	MinDpPercentage      int    `db:"min_dp_percentage"`
	DepositPolicyEnabled bool   `db:"deposit_policy_enabled"`
	MinDepositAmount     int64  `db:"min_deposit_amount"`
	OpenHour             int    `db:"open_hour"`
	CloseHour            int    `db:"close_hour"`
}

func (v *Venue) ToleranceDuration() time.Duration {
	return time.Duration(v.BookingTolerance) * time.Minute
}
