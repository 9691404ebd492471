package usecase

import (
	"venue-booking/internal/data/entity"
	"venue-booking/pkg/apperror"
)

// EvaluateDepositPolicy enforces the venue's minimum deposit for new
// bookings. Edits and quota-funded bookings are exempt.
func EvaluateDepositPolicy(venue *entity.Venue, paidAmount int64, isNewBooking, useQuota bool) error {
	if !venue.DepositPolicyEnabled || !isNewBooking || useQuota {
		return nil
	}

	if paidAmount < venue.MinDepositAmount {
		return apperror.Validation("minimum deposit for this venue is %d, got %d", venue.MinDepositAmount, paidAmount)
	}

	return nil
}
