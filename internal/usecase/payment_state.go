package usecase

import (
	"venue-booking/internal/data/entity"
)

// ResolvePaymentStatus maps a booking's price and paid amount to its payment
// status. Pure function, no side effects.
//
// Quota-funded bookings are always paid (the caller forces paidAmount to the
// full price). Paying the exact price counts as paid, not deposit.
func ResolvePaymentStatus(price, paidAmount int64, useQuota bool) entity.BookingStatus {
	if useQuota {
		return entity.BookingStatusPaid
	}
	if paidAmount >= price {
		return entity.BookingStatusPaid
	}
	if paidAmount > 0 {
		return entity.BookingStatusDeposit
	}
	return entity.BookingStatusUnpaid
}
