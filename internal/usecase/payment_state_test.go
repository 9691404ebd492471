package usecase

import (
	"testing"

	"venue-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
)

func TestResolvePaymentStatus(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		paid     int64
		useQuota bool
		want     entity.BookingStatus
	}{
		{"no payment", 100000, 0, false, entity.BookingStatusUnpaid},
		{"partial payment", 100000, 50000, false, entity.BookingStatusDeposit},
		{"one short of full", 100000, 99999, false, entity.BookingStatusDeposit},
		{"exact payment counts as paid", 100000, 100000, false, entity.BookingStatusPaid},
		{"overpayment", 100000, 150000, false, entity.BookingStatusPaid},
		{"quota overrides zero payment", 100000, 0, true, entity.BookingStatusPaid},
		{"quota overrides partial payment", 100000, 10000, true, entity.BookingStatusPaid},
		{"minimal deposit", 100000, 1, false, entity.BookingStatusDeposit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePaymentStatus(tt.price, tt.paid, tt.useQuota)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePaymentStatusIsDirectTransition(t *testing.T) {
	// Paying the full amount from zero goes straight to paid; deposit is
	// not a required intermediate state.
	assert.Equal(t, entity.BookingStatusUnpaid, ResolvePaymentStatus(100000, 0, false))
	assert.Equal(t, entity.BookingStatusPaid, ResolvePaymentStatus(100000, 100000, false))
}
