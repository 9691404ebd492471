package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		// POST /api/bookings - Create booking
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings?venue_id=...&date=... - List venue bookings
		r.Get("/", bookingHandler.ListBookings)

		// PUT /api/bookings/{id} - Partial edit
		r.Put("/{id}", bookingHandler.UpdateBooking)

		// DELETE /api/bookings/{id} - Delete booking
		r.Delete("/{id}", bookingHandler.DeleteBooking)

		// POST /api/bookings/{id}/check-in - Mark attendance
		r.Post("/{id}/check-in", bookingHandler.CheckInBooking)

		// POST /api/bookings/{id}/cart - Pause the no-show deadline
		r.Post("/{id}/cart", bookingHandler.HoldInCart)

		// DELETE /api/bookings/{id}/cart - Resume the no-show deadline
		r.Delete("/{id}/cart", bookingHandler.ReleaseCart)
	})
}
