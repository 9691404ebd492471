package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCustomer(r chi.Router, customerHandler *adaptor.CustomerHandler) {
	r.Route("/api/customers", func(r chi.Router) {
		// POST /api/customers - Register customer
		r.Post("/", customerHandler.CreateCustomer)

		// GET /api/customers/{id} - Customer details including quota
		r.Get("/{id}", customerHandler.GetCustomerByID)

		// PUT /api/customers/{id}/quota - Manual quota top-up/correction
		r.Put("/{id}/quota", customerHandler.UpdateQuota)
	})
}
