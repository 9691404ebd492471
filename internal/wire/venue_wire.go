package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireVenue(r chi.Router, venueHandler *adaptor.VenueHandler, monitorHandler *adaptor.MonitorHandler) {
	r.Route("/api/venues", func(r chi.Router) {
		// POST /api/venues - Register venue
		r.Post("/", venueHandler.CreateVenue)

		// GET /api/venues/{id} - Venue config
		r.Get("/{id}", venueHandler.GetVenueByID)

		// POST /api/venues/{id}/courts - Add court
		r.Post("/{id}/courts", venueHandler.CreateCourt)

		// GET /api/venues/{id}/courts - List courts
		r.Get("/{id}/courts", venueHandler.ListCourts)

		// Reconciliation monitor lifecycle per venue
		r.Post("/{id}/monitor", monitorHandler.StartMonitor)
		r.Get("/{id}/monitor", monitorHandler.GetMonitorStatus)
		r.Delete("/{id}/monitor", monitorHandler.StopMonitor)
	})
}
