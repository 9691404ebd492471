package adaptor

import (
	"net/http"

	"venue-booking/internal/dto/response"
	"venue-booking/internal/worker"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MonitorHandler struct {
	manager *worker.Manager
	log     *zap.Logger
}

func NewMonitorHandler(manager *worker.Manager, log *zap.Logger) *MonitorHandler {
	return &MonitorHandler{
		manager: manager,
		log:     log.With(zap.String("handler", "monitor")),
	}
}

func (h *MonitorHandler) parseVenueID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	venueID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid venue ID", nil)
		return uuid.Nil, false
	}
	return venueID, true
}

// StartMonitor handles POST /api/venues/{id}/monitor
func (h *MonitorHandler) StartMonitor(w http.ResponseWriter, r *http.Request) {
	venueID, ok := h.parseVenueID(w, r)
	if !ok {
		return
	}

	if err := h.manager.StartMonitor(r.Context(), venueID); err != nil {
		writeServiceError(w, h.log, err, "start monitor")
		return
	}

	utils.ResponseCreated(w, "success", nil)
}

// StopMonitor handles DELETE /api/venues/{id}/monitor
func (h *MonitorHandler) StopMonitor(w http.ResponseWriter, r *http.Request) {
	venueID, ok := h.parseVenueID(w, r)
	if !ok {
		return
	}

	if err := h.manager.StopMonitor(venueID); err != nil {
		writeServiceError(w, h.log, err, "stop monitor")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetMonitorStatus handles GET /api/venues/{id}/monitor
func (h *MonitorHandler) GetMonitorStatus(w http.ResponseWriter, r *http.Request) {
	venueID, ok := h.parseVenueID(w, r)
	if !ok {
		return
	}

	status, err := h.manager.MonitorStatus(venueID)
	if err != nil {
		writeServiceError(w, h.log, err, "get monitor status")
		return
	}

	resp := response.MonitorStatusResponse{
		VenueID:      venueID.String(),
		BookingCount: status.BookingCount,
		HasBookings:  status.HasBookings,
		IsChecking:   status.IsChecking,
	}
	if !status.LastCheckedAt.IsZero() {
		t := status.LastCheckedAt
		resp.LastCheckedAt = &t
	}
	if status.Err != nil {
		resp.Error = status.Err.Error()
	}

	utils.ResponseSuccess(w, "success", resp)
}
