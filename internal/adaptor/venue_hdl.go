package adaptor

import (
	"encoding/json"
	"net/http"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VenueHandler struct {
	service usecase.VenueService
	log     *zap.Logger
}

func NewVenueHandler(service usecase.VenueService, log *zap.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		log:     log.With(zap.String("handler", "venue")),
	}
}

// CreateVenue handles POST /api/venues
func (h *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var req request.CreateVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	venue, err := h.service.CreateVenue(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create venue")
		return
	}

	utils.ResponseCreated(w, "success", venue)
}

// GetVenueByID handles GET /api/venues/{id}
func (h *VenueHandler) GetVenueByID(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")
	if venueID == "" {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	venue, err := h.service.GetVenueByID(r.Context(), venueID)
	if err != nil {
		writeServiceError(w, h.log, err, "get venue by ID")
		return
	}

	utils.ResponseSuccess(w, "success", venue)
}

// CreateCourt handles POST /api/venues/{id}/courts
func (h *VenueHandler) CreateCourt(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")
	if venueID == "" {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	var req request.CreateCourtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	court, err := h.service.CreateCourt(r.Context(), venueID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create court")
		return
	}

	utils.ResponseCreated(w, "success", court)
}

// ListCourts handles GET /api/venues/{id}/courts
func (h *VenueHandler) ListCourts(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")
	if venueID == "" {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	courts, err := h.service.ListCourts(r.Context(), venueID)
	if err != nil {
		writeServiceError(w, h.log, err, "list courts")
		return
	}

	utils.ResponseSuccess(w, "success", courts)
}
