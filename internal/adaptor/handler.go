package adaptor

import (
	"errors"
	"net/http"

	"venue-booking/internal/usecase"
	"venue-booking/internal/worker"
	"venue-booking/pkg/apperror"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Venue    *VenueHandler
	Customer *CustomerHandler
	Booking  *BookingHandler
	Monitor  *MonitorHandler
}

func NewHandler(service *usecase.Service, manager *worker.Manager, log *zap.Logger) *Handler {
	return &Handler{
		Venue:    NewVenueHandler(service.Venue, log),
		Customer: NewCustomerHandler(service.Customer, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Monitor:  NewMonitorHandler(manager, log),
	}
}

// writeServiceError maps the error taxonomy to HTTP responses.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var ae *apperror.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperror.KindValidation:
			log.Warn(operation+" failed - validation", zap.Error(err))
			utils.ResponseBadRequest(w, ae.Msg, nil)
			return
		case apperror.KindNotFound:
			log.Warn(operation+" failed - not found", zap.Error(err))
			utils.ResponseNotFound(w, ae.Msg)
			return
		case apperror.KindConflict:
			log.Warn(operation+" failed - conflict", zap.Error(err))
			utils.ResponseConflict(w, ae.Msg)
			return
		case apperror.KindTransient:
			log.Error(operation+" failed - store unavailable", zap.Error(err))
			utils.ResponseServiceUnavailable(w, "Store temporarily unavailable")
			return
		}
	}

	log.Error("Failed to "+operation, zap.Error(err))
	utils.ResponseInternalError(w, "Internal server error")
}
