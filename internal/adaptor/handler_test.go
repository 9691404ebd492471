package adaptor

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"venue-booking/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWriteServiceErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation maps to 400", apperror.Validation("invalid booking date"), http.StatusBadRequest},
		{"not found maps to 404", apperror.NotFound("booking not found"), http.StatusNotFound},
		{"conflict maps to 409", apperror.Conflict("no remaining quota"), http.StatusConflict},
		{"transient maps to 503", apperror.Transient("store unreachable", errors.New("dial tcp")), http.StatusServiceUnavailable},
		{"unknown maps to 500", errors.New("something broke"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			writeServiceError(rec, zap.NewNop(), tt.err, "test operation")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestWriteServiceErrorUnwrapsWrappedErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := errors.Join(errors.New("load booking"), apperror.NotFound("booking not found"))

	writeServiceError(rec, zap.NewNop(), wrapped, "test operation")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
