package update_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avergne/CFD-RdvService/internal/domain"
	"github.com/avergne/CFD-RdvService/internal/service/appointments"
	"github.com/avergne/CFD-RdvService/internal/service/appointments/models"
)

type fakeService struct {
	resp *models.AppointmentResponse
	err  error
}

func (f *fakeService) UpdateStatus(_ context.Context, _ int64, _ *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doRequest(h *Handler, id, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/appointments/{appointmentId}/status", h.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/"+id+"/status", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{
		resp: &models.AppointmentResponse{
			ID:             1,
			Type:           domain.TypeFormation,
			Date:           time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
			StartTime:      "10:00",
			StartTimeLabel: "10h00",
			Status:         domain.StatusConfirmed,
		},
	}
	h := NewHandler(svc, noopLogger{})

	rec := doRequest(h, "1", `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
}

func TestHandle_InvalidID(t *testing.T) {
	h := NewHandler(&fakeService{}, noopLogger{})

	rec := doRequest(h, "abc", `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&fakeService{}, noopLogger{})

	rec := doRequest(h, "1", `{"status":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", appointments.ErrAppointmentNotFound, http.StatusNotFound},
		{"unknown status", appointments.ErrInvalidStatus, http.StatusBadRequest},
		{"illegal transition", appointments.ErrInvalidTransition, http.StatusConflict},
		{"internal", appointments.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, noopLogger{})
			rec := doRequest(h, "1", `{"status":"confirmed"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
