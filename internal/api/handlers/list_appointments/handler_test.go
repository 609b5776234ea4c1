package list_appointments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-booking/internal/infra/storage/appointment"
	"github.com/m04kA/barber-booking/internal/service/appointments"
	"github.com/m04kA/barber-booking/internal/service/appointments/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newHandler() *Handler {
	svc := appointments.NewService(appointment.NewRepository(appointment.Seed()), nopLogger{})
	return NewHandler(svc, nopLogger{})
}

func get(t *testing.T, h *Handler, url string) (int, models.AppointmentListResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, url, nil))

	var resp models.AppointmentListResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

func TestHandle_Filters(t *testing.T) {
	h := newHandler()

	tests := []struct {
		name      string
		url       string
		wantTotal int
	}{
		{name: "all", url: "/api/v1/admin/appointments", wantTotal: 8},
		{name: "all tab", url: "/api/v1/admin/appointments?status=all", wantTotal: 8},
		{name: "pending", url: "/api/v1/admin/appointments?status=pending", wantTotal: 3},
		{name: "approved", url: "/api/v1/admin/appointments?status=approved", wantTotal: 5},
		{name: "search by name", url: "/api/v1/admin/appointments?q=cohen", wantTotal: 3},
		{name: "pending and search", url: "/api/v1/admin/appointments?status=pending&q=levi", wantTotal: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := get(t, h, tt.url)
			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, tt.wantTotal, resp.Total)
			assert.Len(t, resp.Appointments, tt.wantTotal)
		})
	}
}

func TestHandle_InvalidStatus(t *testing.T) {
	code, _ := get(t, newHandler(), "/api/v1/admin/appointments?status=cancelled")
	assert.Equal(t, http.StatusBadRequest, code)
}
