package update_appointment_status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
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

func newRouter() *mux.Router {
	svc := appointments.NewService(appointment.NewRepository(appointment.Seed()), nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/admin/appointments/{appointmentId}/status", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)
	return r
}

func patch(r *mux.Router, id, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/admin/appointments/"+id+"/status", strings.NewReader(body)))
	return w
}

func TestHandle_ApprovePending(t *testing.T) {
	r := newRouter()

	w := patch(r, "2", `{"status":"approved"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.ID)
	assert.Equal(t, "approved", resp.Status)

	w = patch(r, "2", `{"status":"rejected"}`)
	assert.Equal(t, http.StatusConflict, w.Code, "decision is final")
}

func TestHandle_Errors(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name     string
		id       string
		body     string
		wantCode int
	}{
		{name: "bad id", id: "abc", body: `{"status":"approved"}`, wantCode: http.StatusBadRequest},
		{name: "zero id", id: "0", body: `{"status":"approved"}`, wantCode: http.StatusBadRequest},
		{name: "bad body", id: "4", body: `{`, wantCode: http.StatusBadRequest},
		{name: "back to pending", id: "4", body: `{"status":"pending"}`, wantCode: http.StatusBadRequest},
		{name: "unknown status", id: "4", body: `{"status":"cancelled"}`, wantCode: http.StatusBadRequest},
		{name: "not found", id: "404", body: `{"status":"approved"}`, wantCode: http.StatusNotFound},
		{name: "already approved", id: "1", body: `{"status":"rejected"}`, wantCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, patch(r, tt.id, tt.body).Code)
		})
	}
}
