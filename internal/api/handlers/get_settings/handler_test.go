package get_settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/internal/service/settings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct{ err error }

func (s stubService) Get(context.Context) (*models.SettingsResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return models.FromDomainSettings(domain.DefaultScheduleSettings()), nil
}

func TestHandle(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(stubService{}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/settings", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SettingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 30, resp.SlotGranularityMinutes)
	assert.Len(t, resp.WeeklyHours, 7)
	require.Len(t, resp.SpecialDays, 2)
	assert.Equal(t, "Independence Day", resp.SpecialDays[0].Name)
}

func TestHandle_Error(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(stubService{err: errors.New("db down")}, nopLogger{}).
		Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/settings", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
