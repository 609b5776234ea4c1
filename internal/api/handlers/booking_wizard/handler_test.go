package booking_wizard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-booking/internal/api/session"
	"github.com/m04kA/barber-booking/internal/availability"
	"github.com/m04kA/barber-booking/internal/domain"
	createBooking "github.com/m04kA/barber-booking/internal/usecase/create_booking"
	"github.com/m04kA/barber-booking/internal/wizard"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type staticLoader struct {
	schedule *availability.Schedule
	err      error
}

func (s staticLoader) LoadSchedule(context.Context) (*availability.Schedule, error) {
	return s.schedule, s.err
}

// memoryStore хранит мастер между запросами одного теста
type memoryStore struct {
	flow *wizard.Flow
}

func (m *memoryStore) LoadWizard(*http.Request) *wizard.Flow {
	if m.flow == nil {
		return wizard.New()
	}
	f := *m.flow
	return &f
}

func (m *memoryStore) SaveWizard(_ http.ResponseWriter, flow *wizard.Flow) error {
	f := *flow
	m.flow = &f
	return nil
}

type stubCreateBooking struct {
	got *createBooking.Request
	err error
}

func (s *stubCreateBooking) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &createBooking.Response{
		ID:     9,
		Date:   req.Date,
		Time:   req.Time,
		Status: domain.StatusPending,
	}, nil
}

type fixture struct {
	h       *Handler
	store   *memoryStore
	booking *stubCreateBooking
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s, err := availability.FromSettings(domain.DefaultScheduleSettings())
	require.NoError(t, err)

	f := &fixture{store: &memoryStore{}, booking: &stubCreateBooking{}}
	f.h = NewHandler(staticLoader{schedule: s}, f.booking, f.store, time.UTC, nopLogger{})
	f.h.now = func() time.Time { return time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC) }
	return f
}

func (f *fixture) post(t *testing.T, body string) (int, WizardResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	f.h.HandlePost(w, httptest.NewRequest(http.MethodPost, "/api/v1/booking/wizard", strings.NewReader(body)))

	var resp WizardResponse
	if w.Code != http.StatusInternalServerError {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w.Code, resp
}

const detailsBody = `{"action":"set_details","details":{"name":"Moshe Golan","peopleCount":1,"notificationMethod":"WhatsApp","contactInfo":"052-7654321"}}`

func TestWizard_FullFlow(t *testing.T) {
	f := newFixture(t)

	code, resp := f.post(t, `{"action":"set_datetime","date":"2026-10-22","time":"14:15"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "selecting_date_time", resp.Step)
	assert.True(t, resp.CanProceed)
	require.NotNil(t, resp.Verdict)
	assert.True(t, resp.Verdict.Valid)

	code, resp = f.post(t, `{"action":"next"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "entering_details", resp.Step)

	code, _ = f.post(t, detailsBody)
	require.Equal(t, http.StatusOK, code)

	code, resp = f.post(t, `{"action":"next"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "reviewing_summary", resp.Step)
	assert.Equal(t, "Moshe Golan", resp.Details.Name)

	code, resp = f.post(t, `{"action":"submit","service":"Beard trim"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "submitted", resp.Step)
	require.NotNil(t, resp.Appointment)
	assert.Equal(t, int64(9), resp.Appointment.ID)
	assert.Equal(t, "pending", resp.Appointment.Status)
	assert.Equal(t, "Beard trim", f.booking.got.Service)
	assert.Equal(t, "2026-10-22", domain.DateKey(f.booking.got.Date))

	code, resp = f.post(t, `{"action":"back"}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, msgAlreadySubmitted, resp.Error)

	code, resp = f.post(t, `{"action":"reset"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "selecting_date_time", resp.Step)
	assert.Empty(t, resp.Date)
	assert.Nil(t, resp.Verdict)
}

func TestWizard_ReactiveValidation(t *testing.T) {
	f := newFixture(t)

	code, resp := f.post(t, `{"action":"set_datetime","date":"2026-10-24","time":"10:00"}`)
	require.Equal(t, http.StatusOK, code, "verdict is shown, not an action error")
	assert.Equal(t, "2026-10-24", resp.Date)
	assert.False(t, resp.CanProceed)
	require.NotNil(t, resp.Verdict)
	assert.Equal(t, "closed on Saturdays", resp.Verdict.Reason)

	code, resp = f.post(t, `{"action":"next"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "selecting_date_time", resp.Step)

	code, resp = f.post(t, `{"action":"set_datetime","date":"2026-10-22"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "10:00", resp.Time, "time is kept when only the date changes")
	assert.True(t, resp.CanProceed)
}

func TestWizard_Gates(t *testing.T) {
	f := newFixture(t)

	code, resp := f.post(t, `{"action":"next"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, msgSelectionRequired, resp.Error)

	code, _ = f.post(t, `{"action":"back"}`)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = f.post(t, detailsBody)
	assert.Equal(t, http.StatusConflict, code, "details are not accepted on the first step")

	code, _ = f.post(t, `{"action":"set_datetime","date":"2026-10-22","time":"09:00"}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = f.post(t, `{"action":"next"}`)
	require.Equal(t, http.StatusOK, code)

	code, resp = f.post(t, `{"action":"next"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, msgDetailsIncomplete, resp.Error)

	code, _ = f.post(t, `{"action":"set_details","details":{"name":"Moshe","peopleCount":1,"notificationMethod":"Email","contactInfo":"052-7654321"}}`)
	require.Equal(t, http.StatusOK, code)
	code, resp = f.post(t, `{"action":"next"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, msgInvalidDetails, resp.Error)
}

func TestWizard_SubmitFailureKeepsSummary(t *testing.T) {
	f := newFixture(t)
	f.booking.err = &availability.ClosedDayError{Label: "Emergency closure", FromOverride: true}

	f.post(t, `{"action":"set_datetime","date":"2026-10-22","time":"09:00"}`)
	f.post(t, `{"action":"next"}`)
	f.post(t, detailsBody)
	f.post(t, `{"action":"next"}`)

	code, resp := f.post(t, `{"action":"submit"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "reviewing_summary", resp.Step)
	assert.Nil(t, resp.Appointment)

	f.booking.err = errors.New("boom")
	code, _ = f.post(t, `{"action":"submit"}`)
	assert.Equal(t, http.StatusInternalServerError, code)
}

func TestWizard_BadRequests(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{`},
		{name: "unknown action", body: `{"action":"jump"}`},
		{name: "bad date", body: `{"action":"set_datetime","date":"22.10.2026"}`},
		{name: "past date", body: `{"action":"set_datetime","date":"2026-10-18"}`},
		{name: "details missing", body: `{"action":"set_details"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			f.h.HandlePost(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	assert.Nil(t, f.store.flow, "rejected requests do not touch the stored state")
}

func TestWizard_CookieRoundTrip(t *testing.T) {
	s, err := availability.FromSettings(domain.DefaultScheduleSettings())
	require.NoError(t, err)

	sessions := session.NewManager(
		[]byte("0123456789abcdef0123456789abcdef"),
		[]byte("abcdef0123456789abcdef0123456789"),
		session.Options{MaxAge: 3600},
	)
	h := NewHandler(staticLoader{schedule: s}, &stubCreateBooking{}, sessions, time.UTC, nopLogger{})
	h.now = func() time.Time { return time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC) }

	w := httptest.NewRecorder()
	h.HandlePost(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"action":"set_datetime","date":"2026-10-23","time":"08:30"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	w = httptest.NewRecorder()
	h.HandleGet(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	var resp WizardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-10-23", resp.Date)
	assert.Equal(t, "08:30", resp.Time)
	assert.True(t, resp.CanProceed)
}

func TestWizard_ScheduleError(t *testing.T) {
	h := NewHandler(staticLoader{err: errors.New("db down")}, &stubCreateBooking{}, &memoryStore{}, nil, nopLogger{})

	w := httptest.NewRecorder()
	h.HandleGet(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
