package create_appointment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/m04kA/SMC-ClinicService/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	lastReq *createAppointment.Request
	resp    *createAppointment.Response
	err     error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_PascalAndCamelCaseGiveSameRequest(t *testing.T) {
	pascal := `{"PatientId":1,"DoctorId":2,"ServiceId":3,"CabinetId":4,"StartAt":"2026-03-01T10:00:00Z","DurationMinutes":45,"Status":"CONFIRMED"}`
	camel := `{"patientId":1,"doctorId":2,"serviceId":3,"cabinetId":4,"startAt":"2026-03-01T10:00:00Z","durationMinutes":45,"status":"CONFIRMED"}`

	var requests []*createAppointment.Request
	for _, body := range []string{pascal, camel} {
		uc := &fakeUseCase{resp: &createAppointment.Response{ID: 9}}
		h := NewHandler(uc, nopLogger{})

		rec := doRequest(h, body)

		require.Equal(t, http.StatusOK, rec.Code)
		requests = append(requests, uc.lastReq)
	}

	assert.Equal(t, requests[0], requests[1])
	assert.Equal(t, int64(1), requests[0].PatientID)
	assert.Equal(t, 45, requests[0].DurationMinutes)
}

func TestHandle_SuccessReturnsNewAppointmentId(t *testing.T) {
	uc := &fakeUseCase{resp: &createAppointment.Response{ID: 123}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, `{"patientId":1,"doctorId":2,"serviceId":3,"cabinetId":4,"startAt":"2026-03-01T10:00:00Z"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(123), resp["NewAppointmentId"])
}

func TestHandle_ValidationErrorNamesField(t *testing.T) {
	uc := &fakeUseCase{err: &createAppointment.ValidationError{Field: "PatientId", Reason: "must be > 0"}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, `{"patientId":0,"doctorId":2,"serviceId":3,"cabinetId":4,"startAt":"2026-03-01T10:00:00Z"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid PatientId: must be > 0")
}

func TestHandle_MalformedBody(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, `{это не json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.lastReq)
}

func TestHandle_StoreErrorSurfacedAs500(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("pq: connection refused")}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, `{"patientId":1,"doctorId":2,"serviceId":3,"cabinetId":4,"startAt":"2026-03-01T10:00:00Z"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}
