package list_appointments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicService/internal/service/appointments/models"
)

type fakeService struct {
	rows []models.AppointmentRow
	err  error
}

func (f *fakeService) List(_ context.Context) ([]models.AppointmentRow, error) {
	return f.rows, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_EnrichedRow(t *testing.T) {
	doctorName := "Иванова А.П."
	svc := &fakeService{rows: []models.AppointmentRow{
		{
			AppointmentID:   5,
			StartAt:         "2026-03-01T10:00:00Z",
			DurationMinutes: 30,
			Status:          "NEW",
			PatientID:       1,
			DoctorID:        2,
			DoctorFullName:  &doctorName,
			ServiceID:       3,
			CabinetID:       4,
		},
	}}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/appointments", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, float64(5), rows[0]["AppointmentId"])
	assert.Equal(t, "NEW", rows[0]["Status"])
	assert.Equal(t, doctorName, rows[0]["DoctorFullName"])

	// Поля обогащения с неразрешимыми ссылками отдаются как null
	assert.Contains(t, rows[0], "ServiceName")
	assert.Nil(t, rows[0]["ServiceName"])
}

func TestHandle_EmptyListIsArray(t *testing.T) {
	svc := &fakeService{rows: []models.AppointmentRow{}}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/appointments", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandle_StoreError(t *testing.T) {
	svc := &fakeService{err: errors.New("pq: relation \"appointments\" does not exist")}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/appointments", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "does not exist")
}
