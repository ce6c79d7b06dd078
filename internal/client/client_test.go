package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 5*time.Second, nopLogger{}), srv
}

func TestDoctors_PascalCaseResponse(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/doctors", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"DoctorId":1,"FullName":"Иванова А.П.","Specialty":"УЗД","IsActive":true}]`))
	})
	defer srv.Close()

	doctors, err := c.Doctors(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, int64(1), doctors[0].ID)
	assert.Equal(t, "Иванова А.П.", doctors[0].FullName)
	require.NotNil(t, doctors[0].Specialty)
	assert.Equal(t, "УЗД", *doctors[0].Specialty)
	assert.True(t, doctors[0].IsActive)
}

func TestAppointments_DerivesDuration(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"appointmentId":5,"startAt":"2026-03-01T10:00:00Z","endAt":"2026-03-01T10:45:00Z","status":"NEW","patientId":1,"doctorId":2,"serviceId":3,"cabinetId":4}]`))
	})
	defer srv.Close()

	rows, err := c.Appointments(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 45, rows[0].DurationMinutes)
	assert.Equal(t, domain.StatusNew, rows[0].Status)
}

func TestCreateAppointment_Success(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(1), body["PatientId"])
		w.Write([]byte(`{"NewAppointmentId":77}`))
	})
	defer srv.Close()

	id, err := c.CreateAppointment(context.Background(), &domain.AppointmentCreate{
		PatientID: 1, DoctorID: 2, ServiceID: 3, CabinetID: 4,
		StartAt:         time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
		Status:          domain.StatusNew,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)
}

func TestCreateAppointment_ServerErrorMessagePreserved(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Invalid PatientId: must be > 0"}`))
	})
	defer srv.Close()

	_, err := c.CreateAppointment(context.Background(), &domain.AppointmentCreate{})
	require.ErrorIs(t, err, ErrAPI)
	assert.Contains(t, err.Error(), "Invalid PatientId: must be > 0")
}

func TestUpdateAppointmentStatus_NotFound(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Appointment not found"}`))
	})
	defer srv.Close()

	_, err := c.UpdateAppointmentStatus(context.Background(), 999, domain.StatusDone)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateAppointmentStatus_Success(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/appointments/42/status", r.URL.Path)
		w.Write([]byte(`{"AppointmentId":42,"Status":"READY"}`))
	})
	defer srv.Close()

	upd, err := c.UpdateAppointmentStatus(context.Background(), 42, domain.StatusReady)
	require.NoError(t, err)
	assert.Equal(t, int64(42), upd.AppointmentID)
	assert.Equal(t, domain.StatusReady, upd.Status)
}

func TestHealth_Degraded(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"ok":false,"error":"pq: connection refused"}`))
	})
	defer srv.Close()

	err := c.Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
