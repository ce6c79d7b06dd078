package list_dictionaries

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicService/internal/service/dictionaries/models"
)

type fakeService struct {
	doctors  []models.DoctorResponse
	services []models.ServiceResponse
	cabinets []models.CabinetResponse
	patients []models.PatientResponse
	err      error
}

func (f *fakeService) ListDoctors(_ context.Context) ([]models.DoctorResponse, error) {
	return f.doctors, f.err
}

func (f *fakeService) ListServices(_ context.Context) ([]models.ServiceResponse, error) {
	return f.services, f.err
}

func (f *fakeService) ListCabinets(_ context.Context) ([]models.CabinetResponse, error) {
	return f.cabinets, f.err
}

func (f *fakeService) ListPatients(_ context.Context) ([]models.PatientResponse, error) {
	return f.patients, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestDoctors_PascalCaseKeys(t *testing.T) {
	specialty := "УЗД"
	svc := &fakeService{doctors: []models.DoctorResponse{
		{DoctorID: 1, FullName: "Иванова А.П.", Specialty: &specialty, IsActive: true},
	}}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Doctors(rec, httptest.NewRequest(http.MethodGet, "/api/doctors", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, float64(1), rows[0]["DoctorId"])
	assert.Equal(t, "Иванова А.П.", rows[0]["FullName"])
	assert.Equal(t, "УЗД", rows[0]["Specialty"])
	assert.Equal(t, true, rows[0]["IsActive"])
}

func TestPatients_EmptyListIsArray(t *testing.T) {
	svc := &fakeService{patients: []models.PatientResponse{}}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Patients(rec, httptest.NewRequest(http.MethodGet, "/api/patients", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestServices_StoreError(t *testing.T) {
	svc := &fakeService{err: errors.New("pq: connection refused")}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Services(rec, httptest.NewRequest(http.MethodGet, "/api/services", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "connection refused")
}
