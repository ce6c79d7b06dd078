package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

type fakeCreator struct {
	lastParams *domain.AppointmentCreate
	calls      int
	id         int64
	err        error
}

func (f *fakeCreator) Create(_ context.Context, params *domain.AppointmentCreate) (int64, error) {
	f.calls++
	f.lastParams = params
	return f.id, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		PatientID: 1,
		DoctorID:  2,
		ServiceID: 3,
		CabinetID: 4,
		StartAt:   "2026-03-01T10:00:00Z",
	}
}

func TestExecute_InvalidIDsNameTheField(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Request)
		field  string
	}{
		{"patient zero", func(r *Request) { r.PatientID = 0 }, "PatientId"},
		{"doctor negative", func(r *Request) { r.DoctorID = -5 }, "DoctorId"},
		{"service zero", func(r *Request) { r.ServiceID = 0 }, "ServiceId"},
		{"cabinet zero", func(r *Request) { r.CabinetID = 0 }, "CabinetId"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeCreator{id: 10}
			uc := NewUseCase(repo, nopLogger{})

			req := validRequest()
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
			assert.Equal(t, "Invalid "+tc.field+": must be > 0", vErr.Error())

			// до хранилища дойти не должны
			assert.Zero(t, repo.calls)
		})
	}
}

func TestExecute_MissingStartAt(t *testing.T) {
	repo := &fakeCreator{id: 10}
	uc := NewUseCase(repo, nopLogger{})

	req := validRequest()
	req.StartAt = "   "

	_, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "StartAt", vErr.Field)
	assert.Zero(t, repo.calls)
}

func TestExecute_UnparseableStartAt(t *testing.T) {
	repo := &fakeCreator{id: 10}
	uc := NewUseCase(repo, nopLogger{})

	req := validRequest()
	req.StartAt = "завтра утром"

	_, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, repo.calls)
}

func TestExecute_DefaultsApplied(t *testing.T) {
	repo := &fakeCreator{id: 42}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)

	require.NotNil(t, repo.lastParams)
	assert.Equal(t, domain.DefaultDurationMinutes, repo.lastParams.DurationMinutes)
	assert.Equal(t, domain.StatusNew, repo.lastParams.Status)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), repo.lastParams.StartAt)
}

func TestExecute_ExplicitDurationAndStatus(t *testing.T) {
	repo := &fakeCreator{id: 7}
	uc := NewUseCase(repo, nopLogger{})

	req := validRequest()
	req.DurationMinutes = 45
	req.Status = "CONFIRMED"

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 45, repo.lastParams.DurationMinutes)
	assert.Equal(t, domain.StatusConfirmed, repo.lastParams.Status)
}

func TestExecute_RepositoryErrorWrapped(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &fakeCreator{err: repoErr}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "connection refused")
}
