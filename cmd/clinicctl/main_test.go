package main

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

type updaterFunc func(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.AppointmentStatusUpdate, error)

func (f updaterFunc) UpdateAppointmentStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.AppointmentStatusUpdate, error) {
	return f(ctx, id, status)
}

func TestParseStatusChanges(t *testing.T) {
	changes, err := parseStatusChanges([]string{"1=DONE", "42=canceled"})
	require.NoError(t, err)
	require.Len(t, changes, 2)
	assert.Equal(t, statusChange{id: 1, status: domain.StatusDone}, changes[0])
	assert.Equal(t, statusChange{id: 42, status: domain.StatusCanceled}, changes[1])
}

func TestParseStatusChanges_Malformed(t *testing.T) {
	tests := map[string]string{
		"no equals":      "1DONE",
		"bad id":         "abc=DONE",
		"zero id":        "0=DONE",
		"unknown status": "1=ARCHIVED",
	}

	for name, arg := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseStatusChanges([]string{arg})
			require.Error(t, err)
		})
	}
}

func TestApplyStatusChanges_FailureDoesNotSuppressOthers(t *testing.T) {
	api := updaterFunc(func(_ context.Context, id int64, status domain.AppointmentStatus) (*domain.AppointmentStatusUpdate, error) {
		if id == 2 {
			return nil, errors.New("appointment not found")
		}
		return &domain.AppointmentStatusUpdate{AppointmentID: id, Status: status}, nil
	})

	changes := []statusChange{
		{id: 1, status: domain.StatusDone},
		{id: 2, status: domain.StatusDone},
		{id: 3, status: domain.StatusCanceled},
	}

	results := applyStatusChanges(context.Background(), api, changes)
	require.Len(t, results, 3)

	// Порядок результатов совпадает с порядком аргументов
	assert.NoError(t, results[0].err)
	assert.Equal(t, int64(1), results[0].upd.AppointmentID)

	assert.Error(t, results[1].err)
	assert.Nil(t, results[1].upd)

	assert.NoError(t, results[2].err)
	assert.Equal(t, domain.StatusCanceled, results[2].upd.Status)
}

func TestApplyStatusChanges_DifferentIDsDoNotBlockEachOther(t *testing.T) {
	// Каждый вызов отдает результат только после того, как оба вызова начались.
	// Последовательное исполнение здесь завершилось бы таймаутом
	var entered sync.WaitGroup
	entered.Add(2)
	bothIn := make(chan struct{})
	go func() {
		entered.Wait()
		close(bothIn)
	}()

	api := updaterFunc(func(_ context.Context, id int64, status domain.AppointmentStatus) (*domain.AppointmentStatusUpdate, error) {
		entered.Done()
		select {
		case <-bothIn:
			return &domain.AppointmentStatusUpdate{AppointmentID: id, Status: status}, nil
		case <-time.After(2 * time.Second):
			return nil, errors.New("peer update never started")
		}
	})

	changes := []statusChange{
		{id: 1, status: domain.StatusDone},
		{id: 2, status: domain.StatusReady},
	}

	results := applyStatusChanges(context.Background(), api, changes)
	require.Len(t, results, 2)
	assert.NoError(t, results[0].err)
	assert.NoError(t, results[1].err)
}
