package main

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

func testIDs() *seededIDs {
	return &seededIDs{
		doctors:  []int64{1, 2, 3},
		services: []int64{10, 11},
		cabinets: []int64{20, 21},
		patients: []int64{30, 31, 32, 33},
	}
}

func TestRandomAppointment_FixedSeedIsReproducible(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	first := make([]*domain.AppointmentCreate, 0, 10)
	second := make([]*domain.AppointmentCreate, 0, 10)

	fakerA := gofakeit.New(42)
	fakerB := gofakeit.New(42)
	for i := 0; i < 10; i++ {
		first = append(first, randomAppointment(fakerA, testIDs(), base))
		second = append(second, randomAppointment(fakerB, testIDs(), base))
	}

	assert.Equal(t, first, second)
}

func TestRandomAppointment_WithinBounds(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ids := testIDs()
	faker := gofakeit.New(7)

	for i := 0; i < 50; i++ {
		params := randomAppointment(faker, ids, base)

		assert.Contains(t, ids.patients, params.PatientID)
		assert.Contains(t, ids.doctors, params.DoctorID)
		assert.Contains(t, ids.services, params.ServiceID)
		assert.Contains(t, ids.cabinets, params.CabinetID)

		require.True(t, params.Status.IsKnown())
		assert.Contains(t, []int{15, 30, 45, 60}, params.DurationMinutes)

		// Начало приема в пределах двух недель вокруг базовой даты, в рабочие часы
		baseDay := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, time.UTC)
		assert.False(t, params.StartAt.Before(baseDay.AddDate(0, 0, -7)))
		assert.True(t, params.StartAt.Before(baseDay.AddDate(0, 0, 7)))
		assert.GreaterOrEqual(t, params.StartAt.Hour(), 8)
		assert.LessOrEqual(t, params.StartAt.Hour(), 17)
	}
}
