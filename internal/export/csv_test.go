package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

func TestAppointmentsCSV_EmptyList(t *testing.T) {
	out := string(AppointmentsCSV(nil))

	require.True(t, strings.HasPrefix(out, "\xEF\xBB\xBF"), "CSV must start with UTF-8 BOM")

	lines := strings.Split(strings.TrimPrefix(out, "\xEF\xBB\xBF"), "\r\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "sep=;", lines[0])
	assert.Equal(t, "appointmentId;startAt;endAt;durationMinutes;status;patientId;doctorId;serviceId;cabinetId", lines[1])
	assert.Equal(t, "", lines[2])
}

func TestAppointmentsCSV_Rows(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)

	rows := []domain.Appointment{
		{
			ID:              7,
			PatientID:       1,
			DoctorID:        2,
			ServiceID:       3,
			CabinetID:       4,
			StartAt:         start,
			EndAt:           &end,
			DurationMinutes: 45,
			Status:          domain.StatusConfirmed,
		},
	}

	out := string(AppointmentsCSV(rows))
	lines := strings.Split(strings.TrimPrefix(out, "\xEF\xBB\xBF"), "\r\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "7;2026-03-01T10:00:00Z;2026-03-01T10:45:00Z;45;CONFIRMED;1;2;3;4", lines[2])
}

func TestAppointmentsCSV_MissingEndAt(t *testing.T) {
	rows := []domain.Appointment{
		{
			ID:        1,
			StartAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			Status:    domain.StatusNew,
			PatientID: 1, DoctorID: 1, ServiceID: 1, CabinetID: 1,
		},
	}

	out := string(AppointmentsCSV(rows))
	lines := strings.Split(strings.TrimPrefix(out, "\xEF\xBB\xBF"), "\r\n")
	assert.Equal(t, "1;2026-03-01T10:00:00Z;;0;NEW;1;1;1;1", lines[2])
}

func TestEscapeField(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"plain":          {"NEW", "NEW"},
		"semicolon":      {"a;b", `"a;b"`},
		"comma":          {"a,b", `"a,b"`},
		"quote doubled":  {`say "hi"`, `"say ""hi"""`},
		"newline":        {"a\nb", "\"a\nb\""},
		"carriage":       {"a\rb", "\"a\rb\""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, escapeField(tc.in))
		})
	}
}
