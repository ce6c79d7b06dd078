package update_appointment_status

import (
	"context"

	"github.com/m04kA/SMC-ClinicService/internal/service/appointments/models"
)

// AppointmentService сервис записей на прием
type AppointmentService interface {
	SetStatus(ctx context.Context, id int64, status string) (*models.UpdateStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
