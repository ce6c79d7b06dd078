package list_appointments

import (
	"context"

	"github.com/m04kA/SMC-ClinicService/internal/service/appointments/models"
)

// AppointmentService сервис записей на прием
type AppointmentService interface {
	List(ctx context.Context) ([]models.AppointmentRow, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
