package appointments

import (
	"context"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// AppointmentRepository репозиторий записей на прием
type AppointmentRepository interface {
	List(ctx context.Context) ([]*domain.Appointment, error)
	SetStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.AppointmentStatusUpdate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
