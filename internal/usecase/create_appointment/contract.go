package create_appointment

import (
	"context"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// AppointmentCreator репозиторий, делегирующий вставку хранимой процедуре
type AppointmentCreator interface {
	Create(ctx context.Context, params *domain.AppointmentCreate) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
