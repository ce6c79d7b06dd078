package dictionaries

import (
	"context"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// DictionaryRepository репозиторий справочников
type DictionaryRepository interface {
	ListDoctors(ctx context.Context) ([]*domain.Doctor, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
	ListCabinets(ctx context.Context) ([]*domain.Cabinet, error)
	ListPatients(ctx context.Context) ([]*domain.Patient, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
