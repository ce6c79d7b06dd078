package list_dictionaries

import (
	"context"

	"github.com/m04kA/SMC-ClinicService/internal/service/dictionaries/models"
)

// DictionaryService сервис справочников
type DictionaryService interface {
	ListDoctors(ctx context.Context) ([]models.DoctorResponse, error)
	ListServices(ctx context.Context) ([]models.ServiceResponse, error)
	ListCabinets(ctx context.Context) ([]models.CabinetResponse, error)
	ListPatients(ctx context.Context) ([]models.PatientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
