package create_appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// UseCase создание записи на прием
// Валидация выполняется до обращения к хранилищу; сама вставка атомарна
// на стороне БД (хранимая функция appointment_create)
type UseCase struct {
	repo   AppointmentCreator
	logger Logger
}

// NewUseCase создает новый экземпляр usecase создания записи
func NewUseCase(repo AppointmentCreator, logger Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute валидирует запрос, применяет значения по умолчанию и делегирует
// вставку хранимой процедуре. Возвращает идентификатор созданной записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	startAt, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("Execute: validation failed: %v", err)
		return nil, err
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = domain.DefaultDurationMinutes
	}

	status := domain.AppointmentStatus(strings.TrimSpace(req.Status))
	if status == "" {
		status = domain.DefaultStatus
	}

	id, err := uc.repo.Create(ctx, &domain.AppointmentCreate{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		ServiceID:       req.ServiceID,
		CabinetID:       req.CabinetID,
		StartAt:         startAt,
		DurationMinutes: duration,
		Status:          status,
	})
	if err != nil {
		uc.logger.Error("Execute: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("Execute: appointment created, id=%d, patient_id=%d, doctor_id=%d",
		id, req.PatientID, req.DoctorID)
	return &Response{ID: id}, nil
}
