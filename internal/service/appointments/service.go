package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-ClinicService/internal/service/appointments/models"
)

// Service сервис для работы с записями на прием
type Service struct {
	repo   AppointmentRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(repo AppointmentRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает последние записи, обогащенные полями справочников
func (s *Service) List(ctx context.Context) ([]models.AppointmentRow, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(rows))
	return models.FromDomainAppointmentList(rows), nil
}

// SetStatus меняет статус записи
// Таблица переходов не проверяется: любой статус может смениться на любой
// (ручной операторский workflow)
func (s *Service) SetStatus(ctx context.Context, id int64, status string) (*models.UpdateStatusResponse, error) {
	if id <= 0 {
		s.logger.Warn("SetStatus: invalid appointment id=%d", id)
		return nil, fmt.Errorf("%w: appointment id must be positive", ErrInvalidInput)
	}
	st := domain.AppointmentStatus(strings.TrimSpace(status))
	if st == "" {
		s.logger.Warn("SetStatus: empty status for appointment id=%d", id)
		return nil, fmt.Errorf("%w: status is required", ErrInvalidInput)
	}
	if !st.IsKnown() {
		s.logger.Warn("SetStatus: unknown status %q for appointment id=%d", status, id)
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}

	updated, err := s.repo.SetStatus(ctx, id, st)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("SetStatus: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("SetStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("SetStatus: appointment id=%d moved to status=%s", id, updated.Status)
	return models.FromDomainStatusUpdate(updated), nil
}
