package dictionaries

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ClinicService/internal/service/dictionaries/models"
)

// Service сервис справочников
type Service struct {
	repo   DictionaryRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(repo DictionaryRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListDoctors возвращает активных врачей в алфавитном порядке
func (s *Service) ListDoctors(ctx context.Context) ([]models.DoctorResponse, error) {
	doctors, err := s.repo.ListDoctors(ctx)
	if err != nil {
		s.logger.Error("ListDoctors: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("ListDoctors: fetched %d doctors", len(doctors))
	return models.FromDomainDoctors(doctors), nil
}

// ListServices возвращает активные услуги, отсортированные по (модальность, название)
func (s *Service) ListServices(ctx context.Context) ([]models.ServiceResponse, error) {
	services, err := s.repo.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: fetched %d services", len(services))
	return models.FromDomainServices(services), nil
}

// ListCabinets возвращает активные кабинеты, отсортированные по (модальность, код)
func (s *Service) ListCabinets(ctx context.Context) ([]models.CabinetResponse, error) {
	cabinets, err := s.repo.ListCabinets(ctx)
	if err != nil {
		s.logger.Error("ListCabinets: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("ListCabinets: fetched %d cabinets", len(cabinets))
	return models.FromDomainCabinets(cabinets), nil
}

// ListPatients возвращает всех пациентов по возрастанию кода
func (s *Service) ListPatients(ctx context.Context) ([]models.PatientResponse, error) {
	patients, err := s.repo.ListPatients(ctx)
	if err != nil {
		s.logger.Error("ListPatients: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("ListPatients: fetched %d patients", len(patients))
	return models.FromDomainPatients(patients), nil
}
