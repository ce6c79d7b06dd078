package dictionary

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	"github.com/m04kA/SMC-ClinicService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicService/pkg/psqlbuilder"
)

// Repository репозиторий справочников (врачи, услуги, кабинеты, пациенты)
type Repository struct {
	pool DBProvider
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(pool DBProvider) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) executor(ctx context.Context) (DBExecutor, error) {
	db, err := r.pool.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}
	return dbmetrics.GetExecutor(ctx, db), nil
}

// ListDoctors возвращает активных врачей, отсортированных по ФИО
func (r *Repository) ListDoctors(ctx context.Context) ([]*domain.Doctor, error) {
	executor, err := r.executor(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Select("id", "full_name", "specialty", "is_active").
		From("doctors").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("full_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDoctors - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDoctors - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	doctors := make([]*domain.Doctor, 0)
	for rows.Next() {
		var doc domain.Doctor
		if err := rows.Scan(&doc.ID, &doc.FullName, &doc.Specialty, &doc.IsActive); err != nil {
			return nil, fmt.Errorf("%w: ListDoctors - scan row: %v", ErrScanRow, err)
		}
		doctors = append(doctors, &doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDoctors - rows error: %v", ErrScanRow, err)
	}

	return doctors, nil
}

// ListServices возвращает активные услуги, отсортированные по (модальность, название)
func (r *Repository) ListServices(ctx context.Context) ([]*domain.Service, error) {
	executor, err := r.executor(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Select("id", "name", "modality", "base_price", "is_active").
		From("services").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("modality ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var svc domain.Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Modality, &svc.BasePrice, &svc.IsActive); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// ListCabinets возвращает активные кабинеты, отсортированные по (модальность, код)
func (r *Repository) ListCabinets(ctx context.Context) ([]*domain.Cabinet, error) {
	executor, err := r.executor(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Select("id", "code", "name", "modality", "is_active").
		From("cabinets").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("modality ASC", "code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCabinets - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCabinets - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cabinets := make([]*domain.Cabinet, 0)
	for rows.Next() {
		var cab domain.Cabinet
		if err := rows.Scan(&cab.ID, &cab.Code, &cab.Name, &cab.Modality, &cab.IsActive); err != nil {
			return nil, fmt.Errorf("%w: ListCabinets - scan row: %v", ErrScanRow, err)
		}
		cabinets = append(cabinets, &cab)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCabinets - rows error: %v", ErrScanRow, err)
	}

	return cabinets, nil
}

// ListPatients возвращает всех пациентов, отсортированных по коду
func (r *Repository) ListPatients(ctx context.Context) ([]*domain.Patient, error) {
	executor, err := r.executor(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Select("id", "code", "display_name", "phone_last4").
		From("patients").
		OrderBy("code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListPatients - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPatients - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	patients := make([]*domain.Patient, 0)
	for rows.Next() {
		var pat domain.Patient
		if err := rows.Scan(&pat.ID, &pat.Code, &pat.DisplayName, &pat.PhoneLast4); err != nil {
			return nil, fmt.Errorf("%w: ListPatients - scan row: %v", ErrScanRow, err)
		}
		patients = append(patients, &pat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListPatients - rows error: %v", ErrScanRow, err)
	}

	return patients, nil
}

// CreateDoctor добавляет врача (используется сидером, API на запись справочников нет)
func (r *Repository) CreateDoctor(ctx context.Context, doc *domain.Doctor) (int64, error) {
	return r.insertReturningID(ctx, "CreateDoctor",
		psqlbuilder.Insert("doctors").
			Columns("full_name", "specialty", "is_active").
			Values(doc.FullName, doc.Specialty, doc.IsActive).
			Suffix("RETURNING id"))
}

// CreateService добавляет услугу
func (r *Repository) CreateService(ctx context.Context, svc *domain.Service) (int64, error) {
	return r.insertReturningID(ctx, "CreateService",
		psqlbuilder.Insert("services").
			Columns("name", "modality", "base_price", "is_active").
			Values(svc.Name, svc.Modality, svc.BasePrice, svc.IsActive).
			Suffix("RETURNING id"))
}

// CreateCabinet добавляет кабинет
func (r *Repository) CreateCabinet(ctx context.Context, cab *domain.Cabinet) (int64, error) {
	return r.insertReturningID(ctx, "CreateCabinet",
		psqlbuilder.Insert("cabinets").
			Columns("code", "name", "modality", "is_active").
			Values(cab.Code, cab.Name, cab.Modality, cab.IsActive).
			Suffix("RETURNING id"))
}

// CreatePatient добавляет пациента
func (r *Repository) CreatePatient(ctx context.Context, pat *domain.Patient) (int64, error) {
	return r.insertReturningID(ctx, "CreatePatient",
		psqlbuilder.Insert("patients").
			Columns("code", "display_name", "phone_last4").
			Values(pat.Code, pat.DisplayName, pat.PhoneLast4).
			Suffix("RETURNING id"))
}

func (r *Repository) insertReturningID(ctx context.Context, op string, builder squirrel.InsertBuilder) (int64, error) {
	executor, err := r.executor(ctx)
	if err != nil {
		return 0, err
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build insert query: %v", ErrBuildQuery, op, err)
	}

	var id int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("%w: %s - no id returned", ErrExecQuery, op)
		}
		return 0, fmt.Errorf("%w: %s - execute insert: %v", ErrExecQuery, op, err)
	}

	return id, nil
}
