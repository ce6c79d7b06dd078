package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
	"github.com/m04kA/SMC-ClinicService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicService/pkg/psqlbuilder"
)

// Вставка и смена статуса инкапсулированы в хранимых функциях БД:
// репозиторий передает параметры как есть и разбирает результат
const (
	createQuery    = "SELECT appointment_create($1, $2, $3, $4, $5, $6, $7)"
	setStatusQuery = "SELECT appointment_id, status FROM appointment_set_status($1, $2)"
)

// Repository репозиторий для работы с записями на прием
type Repository struct {
	pool DBProvider
}

// NewRepository создает новый экземпляр репозитория записей
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

// List возвращает последние записи (не более лимита), обогащенные полями
// справочников. LEFT JOIN: запись с неразрешимой ссылкой остается в выдаче,
// поля обогащения для неё будут nil
func (r *Repository) List(ctx context.Context) ([]*domain.Appointment, error) {
	executor, err := r.executor(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Select(
		"a.id",
		"a.patient_id",
		"a.doctor_id",
		"a.service_id",
		"a.cabinet_id",
		"a.start_at",
		"a.end_at",
		"a.duration_minutes",
		"a.price",
		"a.status",
		"a.created_at",
		"p.code AS patient_code",
		"p.display_name AS patient_display_name",
		"d.full_name AS doctor_full_name",
		"s.name AS service_name",
		"s.modality AS service_modality",
		"c.code AS cabinet_code",
		"c.name AS cabinet_name",
	).
		From("appointments a").
		LeftJoin("patients p ON p.id = a.patient_id").
		LeftJoin("doctors d ON d.id = a.doctor_id").
		LeftJoin("services s ON s.id = a.service_id").
		LeftJoin("cabinets c ON c.id = a.cabinet_id").
		OrderBy("a.start_at DESC").
		Limit(domain.AppointmentsListLimit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// Create создает запись через хранимую функцию appointment_create
// и возвращает идентификатор новой записи
func (r *Repository) Create(ctx context.Context, params *domain.AppointmentCreate) (int64, error) {
	executor, err := r.executor(ctx)
	if err != nil {
		return 0, err
	}

	var id int64
	err = executor.QueryRowContext(ctx, createQuery,
		params.PatientID,
		params.DoctorID,
		params.ServiceID,
		params.CabinetID,
		params.StartAt,
		params.DurationMinutes,
		string(params.Status),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: Create - execute appointment_create: %v", ErrExecQuery, err)
	}

	return id, nil
}

// SetStatus меняет статус записи через хранимую функцию appointment_set_status
// Пустой результат функции означает, что запись не найдена
func (r *Repository) SetStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.AppointmentStatusUpdate, error) {
	executor, err := r.executor(ctx)
	if err != nil {
		return nil, err
	}

	var updated domain.AppointmentStatusUpdate
	err = executor.QueryRowContext(ctx, setStatusQuery, id, string(status)).
		Scan(&updated.AppointmentID, &updated.Status)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: SetStatus - execute appointment_set_status: %v", ErrExecQuery, err)
	}

	return &updated, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var (
			appt      domain.Appointment
			endAt     sql.NullTime
			price     sql.NullFloat64
			createdAt sql.NullTime
		)

		err := rows.Scan(
			&appt.ID,
			&appt.PatientID,
			&appt.DoctorID,
			&appt.ServiceID,
			&appt.CabinetID,
			&appt.StartAt,
			&endAt,
			&appt.DurationMinutes,
			&price,
			&appt.Status,
			&createdAt,
			&appt.PatientCode,
			&appt.PatientDisplayName,
			&appt.DoctorFullName,
			&appt.ServiceName,
			&appt.ServiceModality,
			&appt.CabinetCode,
			&appt.CabinetName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		if endAt.Valid {
			t := endAt.Time
			appt.EndAt = &t
		}
		if price.Valid {
			p := price.Float64
			appt.Price = &p
		}
		if createdAt.Valid {
			t := createdAt.Time
			appt.CreatedAt = &t
		}

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
