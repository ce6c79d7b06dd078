package domain

import "time"

// AppointmentStatus статус записи на прием
type AppointmentStatus string

const (
	StatusNew             AppointmentStatus = "NEW"
	StatusNeedInfo        AppointmentStatus = "NEED_INFO"
	StatusPriceSent       AppointmentStatus = "PRICE_SENT"
	StatusConfirmed       AppointmentStatus = "CONFIRMED"
	StatusPaymentReported AppointmentStatus = "PAYMENT_REPORTED"
	StatusInProgress      AppointmentStatus = "IN_PROGRESS"
	StatusReady           AppointmentStatus = "READY"
	StatusDone            AppointmentStatus = "DONE"
	StatusCanceled        AppointmentStatus = "CANCELED"
)

// IsKnown сообщает, входит ли статус в закрытый набор
func (s AppointmentStatus) IsKnown() bool {
	for _, known := range KnownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Appointment запись на прием
type Appointment struct {
	ID              int64
	PatientID       int64
	DoctorID        int64
	ServiceID       int64
	CabinetID       int64
	StartAt         time.Time
	EndAt           *time.Time
	DurationMinutes int
	Price           *float64
	Status          AppointmentStatus
	CreatedAt       *time.Time

	// Денормализованные поля из справочников для выдачи списка
	// Заполняются LEFT JOIN-ами: запись с удаленной ссылкой не выпадает из списка,
	// соответствующие поля остаются nil
	PatientCode        *string
	PatientDisplayName *string
	DoctorFullName     *string
	ServiceName        *string
	ServiceModality    *string
	CabinetCode        *string
	CabinetName        *string
}

// AppointmentCreate параметры создания записи (передаются в хранимую процедуру)
type AppointmentCreate struct {
	PatientID       int64
	DoctorID        int64
	ServiceID       int64
	CabinetID       int64
	StartAt         time.Time
	DurationMinutes int
	Status          AppointmentStatus
}

// AppointmentStatusUpdate результат смены статуса записи
type AppointmentStatusUpdate struct {
	AppointmentID int64
	Status        AppointmentStatus
}
