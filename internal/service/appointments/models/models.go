package models

import (
	"time"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// AppointmentRow строка списка записей, обогащенная полями справочников
// Поля обогащения nullable: LEFT JOIN оставляет запись в выдаче даже при
// неразрешимой ссылке
type AppointmentRow struct {
	AppointmentID   int64    `json:"AppointmentId"`
	StartAt         string   `json:"StartAt"`
	EndAt           *string  `json:"EndAt"`
	DurationMinutes int      `json:"DurationMinutes"`
	Status          string   `json:"Status"`
	Price           *float64 `json:"PriceUAH"`
	CreatedAt       *string  `json:"CreatedAt,omitempty"`

	PatientID          int64   `json:"PatientId"`
	PatientCode        *string `json:"PatientCode"`
	PatientDisplayName *string `json:"PatientDisplayName"`

	DoctorID       int64   `json:"DoctorId"`
	DoctorFullName *string `json:"DoctorFullName"`

	ServiceID       int64   `json:"ServiceId"`
	ServiceName     *string `json:"ServiceName"`
	ServiceModality *string `json:"ServiceModality"`

	CabinetID   int64   `json:"CabinetId"`
	CabinetCode *string `json:"CabinetCode"`
	CabinetName *string `json:"CabinetName"`
}

// UpdateStatusResponse результат смены статуса
type UpdateStatusResponse struct {
	AppointmentID int64  `json:"AppointmentId"`
	Status        string `json:"Status"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatOptTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

// FromDomainAppointment конвертирует доменную запись в строку ответа API
func FromDomainAppointment(a *domain.Appointment) AppointmentRow {
	return AppointmentRow{
		AppointmentID:   a.ID,
		StartAt:         formatTime(a.StartAt),
		EndAt:           formatOptTime(a.EndAt),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		Price:           a.Price,
		CreatedAt:       formatOptTime(a.CreatedAt),

		PatientID:          a.PatientID,
		PatientCode:        a.PatientCode,
		PatientDisplayName: a.PatientDisplayName,

		DoctorID:       a.DoctorID,
		DoctorFullName: a.DoctorFullName,

		ServiceID:       a.ServiceID,
		ServiceName:     a.ServiceName,
		ServiceModality: a.ServiceModality,

		CabinetID:   a.CabinetID,
		CabinetCode: a.CabinetCode,
		CabinetName: a.CabinetName,
	}
}

// FromDomainAppointmentList конвертирует список доменных записей
func FromDomainAppointmentList(appointments []*domain.Appointment) []AppointmentRow {
	out := make([]AppointmentRow, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, FromDomainAppointment(a))
	}
	return out
}

// FromDomainStatusUpdate конвертирует результат смены статуса
func FromDomainStatusUpdate(u *domain.AppointmentStatusUpdate) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		AppointmentID: u.AppointmentID,
		Status:        string(u.Status),
	}
}
