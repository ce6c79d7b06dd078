package create_appointment

import (
	"github.com/m04kA/SMC-ClinicService/internal/normalize"
	createAppointment "github.com/m04kA/SMC-ClinicService/internal/usecase/create_appointment"
)

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	NewAppointmentID int64 `json:"NewAppointmentId"`
}

// ToUseCaseRequest собирает запрос usecase из произвольно именованного JSON
// Тело принимается в обоих соглашениях (PascalCase/camelCase): поля извлекаются
// по таблицам алиасов нормализатора. Нечисловые id дают 0 и отсеиваются
// валидацией usecase
func ToUseCaseRequest(raw map[string]interface{}) *createAppointment.Request {
	req := &createAppointment.Request{}

	if v, ok := normalize.Pick(raw, normalize.AppointmentKeys.PatientID); ok {
		req.PatientID, _ = normalize.AsInt64(v)
	}
	if v, ok := normalize.Pick(raw, normalize.AppointmentKeys.DoctorID); ok {
		req.DoctorID, _ = normalize.AsInt64(v)
	}
	if v, ok := normalize.Pick(raw, normalize.AppointmentKeys.ServiceID); ok {
		req.ServiceID, _ = normalize.AsInt64(v)
	}
	if v, ok := normalize.Pick(raw, normalize.AppointmentKeys.CabinetID); ok {
		req.CabinetID, _ = normalize.AsInt64(v)
	}
	if v, ok := normalize.Pick(raw, normalize.AppointmentKeys.StartAt); ok {
		req.StartAt = normalize.AsString(v)
	}
	if v, ok := normalize.Pick(raw, normalize.AppointmentKeys.Duration); ok {
		if n, ok := normalize.AsInt64(v); ok {
			req.DurationMinutes = int(n)
		}
	}
	if v, ok := normalize.Pick(raw, normalize.AppointmentKeys.Status); ok {
		req.Status = normalize.AsString(v)
	}

	return req
}
