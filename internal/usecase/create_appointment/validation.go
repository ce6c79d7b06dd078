package create_appointment

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-ClinicService/internal/normalize"
)

// validateRequest проверяет входные данные до обращения к хранилищу
// Сообщение ошибки называет нарушившее поле в историческом написании ключа
func validateRequest(req *Request) (time.Time, error) {
	ids := []struct {
		field string
		value int64
	}{
		{"PatientId", req.PatientID},
		{"DoctorId", req.DoctorID},
		{"ServiceId", req.ServiceID},
		{"CabinetId", req.CabinetID},
	}

	for _, id := range ids {
		if id.value <= 0 {
			return time.Time{}, newValidationError(id.field, "must be > 0")
		}
	}

	if strings.TrimSpace(req.StartAt) == "" {
		return time.Time{}, newValidationError("StartAt", "required")
	}

	startAt, ok := normalize.AsTime(req.StartAt)
	if !ok {
		return time.Time{}, newValidationError("StartAt", "must be a valid timestamp")
	}

	return startAt, nil
}
