// Package normalize приводит слабо типизированные JSON-объекты к каноничным
// доменным сущностям. Все функции тотальны: при любом входе возвращается
// заполненная значениями по умолчанию запись, ошибок не бывает.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClinicService/internal/domain"
)

// Pick возвращает первое присутствующее не-null значение по списку алиасов
func Pick(raw map[string]interface{}, aliases []string) (interface{}, bool) {
	for _, key := range aliases {
		if v, ok := raw[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// AsInt64 приводит значение к int64 (число, json.Number или числовая строка)
func AsInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		if f, err := n.Float64(); err == nil {
			return int64(f), true
		}
		return 0, false
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int64(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// AsFloat64 приводит значение к float64
func AsFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, true
		}
		return 0, false
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// AsString приводит значение к строке
func AsString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		if s == math.Trunc(s) && !math.IsNaN(s) && !math.IsInf(s, 0) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// AsBool приводит значение к bool (bool, число или строка "true"/"1")
func AsBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case int64:
		return b != 0
	case string:
		return b == "true" || b == "1"
	default:
		return false
	}
}

// timeLayouts допустимые форматы временных меток на входе
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// AsTime парсит временную метку; при неудаче возвращает нулевое время
func AsTime(v interface{}) (time.Time, bool) {
	s := strings.TrimSpace(AsString(v))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func pickInt64(raw map[string]interface{}, aliases []string) int64 {
	v, ok := Pick(raw, aliases)
	if !ok {
		return 0
	}
	n, ok := AsInt64(v)
	if !ok {
		return 0
	}
	return n
}

func pickString(raw map[string]interface{}, aliases []string) string {
	v, ok := Pick(raw, aliases)
	if !ok {
		return ""
	}
	return AsString(v)
}

func pickOptString(raw map[string]interface{}, aliases []string) *string {
	s := pickString(raw, aliases)
	if s == "" {
		return nil
	}
	return &s
}

func pickOptFloat64(raw map[string]interface{}, aliases []string) *float64 {
	v, ok := Pick(raw, aliases)
	if !ok {
		return nil
	}
	f, ok := AsFloat64(v)
	if !ok {
		return nil
	}
	return &f
}

func pickBool(raw map[string]interface{}, aliases []string) bool {
	v, ok := Pick(raw, aliases)
	if !ok {
		return false
	}
	return AsBool(v)
}

func pickTime(raw map[string]interface{}, aliases []string) (time.Time, bool) {
	v, ok := Pick(raw, aliases)
	if !ok {
		return time.Time{}, false
	}
	return AsTime(v)
}

// Doctor нормализует произвольный объект во врача
func Doctor(raw map[string]interface{}) domain.Doctor {
	return domain.Doctor{
		ID:        pickInt64(raw, DoctorKeys.ID),
		FullName:  pickString(raw, DoctorKeys.FullName),
		Specialty: pickOptString(raw, DoctorKeys.Specialty),
		IsActive:  pickBool(raw, DoctorKeys.IsActive),
	}
}

// Service нормализует произвольный объект в услугу
func Service(raw map[string]interface{}) domain.Service {
	return domain.Service{
		ID:        pickInt64(raw, ServiceKeys.ID),
		Name:      pickString(raw, ServiceKeys.Name),
		Modality:  pickOptString(raw, ServiceKeys.Modality),
		BasePrice: pickOptFloat64(raw, ServiceKeys.BasePrice),
		IsActive:  pickBool(raw, ServiceKeys.IsActive),
	}
}

// Cabinet нормализует произвольный объект в кабинет
func Cabinet(raw map[string]interface{}) domain.Cabinet {
	return domain.Cabinet{
		ID:       pickInt64(raw, CabinetKeys.ID),
		Code:     pickOptString(raw, CabinetKeys.Code),
		Name:     pickString(raw, CabinetKeys.Name),
		Modality: pickOptString(raw, CabinetKeys.Modality),
		IsActive: pickBool(raw, CabinetKeys.IsActive),
	}
}

// Patient нормализует произвольный объект в пациента
func Patient(raw map[string]interface{}) domain.Patient {
	return domain.Patient{
		ID:          pickInt64(raw, PatientKeys.ID),
		Code:        pickOptString(raw, PatientKeys.Code),
		DisplayName: pickString(raw, PatientKeys.DisplayName),
		PhoneLast4:  pickOptString(raw, PatientKeys.PhoneLast4),
	}
}

// Appointment нормализует произвольный объект в запись на прием
// Если длительность не указана ни под одним алиасом, но начало и конец
// присутствуют и парсятся, длительность вычисляется как округленная разница
// в минутах; неположительный результат обнуляется
func Appointment(raw map[string]interface{}) domain.Appointment {
	startAt, startOK := pickTime(raw, AppointmentKeys.StartAt)
	endAt, endOK := pickTime(raw, AppointmentKeys.EndAt)

	duration := 0
	if v, ok := Pick(raw, AppointmentKeys.Duration); ok {
		if n, ok := AsInt64(v); ok {
			duration = int(n)
		}
	}

	if duration <= 0 {
		duration = 0
		if startOK && endOK {
			duration = DurationMinutes(startAt, endAt)
		}
	}

	status := pickString(raw, AppointmentKeys.Status)
	if status == "" {
		status = string(domain.StatusNew)
	}

	appt := domain.Appointment{
		ID:              pickInt64(raw, AppointmentKeys.ID),
		PatientID:       pickInt64(raw, AppointmentKeys.PatientID),
		DoctorID:        pickInt64(raw, AppointmentKeys.DoctorID),
		ServiceID:       pickInt64(raw, AppointmentKeys.ServiceID),
		CabinetID:       pickInt64(raw, AppointmentKeys.CabinetID),
		StartAt:         startAt,
		DurationMinutes: duration,
		Price:           pickOptFloat64(raw, AppointmentKeys.Price),
		Status:          domain.AppointmentStatus(status),
	}

	if endOK {
		appt.EndAt = &endAt
	}
	if createdAt, ok := pickTime(raw, AppointmentKeys.CreatedAt); ok {
		appt.CreatedAt = &createdAt
	}

	return appt
}

// DurationMinutes вычисляет длительность между началом и концом в минутах
// Неположительная разница дает 0
func DurationMinutes(start, end time.Time) int {
	diff := end.Sub(start)
	if diff <= 0 {
		return 0
	}
	return int(math.Round(diff.Minutes()))
}
