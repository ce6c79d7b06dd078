package models

import "github.com/m04kA/SMC-ClinicService/internal/domain"

// JSON-ключи ответов повторяют имена колонок исторического API (PascalCase),
// клиенты с camelCase-ожиданиями обслуживаются нормализатором на своей стороне

// DoctorResponse врач в ответе API
type DoctorResponse struct {
	DoctorID  int64   `json:"DoctorId"`
	FullName  string  `json:"FullName"`
	Specialty *string `json:"Specialty"`
	IsActive  bool    `json:"IsActive"`
}

// ServiceResponse услуга в ответе API
type ServiceResponse struct {
	ServiceID   int64    `json:"ServiceId"`
	ServiceName string   `json:"ServiceName"`
	Modality    *string  `json:"Modality"`
	BasePrice   *float64 `json:"BasePriceUAH"`
	IsActive    bool     `json:"IsActive"`
}

// CabinetResponse кабинет в ответе API
type CabinetResponse struct {
	CabinetID   int64   `json:"CabinetId"`
	CabinetCode *string `json:"CabinetCode"`
	CabinetName string  `json:"CabinetName"`
	Modality    *string `json:"Modality"`
	IsActive    bool    `json:"IsActive"`
}

// PatientResponse пациент в ответе API
type PatientResponse struct {
	PatientID   int64   `json:"PatientId"`
	PatientCode *string `json:"PatientCode"`
	DisplayName string  `json:"DisplayName"`
	PhoneLast4  *string `json:"PhoneLast4"`
}

// FromDomainDoctors конвертирует доменных врачей в ответ API
func FromDomainDoctors(doctors []*domain.Doctor) []DoctorResponse {
	out := make([]DoctorResponse, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, DoctorResponse{
			DoctorID:  d.ID,
			FullName:  d.FullName,
			Specialty: d.Specialty,
			IsActive:  d.IsActive,
		})
	}
	return out
}

// FromDomainServices конвертирует доменные услуги в ответ API
func FromDomainServices(services []*domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceResponse{
			ServiceID:   s.ID,
			ServiceName: s.Name,
			Modality:    s.Modality,
			BasePrice:   s.BasePrice,
			IsActive:    s.IsActive,
		})
	}
	return out
}

// FromDomainCabinets конвертирует доменные кабинеты в ответ API
func FromDomainCabinets(cabinets []*domain.Cabinet) []CabinetResponse {
	out := make([]CabinetResponse, 0, len(cabinets))
	for _, c := range cabinets {
		out = append(out, CabinetResponse{
			CabinetID:   c.ID,
			CabinetCode: c.Code,
			CabinetName: c.Name,
			Modality:    c.Modality,
			IsActive:    c.IsActive,
		})
	}
	return out
}

// FromDomainPatients конвертирует доменных пациентов в ответ API
func FromDomainPatients(patients []*domain.Patient) []PatientResponse {
	out := make([]PatientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, PatientResponse{
			PatientID:   p.ID,
			PatientCode: p.Code,
			DisplayName: p.DisplayName,
			PhoneLast4:  p.PhoneLast4,
		})
	}
	return out
}
