package normalize

// Таблицы алиасов: упорядоченные списки допустимых написаний ключей для каждого
// атрибута сущности. Первое присутствующее не-null значение побеждает.
// Покрывают PascalCase/camelCase из разных источников данных и частые синонимы.

// DoctorAliases алиасы полей врача
type DoctorAliases struct {
	ID        []string
	FullName  []string
	Specialty []string
	IsActive  []string
}

// DoctorKeys таблица алиасов врача
var DoctorKeys = DoctorAliases{
	ID:        []string{"DoctorId", "doctorId", "id"},
	FullName:  []string{"FullName", "fullName", "Name", "name"},
	Specialty: []string{"Specialty", "specialty"},
	IsActive:  []string{"IsActive", "isActive"},
}

// ServiceAliases алиасы полей услуги
type ServiceAliases struct {
	ID        []string
	Name      []string
	Modality  []string
	BasePrice []string
	IsActive  []string
}

// ServiceKeys таблица алиасов услуги
var ServiceKeys = ServiceAliases{
	ID:       []string{"ServiceId", "serviceId", "id"},
	Name:     []string{"ServiceName", "serviceName", "Name", "name", "Title", "title"},
	Modality: []string{"Modality", "modality"},
	BasePrice: []string{
		"BasePriceUAH", "basePriceUAH",
		"BasePrice", "basePrice",
		"PriceUAH", "priceUAH",
		"Price", "price",
	},
	IsActive: []string{"IsActive", "isActive"},
}

// CabinetAliases алиасы полей кабинета
type CabinetAliases struct {
	ID       []string
	Code     []string
	Name     []string
	Modality []string
	IsActive []string
}

// CabinetKeys таблица алиасов кабинета
var CabinetKeys = CabinetAliases{
	ID:       []string{"CabinetId", "cabinetId", "id"},
	Code:     []string{"CabinetCode", "cabinetCode"},
	Name:     []string{"CabinetName", "cabinetName", "Name", "name"},
	Modality: []string{"Modality", "modality"},
	IsActive: []string{"IsActive", "isActive"},
}

// PatientAliases алиасы полей пациента
type PatientAliases struct {
	ID          []string
	Code        []string
	DisplayName []string
	PhoneLast4  []string
}

// PatientKeys таблица алиасов пациента
var PatientKeys = PatientAliases{
	ID:          []string{"PatientId", "patientId", "id"},
	Code:        []string{"PatientCode", "patientCode"},
	DisplayName: []string{"DisplayName", "displayName", "FullName", "fullName", "Name", "name"},
	PhoneLast4:  []string{"PhoneLast4", "phoneLast4", "Phone", "phone", "PhoneNumber", "phoneNumber"},
}

// AppointmentAliases алиасы полей записи на прием
type AppointmentAliases struct {
	ID        []string
	PatientID []string
	DoctorID  []string
	ServiceID []string
	CabinetID []string
	StartAt   []string
	EndAt     []string
	Duration  []string
	Price     []string
	Status    []string
	CreatedAt []string
}

// AppointmentKeys таблица алиасов записи на прием
var AppointmentKeys = AppointmentAliases{
	ID:        []string{"AppointmentId", "appointmentId", "id"},
	PatientID: []string{"PatientId", "patientId"},
	DoctorID:  []string{"DoctorId", "doctorId"},
	ServiceID: []string{"ServiceId", "serviceId"},
	CabinetID: []string{"CabinetId", "cabinetId"},
	StartAt:   []string{"StartAt", "startAt", "Start", "start", "start_at"},
	EndAt:     []string{"EndAt", "endAt", "End", "end", "end_at"},
	Duration: []string{
		"DurationMinutes", "durationMinutes",
		"Duration", "duration",
		"DurationMin", "durationMin",
		"DurationMins", "durationMins",
		"DurationInMinutes", "durationInMinutes",
		"duration_min", "duration_minutes",
	},
	Price:     []string{"PriceUAH", "priceUAH", "Price", "price"},
	Status:    []string{"Status", "status"},
	CreatedAt: []string{"CreatedAt", "createdAt"},
}
