package create_appointment

// Request модель запроса на создание записи
// StartAt передается сырой строкой: парсинг входит в валидацию usecase
type Request struct {
	PatientID       int64
	DoctorID        int64
	ServiceID       int64
	CabinetID       int64
	StartAt         string
	DurationMinutes int    // 0 = применить значение по умолчанию
	Status          string // "" = применить значение по умолчанию
}

// Response модель ответа с идентификатором созданной записи
type Response struct {
	ID int64
}
