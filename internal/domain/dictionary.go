package domain

// Doctor врач
type Doctor struct {
	ID        int64
	FullName  string
	Specialty *string
	IsActive  bool
}

// Service медицинская услуга
type Service struct {
	ID        int64
	Name      string
	Modality  *string
	BasePrice *float64
	IsActive  bool
}

// Cabinet кабинет приема
type Cabinet struct {
	ID       int64
	Code     *string
	Name     string
	Modality *string
	IsActive bool
}

// Patient пациент
type Patient struct {
	ID          int64
	Code        *string
	DisplayName string
	PhoneLast4  *string
}
