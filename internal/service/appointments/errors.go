package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrUnknownStatus возвращается при статусе вне закрытого набора
	// Неизвестные статусы, уже лежащие в БД, при чтении не отбрасываются,
	// но записать новый можно только из известного набора
	ErrUnknownStatus = errors.New("appointments: unknown status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	// Текст ошибки хранилища сохраняется в цепочке для выдачи клиенту
	ErrInternal = errors.New("appointments: internal error")
)
