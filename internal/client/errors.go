package client

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("clinic client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("clinic client: invalid response")

	// ErrAPI возвращается, когда сервис ответил телом вида {"error": "..."};
	// текст сервера сохраняется в цепочке ошибки
	ErrAPI = errors.New("clinic client: api error")

	// ErrAppointmentNotFound возвращается на 404 при смене статуса
	ErrAppointmentNotFound = errors.New("clinic client: appointment not found")
)
