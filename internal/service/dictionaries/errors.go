package dictionaries

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках сервиса
	// Текст ошибки хранилища сохраняется в цепочке для выдачи клиенту
	ErrInternal = errors.New("dictionaries: internal error")
)
