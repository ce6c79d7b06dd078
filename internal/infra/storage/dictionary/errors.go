package dictionary

import "errors"

var (
	// ErrConnect возвращается при недоступности пула соединений
	ErrConnect = errors.New("dictionary.repository: failed to acquire connection")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("dictionary.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("dictionary.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("dictionary.repository: failed to scan row")
)
