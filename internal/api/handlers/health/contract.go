package health

import (
	"context"

	"github.com/m04kA/SMC-ClinicService/pkg/dbmetrics"
)

// DBProvider источник лениво инициализируемого пула соединений
type DBProvider interface {
	Get(ctx context.Context) (*dbmetrics.DB, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
