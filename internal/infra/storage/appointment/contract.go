package appointment

import (
	"context"

	"github.com/m04kA/SMC-ClinicService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// DBProvider источник лениво инициализируемого пула соединений
type DBProvider interface {
	Get(ctx context.Context) (*dbmetrics.DB, error)
}
