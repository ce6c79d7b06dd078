package dbpool

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-ClinicService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicService/pkg/metrics"
)

// Options параметры connection pool
type Options struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	PingTimeout     time.Duration
}

// Pool процессный connection pool с ленивой инициализацией
// Пул создается при первом обращении к Get; инициализация выполняется под
// мьютексом, поэтому конкурентные первые обращения приводят ровно к одной
// попытке подключения, остальные ждут ее исхода.
// Ошибка sql.Open (неисправный DSN или драйвер) запоминается навсегда: она не
// лечится со временем. Неудачный ping не запоминается - следующий Get повторит
// подключение, и временно недоступная на старте БД подхватится после поднятия
type Pool struct {
	opts    Options
	metrics *metrics.Metrics

	mu      sync.Mutex
	db      *dbmetrics.DB
	openErr error
}

// New создает пул без установления соединения
func New(opts Options, m *metrics.Metrics) *Pool {
	if opts.PingTimeout <= 0 {
		opts.PingTimeout = 5 * time.Second
	}
	return &Pool{opts: opts, metrics: m}
}

// Get возвращает инициализированный пул, при необходимости устанавливая соединение
func (p *Pool) Get(ctx context.Context) (*dbmetrics.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}
	if p.openErr != nil {
		return nil, p.openErr
	}

	db, err := sql.Open("postgres", p.opts.DSN)
	if err != nil {
		p.openErr = fmt.Errorf("dbpool: open connection: %w", err)
		return nil, p.openErr
	}

	db.SetMaxOpenConns(p.opts.MaxOpenConns)
	db.SetMaxIdleConns(p.opts.MaxIdleConns)
	db.SetConnMaxLifetime(p.opts.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, p.opts.PingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("dbpool: ping database: %w", err)
	}

	p.db = dbmetrics.Wrap(db, p.metrics)
	return p.db, nil
}

// Initialized сообщает, установлено ли соединение
// Позволяет наблюдать за состоянием пула, не провоцируя подключение
func (p *Pool) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.db != nil
}

// Shutdown закрывает пул, если он был инициализирован
func (p *Pool) Shutdown() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}
	return p.db.Close()
}
