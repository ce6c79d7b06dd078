package dbpool

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DSN, по которому заведомо никто не слушает
const unreachableDSN = "host=127.0.0.1 port=1 user=clinic dbname=clinic sslmode=disable connect_timeout=1"

func TestGet_PingFailureIsNotSticky(t *testing.T) {
	p := New(Options{DSN: unreachableDSN, PingTimeout: 2 * time.Second}, nil)

	_, err := p.Get(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping database")

	// Неудачный ping не фиксируется: пул остается неинициализированным
	// и следующий Get повторяет попытку подключения
	assert.Nil(t, p.db)
	assert.NoError(t, p.openErr)
	assert.False(t, p.Initialized())

	_, err = p.Get(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping database")
}

func TestShutdown_BeforeFirstGet(t *testing.T) {
	p := New(Options{DSN: unreachableDSN}, nil)
	assert.NoError(t, p.Shutdown())
}

func TestNew_DefaultPingTimeout(t *testing.T) {
	p := New(Options{DSN: unreachableDSN}, nil)
	assert.Equal(t, 5*time.Second, p.opts.PingTimeout)
}
