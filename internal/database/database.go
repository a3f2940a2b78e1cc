package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig sizes the connection pool behind the preference store
type PoolConfig struct {
	DSN         string
	MaxConns    int // zero keeps the pgxpool default
	MaxIdleTime time.Duration
	MaxLifetime time.Duration
}

func (c PoolConfig) parse() (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}
	if c.MaxConns > 0 {
		pc.MaxConns = int32(min(c.MaxConns, math.MaxInt32))
	}
	pc.MinConns = DefaultMinConnections
	if c.MaxLifetime > 0 {
		pc.MaxConnLifetime = c.MaxLifetime
	}
	if c.MaxIdleTime > 0 {
		pc.MaxConnIdleTime = c.MaxIdleTime
	}
	return pc, nil
}

// NewPool opens a PostgreSQL pool and pings it once before returning
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	pc, err := cfg.parse()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"max_conns", pc.MaxConns,
		"max_conn_lifetime", pc.MaxConnLifetime)
	return pool, nil
}
