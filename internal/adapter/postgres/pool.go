// Package postgres holds the connection pool, transaction manager and error
// mapping shared by the PostgreSQL repositories.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/agendaamiga/agenda-backend/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	applicationName = "agenda-backend"
	pingTimeout     = 5 * time.Second
)

// NewPool parses cfg.DSN, applies the pool limits and pings the database
// before returning. Connections report themselves as agenda-backend in
// pg_stat_activity unless the DSN sets application_name.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	if _, ok := poolCfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
