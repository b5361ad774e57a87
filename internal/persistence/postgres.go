package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/estate-crm/internal/config"
)

// PostgresSnapshotter keeps collection snapshots in a single key-value
// table. Each Put is one upsert replacing the whole JSON document, which
// matches the snapshot-per-write storage model exactly.
type PostgresSnapshotter struct {
	pool *pgxpool.Pool
}

const bootstrapSQL = `
    CREATE TABLE IF NOT EXISTS crm_snapshots (
        key        TEXT PRIMARY KEY,
        value      JSONB NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`

// NewPostgresSnapshotter establishes a connection pool and ensures the
// snapshot table exists.
func NewPostgresSnapshotter(ctx context.Context, cfg config.PostgresConfig, logger *zap.Logger) (*PostgresSnapshotter, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.ConnMaxIdleSec > 0 {
		poolCfg.MaxConnIdleTime = time.Duration(cfg.ConnMaxIdleSec) * time.Second
	}
	if cfg.ConnMaxLifeSec > 0 {
		poolCfg.MaxConnLifetime = time.Duration(cfg.ConnMaxLifeSec) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if _, err := pool.Exec(ctx, bootstrapSQL); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("connected to postgres")
	return &PostgresSnapshotter{pool: pool}, nil
}

func (p *PostgresSnapshotter) Put(ctx context.Context, key string, value []byte) error {
	if p == nil || p.pool == nil {
		return errors.New("postgres pool not configured")
	}
	const query = `
        INSERT INTO crm_snapshots (key, value, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	_, err := p.pool.Exec(ctx, query, key, value)
	return err
}

func (p *PostgresSnapshotter) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if p == nil || p.pool == nil {
		return nil, false, errors.New("postgres pool not configured")
	}
	const query = `SELECT value FROM crm_snapshots WHERE key=$1`
	var value []byte
	if err := p.pool.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

// Close releases pool resources.
func (p *PostgresSnapshotter) Close() {
	if p != nil && p.pool != nil {
		p.pool.Close()
	}
}

// Ping verifies database connectivity.
func (p *PostgresSnapshotter) Ping(ctx context.Context) error {
	if p == nil || p.pool == nil {
		return errors.New("postgres pool not configured")
	}
	return p.pool.Ping(ctx)
}
