package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ebenezerdon/lunasleep-sleep-tracker/internal"
)

// PostgresStore is the optional remote backend; it holds the collection in
// the same single-key kv shape as the local stores.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStore(dsn string, logger internal.Logger) (*PostgresStore, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("storage: failed to connect to postgres: %v", err)
		return nil, err
	}
	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value BYTEA NOT NULL)`); err != nil {
		pool.Close()
		return nil, err
	}
	return &PostgresStore{pool: pool, logger: logger}, nil
}

func (p *PostgresStore) Read(ctx context.Context) ([]byte, bool, error) {
	var data []byte
	err := p.pool.QueryRow(ctx, `SELECT value FROM kv WHERE key = $1`, StorageKey).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		p.logger.Errorf("storage: failed to read collection: %v", err)
		return nil, false, err
	}
	return data, true, nil
}

func (p *PostgresStore) Write(ctx context.Context, data []byte) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO kv (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		StorageKey, data)
	if err != nil {
		p.logger.Errorf("storage: failed to write collection: %v", err)
	}
	return err
}

func (p *PostgresStore) Delete(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM kv WHERE key = $1`, StorageKey)
	return err
}

func (p *PostgresStore) Close() error {
	p.pool.Close()
	return nil
}

var _ Store = (*PostgresStore)(nil)
