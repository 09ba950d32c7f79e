package kv

import (
	"context"
	"errors"

	"tradeaskill/internal/database"

	"github.com/jackc/pgx/v5"
)

// Postgres stores keys in the kv_store table created by the migration runner.
type Postgres struct {
	db database.DB
}

func NewPostgres(db database.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	var v string
	err := p.db.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	_, err := p.db.Exec(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	return err
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	_, err := p.db.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key)
	return err
}

var _ Store = (*Postgres)(nil)
