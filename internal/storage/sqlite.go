package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/coordinet/internal/common"
	"github.com/dmitrijs2005/coordinet/internal/dbx"
)

// SQLiteRepository implements Repository on the kv table using a DBTX
// (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a SQLiteRepository bound to db.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) GetVersioned(ctx context.Context, key string) ([]byte, int64, error) {
	var (
		value   []byte
		version int64
	)
	err := r.db.QueryRowContext(ctx, `SELECT value, version FROM kv WHERE key = ?`, key).Scan(&value, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, version, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, version) VALUES (?, ?, 1)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, version = kv.version + 1
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) CompareAndSet(ctx context.Context, key string, value []byte, version int64) error {
	var (
		res sql.Result
		err error
	)
	if version == 0 {
		res, err = r.db.ExecContext(ctx, `
			INSERT INTO kv (key, value, version) VALUES (?, ?, 1)
			ON CONFLICT(key) DO NOTHING
		`, key, value)
	} else {
		res, err = r.db.ExecContext(ctx, `
			UPDATE kv SET value = ?, version = version + 1
			WHERE key = ? AND version = ?
		`, value, key, version)
	}
	if err != nil {
		return fmt.Errorf("failed to write kv[%s]: %w", key, err)
	}

	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return fmt.Errorf("kv[%s] at version %d: %w", key, version, common.ErrVersionConflict)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM kv`)
	if err != nil {
		return nil, fmt.Errorf("failed to list kv: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var (
			key   string
			value []byte
		)
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan kv row: %w", err)
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate kv rows: %w", err)
	}
	return result, nil
}

// Batch runs in its own transaction when the repository is bound to a
// *sql.DB, and inside the caller's transaction when bound to a *sql.Tx.
func (r *SQLiteRepository) Batch(ctx context.Context, set map[string][]byte, del []string) error {
	b, ok := r.db.(dbx.TxBeginner)
	if !ok {
		return batch(ctx, r.db, set, del)
	}
	return dbx.WithTx(ctx, b, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return batch(ctx, tx, set, del)
	})
}

func batch(ctx context.Context, db dbx.DBTX, set map[string][]byte, del []string) error {
	repo := NewSQLiteRepository(db)

	for _, key := range del {
		if err := repo.Delete(ctx, key); err != nil {
			return err
		}
	}

	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := repo.Set(ctx, key, set[key]); err != nil {
			return err
		}
	}
	return nil
}
