package categories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/docsynchub/docsync/internal/dbx"
)

// SQLiteRepository stores assignment maps as JSON blobs in the kv table.
type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func storageKey(userID string) string {
	return userID + "-categories"
}

func (r *SQLiteRepository) load(ctx context.Context, q dbx.DBTX, userID string) (map[string]string, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, storageKey(userID)).Scan(&value)
	if err == sql.ErrNoRows {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments for %s: %w", userID, err)
	}

	m := map[string]string{}
	if err := json.Unmarshal(value, &m); err != nil {
		return nil, fmt.Errorf("failed to decode assignments for %s: %w", userID, err)
	}
	return m, nil
}

func (r *SQLiteRepository) save(ctx context.Context, q dbx.DBTX, userID string, m map[string]string) error {
	value, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode assignments for %s: %w", userID, err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, storageKey(userID), value)
	if err != nil {
		return fmt.Errorf("failed to save assignments for %s: %w", userID, err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context, userID string) (map[string]string, error) {
	return r.load(ctx, r.db, userID)
}

func (r *SQLiteRepository) Save(ctx context.Context, userID string, m map[string]string) error {
	return r.save(ctx, r.db, userID, m)
}

// Assign upserts one entry with a transactional read-modify-write.
func (r *SQLiteRepository) Assign(ctx context.Context, userID, docID, categoryID string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		m, err := r.load(ctx, tx, userID)
		if err != nil {
			return err
		}
		m[docID] = categoryID
		return r.save(ctx, tx, userID, m)
	})
}

// Clear deletes one entry; clearing an unknown document id is a no-op.
func (r *SQLiteRepository) Clear(ctx context.Context, userID, docID string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		m, err := r.load(ctx, tx, userID)
		if err != nil {
			return err
		}
		delete(m, docID)
		return r.save(ctx, tx, userID, m)
	})
}
