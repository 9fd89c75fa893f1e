package repositories

import (
	"database/sql"
	"time"

	"github.com/alimgiray/contributor-registry/internal/store"
)

// KVRepository is the sqlite-backed implementation of store.Store.
type KVRepository struct {
	db *sql.DB
}

func NewKVRepository(db *sql.DB) *KVRepository {
	return &KVRepository{db: db}
}

func (r *KVRepository) Get(class store.Class, key string) ([]byte, bool, error) {
	query := `SELECT value FROM registry_kv WHERE class = ? AND key = ?`

	var value []byte
	err := r.db.QueryRow(query, string(class), key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return value, true, nil
}

func (r *KVRepository) Set(class store.Class, key string, value []byte) error {
	query := `
		INSERT INTO registry_kv (class, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (class, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query, string(class), key, value, time.Now())
	return err
}

func (r *KVRepository) Has(class store.Class, key string) (bool, error) {
	query := `SELECT COUNT(1) FROM registry_kv WHERE class = ? AND key = ?`

	var count int
	if err := r.db.QueryRow(query, string(class), key).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *KVRepository) Remove(class store.Class, key string) error {
	query := `DELETE FROM registry_kv WHERE class = ? AND key = ?`
	_, err := r.db.Exec(query, string(class), key)
	return err
}

func (r *KVRepository) Keys(class store.Class, prefix string) ([]string, error) {
	query := `SELECT key FROM registry_kv WHERE class = ? AND key LIKE ? || '%' ORDER BY key ASC`

	rows, err := r.db.Query(query, string(class), prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}
