package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Ключи хранилища: по одному на коллекцию реестра.
const (
	KeyPortfolio = "legends_portfolio"
	KeyLeads     = "legends_leads"
)

// KVStore реализует долговечное локальное key-value хранилище на sqlite.
// Значение всегда заменяется целиком, частичных записей не бывает.
type KVStore struct {
	db *sqlx.DB
}

// Open открывает (или создаёт) файл хранилища и готовит схему.
func Open(ctx context.Context, path string) (*KVStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: не удалось создать каталог %s: %w", dir, err)
		}
	}

	db, err := sqlx.ConnectContext(ctx, "sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: не удалось открыть хранилище: %w", err)
	}

	// sqlite допускает одного писателя, пул соединений не нужен.
	db.SetMaxOpenConns(1)

	schema := `
		CREATE TABLE IF NOT EXISTS registry_kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: не удалось подготовить схему: %w", err)
	}

	return &KVStore{db: db}, nil
}

// Get возвращает значение по ключу. Отсутствие ключа не является
// ошибкой: вызывающая сторона заполняет коллекцию значениями по умолчанию.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.GetContext(ctx, &value, `SELECT value FROM registry_kv WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: не удалось прочитать ключ %s: %w", key, err)
	}
	return value, true, nil
}

// Set атомарно заменяет значение по ключу целиком.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO registry_kv (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("storage: не удалось записать ключ %s: %w", key, err)
	}
	return nil
}

// Delete удаляет ключ; отсутствие ключа не считается ошибкой.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM registry_kv WHERE key = $1`, key); err != nil {
		return fmt.Errorf("storage: не удалось удалить ключ %s: %w", key, err)
	}
	return nil
}

// Close закрывает файл хранилища.
func (s *KVStore) Close() error {
	return s.db.Close()
}
