package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// NewSQLite открывает файл базы данных и настраивает соединение.
func NewSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", path)

	conn, err := sqlx.ConnectContext(ctx, "sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: не удалось подключиться: %w", err)
	}

	// sqlite пишет в один файл из одного писателя: единственное соединение
	// сериализует все запросы и исключает SQLITE_BUSY между обработчиками.
	conn.SetMaxOpenConns(1)

	return conn, nil
}

// InitSchema создаёт таблицы, если их ещё нет. Других миграций у проекта нет.
func InitSchema(ctx context.Context, conn *sqlx.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id   INTEGER PRIMARY KEY,
			coins     INTEGER NOT NULL DEFAULT 0,
			referrals INTEGER NOT NULL DEFAULT 0,
			last_bonus TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS withdrawals (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id    INTEGER NOT NULL,
			coins      INTEGER NOT NULL,
			rupees     REAL NOT NULL,
			method     TEXT NOT NULL,
			details    TEXT NOT NULL,
			status     TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP NOT NULL DEFAULT (datetime('now'))
		)`,
	}

	for _, query := range queries {
		if _, err := conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("sqlite: не удалось создать схему: %w", err)
		}
	}

	return nil
}
