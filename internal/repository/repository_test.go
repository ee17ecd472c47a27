package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/dhanrush/dhanrush-backend/internal/db"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.NewSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.InitSchema(context.Background(), conn))

	return conn
}
