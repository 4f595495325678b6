// Package testutil はデータベースを準備するテスト用ユーティリティを提供します。
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pizzapension/internal/database"
)

// NewDatabase はスキーマ適用済みの新しい SQLite データベースを開きます。
// テスト終了時に閉じられます
func NewDatabase(t *testing.T) *database.Database {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Open(context.Background(), database.DriverSQLite, "file:"+dbPath)
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.InitSchema(context.Background()), "Failed to create schema")
	return db
}
