// Package dbtest gives integration tests a migrated PostgreSQL schema of their own.
// Tests using it are skipped unless DATABASE_URL points at a reachable server.
package dbtest

import (
	"context"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mentoring_backend/internals/configs"
	database "mentoring_backend/internals/databases"
)

// Open creates a throwaway schema, applies the embedded migrations to it and returns a
// GORM handle whose search_path points there. The schema is dropped on cleanup, so
// packages running in parallel never see each other's rows.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	raw := os.Getenv("DATABASE_URL")
	if raw == "" {
		t.Skip("DATABASE_URL not set")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
		t.Skip("DATABASE_URL must be a postgres:// URL")
	}

	ctx := context.Background()
	schema := "t_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	admin, err := database.OpenSQL(raw)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, `CREATE SCHEMA `+schema)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = admin.ExecContext(context.Background(), `DROP SCHEMA `+schema+` CASCADE`)
		_ = admin.Close()
	})

	q := u.Query()
	q.Set("search_path", schema)
	u.RawQuery = q.Encode()
	dsn := u.String()

	sqlDB, err := database.OpenSQL(dsn)
	require.NoError(t, err)
	defer sqlDB.Close()
	migrations, err := database.LoadMigrations(database.MigrationFS, "migrations")
	require.NoError(t, err)
	_, err = database.RunMigrations(ctx, sqlDB, migrations)
	require.NoError(t, err)

	db, err := database.ConnectDB(configs.AppConfig{DatabaseURL: dsn, LogLevel: "warn"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
