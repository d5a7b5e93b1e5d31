package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dsn     string
		dialect string
		wantErr bool
	}{
		{dsn: "postgres://u:p@localhost:5432/hospital", dialect: DialectPostgres},
		{dsn: "postgresql://u:p@localhost/hospital?sslmode=disable", dialect: DialectPostgres},
		{dsn: "sqlite://./hospital.db", dialect: DialectSQLite},
		{dsn: "file:test?mode=memory", dialect: DialectSQLite},
		{dsn: ":memory:", dialect: DialectSQLite},
		{dsn: "mysql://root@localhost/hospital", wantErr: true},
		{dsn: "", wantErr: true},
	}

	for _, tt := range tests {
		d, dialect, err := Dialector(tt.dsn)
		if tt.wantErr {
			assert.Error(t, err, tt.dsn)
			continue
		}
		require.NoError(t, err, tt.dsn)
		assert.NotNil(t, d)
		assert.Equal(t, tt.dialect, dialect)
		assert.Equal(t, tt.dialect, d.Name())
	}
}

func TestOpen_SQLite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)

	require.NoError(t, Ping(ctx, db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	require.NoError(t, Close(db))
	assert.Error(t, Ping(ctx, db))
}

func TestWithForeignKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hospital.db?_pragma=foreign_keys(1)", withForeignKeys("hospital.db"))
	assert.Equal(t, "file:x?mode=memory&_pragma=foreign_keys(1)", withForeignKeys("file:x?mode=memory"))
	assert.Equal(t, "file:x?_pragma=foreign_keys(1)", withForeignKeys("file:x?_pragma=foreign_keys(1)"))
}

func TestOpen_SQLiteEnforcesForeignKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}
