// Package migrations holds the versioned schema as goose SQL files.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/Skotchmaster/hospital/internal/models"
	pkgdb "github.com/Skotchmaster/hospital/pkg/db"
)

//go:embed *.sql
var FS embed.FS

func setup() error {
	goose.SetBaseFS(FS)
	goose.SetLogger(gooseLogger{l: slog.Default().With("component", "goose")})
	return goose.SetDialect("pgx")
}

func Up(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Down rolls back the latest version only.
func Down(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	return goose.DownContext(ctx, db, ".")
}

func Status(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	return goose.StatusContext(ctx, db, ".")
}

// Apply brings the schema up to date. The SQL files target postgres, so
// sqlite databases are migrated from the models instead.
func Apply(ctx context.Context, db *gorm.DB) error {
	if db.Dialector.Name() == pkgdb.DialectSQLite {
		return db.WithContext(ctx).AutoMigrate(models.All()...)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return Up(ctx, sqlDB)
}

type gooseLogger struct {
	l *slog.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.l.Info(fmt.Sprintf(format, v...))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.l.Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}
