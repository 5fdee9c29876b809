package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// gooseLogger routes goose output to the debug level.
type gooseLogger struct {
	log *log.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Debugf(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Fatalf(format, v...)
}

// migrate applies all pending schema migrations.
func migrate(ctx context.Context, db *sql.DB, logger *log.Logger) error {
	goose.SetLogger(gooseLogger{log: logger})
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// SchemaVersion returns the applied migration version.
func (s *Store) SchemaVersion() (int64, error) {
	v, err := goose.GetDBVersion(s.db)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read schema version: %w", err)
	}
	return v, nil
}
