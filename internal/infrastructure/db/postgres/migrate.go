package postgres

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

type gooseLogger struct {
	log *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...interface{}) { l.log.Infof(format, v...) }

// Fatalf does not exit; Migrate returns the error instead.
func (l gooseLogger) Fatalf(format string, v ...interface{}) { l.log.Errorf(format, v...) }

// Migrate applies the embedded schema migrations.
func Migrate(ctx context.Context, logger *zap.Logger, pool *pgxpool.Pool) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{log: logger.Sugar()})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
