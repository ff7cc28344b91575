package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/migrations"
)

// Driver names accepted by [Open] and [NewStorages].
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// ErrorClassifier turns driver errors into storage sentinels where a
// mapping exists and returns other errors unchanged.
type ErrorClassifier interface {
	Classify(err error) error
}

// DB is an open SQL database together with the dialect-specific query
// builder and error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassifier
	logger             *logger.Logger
}

// Open connects to a SQL database. driver is [DriverSQLite] or
// [DriverPostgres].
func Open(ctx context.Context, driver, dsn string, log *logger.Logger) (*DB, error) {
	switch driver {
	case DriverPostgres:
		return NewConnectPostgres(ctx, dsn, log)
	case DriverSQLite:
		return NewConnectSQLite(ctx, dsn, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// Migrate applies the embedded schema migrations for the database dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) classify(err error) error {
	if db.errorClassificator == nil {
		return err
	}
	return db.errorClassificator.Classify(err)
}
