package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"sendit/pkg/utils"
)

// database/sql driver names registered by the imports above
const (
	PgxDriver    = "pgx"
	SQLiteDriver = "sqlite3"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB wraps the connection pool together with the dialect it talks to.
type DB struct {
	*sql.DB
	driver  string
	builder sq.StatementBuilderType
}

// New wraps an already opened pool. driver is a database/sql driver name.
func New(conn *sql.DB, driver string) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == PgxDriver {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:      conn,
		driver:  driver,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

// Builder returns a squirrel statement builder using the driver's placeholder format
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

func (db *DB) Driver() string {
	return db.driver
}

// WithTx runs fn inside a transaction, committing on success and rolling back otherwise.
func (db *DB) WithTx(ctx context.Context, fn func(tx DBTX) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// InitDB opens and pings the pool described by config
func InitDB(config utils.DatabaseConfig) (*DB, error) {
	driver, dsn, err := DSN(config)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	// Pool configuration
	maxConns := config.MaxConns
	if maxConns <= 0 {
		maxConns = 10
	}
	if driver == SQLiteDriver {
		// SQLite serialises writers; a single connection avoids "database is locked".
		maxConns = 1
	}
	conn.SetMaxOpenConns(maxConns)
	conn.SetMaxIdleConns(maxConns)
	conn.SetConnMaxLifetime(30 * time.Minute)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	return New(conn, driver), nil
}

// DSN maps the configured driver to a database/sql driver name and connection string.
func DSN(config utils.DatabaseConfig) (string, string, error) {
	switch config.Driver {
	case utils.DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=5",
			config.Host, config.Port, config.User, config.Password, config.Name, config.SSLMode)
		return PgxDriver, dsn, nil
	case utils.DriverSQLite:
		return SQLiteDriver, fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", config.SQLitePath), nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", config.Driver)
	}
}
