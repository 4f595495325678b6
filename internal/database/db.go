// Package database は参加登録と管理者アカウントを永続化します。
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// Open の driver に指定できる値
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ErrStorage はデータベースの障害すべてをラップします
var ErrStorage = errors.New("storage unavailable")

// Database はコネクションプールとその方言を保持します
type Database struct {
	DB     *sqlx.DB
	driver string
}

// Open はデータベースに接続し、接続を確認します
func Open(ctx context.Context, driver, dsn string) (*Database, error) {
	var sqlDriver string
	switch driver {
	case DriverPostgres:
		sqlDriver = "postgres"
	case DriverSQLite:
		sqlDriver = "sqlite3"
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrStorage, driver, err)
	}
	if driver == DriverSQLite {
		// sqlite の書き込みは同時に一つだけ
		db.SetMaxOpenConns(1)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", ErrStorage, driver, err)
	}

	return &Database{DB: db, driver: driver}, nil
}

// Close はコネクションプールを閉じます
func (d *Database) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}

// Driver は Open に渡された方言名を返します
func (d *Database) Driver() string {
	return d.driver
}

// InitSchema はテーブルが存在しない場合に作成します
func (d *Database) InitSchema(ctx context.Context) error {
	stmts := sqliteSchema
	if d.driver == DriverPostgres {
		stmts = postgresSchema
	}
	for _, stmt := range stmts {
		if _, err := d.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: create schema: %w", ErrStorage, err)
		}
	}
	return nil
}

var postgresSchema = []string{`
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(50) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL
	);`, `
	CREATE TABLE IF NOT EXISTS registrations (
		id SERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		pizza TEXT NOT NULL,
		drink TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
}

var sqliteSchema = []string{`
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL
	);`, `
	CREATE TABLE IF NOT EXISTS registrations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		pizza TEXT NOT NULL,
		drink TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`,
}
