package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/festivalapp/festival-api/internal/config"
)

// Open connects to the configured storage backend, verifies the
// connection and bootstraps the schema.  The default backend is a
// local SQLite file; DB_DRIVER=mysql selects a MySQL server instead.
// Both drivers use '?' placeholders, so the repositories are shared.
func Open(cfg config.Config) (*sql.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return OpenSQLite(cfg.DBPath)
	case "mysql":
		return OpenMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

// OpenSQLite opens (creating if necessary) the SQLite database at
// path and creates the schema.  Foreign keys are enabled per
// connection via the DSN pragma so that the user/set cascades fire;
// busy_timeout keeps concurrent test writers from failing fast with
// SQLITE_BUSY.
func OpenSQLite(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := ping(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schemaSQLite); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return db, nil
}

// OpenMySQL connects to MySQL and creates the schema.
func OpenMySQL(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime stays off: times travel as DB-format strings end to end
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&loc=UTC", auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := ping(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	for _, stmt := range schemaMySQL {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return db, nil
}

// ping verifies the connection with a bounded timeout.
func ping(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}

// schemaSQLite creates the three tables.  user_selections carries the
// storage-level UNIQUE(user_id, set_id) constraint that backs the
// duplicate pre-check in the selection repository, and both foreign
// keys cascade so deleting a user or a set removes its selections.
const schemaSQLite = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sets (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    artist TEXT NOT NULL,
    stage TEXT NOT NULL,
    start_time TEXT NOT NULL,
    end_time TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    image_url TEXT
);

CREATE INDEX IF NOT EXISTS idx_sets_start_time ON sets(start_time);

CREATE TABLE IF NOT EXISTS user_selections (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    set_id INTEGER NOT NULL REFERENCES sets(id) ON DELETE CASCADE,
    UNIQUE (user_id, set_id)
);

CREATE INDEX IF NOT EXISTS idx_user_selections_set_id ON user_selections(set_id);
`

// schemaMySQL mirrors schemaSQLite.  MySQL cannot run multiple
// statements per Exec with the default DSN, hence the slice.
var schemaMySQL = []string{
	`CREATE TABLE IF NOT EXISTS users (
    id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    name VARCHAR(100) NOT NULL,
    PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS sets (
    id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    artist VARCHAR(100) NOT NULL,
    stage VARCHAR(100) NOT NULL,
    start_time DATETIME NOT NULL,
    end_time DATETIME NOT NULL,
    description TEXT NOT NULL,
    image_url VARCHAR(512) NULL,
    PRIMARY KEY (id),
    KEY idx_sets_start_time (start_time)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS user_selections (
    id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
    user_id BIGINT UNSIGNED NOT NULL,
    set_id BIGINT UNSIGNED NOT NULL,
    PRIMARY KEY (id),
    UNIQUE KEY uq_user_selections_user_set (user_id, set_id),
    KEY idx_user_selections_set_id (set_id),
    CONSTRAINT fk_user_selections_user FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE,
    CONSTRAINT fk_user_selections_set FOREIGN KEY (set_id) REFERENCES sets (id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}
