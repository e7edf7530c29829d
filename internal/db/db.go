package db

import (
	"fmt"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

// Connect opens the SQLite database at the given path and verifies the
// connection. Use ":memory:" for an ephemeral database; in that mode every
// pool connection would get its own empty database, so the pool is capped to
// a single connection.
func Connect(path string) (*sqlx.DB, error) {
	pool, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if path == ":memory:" {
		pool.SetMaxOpenConns(1)
	}
	if err := pool.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// Initialize enables foreign keys and creates the schema if it does not
// exist. The UNIQUE constraints on users are the final arbiter for
// concurrent signups; application-level pre-checks are only an optimization.
func Initialize(pool *sqlx.DB) error {
	if _, err := pool.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS movies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		author TEXT NOT NULL,
		release_date TEXT,
		created_by INTEGER NOT NULL REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS ratings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		movie_id INTEGER NOT NULL REFERENCES movies(id),
		rating INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS comments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id),
		movie_id INTEGER NOT NULL REFERENCES movies(id),
		comment TEXT NOT NULL,
		parent_id INTEGER REFERENCES comments(id)
	);

	CREATE INDEX IF NOT EXISTS idx_comments_parent ON comments(parent_id);
	CREATE INDEX IF NOT EXISTS idx_comments_movie ON comments(movie_id);
	CREATE INDEX IF NOT EXISTS idx_ratings_movie ON ratings(movie_id);
	`

	if _, err := pool.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
