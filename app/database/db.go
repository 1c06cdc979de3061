package database

import "database/sql"

// DB is the Postgres-backed Store. All queries go through the database/sql
// pool, so every request's connection is scoped to the call and returned to
// the pool on every exit path.
type DB struct {
	conn *sql.DB
}

// New wraps an open connection pool as a Store.
func New(conn *sql.DB) *DB {
	return &DB{conn: conn}
}

var _ Store = (*DB)(nil)
