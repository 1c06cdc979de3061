package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound means a credential match or point lookup found no row.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate means a unique constraint (enrollment_no, teacher_id)
	// was violated on insert.
	ErrDuplicate = errors.New("record already exists")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// translate maps driver-level errors to the store's sentinel errors so
// handlers never have to know about pq.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return ErrDuplicate
		case pqForeignKeyViolation:
			return ErrNotFound
		}
	}
	return err
}
