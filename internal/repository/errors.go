package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrNotFound is returned when a row does not exist for the given id.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an insert or delete violates a uniqueness or
// referential-integrity constraint. Deleting a hierarchy/catalog row that is
// still referenced by children is rejected with this error.
var ErrConflict = errors.New("constraint conflict")

// pq integrity_constraint_violation codes
const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
	pqCheckViolation      = "23514"
)

// mapPQError translates Postgres constraint violations into ErrConflict so
// handlers can surface them uniformly.
func mapPQError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqForeignKeyViolation, pqUniqueViolation, pqCheckViolation:
			return ErrConflict
		}
	}
	return err
}
