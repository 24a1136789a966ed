package repository

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches the lookup
var ErrNotFound = errors.New("record not found")

// uniqueViolation is the Postgres SQLSTATE for unique_violation
const uniqueViolation = "23505"

// DuplicateKeyError reports the unique key a write collided with
type DuplicateKeyError struct {
	Key   string
	Value string
	Err   error
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %s=%s", e.Key, e.Value)
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// Detail looks like: Key (name)=(pikachu) already exists.
var detailPattern = regexp.MustCompile(`Key \(([^)]+)\)=\((.*)\) already exists`)

// translateError maps driver errors onto the package errors
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		dup := &DuplicateKeyError{Key: pgErr.ConstraintName, Err: err}
		if m := detailPattern.FindStringSubmatch(pgErr.Detail); m != nil {
			dup.Key, dup.Value = m[1], m[2]
		}
		return dup
	}
	return err
}
