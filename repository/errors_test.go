package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))
	assert.ErrorIs(t, translateError(gorm.ErrRecordNotFound), ErrNotFound)

	other := errors.New("connection reset")
	assert.Equal(t, other, translateError(other))
}

func TestTranslateErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_pokemons_name",
		Detail:         "Key (name)=(pikachu) already exists.",
	}

	err := translateError(fmt.Errorf("insert: %w", pgErr))

	var dup *DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "name", dup.Key)
	assert.Equal(t, "pikachu", dup.Value)
	assert.ErrorIs(t, err, pgErr)
}

func TestTranslateErrorUniqueViolationWithoutDetail(t *testing.T) {
	err := translateError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_pokemons_no"})

	var dup *DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "idx_pokemons_no", dup.Key)
	assert.Empty(t, dup.Value)
}

func TestTranslateErrorOtherPgError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23502"}
	assert.Equal(t, error(pgErr), translateError(pgErr))
}
