// file: internals/helpers/errs/errs_test.go
package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestWrappersUnwrapToSentinels(t *testing.T) {
	assert.ErrorIs(t, NotFoundf("category %s", "x"), ErrNotFound)
	assert.ErrorIs(t, Cyclef("a under b"), ErrCycle)
	assert.ErrorIs(t, InvalidOrderf("missing id"), ErrInvalidOrder)
	assert.ErrorIs(t, IllegalTransitionf("post: archived -> published"), ErrIllegalTransition)
	assert.ErrorIs(t, GuardViolationf("empty title"), ErrGuardViolation)
}

func TestIsUniqueViolationPgx(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "uq_categories_slug"}
	assert.True(t, IsUniqueViolation(err))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create: %w", err)))

	notUnique := &pgconn.PgError{Code: "23503"} // fk violation
	assert.False(t, IsUniqueViolation(notUnique))
}

func TestIsUniqueViolationLibPQ(t *testing.T) {
	err := &pq.Error{Code: "23505"}
	assert.True(t, IsUniqueViolation(err))

	other := &pq.Error{Code: "40001"}
	assert.False(t, IsUniqueViolation(other))
}

func TestIsUniqueViolationSubstringFallback(t *testing.T) {
	assert.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "uq_posts_slug"`)))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestMapUnique(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505"}
	err := MapUnique(dup, "slug")
	assert.ErrorIs(t, err, ErrUniquenessViolation)
	assert.Contains(t, err.Error(), "slug")

	passthrough := errors.New("network down")
	assert.Equal(t, passthrough, MapUnique(passthrough, "slug"))
	assert.NoError(t, MapUnique(nil, "slug"))
}
