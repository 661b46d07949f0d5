// file: internals/helpers/errs/errs.go
package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

/* =========================================================
   DOMAIN ERROR TAXONOMY

   Structural and workflow errors abort the whole operation
   with no partial state change. ErrLogUnavailable is the one
   exception: it reports a lost audit entry after the business
   operation has already committed.
========================================================= */

var (
	// ErrNotFound: a referenced entity/parent does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrCycle: the requested attach/reparent would make a node
	// its own ancestor.
	ErrCycle = errors.New("cycle detected")

	// ErrHasChildren: deletion blocked because direct children exist.
	ErrHasChildren = errors.New("has children")

	// ErrInvalidOrder: a reorder request does not match the current
	// sibling set exactly.
	ErrInvalidOrder = errors.New("invalid sibling order")

	// ErrIllegalTransition: (current, target) is not an allowed edge.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrGuardViolation: the transition edge exists but its
	// precondition is unmet.
	ErrGuardViolation = errors.New("transition guard violated")

	// ErrUniquenessViolation: slug/email/username collision surfaced
	// by the storage layer.
	ErrUniquenessViolation = errors.New("uniqueness violation")

	// ErrLogUnavailable: the audit sink rejected an entry. Never
	// rolls back the triggering operation.
	ErrLogUnavailable = errors.New("activity log unavailable")

	// ErrSlugFrozen: the slug is already public link identity
	// (a child resource references it) and cannot change.
	ErrSlugFrozen = errors.New("slug frozen: entity is publicly referenced")
)

// NotFoundf wraps ErrNotFound with entity context.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Cyclef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCycle, fmt.Sprintf(format, args...))
}

func InvalidOrderf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOrder, fmt.Sprintf(format, args...))
}

func IllegalTransitionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalTransition, fmt.Sprintf(format, args...))
}

func GuardViolationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrGuardViolation, fmt.Sprintf(format, args...))
}

// pgUniqueViolation is SQLSTATE 23505.
const pgUniqueViolation = "23505"

// MapUnique translates a Postgres unique-constraint failure into
// ErrUniquenessViolation; other errors pass through unchanged.
// scope names the colliding column for the caller-facing message
// ("slug", "email", "username").
func MapUnique(err error, scope string) error {
	if err == nil {
		return nil
	}
	if IsUniqueViolation(err) {
		return fmt.Errorf("%w: %s already taken", ErrUniquenessViolation, scope)
	}
	return err
}

// IsUniqueViolation detects SQLSTATE 23505 from pgx or lib/pq,
// with a substring fallback for wrapped drivers.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == pgUniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
