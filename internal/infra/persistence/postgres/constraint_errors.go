package postgres

import (
	"strings"

	"ogfinder/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

// isUniqueConstraintViolation covers both gorm's translated error (TranslateError)
// and the raw driver error returned by pools opened without translation.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgUniqueViolation
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	pgErr, ok := pgError(err)

	return ok && pgErr.Code == pgCheckViolation
}

// isConnectionFailure reports SQLSTATE class 08 (connection exception), 53
// (insufficient resources) and 57P (operator intervention), plus dial failures.
func isConnectionFailure(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	pgErr, ok := pgError(err)
	if !ok {
		return false
	}

	return strings.HasPrefix(pgErr.Code, "08") ||
		strings.HasPrefix(pgErr.Code, "53") ||
		strings.HasPrefix(pgErr.Code, "57P")
}
