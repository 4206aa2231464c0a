// Package dberr classifies driver failures shared by every SQL backed store.
package dberr

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"net"
	"strings"
	"syscall"

	domainerrors "ogfinder/internal/domain/errors"
	"ogfinder/internal/errors"
)

// IsUnavailable reports whether err means the backend could not be reached,
// as opposed to a statement that reached it and failed.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// database/sql does not export its closed-handle error.
	return strings.Contains(err.Error(), "sql: database is closed")
}

// Translate maps a driver error onto the domain taxonomy. extra lets a driver
// flag its own unavailability codes.
func Translate(err error, details string, extra ...func(error) bool) error {
	if err == nil {
		return nil
	}

	unavailable := IsUnavailable(err)
	for _, check := range extra {
		if unavailable {
			break
		}
		unavailable = check(err)
	}

	if unavailable {
		return errors.Wrap(domainerrors.ErrStoreUnavailable.WithCause(err), details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
