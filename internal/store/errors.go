package store

import (
	"errors"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// ErrConflict marks a uniqueness or integrity violation reported by the
// database. The failed statement never leaves a partial row behind, so
// handlers can translate this straight into an HTTP 409.
var ErrConflict = errors.New("integrity conflict")

// isConstraintViolation reports whether err is an integrity-constraint
// violation from either supported driver.
func isConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// class 23 = integrity_constraint_violation
		return pqErr.Code.Class() == "23"
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	return false
}
