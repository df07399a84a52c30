package database

import (
	"errors"

	"github.com/lib/pq"
)

// Classified errors surfaced to callers. Handlers map these to HTTP
// statuses; raw storage error text never reaches a response.
var (
	// ErrNotFound means a referenced student, class or record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrPreconditionFailed means a remark was set on a record whose
	// status is not absent.
	ErrPreconditionFailed = errors.New("record status does not allow this operation")

	// ErrInvalidValue means a status, remark or period number outside the
	// accepted set was rejected before any write.
	ErrInvalidValue = errors.New("invalid value")

	// ErrDuplicatePeriod means a schedule entry already exists for the
	// same (day, period number, class scope) combination.
	ErrDuplicatePeriod = errors.New("period already exists for this day and scope")

	// ErrStorageUnavailable means the database could not be reached. The
	// operation is aborted without partial effect and not retried.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// isUniqueViolation reports whether err is a Postgres unique-key conflict
// (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

// isForeignKeyViolation reports whether err is a Postgres foreign-key
// violation (SQLSTATE 23503), meaning a referenced row does not exist.
func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return false
}
