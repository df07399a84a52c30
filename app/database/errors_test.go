package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestClassifyAttendanceWriteError(t *testing.T) {
	fkErr := &pq.Error{Code: "23503", Constraint: "attendance_student_id_fkey"}
	classified := classifyAttendanceWriteError(fkErr, "s-missing")
	if !errors.Is(classified, ErrNotFound) {
		t.Errorf("foreign-key violation classified as %v, want ErrNotFound", classified)
	}
	if errors.Is(classified, ErrStorageUnavailable) {
		t.Error("foreign-key violation must not classify as ErrStorageUnavailable")
	}

	// A wrapped pq error still classifies through errors.As.
	wrapped := fmt.Errorf("exec: %w", fkErr)
	if !errors.Is(classifyAttendanceWriteError(wrapped, "s-missing"), ErrNotFound) {
		t.Error("wrapped foreign-key violation should classify as ErrNotFound")
	}

	other := errors.New("connection refused")
	if !errors.Is(classifyAttendanceWriteError(other, "s1"), ErrStorageUnavailable) {
		t.Error("non-constraint errors should classify as ErrStorageUnavailable")
	}
}

func TestConstraintViolationHelpers(t *testing.T) {
	if !isUniqueViolation(&pq.Error{Code: "23505"}) {
		t.Error("23505 should report as a unique violation")
	}
	if !isForeignKeyViolation(&pq.Error{Code: "23503"}) {
		t.Error("23503 should report as a foreign-key violation")
	}
	if isForeignKeyViolation(&pq.Error{Code: "23505"}) || isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Error("constraint helpers must not cross-match SQLSTATE codes")
	}
	if isForeignKeyViolation(errors.New("plain")) || isUniqueViolation(nil) {
		t.Error("non-pq errors should not match")
	}
}
