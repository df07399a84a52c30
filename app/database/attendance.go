package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/bounis0910/Att-School/app/models"
	"github.com/google/uuid"
)

// RecordClassAttendance upserts one attendance row per student for a
// class, date and period, inside a single transaction. A present status
// clears any absence remark; an absent status preserves whatever remark
// the row already carries. Returns the number of rows written.
//
// Two submissions racing on the same (student, date, period) resolve
// through the unique index: the losing insert becomes an update and the
// storage-layer execution order decides the final status. Callers never
// see a uniqueness violation.
func RecordClassAttendance(db *sql.DB, classID string, date time.Time, period int, teacherID string, statuses map[string]models.AttendanceStatus) (int, error) {
	if period < 1 {
		return 0, fmt.Errorf("%w: period number must be >= 1", ErrInvalidValue)
	}
	// Validate every status before the first write
	for studentID, status := range statuses {
		if _, err := models.ParseStatus(string(status)); err != nil {
			return 0, fmt.Errorf("%w: student %s: %v", ErrInvalidValue, studentID, err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer tx.Rollback()

	query := `INSERT INTO attendance (id, student_id, class_id, date, period, status, remark, teacher_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, 'none', $7, NOW(), NOW())
			  ON CONFLICT (student_id, date, period)
			  DO UPDATE SET status = EXCLUDED.status,
							class_id = EXCLUDED.class_id,
							teacher_id = EXCLUDED.teacher_id,
							remark = CASE WHEN EXCLUDED.status = 'present' THEN 'none' ELSE attendance.remark END,
							updated_at = NOW()`

	written := 0
	for studentID, status := range statuses {
		_, err := tx.Exec(query, uuid.NewString(), studentID, classID, truncateToDate(date), period, status, teacherID)
		if err != nil {
			return 0, classifyAttendanceWriteError(err, studentID)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return written, nil
}

// classifyAttendanceWriteError maps a failed attendance insert to a
// classified error. A foreign-key violation means the submitted student id
// does not exist, which is a not-found condition rather than a storage
// fault.
func classifyAttendanceWriteError(err error, studentID string) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: student %s", ErrNotFound, studentID)
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

// SetRemark attaches an excusal remark to an existing absence. The target
// row is locked for the duration of the check so the guard cannot race a
// concurrent status change. Remarks never modify the stored status.
func SetRemark(db *sql.DB, studentID string, date time.Time, period int, remark models.Remark) error {
	normalized, err := models.ParseRemark(string(remark))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer tx.Rollback()

	var status models.AttendanceStatus
	err = tx.QueryRow(
		`SELECT status FROM attendance WHERE student_id = $1 AND date = $2 AND period = $3 FOR UPDATE`,
		studentID, truncateToDate(date), period,
	).Scan(&status)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if status != models.Absent {
		return ErrPreconditionFailed
	}

	_, err = tx.Exec(
		`UPDATE attendance SET remark = $1, updated_at = NOW() WHERE student_id = $2 AND date = $3 AND period = $4`,
		normalized, studentID, truncateToDate(date), period,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// GetAttendanceByClassAndDate retrieves all attendance records for a class
// on a specific date, ordered for stable report output.
func GetAttendanceByClassAndDate(db *sql.DB, classID string, date time.Time) ([]*models.Attendance, error) {
	query := `SELECT id, student_id, class_id, date, period, status, remark, COALESCE(teacher_id::text, ''), created_at, updated_at
			  FROM attendance
			  WHERE class_id = $1 AND date = $2
			  ORDER BY period, student_id`

	rows, err := db.Query(query, classID, truncateToDate(date))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	records := make([]*models.Attendance, 0)
	for rows.Next() {
		record := &models.Attendance{}
		err := rows.Scan(
			&record.ID, &record.StudentID, &record.ClassID, &record.Date, &record.Period,
			&record.Status, &record.Remark, &record.TeacherID, &record.CreatedAt, &record.UpdatedAt,
		)
		if err != nil {
			log.Printf("GetAttendanceByClassAndDate Scan Error: %v", err)
			continue
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetAttendanceByDate retrieves all records for a date with joined display
// names, for the daily admin listing.
func GetAttendanceByDate(db *sql.DB, date time.Time) ([]*models.Attendance, error) {
	query := `SELECT a.id, a.student_id, a.class_id, a.date, a.period, a.status, a.remark,
			  COALESCE(a.teacher_id::text, ''), a.created_at, a.updated_at,
			  s.first_name || ' ' || s.last_name,
			  c.name,
			  COALESCE(u.first_name || ' ' || u.last_name, '')
			  FROM attendance a
			  JOIN students s ON a.student_id = s.id
			  JOIN classes c ON a.class_id = c.id
			  LEFT JOIN users u ON a.teacher_id = u.id
			  WHERE a.date = $1
			  ORDER BY c.name, a.period, s.first_name, s.last_name`

	rows, err := db.Query(query, truncateToDate(date))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	records := make([]*models.Attendance, 0)
	for rows.Next() {
		record := &models.Attendance{}
		err := rows.Scan(
			&record.ID, &record.StudentID, &record.ClassID, &record.Date, &record.Period,
			&record.Status, &record.Remark, &record.TeacherID, &record.CreatedAt, &record.UpdatedAt,
			&record.StudentName, &record.ClassName, &record.TeacherName,
		)
		if err != nil {
			log.Printf("GetAttendanceByDate Scan Error: %v", err)
			continue
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetRecordingTeacherNames returns the distinct names of teachers who
// recorded any entry for the class on the date, ordered alphabetically.
func GetRecordingTeacherNames(db *sql.DB, classID string, date time.Time) ([]string, error) {
	query := `SELECT DISTINCT u.first_name || ' ' || u.last_name
			  FROM attendance a
			  JOIN users u ON a.teacher_id = u.id
			  WHERE a.class_id = $1 AND a.date = $2
			  ORDER BY 1`

	rows, err := db.Query(query, classID, truncateToDate(date))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			continue
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
