package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/bounis0910/Att-School/app/models"
	"github.com/google/uuid"
)

func scanPeriod(scanner interface{ Scan(...interface{}) error }) (*models.Period, error) {
	period := &models.Period{}
	var startStr, endStr *string
	err := scanner.Scan(
		&period.ID, &period.DayOfWeek, &period.PeriodNumber,
		&startStr, &endStr, &period.ClassID,
		&period.CreatedAt, &period.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Decode stored HH:MM strings at the store boundary
	if startStr != nil {
		t, err := models.ParseTimeOfDay(*startStr)
		if err != nil {
			return nil, err
		}
		period.StartTime = &t
	}
	if endStr != nil {
		t, err := models.ParseTimeOfDay(*endStr)
		if err != nil {
			return nil, err
		}
		period.EndTime = &t
	}
	return period, nil
}

func timeOfDayArg(t *models.TimeOfDay) interface{} {
	if t == nil {
		return nil
	}
	return t.String()
}

// GetPeriodsForClassDay returns the schedule for one class on one day of
// the week: entries scoped to the class plus school-wide entries, ordered
// by period number. An empty classID returns only the school-wide schedule.
func GetPeriodsForClassDay(db *sql.DB, dayOfWeek int, classID string) ([]*models.Period, error) {
	query := `SELECT id, day_of_week, period_number, start_time, end_time, class_id, created_at, updated_at
			  FROM periods
			  WHERE day_of_week = $1 AND (class_id IS NULL OR class_id = $2)
			  ORDER BY period_number`

	rows, err := db.Query(query, dayOfWeek, nullableID(classID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	periods := make([]*models.Period, 0)
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			log.Printf("GetPeriodsForClassDay Scan Error: %v", err)
			continue
		}
		periods = append(periods, period)
	}
	return periods, rows.Err()
}

// GetAllPeriods returns the full schedule ordered by day then period number.
func GetAllPeriods(db *sql.DB) ([]*models.Period, error) {
	query := `SELECT id, day_of_week, period_number, start_time, end_time, class_id, created_at, updated_at
			  FROM periods
			  ORDER BY day_of_week, period_number`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	periods := make([]*models.Period, 0)
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			log.Printf("GetAllPeriods Scan Error: %v", err)
			continue
		}
		periods = append(periods, period)
	}
	return periods, rows.Err()
}

func GetPeriodByID(db *sql.DB, id string) (*models.Period, error) {
	query := `SELECT id, day_of_week, period_number, start_time, end_time, class_id, created_at, updated_at
			  FROM periods WHERE id = $1`

	period, err := scanPeriod(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return period, nil
}

// CreatePeriod inserts a schedule entry. A duplicate (day, period number,
// scope) combination is rejected with ErrDuplicatePeriod, whether caught
// by the pre-check or by the unique index under a racing insert.
func CreatePeriod(db *sql.DB, period *models.Period) error {
	exists, err := periodExists(db, period.DayOfWeek, period.PeriodNumber, period.ClassID, "")
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicatePeriod
	}

	period.ID = uuid.NewString()
	query := `INSERT INTO periods (id, day_of_week, period_number, start_time, end_time, class_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`

	_, err = db.Exec(query, period.ID, period.DayOfWeek, period.PeriodNumber,
		timeOfDayArg(period.StartTime), timeOfDayArg(period.EndTime), period.ClassID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicatePeriod
		}
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// UpdatePeriod rewrites a schedule entry, keeping the duplicate guard
// against every other entry.
func UpdatePeriod(db *sql.DB, period *models.Period) error {
	exists, err := periodExists(db, period.DayOfWeek, period.PeriodNumber, period.ClassID, period.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicatePeriod
	}

	query := `UPDATE periods
			  SET day_of_week = $1, period_number = $2, start_time = $3, end_time = $4, class_id = $5, updated_at = NOW()
			  WHERE id = $6`

	result, err := db.Exec(query, period.DayOfWeek, period.PeriodNumber,
		timeOfDayArg(period.StartTime), timeOfDayArg(period.EndTime), period.ClassID, period.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicatePeriod
		}
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func DeletePeriod(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM periods WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// periodExists checks for another entry with the same (day, period number,
// scope). excludeID skips the entry being edited.
func periodExists(db *sql.DB, dayOfWeek, periodNumber int, classID *string, excludeID string) (bool, error) {
	query := `SELECT id FROM periods
			  WHERE day_of_week = $1 AND period_number = $2
			  AND COALESCE(class_id::text, 'global') = COALESCE($3, 'global')
			  AND id::text != $4`

	var id string
	err := db.QueryRow(query, dayOfWeek, periodNumber, classID, excludeID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return true, nil
}

func nullableID(id string) interface{} {
	if id == "" {
		return nil
	}
	return id
}

// truncateToDate strips the time component, keeping the date in its zone.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
