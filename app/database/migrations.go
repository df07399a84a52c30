package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates. Every
// statement is idempotent so the app can run it on each start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	// 1. Base tables
	if err := createBaseTables(db); err != nil {
		return err
	}

	// 2. Unique index backing attendance upserts
	if err := createAttendanceUniqueIndex(db); err != nil {
		return err
	}

	// 3. Unique index rejecting duplicate schedule entries
	if err := createPeriodUniqueIndex(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createBaseTables(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) UNIQUE NOT NULL,
			code VARCHAR(20) UNIQUE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id VARCHAR(50),
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			class_id UUID NOT NULL REFERENCES classes(id),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS periods (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			day_of_week INT NOT NULL CHECK (day_of_week BETWEEN 0 AND 6),
			period_number INT NOT NULL CHECK (period_number >= 1),
			start_time VARCHAR(5),
			end_time VARCHAR(5),
			class_id UUID REFERENCES classes(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS attendance (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			class_id UUID NOT NULL REFERENCES classes(id),
			date DATE NOT NULL,
			period INT NOT NULL CHECK (period >= 1),
			status VARCHAR(10) NOT NULL,
			remark VARCHAR(20) NOT NULL DEFAULT 'none',
			teacher_id UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create base tables: %v", err)
		return err
	}
	return nil
}

// createAttendanceUniqueIndex enforces one row per (student, date, period).
// Concurrent submissions rely on this index for ON CONFLICT resolution.
func createAttendanceUniqueIndex(db *sql.DB) error {
	query := `CREATE UNIQUE INDEX IF NOT EXISTS uniq_attendance_student_date_period
			  ON attendance (student_id, date, period)`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create attendance unique index: %v", err)
		return err
	}
	return nil
}

// createPeriodUniqueIndex rejects duplicate schedule entries. NULL class
// scope means school-wide, so the scope column is coalesced to a sentinel
// to make two global entries collide.
func createPeriodUniqueIndex(db *sql.DB) error {
	query := `CREATE UNIQUE INDEX IF NOT EXISTS uniq_period_day_number_scope
			  ON periods (day_of_week, period_number, COALESCE(class_id::text, 'global'))`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create period unique index: %v", err)
		return err
	}
	return nil
}
