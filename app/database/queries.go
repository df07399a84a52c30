package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/bounis0910/Att-School/app/models"
)

// GetAllClasses returns every active class with its student count,
// ordered by name.
func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT c.id, c.name, c.code, c.is_active, c.created_at, c.updated_at,
			  COALESCE(s.student_count, 0) as student_count
			  FROM classes c
			  LEFT JOIN (
				  SELECT class_id, COUNT(*) as student_count
				  FROM students
				  WHERE is_active = true
				  GROUP BY class_id
			  ) s ON c.id = s.class_id
			  WHERE c.is_active = true
			  ORDER BY c.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	classes := make([]*models.Class, 0)
	for rows.Next() {
		class := &models.Class{}
		err := rows.Scan(
			&class.ID, &class.Name, &class.Code, &class.IsActive,
			&class.CreatedAt, &class.UpdatedAt, &class.StudentCount,
		)
		if err != nil {
			log.Printf("GetAllClasses Scan Error: %v", err)
			continue
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}

func GetClassByID(db *sql.DB, classID string) (*models.Class, error) {
	query := `SELECT id, name, code, is_active, created_at, updated_at
			  FROM classes WHERE id = $1 AND is_active = true`

	class := &models.Class{}
	err := db.QueryRow(query, classID).Scan(
		&class.ID, &class.Name, &class.Code, &class.IsActive,
		&class.CreatedAt, &class.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return class, nil
}

// GetStudentsByClass returns the active students of a class ordered by
// name, the same order report rows are written in.
func GetStudentsByClass(db *sql.DB, classID string) ([]*models.Student, error) {
	query := `SELECT id, COALESCE(student_id, ''), first_name, last_name, class_id, is_active, created_at, updated_at
			  FROM students
			  WHERE class_id = $1 AND is_active = true
			  ORDER BY first_name, last_name`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		student := &models.Student{}
		err := rows.Scan(
			&student.ID, &student.StudentID, &student.FirstName, &student.LastName,
			&student.ClassID, &student.IsActive, &student.CreatedAt, &student.UpdatedAt,
		)
		if err != nil {
			log.Printf("GetStudentsByClass Scan Error: %v", err)
			continue
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	query := `SELECT id, email, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	user := &models.User{}
	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return user, nil
}
