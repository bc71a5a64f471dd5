package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/studentbook/studentbook/internal/model"
)

// ErrStudentNotFound is returned when no row matches the requested id.
var ErrStudentNotFound = errors.New("student not found")

// studentColumns is the column list shared by every SELECT.
const studentColumns = "id, name, address, city, state, email, phone, created_at"

// CreateStudent inserts a new student row.
func (r *Repository) CreateStudent(ctx context.Context, student *model.Student) error {
	query := `
		INSERT INTO students (id, name, address, city, state, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		student.ID,
		student.Name,
		student.Address,
		student.City,
		student.State,
		student.Email,
		student.Phone,
		student.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}

	return nil
}

// GetStudentByID retrieves a student by its ID.
func (r *Repository) GetStudentByID(ctx context.Context, id string) (*model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student by ID: %w", err)
	}

	return student, nil
}

// ListStudents retrieves all students, newest first.
// The id tie-break keeps the order deterministic when timestamps collide.
func (r *Repository) ListStudents(ctx context.Context) ([]*model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	students := make([]*model.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}

	return students, nil
}

// UpdateStudent overwrites every mutable field of the row matching the
// student's ID. id and created_at are never touched.
func (r *Repository) UpdateStudent(ctx context.Context, student *model.Student) error {
	query := `
		UPDATE students
		SET name = $2, address = $3, city = $4, state = $5, email = $6, phone = $7
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		student.ID,
		student.Name,
		student.Address,
		student.City,
		student.State,
		student.Email,
		student.Phone,
	)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// DeleteStudent removes the row matching id.
func (r *Repository) DeleteStudent(ctx context.Context, id string) error {
	query := `DELETE FROM students WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// CountStudents returns the number of student rows.
func (r *Repository) CountStudents(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}

	return count, nil
}

// scanStudent scans a single row into a Student model.
func scanStudent(row pgx.Row) (*model.Student, error) {
	var student model.Student
	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Address,
		&student.City,
		&student.State,
		&student.Email,
		&student.Phone,
		&student.CreatedAt,
	)
	return &student, err
}
