package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/studentbook/studentbook/internal/model"
)

const createStudentsTable = `
	CREATE TABLE IF NOT EXISTS students (
		id         VARCHAR(36) PRIMARY KEY,
		name       VARCHAR(255) NOT NULL,
		address    VARCHAR(500) NOT NULL DEFAULT '',
		city       VARCHAR(100) NOT NULL DEFAULT '',
		state      VARCHAR(100) NOT NULL DEFAULT '',
		email      VARCHAR(255) NOT NULL DEFAULT '',
		phone      VARCHAR(20)  NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)
`

// SampleStudentID is the fixed identifier of the row seeded on first boot.
const SampleStudentID = "11111111-1111-1111-1111-111111111111"

// sampleStudent returns the row seeded into an empty table.
func sampleStudent() *model.Student {
	return &model.Student{
		ID:        SampleStudentID,
		Name:      "John Doe",
		Address:   "Example Address",
		City:      "Example City",
		State:     "Example State",
		Email:     "example@example.com",
		Phone:     "9009009009",
		CreatedAt: time.Now().UTC(),
	}
}

// EnsureSchema creates the students table if absent and seeds one sample row
// when the table is empty. Safe to run on every boot.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createStudentsTable); err != nil {
		return fmt.Errorf("failed to create students table: %w", err)
	}

	count, err := r.CountStudents(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing students: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := r.CreateStudent(ctx, sampleStudent()); err != nil {
		return fmt.Errorf("failed to seed sample student: %w", err)
	}

	return nil
}
