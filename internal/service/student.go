// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studentbook/studentbook/internal/metrics"
	"github.com/studentbook/studentbook/internal/model"
	"github.com/studentbook/studentbook/internal/repository"
	"github.com/studentbook/studentbook/internal/validation"
)

// ErrStudentNotFound is returned when the requested id has no record.
var ErrStudentNotFound = errors.New("student not found")

// Store is the persistence contract the service depends on.
// *repository.Repository satisfies it; tests use an in-memory store.
type Store interface {
	ListStudents(ctx context.Context) ([]*model.Student, error)
	GetStudentByID(ctx context.Context, id string) (*model.Student, error)
	CreateStudent(ctx context.Context, student *model.Student) error
	UpdateStudent(ctx context.Context, student *model.Student) error
	DeleteStudent(ctx context.Context, id string) error
}

// StudentService handles student record business logic.
type StudentService struct {
	store   Store
	metrics metrics.Recorder
}

// NewStudentService creates a new StudentService.
func NewStudentService(store Store, recorder metrics.Recorder) *StudentService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &StudentService{
		store:   store,
		metrics: recorder,
	}
}

// ListStudents returns all records, newest first.
func (s *StudentService) ListStudents(ctx context.Context) ([]*model.Student, error) {
	return s.store.ListStudents(ctx)
}

// GetStudent retrieves a record by ID.
func (s *StudentService) GetStudent(ctx context.Context, id string) (*model.Student, error) {
	student, err := s.store.GetStudentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	return student, nil
}

// CreateStudent validates the input, assigns a fresh id and timestamp,
// persists the record and returns it as re-read from the store.
// A validation failure is returned as validation.Errors.
func (s *StudentService) CreateStudent(ctx context.Context, in validation.StudentInput) (*model.Student, error) {
	normalized, verrs := validation.Student(in)
	if verrs != nil {
		return nil, verrs
	}

	student := &model.Student{
		ID:        uuid.NewString(),
		Name:      normalized.Name,
		Address:   normalized.Address,
		City:      normalized.City,
		State:     normalized.State,
		Email:     normalized.Email,
		Phone:     normalized.Phone,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateStudent(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	s.metrics.IncStudentCreated()

	// Return the persisted row, not the request we just built.
	created, err := s.store.GetStudentByID(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back created student: %w", err)
	}

	return created, nil
}

// UpdateStudent validates the input and overwrites every mutable field of
// the record matching id. Optional fields omitted from the payload are
// deliberately zeroed to empty strings: update is whole-record replacement,
// not a partial merge. id and created_at never change.
func (s *StudentService) UpdateStudent(ctx context.Context, id string, in validation.StudentInput) (*model.Student, error) {
	normalized, verrs := validation.Student(in)
	if verrs != nil {
		return nil, verrs
	}

	student := &model.Student{
		ID:      id,
		Name:    normalized.Name,
		Address: normalized.Address,
		City:    normalized.City,
		State:   normalized.State,
		Email:   normalized.Email,
		Phone:   normalized.Phone,
	}

	if err := s.store.UpdateStudent(ctx, student); err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	s.metrics.IncStudentUpdated()

	// Re-read so the caller sees persisted state, including created_at.
	updated, err := s.store.GetStudentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			// Raced with a concurrent delete. Accepted outcome.
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to read back updated student: %w", err)
	}

	return updated, nil
}

// DeleteStudent removes the record matching id.
func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	if err := s.store.DeleteStudent(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return ErrStudentNotFound
		}
		return fmt.Errorf("failed to delete student: %w", err)
	}

	s.metrics.IncStudentDeleted()

	return nil
}

// ExportStudents returns the full table for a file download.
func (s *StudentService) ExportStudents(ctx context.Context) ([]*model.Student, error) {
	return s.store.ListStudents(ctx)
}
