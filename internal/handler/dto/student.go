// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/studentbook/studentbook/internal/model"
	"github.com/studentbook/studentbook/internal/validation"
)

// StudentRequest is the request body for creating or updating a student.
// All fields except name are optional; absent fields decode to "".
type StudentRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// ToInput converts the request to the validator's input type.
func (r StudentRequest) ToInput() validation.StudentInput {
	return validation.StudentInput{
		Name:    r.Name,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		Email:   r.Email,
		Phone:   r.Phone,
	}
}

// StudentResponse represents a student in API responses.
type StudentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// ToStudentResponse converts a Student model to StudentResponse.
func ToStudentResponse(s *model.Student) *StudentResponse {
	return &StudentResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		City:      s.City,
		State:     s.State,
		Email:     s.Email,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
	}
}

// ToStudentListResponse converts a slice of students. Always returns a
// non-nil slice so an empty table serializes as [] rather than null.
func ToStudentListResponse(students []*model.Student) []StudentResponse {
	responses := make([]StudentResponse, len(students))
	for i, s := range students {
		responses[i] = *ToStudentResponse(s)
	}
	return responses
}

// DeleteResponse confirms a successful delete.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse represents a non-validation API error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries the 422 error list the front-end renders.
type ValidationErrorResponse struct {
	Errors validation.Errors `json:"errors"`
}

// HealthResponse reports server and store health.
type HealthResponse struct {
	OK       bool   `json:"ok"`
	Database string `json:"database"`
}
