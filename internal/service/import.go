package service

import (
	"context"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/studentbook/studentbook/internal/validation"
)

// ImportItem is one entry of an uploaded dataset. The shape is deliberately
// loose: exports from other systems may carry the display name under
// fullName instead of name.
type ImportItem struct {
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ImportItemError reports one skipped item.
type ImportItemError struct {
	Index int    `json:"index"`
	Msg   string `json:"msg"`
}

// ImportResult summarizes one import run.
type ImportResult struct {
	JobID   string            `json:"job_id"`
	Total   int               `json:"total"`
	Created int               `json:"created"`
	Failed  int               `json:"failed"`
	Errors  []ImportItemError `json:"errors,omitempty"`
}

// displayName resolves an item's name: name, then fullName, then a literal
// placeholder so the row is still importable.
func (i ImportItem) displayName() string {
	if strings.TrimSpace(i.Name) != "" {
		return i.Name
	}
	if strings.TrimSpace(i.FullName) != "" {
		return i.FullName
	}
	return "Unknown"
}

// ImportStudents replays one independent create per item, sequentially.
// Best effort: a failed item is recorded and skipped, it never rolls back
// or blocks the items after it. Each run gets a ULID job id so its creates
// can be correlated in the logs.
func (s *StudentService) ImportStudents(ctx context.Context, items []ImportItem) ImportResult {
	result := ImportResult{
		JobID: ulid.Make().String(),
		Total: len(items),
	}

	for idx, item := range items {
		in := validation.StudentInput{
			Name:    item.displayName(),
			Address: item.Address,
			City:    item.City,
			State:   item.State,
			Email:   item.Email,
			Phone:   item.Phone,
		}

		if _, err := s.CreateStudent(ctx, in); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, ImportItemError{
				Index: idx,
				Msg:   err.Error(),
			})
			s.metrics.IncImportItem("failed")
			continue
		}

		result.Created++
		s.metrics.IncImportItem("created")
	}

	return result
}
