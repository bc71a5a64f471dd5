package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studentbook/studentbook/internal/handler/dto"
	"github.com/studentbook/studentbook/internal/service"
	"github.com/studentbook/studentbook/internal/validation"
)

// StudentHandler handles HTTP requests for student records.
type StudentHandler struct {
	svc    *service.StudentService
	logger *slog.Logger
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(svc *service.StudentService, logger *slog.Logger) *StudentHandler {
	return &StudentHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/students.
func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	students, err := h.svc.ListStudents(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStudentListResponse(students))
}

// Get handles GET /api/students/{id}.
func (h *StudentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	student, err := h.svc.GetStudent(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStudentResponse(student))
}

// Create handles POST /api/students.
func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.StudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	student, err := h.svc.CreateStudent(r.Context(), req.ToInput())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("student_created", "student_id", student.ID)

	writeJSON(w, http.StatusCreated, dto.ToStudentResponse(student))
}

// Update handles PUT /api/students/{id}.
//
// Update is a whole-record replacement: optional fields omitted from the
// payload are persisted as empty strings, not preserved.
func (h *StudentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.StudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	student, err := h.svc.UpdateStudent(r.Context(), id, req.ToInput())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("student_updated", "student_id", id)

	writeJSON(w, http.StatusOK, dto.ToStudentResponse(student))
}

// Delete handles DELETE /api/students/{id}.
func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.DeleteStudent(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("student_deleted", "student_id", id)

	writeJSON(w, http.StatusOK, dto.DeleteResponse{Success: true})
}

// Export handles GET /api/export. Returns the full table as a JSON file
// download.
func (h *StudentHandler) Export(w http.ResponseWriter, r *http.Request) {
	students, err := h.svc.ExportStudents(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename=students.json`)
	writeJSON(w, http.StatusOK, dto.ToStudentListResponse(students))
}

// Import handles POST /api/import. Accepts a JSON array of loosely shaped
// items and replays one independent create per item.
func (h *StudentHandler) Import(w http.ResponseWriter, r *http.Request) {
	var items []service.ImportItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	result := h.svc.ImportStudents(r.Context(), items)

	h.logger.Info("import_completed",
		"job_id", result.JobID,
		"total", result.Total,
		"created", result.Created,
		"failed", result.Failed,
	)

	writeJSON(w, http.StatusOK, result)
}

// handleServiceError maps service errors to HTTP responses.
// Validation failures and missing records are expected outcomes; only store
// failures reach the log, and the cause never reaches the client.
func (h *StudentHandler) handleServiceError(w http.ResponseWriter, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusUnprocessableEntity, dto.ValidationErrorResponse{Errors: verrs})
	case errors.Is(err, service.ErrStudentNotFound):
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
	default:
		h.logger.Error("storage_error", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "storage error"})
	}
}
