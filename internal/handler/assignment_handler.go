package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/opencampus/campus-backend/internal/middleware"
	"github.com/opencampus/campus-backend/internal/model"
	"github.com/opencampus/campus-backend/internal/response"
	"github.com/opencampus/campus-backend/internal/service"
	"github.com/opencampus/campus-backend/internal/validator"
)

// AssignmentHandler handles assignment management, hand-ins, and grading.
type AssignmentHandler struct {
	assignmentService *service.AssignmentService
	gradebookService  *service.GradebookService
	userService       *service.UserService
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(
	assignmentService *service.AssignmentService,
	gradebookService *service.GradebookService,
	userService *service.UserService,
) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		gradebookService:  gradebookService,
		userService:       userService,
	}
}

// ListForCourse godoc
// GET /api/v1/courses/:id/assignments
func (h *AssignmentHandler) ListForCourse(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	assignments, err := h.assignmentService.ListForCourse(c.Request.Context(), courseID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"assignments": assignments})
}

// ListMine godoc
// GET /api/v1/student/assignments
// Lists every assignment across the caller's courses with derived status.
func (h *AssignmentHandler) ListMine(c *gin.Context) {
	claims := middleware.GetClaims(c)
	student, err := h.userService.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return
	}

	overviews, err := h.gradebookService.AssignmentOverviews(c.Request.Context(), student)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"assignments": overviews})
}

// GetAssignment godoc
// GET /api/v1/assignments/:id
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	assignment, err := h.assignmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"assignment": assignment})
}

// CreateAssignment godoc
// POST /api/v1/assignments
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req model.CreateAssignmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	assignment, err := h.assignmentService.Create(c.Request.Context(), req)
	if err != nil {
		if service.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"assignment": assignment})
}

// UpdateAssignment godoc
// PUT /api/v1/assignments/:id
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateAssignmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	assignment, err := h.assignmentService.Update(c.Request.Context(), id, req)
	if err != nil {
		if service.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"assignment": assignment})
}

// DeleteAssignment godoc
// DELETE /api/v1/assignments/:id
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.assignmentService.Delete(c.Request.Context(), id); err != nil {
		if service.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Submit godoc
// POST /api/v1/student/assignments/:id/submit
// Records the caller handing in work. Resubmitting refreshes the timestamp
// on the same record; a student never holds two submissions for one
// assignment.
func (h *AssignmentHandler) Submit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	claims := middleware.GetClaims(c)
	submission, err := h.assignmentService.Submit(c.Request.Context(), id, claims.UserID)
	if err != nil {
		if service.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submission": submission})
}

// GradeSubmission godoc
// POST /api/v1/teacher/assignments/:id/grade
// Sets or clears a student's grade. A null grade clears it; out-of-range
// grades are rejected, never clamped.
func (h *AssignmentHandler) GradeSubmission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.GradeSubmissionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	// The grade field is required but nullable: an explicit null clears the
	// grade, while an absent field is a malformed request, never a clear.
	if !req.Grade.Present {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, map[string]string{
			"grade": "grade is required; send null to clear it",
		})
		return
	}

	submission, err := h.assignmentService.Grade(c.Request.Context(), id, req.StudentID, req.Grade.Value, req.Feedback)
	if err != nil {
		switch {
		case err == service.ErrInvalidGrade:
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidGrade)
		case service.IsNotFound(err):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submission": submission})
}

// ListSubmissions godoc
// GET /api/v1/teacher/assignments/:id/submissions
func (h *AssignmentHandler) ListSubmissions(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	submissions, err := h.assignmentService.SubmissionsFor(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submissions": submissions})
}

// MySubmission godoc
// GET /api/v1/student/assignments/:id/submission
// Returns the caller's submission for the assignment, or null if none.
func (h *AssignmentHandler) MySubmission(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	claims := middleware.GetClaims(c)
	submission, err := h.assignmentService.SubmissionFor(c.Request.Context(), id, claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submission": submission})
}
