package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/opencampus/campus-backend/internal/middleware"
	"github.com/opencampus/campus-backend/internal/response"
	"github.com/opencampus/campus-backend/internal/service"
)

// GradebookHandler serves derived grade views. Nothing here mutates.
type GradebookHandler struct {
	gradebookService *service.GradebookService
	userService      *service.UserService
}

// NewGradebookHandler creates a new GradebookHandler.
func NewGradebookHandler(gradebookService *service.GradebookService, userService *service.UserService) *GradebookHandler {
	return &GradebookHandler{gradebookService: gradebookService, userService: userService}
}

// CourseGradebook godoc
// GET /api/v1/teacher/courses/:id/gradebook
// The full roster-by-assignment grid with averages, recomputed from the
// live store on every call.
func (h *GradebookHandler) CourseGradebook(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	gradebook, err := h.gradebookService.CourseGradebook(c.Request.Context(), courseID)
	if err != nil {
		if service.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"gradebook": gradebook})
}

// MyGrades godoc
// GET /api/v1/student/grades
// The caller's grades per enrolled course, with class averages alongside.
func (h *GradebookHandler) MyGrades(c *gin.Context) {
	claims := middleware.GetClaims(c)
	student, err := h.userService.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return
	}

	grades, err := h.gradebookService.StudentGradebook(c.Request.Context(), student)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"courses": grades})
}
