package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opencampus/campus-backend/internal/middleware"
	"github.com/opencampus/campus-backend/internal/response"
	"github.com/opencampus/campus-backend/internal/service"
)

// DashboardHandler serves the per-role landing-page summaries.
type DashboardHandler struct {
	dashboardService *service.DashboardService
	userService      *service.UserService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService, userService *service.UserService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, userService: userService}
}

// StudentDashboard godoc
// GET /api/v1/student/dashboard
func (h *DashboardHandler) StudentDashboard(c *gin.Context) {
	claims := middleware.GetClaims(c)
	student, err := h.userService.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
		return
	}

	data, err := h.dashboardService.ForStudent(c.Request.Context(), student)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, data)
}

// TeacherDashboard godoc
// GET /api/v1/teacher/dashboard
func (h *DashboardHandler) TeacherDashboard(c *gin.Context) {
	claims := middleware.GetClaims(c)

	data, err := h.dashboardService.ForTeacher(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, data)
}

// AdminDashboard godoc
// GET /api/v1/admin/dashboard
func (h *DashboardHandler) AdminDashboard(c *gin.Context) {
	data, err := h.dashboardService.ForAdmin(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, data)
}
