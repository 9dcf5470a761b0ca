package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opencampus/campus-backend/internal/response"
	"github.com/opencampus/campus-backend/internal/service"
)

// TimetableHandler serves class timetables.
type TimetableHandler struct {
	timetableService *service.TimetableService
}

// NewTimetableHandler creates a new TimetableHandler.
func NewTimetableHandler(timetableService *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableService: timetableService}
}

// ListTimetables godoc
// GET /api/v1/timetables
func (h *TimetableHandler) ListTimetables(c *gin.Context) {
	timetables, err := h.timetableService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"timetables": timetables})
}

// GetTimetable godoc
// GET /api/v1/timetables/class?class_name=Grade+10&section=A
func (h *TimetableHandler) GetTimetable(c *gin.Context) {
	className := c.Query("class_name")
	section := c.Query("section")
	if className == "" || section == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	timetable, err := h.timetableService.ForClass(c.Request.Context(), className, section)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"timetable": timetable})
}
