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

// FeeHandler handles fee billing and payment recording.
type FeeHandler struct {
	feeService *service.FeeService
}

// NewFeeHandler creates a new FeeHandler.
func NewFeeHandler(feeService *service.FeeService) *FeeHandler {
	return &FeeHandler{feeService: feeService}
}

// MyFees godoc
// GET /api/v1/student/fees
// The caller's fee position: fees, payments, and the outstanding total.
func (h *FeeHandler) MyFees(c *gin.Context) {
	claims := middleware.GetClaims(c)

	summary, err := h.feeService.Summary(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, summary)
}

// StudentFees godoc
// GET /api/v1/admin/students/:id/fees
// An admin view of one student's fee position.
func (h *FeeHandler) StudentFees(c *gin.Context) {
	summary, err := h.feeService.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, summary)
}

// ListFees godoc
// GET /api/v1/admin/fees
func (h *FeeHandler) ListFees(c *gin.Context) {
	fees, err := h.feeService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"fees": fees})
}

// CreateFee godoc
// POST /api/v1/admin/fees
// Bills a student. The fee starts unpaid.
func (h *FeeHandler) CreateFee(c *gin.Context) {
	var req model.CreateFeeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	fee, err := h.feeService.CreateFee(c.Request.Context(), &req)
	if err != nil {
		if service.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"fee": fee})
}

// RecordPayment godoc
// POST /api/v1/student/fees/:id/payments
// Records a payment against a fee and marks the fee settled.
func (h *FeeHandler) RecordPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.RecordPaymentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	payment, err := h.feeService.RecordPayment(c.Request.Context(), id, &req)
	if err != nil {
		if service.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"payment": payment})
}
