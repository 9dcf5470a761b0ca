package service

import (
	"context"
	"time"

	"github.com/opencampus/campus-backend/internal/model"
	"github.com/opencampus/campus-backend/internal/repository"
)

// FeeService manages student fees and payment records.
type FeeService struct {
	feeRepo  *repository.FeeRepository
	userRepo *repository.UserRepository
}

// NewFeeService creates a new FeeService.
func NewFeeService(feeRepo *repository.FeeRepository, userRepo *repository.UserRepository) *FeeService {
	return &FeeService{feeRepo: feeRepo, userRepo: userRepo}
}

// Summary assembles one student's fee view: their fees, the payments
// recorded against those fees, and the outstanding balance. Outstanding is
// derived on every call as the sum of unpaid fee amounts; partial payments
// do not reduce it, since a fee is either settled or it is not.
func (s *FeeService) Summary(ctx context.Context, studentID string) (*model.FeeSummary, error) {
	fees, err := s.feeRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	feeIDs := make([]int, 0, len(fees))
	outstanding := 0.0
	for i := range fees {
		feeIDs = append(feeIDs, fees[i].ID)
		if !fees[i].Paid {
			outstanding += fees[i].Amount
		}
	}
	payments, err := s.feeRepo.ListPaymentsByFees(ctx, feeIDs)
	if err != nil {
		return nil, err
	}
	return &model.FeeSummary{
		Fees:             fees,
		Payments:         payments,
		TotalOutstanding: outstanding,
	}, nil
}

// List returns every fee in the system.
func (s *FeeService) List(ctx context.Context) ([]model.Fee, error) {
	return s.feeRepo.List(ctx)
}

// CreateFee issues a new unpaid fee for a student. The student must exist.
func (s *FeeService) CreateFee(ctx context.Context, req *model.CreateFeeRequest) (*model.Fee, error) {
	if _, err := s.userRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}
	fee := &model.Fee{
		StudentID:   req.StudentID,
		Amount:      req.Amount,
		Description: req.Description,
		DueDate:     req.DueDate,
		Paid:        false,
	}
	if err := s.feeRepo.Create(ctx, fee); err != nil {
		return nil, err
	}
	return fee, nil
}

// RecordPayment records a payment against a fee and marks it settled.
func (s *FeeService) RecordPayment(ctx context.Context, feeID int, req *model.RecordPaymentRequest) (*model.FeePayment, error) {
	return s.feeRepo.RecordPayment(ctx, feeID, req.Amount, req.Method, time.Now().UTC())
}
