package service

import (
	"context"
	"testing"
	"time"

	"github.com/opencampus/campus-backend/internal/model"
)

func TestFeeSummaryOutstanding(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFeeService(env.feeRepo, env.userRepo)
	ctx := context.Background()

	env.addStudent(t, "s1")
	due := time.Now().UTC().Add(30 * 24 * time.Hour)

	for _, f := range []struct {
		amount float64
		paid   bool
	}{
		{500, false},
		{250.50, false},
		{300, true},
	} {
		fee := &model.Fee{StudentID: "s1", Amount: f.amount, Description: "Tuition", DueDate: due, Paid: f.paid}
		if err := env.feeRepo.Create(ctx, fee); err != nil {
			t.Fatalf("create fee: %v", err)
		}
	}

	summary, err := svc.Summary(ctx, "s1")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(summary.Fees) != 3 {
		t.Fatalf("expected 3 fees, got %d", len(summary.Fees))
	}
	// Paid fees never count toward the balance.
	if summary.TotalOutstanding != 750.50 {
		t.Errorf("expected outstanding 750.50, got %v", summary.TotalOutstanding)
	}
}

func TestRecordPaymentSettlesFee(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFeeService(env.feeRepo, env.userRepo)
	ctx := context.Background()

	env.addStudent(t, "s1")
	fee := &model.Fee{StudentID: "s1", Amount: 400, Description: "Lab fee", DueDate: time.Now().UTC(), Paid: false}
	if err := env.feeRepo.Create(ctx, fee); err != nil {
		t.Fatalf("create fee: %v", err)
	}

	payment, err := svc.RecordPayment(ctx, fee.ID, &model.RecordPaymentRequest{
		Amount: 400,
		Method: model.PaymentCreditCard,
	})
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if payment.FeeID != fee.ID {
		t.Errorf("payment references fee %d, expected %d", payment.FeeID, fee.ID)
	}
	if payment.PaymentDate.IsZero() {
		t.Error("payment date not stamped")
	}

	summary, err := svc.Summary(ctx, "s1")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.TotalOutstanding != 0 {
		t.Errorf("fee still outstanding after payment: %v", summary.TotalOutstanding)
	}
	if len(summary.Payments) != 1 {
		t.Errorf("expected 1 payment in summary, got %d", len(summary.Payments))
	}
}

func TestRecordPaymentUnknownFee(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFeeService(env.feeRepo, env.userRepo)

	_, err := svc.RecordPayment(context.Background(), 999, &model.RecordPaymentRequest{
		Amount: 10,
		Method: model.PaymentPayPal,
	})
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestCreateFeeRequiresStudent(t *testing.T) {
	env := newTestEnv(t)
	svc := NewFeeService(env.feeRepo, env.userRepo)

	_, err := svc.CreateFee(context.Background(), &model.CreateFeeRequest{
		StudentID:   "ghost",
		Amount:      100,
		Description: "Tuition",
		DueDate:     time.Now().UTC(),
	})
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error for unknown student, got %v", err)
	}
}
