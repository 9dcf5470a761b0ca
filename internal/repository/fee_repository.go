package repository

import (
	"context"
	"time"

	"github.com/opencampus/campus-backend/internal/database"
	"github.com/opencampus/campus-backend/internal/model"
)

// FeeRepository handles fee and fee payment record access.
type FeeRepository struct {
	db *database.MemDB
}

// NewFeeRepository creates a new FeeRepository.
func NewFeeRepository(db *database.MemDB) *FeeRepository {
	return &FeeRepository{db: db}
}

// List retrieves all fees.
func (r *FeeRepository) List(ctx context.Context) ([]model.Fee, error) {
	var fees []model.Fee
	r.db.View(func(d *database.Data) {
		fees = append(fees, d.Fees...)
	})
	return fees, nil
}

// ListByStudent retrieves the fees billed to one student.
func (r *FeeRepository) ListByStudent(ctx context.Context, studentID string) ([]model.Fee, error) {
	var fees []model.Fee
	r.db.View(func(d *database.Data) {
		for i := range d.Fees {
			if d.Fees[i].StudentID == studentID {
				fees = append(fees, d.Fees[i])
			}
		}
	})
	return fees, nil
}

// GetByID retrieves a fee by id.
func (r *FeeRepository) GetByID(ctx context.Context, id int) (*model.Fee, error) {
	var found *model.Fee
	r.db.View(func(d *database.Data) {
		for i := range d.Fees {
			if d.Fees[i].ID == id {
				f := d.Fees[i]
				found = &f
				return
			}
		}
	})
	if found == nil {
		return nil, database.ErrNotFound
	}
	return found, nil
}

// Create inserts a new fee, assigning a fresh id when none is supplied.
func (r *FeeRepository) Create(ctx context.Context, f *model.Fee) error {
	r.db.Update(func(d *database.Data) {
		if f.ID == 0 {
			f.ID = d.NextID(database.SeqFees)
		}
		d.Fees = append(d.Fees, *f)
	})
	return nil
}

// Update replaces the stored fee with the same id. A missing id is a silent
// no-op unless the store is strict.
func (r *FeeRepository) Update(ctx context.Context, f *model.Fee) error {
	updated := false
	r.db.Update(func(d *database.Data) {
		for i := range d.Fees {
			if d.Fees[i].ID == f.ID {
				d.Fees[i] = *f
				updated = true
				return
			}
		}
	})
	if !updated && r.db.IsStrict() {
		return database.ErrNotFound
	}
	return nil
}

// Delete removes a fee by id. Payments referencing it remain.
func (r *FeeRepository) Delete(ctx context.Context, id int) error {
	deleted := false
	r.db.Update(func(d *database.Data) {
		for i := range d.Fees {
			if d.Fees[i].ID == id {
				d.Fees = append(d.Fees[:i], d.Fees[i+1:]...)
				deleted = true
				return
			}
		}
	})
	if !deleted && r.db.IsStrict() {
		return database.ErrNotFound
	}
	return nil
}

// ListPaymentsByFees retrieves the payments referencing any of the given
// fee ids.
func (r *FeeRepository) ListPaymentsByFees(ctx context.Context, feeIDs []int) ([]model.FeePayment, error) {
	wanted := make(map[int]bool, len(feeIDs))
	for _, id := range feeIDs {
		wanted[id] = true
	}
	var payments []model.FeePayment
	r.db.View(func(d *database.Data) {
		for i := range d.FeePayments {
			if wanted[d.FeePayments[i].FeeID] {
				payments = append(payments, d.FeePayments[i])
			}
		}
	})
	return payments, nil
}

// RecordPayment inserts a payment against a fee and flips the fee's paid
// flag, in one lock hold. Nothing checks that payments sum to the fee
// amount. Returns ErrNotFound when the fee does not exist.
func (r *FeeRepository) RecordPayment(ctx context.Context, feeID int, amount float64, method model.PaymentMethod, now time.Time) (*model.FeePayment, error) {
	var stored *model.FeePayment
	r.db.Update(func(d *database.Data) {
		for i := range d.Fees {
			if d.Fees[i].ID != feeID {
				continue
			}
			p := model.FeePayment{
				ID:          d.NextID(database.SeqFeePayments),
				FeeID:       feeID,
				Amount:      amount,
				PaymentDate: now,
				Method:      method,
			}
			d.FeePayments = append(d.FeePayments, p)
			d.Fees[i].Paid = true
			stored = &p
			return
		}
	})
	if stored == nil {
		return nil, database.ErrNotFound
	}
	return stored, nil
}
