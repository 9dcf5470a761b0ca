package repository

import (
	"context"

	"github.com/opencampus/campus-backend/internal/database"
	"github.com/opencampus/campus-backend/internal/model"
)

// SubmissionRepository handles submission record access. Submissions are
// keyed by id but their natural key is the (assignment, student) pair;
// writes that must not duplicate the pair go through UpsertByPair.
type SubmissionRepository struct {
	db *database.MemDB
}

// NewSubmissionRepository creates a new SubmissionRepository.
func NewSubmissionRepository(db *database.MemDB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// List retrieves all submissions.
func (r *SubmissionRepository) List(ctx context.Context) ([]model.Submission, error) {
	var subs []model.Submission
	r.db.View(func(d *database.Data) {
		subs = append(subs, d.Submissions...)
	})
	return subs, nil
}

// ListByAssignment retrieves all submissions for one assignment.
func (r *SubmissionRepository) ListByAssignment(ctx context.Context, assignmentID int) ([]model.Submission, error) {
	var subs []model.Submission
	r.db.View(func(d *database.Data) {
		for i := range d.Submissions {
			if d.Submissions[i].AssignmentID == assignmentID {
				subs = append(subs, d.Submissions[i])
			}
		}
	})
	return subs, nil
}

// ListByAssignments retrieves all submissions for any of the given
// assignment ids.
func (r *SubmissionRepository) ListByAssignments(ctx context.Context, assignmentIDs []int) ([]model.Submission, error) {
	wanted := make(map[int]bool, len(assignmentIDs))
	for _, id := range assignmentIDs {
		wanted[id] = true
	}
	var subs []model.Submission
	r.db.View(func(d *database.Data) {
		for i := range d.Submissions {
			if wanted[d.Submissions[i].AssignmentID] {
				subs = append(subs, d.Submissions[i])
			}
		}
	})
	return subs, nil
}

// GetByID retrieves a submission by id.
func (r *SubmissionRepository) GetByID(ctx context.Context, id int) (*model.Submission, error) {
	var found *model.Submission
	r.db.View(func(d *database.Data) {
		for i := range d.Submissions {
			if d.Submissions[i].ID == id {
				s := d.Submissions[i]
				found = &s
				return
			}
		}
	})
	if found == nil {
		return nil, database.ErrNotFound
	}
	return found, nil
}

// GetByPair retrieves the submission for an (assignment, student) pair.
func (r *SubmissionRepository) GetByPair(ctx context.Context, assignmentID int, studentID string) (*model.Submission, error) {
	var found *model.Submission
	r.db.View(func(d *database.Data) {
		for i := range d.Submissions {
			if d.Submissions[i].AssignmentID == assignmentID && d.Submissions[i].StudentID == studentID {
				s := d.Submissions[i]
				found = &s
				return
			}
		}
	})
	if found == nil {
		return nil, database.ErrNotFound
	}
	return found, nil
}

// UpsertByPair applies mutate to the submission for (assignmentID,
// studentID), creating the record with a fresh id first when none exists.
// mutate receives created=true for a brand-new record. The find and the
// write happen under one lock hold, so the pair can never end up with two
// rows. Returns the stored submission.
func (r *SubmissionRepository) UpsertByPair(ctx context.Context, assignmentID int, studentID string, mutate func(s *model.Submission, created bool)) (*model.Submission, error) {
	var stored model.Submission
	r.db.Update(func(d *database.Data) {
		for i := range d.Submissions {
			if d.Submissions[i].AssignmentID == assignmentID && d.Submissions[i].StudentID == studentID {
				mutate(&d.Submissions[i], false)
				stored = d.Submissions[i]
				return
			}
		}
		s := model.Submission{
			ID:           d.NextID(database.SeqSubmissions),
			AssignmentID: assignmentID,
			StudentID:    studentID,
		}
		mutate(&s, true)
		d.Submissions = append(d.Submissions, s)
		stored = s
	})
	return &stored, nil
}

// Delete removes a submission by id.
func (r *SubmissionRepository) Delete(ctx context.Context, id int) error {
	deleted := false
	r.db.Update(func(d *database.Data) {
		for i := range d.Submissions {
			if d.Submissions[i].ID == id {
				d.Submissions = append(d.Submissions[:i], d.Submissions[i+1:]...)
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
