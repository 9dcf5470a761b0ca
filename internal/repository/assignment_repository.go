package repository

import (
	"context"

	"github.com/opencampus/campus-backend/internal/database"
	"github.com/opencampus/campus-backend/internal/model"
)

// AssignmentRepository handles assignment record access.
type AssignmentRepository struct {
	db *database.MemDB
}

// NewAssignmentRepository creates a new AssignmentRepository.
func NewAssignmentRepository(db *database.MemDB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// List retrieves all assignments.
func (r *AssignmentRepository) List(ctx context.Context) ([]model.Assignment, error) {
	var assignments []model.Assignment
	r.db.View(func(d *database.Data) {
		assignments = append(assignments, d.Assignments...)
	})
	return assignments, nil
}

// ListByCourse retrieves the assignments belonging to one course.
func (r *AssignmentRepository) ListByCourse(ctx context.Context, courseID int) ([]model.Assignment, error) {
	var assignments []model.Assignment
	r.db.View(func(d *database.Data) {
		for i := range d.Assignments {
			if d.Assignments[i].CourseID == courseID {
				assignments = append(assignments, d.Assignments[i])
			}
		}
	})
	return assignments, nil
}

// ListByCourses retrieves the assignments for any of the given course ids,
// preserving store order.
func (r *AssignmentRepository) ListByCourses(ctx context.Context, courseIDs []int) ([]model.Assignment, error) {
	wanted := make(map[int]bool, len(courseIDs))
	for _, id := range courseIDs {
		wanted[id] = true
	}
	var assignments []model.Assignment
	r.db.View(func(d *database.Data) {
		for i := range d.Assignments {
			if wanted[d.Assignments[i].CourseID] {
				assignments = append(assignments, d.Assignments[i])
			}
		}
	})
	return assignments, nil
}

// GetByID retrieves an assignment by id. An assignment whose course has been
// deleted is still retrievable here; only course-scoped queries exclude it.
func (r *AssignmentRepository) GetByID(ctx context.Context, id int) (*model.Assignment, error) {
	var found *model.Assignment
	r.db.View(func(d *database.Data) {
		for i := range d.Assignments {
			if d.Assignments[i].ID == id {
				a := d.Assignments[i]
				found = &a
				return
			}
		}
	})
	if found == nil {
		return nil, database.ErrNotFound
	}
	return found, nil
}

// Create inserts a new assignment, assigning a fresh id when none is
// supplied. The course reference is not validated.
func (r *AssignmentRepository) Create(ctx context.Context, a *model.Assignment) error {
	r.db.Update(func(d *database.Data) {
		if a.ID == 0 {
			a.ID = d.NextID(database.SeqAssignments)
		}
		d.Assignments = append(d.Assignments, *a)
	})
	return nil
}

// Update replaces the stored assignment with the same id. A missing id is a
// silent no-op unless the store is strict.
func (r *AssignmentRepository) Update(ctx context.Context, a *model.Assignment) error {
	updated := false
	r.db.Update(func(d *database.Data) {
		for i := range d.Assignments {
			if d.Assignments[i].ID == a.ID {
				d.Assignments[i] = *a
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

// Delete removes an assignment by id. Submissions referencing it remain.
func (r *AssignmentRepository) Delete(ctx context.Context, id int) error {
	deleted := false
	r.db.Update(func(d *database.Data) {
		for i := range d.Assignments {
			if d.Assignments[i].ID == id {
				d.Assignments = append(d.Assignments[:i], d.Assignments[i+1:]...)
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
