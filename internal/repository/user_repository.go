package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/opencampus/campus-backend/internal/database"
	"github.com/opencampus/campus-backend/internal/model"
)

// UserRepository handles user record access.
type UserRepository struct {
	db *database.MemDB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *database.MemDB) *UserRepository {
	return &UserRepository{db: db}
}

// List retrieves all users.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	r.db.View(func(d *database.Data) {
		users = append(users, d.Users...)
	})
	return users, nil
}

// ListByRole retrieves all users with the given role.
func (r *UserRepository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	var users []model.User
	r.db.View(func(d *database.Data) {
		for _, u := range d.Users {
			if u.Role == role {
				users = append(users, u)
			}
		}
	})
	return users, nil
}

// GetByID retrieves a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var found *model.User
	r.db.View(func(d *database.Data) {
		for i := range d.Users {
			if d.Users[i].ID == id {
				u := d.Users[i]
				found = &u
				return
			}
		}
	})
	if found == nil {
		return nil, database.ErrNotFound
	}
	return found, nil
}

// GetByEmail retrieves a user by email (case-insensitive).
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var found *model.User
	r.db.View(func(d *database.Data) {
		for i := range d.Users {
			if strings.EqualFold(d.Users[i].Email, email) {
				u := d.Users[i]
				found = &u
				return
			}
		}
	})
	if found == nil {
		return nil, database.ErrNotFound
	}
	return found, nil
}

// Create inserts a new user. A fresh id is generated when none is supplied.
// Cross references (course ids on a student profile) are not validated.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	r.db.Update(func(d *database.Data) {
		d.Users = append(d.Users, *u)
	})
	return nil
}

// Update replaces the stored user with the same id. A missing id is a silent
// no-op unless the store is strict.
func (r *UserRepository) Update(ctx context.Context, u *model.User) error {
	updated := false
	r.db.Update(func(d *database.Data) {
		for i := range d.Users {
			if d.Users[i].ID == u.ID {
				d.Users[i] = *u
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

// Delete removes a user by id. Records referencing the user (rosters,
// submissions, fees) are left in place and tolerated downstream.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	deleted := false
	r.db.Update(func(d *database.Data) {
		for i := range d.Users {
			if d.Users[i].ID == id {
				d.Users = append(d.Users[:i], d.Users[i+1:]...)
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

// AddCourse adds a course id to a student's enrolled list with set
// semantics. Used by the enrollment mutations to keep the user side of the
// relation in sync with the course roster. No-op for users without a
// student profile or when the id is already present.
func (r *UserRepository) AddCourse(ctx context.Context, studentID string, courseID int) error {
	r.db.Update(func(d *database.Data) {
		for i := range d.Users {
			if d.Users[i].ID == studentID && d.Users[i].Student != nil {
				for _, id := range d.Users[i].Student.CourseIDs {
					if id == courseID {
						return
					}
				}
				d.Users[i].Student.CourseIDs = append(d.Users[i].Student.CourseIDs, courseID)
				return
			}
		}
	})
	return nil
}

// RemoveCourse removes a course id from a student's enrolled list.
func (r *UserRepository) RemoveCourse(ctx context.Context, studentID string, courseID int) error {
	r.db.Update(func(d *database.Data) {
		for i := range d.Users {
			if d.Users[i].ID == studentID && d.Users[i].Student != nil {
				ids := d.Users[i].Student.CourseIDs
				for j, id := range ids {
					if id == courseID {
						d.Users[i].Student.CourseIDs = append(ids[:j], ids[j+1:]...)
						return
					}
				}
				return
			}
		}
	})
	return nil
}
