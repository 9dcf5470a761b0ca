package repository

import (
	"context"
	"time"

	"github.com/opencampus/campus-backend/internal/database"
	"github.com/opencampus/campus-backend/internal/model"
)

// CourseRepository handles course record access, including the embedded
// materials, announcements, and roster.
type CourseRepository struct {
	db *database.MemDB
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(db *database.MemDB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List retrieves all courses.
func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	r.db.View(func(d *database.Data) {
		courses = append(courses, d.Courses...)
	})
	return courses, nil
}

// ListByTeacher retrieves the courses taught by the given user.
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID string) ([]model.Course, error) {
	var courses []model.Course
	r.db.View(func(d *database.Data) {
		for i := range d.Courses {
			if d.Courses[i].TaughtBy(teacherID) {
				courses = append(courses, d.Courses[i])
			}
		}
	})
	return courses, nil
}

// ListByStudent retrieves the courses whose roster contains the student.
func (r *CourseRepository) ListByStudent(ctx context.Context, studentID string) ([]model.Course, error) {
	var courses []model.Course
	r.db.View(func(d *database.Data) {
		for i := range d.Courses {
			if d.Courses[i].HasStudent(studentID) {
				courses = append(courses, d.Courses[i])
			}
		}
	})
	return courses, nil
}

// GetByID retrieves a course by id.
func (r *CourseRepository) GetByID(ctx context.Context, id int) (*model.Course, error) {
	var found *model.Course
	r.db.View(func(d *database.Data) {
		for i := range d.Courses {
			if d.Courses[i].ID == id {
				c := d.Courses[i]
				found = &c
				return
			}
		}
	})
	if found == nil {
		return nil, database.ErrNotFound
	}
	return found, nil
}

// Create inserts a new course, assigning a fresh id when none is supplied.
// Teacher and student references are not validated.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	r.db.Update(func(d *database.Data) {
		if c.ID == 0 {
			c.ID = d.NextID(database.SeqCourses)
		}
		if c.Materials == nil {
			c.Materials = []model.CourseMaterial{}
		}
		if c.Announcements == nil {
			c.Announcements = []model.Announcement{}
		}
		if c.StudentIDs == nil {
			c.StudentIDs = []string{}
		}
		d.Courses = append(d.Courses, *c)
	})
	return nil
}

// Update replaces the stored course with the same id. A missing id is a
// silent no-op unless the store is strict.
func (r *CourseRepository) Update(ctx context.Context, c *model.Course) error {
	updated := false
	r.db.Update(func(d *database.Data) {
		for i := range d.Courses {
			if d.Courses[i].ID == c.ID {
				d.Courses[i] = *c
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

// Delete removes a course by id. It deliberately does not cascade: the
// course's assignments, submissions, and fees stay retrievable by id and
// every course-scoped query must tolerate the dangling references.
func (r *CourseRepository) Delete(ctx context.Context, id int) error {
	deleted := false
	r.db.Update(func(d *database.Data) {
		for i := range d.Courses {
			if d.Courses[i].ID == id {
				d.Courses = append(d.Courses[:i], d.Courses[i+1:]...)
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

// AddMaterial appends a material to the course, assigning an id unique
// within that course (not globally). Returns the stored material.
func (r *CourseRepository) AddMaterial(ctx context.Context, courseID int, m model.CourseMaterial) (*model.CourseMaterial, error) {
	var stored *model.CourseMaterial
	r.db.Update(func(d *database.Data) {
		for i := range d.Courses {
			if d.Courses[i].ID != courseID {
				continue
			}
			maxID := 0
			for _, existing := range d.Courses[i].Materials {
				if existing.ID > maxID {
					maxID = existing.ID
				}
			}
			m.ID = maxID + 1
			d.Courses[i].Materials = append(d.Courses[i].Materials, m)
			stored = &m
			return
		}
	})
	if stored == nil {
		return nil, database.ErrNotFound
	}
	return stored, nil
}

// AddAnnouncement prepends an announcement to the course (newest first),
// assigning a per-course id and the given date.
func (r *CourseRepository) AddAnnouncement(ctx context.Context, courseID int, title, content string, now time.Time) (*model.Announcement, error) {
	var stored *model.Announcement
	r.db.Update(func(d *database.Data) {
		for i := range d.Courses {
			if d.Courses[i].ID != courseID {
				continue
			}
			maxID := 0
			for _, existing := range d.Courses[i].Announcements {
				if existing.ID > maxID {
					maxID = existing.ID
				}
			}
			ann := model.Announcement{
				ID:       maxID + 1,
				CourseID: courseID,
				Title:    title,
				Content:  content,
				Date:     now,
			}
			d.Courses[i].Announcements = append([]model.Announcement{ann}, d.Courses[i].Announcements...)
			stored = &ann
			return
		}
	})
	if stored == nil {
		return nil, database.ErrNotFound
	}
	return stored, nil
}

// AddStudent adds a student to the course roster with set semantics:
// enrolling twice leaves the id exactly once.
func (r *CourseRepository) AddStudent(ctx context.Context, courseID int, studentID string) error {
	found := false
	r.db.Update(func(d *database.Data) {
		for i := range d.Courses {
			if d.Courses[i].ID != courseID {
				continue
			}
			found = true
			if d.Courses[i].HasStudent(studentID) {
				return
			}
			d.Courses[i].StudentIDs = append(d.Courses[i].StudentIDs, studentID)
			return
		}
	})
	if !found {
		return database.ErrNotFound
	}
	return nil
}

// RemoveStudent removes a student from the course roster.
func (r *CourseRepository) RemoveStudent(ctx context.Context, courseID int, studentID string) error {
	found := false
	r.db.Update(func(d *database.Data) {
		for i := range d.Courses {
			if d.Courses[i].ID != courseID {
				continue
			}
			found = true
			ids := d.Courses[i].StudentIDs
			for j, id := range ids {
				if id == studentID {
					d.Courses[i].StudentIDs = append(ids[:j], ids[j+1:]...)
					return
				}
			}
			return
		}
	})
	if !found {
		return database.ErrNotFound
	}
	return nil
}
