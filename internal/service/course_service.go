package service

import (
	"context"
	"time"

	"github.com/opencampus/campus-backend/internal/model"
	"github.com/opencampus/campus-backend/internal/repository"
)

// CourseService handles course business logic: CRUD plus the course-scoped
// mutations (materials, announcements, enrollment). Every write from any
// view goes through here so upsert and set-semantics rules live in one
// place instead of per caller.
type CourseService struct {
	courseRepo *repository.CourseRepository
	userRepo   *repository.UserRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo *repository.CourseRepository, userRepo *repository.UserRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo, userRepo: userRepo}
}

// List retrieves all courses.
func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	return s.courseRepo.List(ctx)
}

// ListForUser retrieves the courses relevant to a user: taught courses for
// teachers, enrolled courses for students, everything for admins. The
// result is computed from record ownership fields, not the caller's
// asserted role.
func (s *CourseService) ListForUser(ctx context.Context, user *model.User) ([]model.Course, error) {
	switch {
	case user.Role == model.RoleAdmin:
		return s.courseRepo.List(ctx)
	case user.Role == model.RoleTeacher:
		return s.courseRepo.ListByTeacher(ctx, user.ID)
	default:
		return s.courseRepo.ListByStudent(ctx, user.ID)
	}
}

// GetByID retrieves a course by id.
func (s *CourseService) GetByID(ctx context.Context, id int) (*model.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// Create makes a new course. The creator, when given, is recorded as the
// owning-teacher marker. Roster entries are enrolled one by one so the
// student side of the relation stays in sync.
func (s *CourseService) Create(ctx context.Context, req model.CreateCourseRequest, creatorID string) (*model.Course, error) {
	course := &model.Course{
		Title:       req.Title,
		Description: req.Description,
		ClassName:   req.ClassName,
		Section:     req.Section,
		CreatorID:   creatorID,
		TeacherIDs:  req.TeacherIDs,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	for _, studentID := range req.StudentIDs {
		if err := s.EnrollStudent(ctx, course.ID, studentID); err != nil {
			return nil, err
		}
	}
	return s.courseRepo.GetByID(ctx, course.ID)
}

// Update modifies course metadata. Materials, announcements, and the roster
// are untouched; they have their own mutations.
func (s *CourseService) Update(ctx context.Context, id int, req model.UpdateCourseRequest) (*model.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	course.Title = req.Title
	course.Description = req.Description
	course.ClassName = req.ClassName
	course.Section = req.Section
	course.TeacherIDs = req.TeacherIDs
	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes a course. The delete does not cascade: assignments,
// submissions, and fees that reference the course survive as dangling
// records and stay retrievable by id, while course-scoped queries exclude
// them. Enrolled students keep the stale course id in their profile; reads
// resolve it to nothing.
func (s *CourseService) Delete(ctx context.Context, id int) error {
	return s.courseRepo.Delete(ctx, id)
}

// AddMaterial attaches a material to a course with a fresh per-course id.
func (s *CourseService) AddMaterial(ctx context.Context, courseID int, req model.AddMaterialRequest) (*model.CourseMaterial, error) {
	m := model.CourseMaterial{
		Type:    req.Type,
		Title:   req.Title,
		URL:     req.URL,
		Content: req.Content,
	}
	return s.courseRepo.AddMaterial(ctx, courseID, m)
}

// PostAnnouncement prepends an announcement to a course, dated now.
// Announcements are immutable once posted.
func (s *CourseService) PostAnnouncement(ctx context.Context, courseID int, req model.PostAnnouncementRequest) (*model.Announcement, error) {
	return s.courseRepo.AddAnnouncement(ctx, courseID, req.Title, req.Content, time.Now().UTC())
}

// EnrollStudent adds a student to the course roster and mirrors the course
// id into the student's own enrollment list. Both sides use set semantics,
// so enrolling twice is a no-op.
func (s *CourseService) EnrollStudent(ctx context.Context, courseID int, studentID string) error {
	if err := s.courseRepo.AddStudent(ctx, courseID, studentID); err != nil {
		return err
	}
	return s.userRepo.AddCourse(ctx, studentID, courseID)
}

// UnenrollStudent removes a student from the course roster and from the
// student's own enrollment list.
func (s *CourseService) UnenrollStudent(ctx context.Context, courseID int, studentID string) error {
	if err := s.courseRepo.RemoveStudent(ctx, courseID, studentID); err != nil {
		return err
	}
	return s.userRepo.RemoveCourse(ctx, studentID, courseID)
}

// Roster resolves the course's student ids to user records, skipping ids
// that no longer resolve (deleted users are tolerated, not an error).
func (s *CourseService) Roster(ctx context.Context, course *model.Course) ([]model.User, error) {
	students := make([]model.User, 0, len(course.StudentIDs))
	for _, id := range course.StudentIDs {
		u, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			continue
		}
		students = append(students, *u)
	}
	return students, nil
}
