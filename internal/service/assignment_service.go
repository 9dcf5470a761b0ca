package service

import (
	"context"
	"errors"
	"time"

	"github.com/opencampus/campus-backend/internal/model"
	"github.com/opencampus/campus-backend/internal/repository"
)

// ErrInvalidGrade is returned when a grade falls outside 0-100. Grades are
// rejected, never clamped.
var ErrInvalidGrade = errors.New("grade must be between 0 and 100")

// AssignmentService handles assignment CRUD and the submission write path.
type AssignmentService struct {
	assignmentRepo *repository.AssignmentRepository
	submissionRepo *repository.SubmissionRepository
	courseRepo     *repository.CourseRepository
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	submissionRepo *repository.SubmissionRepository,
	courseRepo *repository.CourseRepository,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		courseRepo:     courseRepo,
	}
}

// GetByID retrieves an assignment by id, even when its course is gone.
func (s *AssignmentService) GetByID(ctx context.Context, id int) (*model.Assignment, error) {
	return s.assignmentRepo.GetByID(ctx, id)
}

// ListForCourse retrieves the assignments of one course. A deleted course
// yields an empty list: the orphaned assignments still exist and are
// reachable by id, but no course-scoped query reports them.
func (s *AssignmentService) ListForCourse(ctx context.Context, courseID int) ([]model.Assignment, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return []model.Assignment{}, nil
	}
	return s.assignmentRepo.ListByCourse(ctx, courseID)
}

// ListForStudent retrieves the assignments across all of a student's
// enrolled courses. Stale course ids on the profile resolve to nothing.
func (s *AssignmentService) ListForStudent(ctx context.Context, student *model.User) ([]model.Assignment, error) {
	if !student.IsStudent() {
		return nil, nil
	}
	live := make([]int, 0, len(student.Student.CourseIDs))
	for _, id := range student.Student.CourseIDs {
		if _, err := s.courseRepo.GetByID(ctx, id); err == nil {
			live = append(live, id)
		}
	}
	return s.assignmentRepo.ListByCourses(ctx, live)
}

// Create makes a new assignment for a course.
func (s *AssignmentService) Create(ctx context.Context, req model.CreateAssignmentRequest) (*model.Assignment, error) {
	a := &model.Assignment{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if err := s.assignmentRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update modifies an existing assignment.
func (s *AssignmentService) Update(ctx context.Context, id int, req model.UpdateAssignmentRequest) (*model.Assignment, error) {
	a, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Title = req.Title
	a.Description = req.Description
	a.DueDate = req.DueDate
	if err := s.assignmentRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an assignment. Its submissions remain as dangling records.
func (s *AssignmentService) Delete(ctx context.Context, id int) error {
	return s.assignmentRepo.Delete(ctx, id)
}

// Submit records a student handing in work: an upsert on the (assignment,
// student) pair that stamps the submission time and leaves any grade
// untouched. A resubmission just refreshes the timestamp.
func (s *AssignmentService) Submit(ctx context.Context, assignmentID int, studentID string) (*model.Submission, error) {
	if _, err := s.assignmentRepo.GetByID(ctx, assignmentID); err != nil {
		return nil, err
	}
	return s.submissionRepo.UpsertByPair(ctx, assignmentID, studentID, func(sub *model.Submission, created bool) {
		sub.SubmittedAt = time.Now().UTC()
	})
}

// Grade sets or clears a grade for the (assignment, student) pair. A nil
// grade clears: the pair's derived status drops from Graded back to
// Submitted. Grading a pair with no prior submission creates the record,
// and since there never was a submission event its timestamp is the grading
// moment. After any number of calls the pair still has exactly one row.
func (s *AssignmentService) Grade(ctx context.Context, assignmentID int, studentID string, grade *int, feedback string) (*model.Submission, error) {
	if grade != nil && (*grade < 0 || *grade > 100) {
		return nil, ErrInvalidGrade
	}
	if _, err := s.assignmentRepo.GetByID(ctx, assignmentID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return s.submissionRepo.UpsertByPair(ctx, assignmentID, studentID, func(sub *model.Submission, created bool) {
		if created || sub.SubmittedAt.IsZero() {
			sub.SubmittedAt = now
		}
		sub.Grade = grade
		sub.Feedback = feedback
	})
}

// SubmissionFor retrieves the submission a student has for an assignment,
// or nil when none exists yet.
func (s *AssignmentService) SubmissionFor(ctx context.Context, assignmentID int, studentID string) (*model.Submission, error) {
	sub, err := s.submissionRepo.GetByPair(ctx, assignmentID, studentID)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return sub, nil
}

// SubmissionsFor retrieves every submission for an assignment.
func (s *AssignmentService) SubmissionsFor(ctx context.Context, assignmentID int) ([]model.Submission, error) {
	return s.submissionRepo.ListByAssignment(ctx, assignmentID)
}
