package service

import (
	"context"
	"math"
	"time"

	"github.com/opencampus/campus-backend/internal/model"
	"github.com/opencampus/campus-backend/internal/repository"
)

// StatusOf derives the state of an assignment for one student. Evaluation
// order matters: a graded submission wins over submitted, and only an
// assignment with no submission at all can be overdue or pending. The
// overdue boundary is strict: due exactly at now is still Pending.
func StatusOf(a *model.Assignment, sub *model.Submission, now time.Time) model.SubmissionStatus {
	if sub != nil {
		if sub.Grade != nil {
			return model.StatusGraded
		}
		return model.StatusSubmitted
	}
	if a.DueDate.Before(now) {
		return model.StatusOverdue
	}
	return model.StatusPending
}

// roundAverage computes the arithmetic mean rounded half-up to the nearest
// integer. nil for an empty input: no graded work means no average, not 0.
func roundAverage(grades []int) *int {
	if len(grades) == 0 {
		return nil
	}
	total := 0
	for _, g := range grades {
		total += g
	}
	avg := int(math.Floor(float64(total)/float64(len(grades)) + 0.5))
	return &avg
}

// GradeCell is one gradebook cell: a student's standing on one assignment.
type GradeCell struct {
	AssignmentID int                    `json:"assignment_id"`
	Status       model.SubmissionStatus `json:"status"`
	Submission   *model.Submission      `json:"submission,omitempty"`
}

// GradebookRow is one student's row across a course's assignments.
type GradebookRow struct {
	Student model.User  `json:"student"`
	Cells   []GradeCell `json:"cells"`
	Average *int        `json:"average"`
}

// AssignmentAverage is the class average for one assignment; nil when no
// submission for it has a grade.
type AssignmentAverage struct {
	AssignmentID int  `json:"assignment_id"`
	Average      *int `json:"average"`
}

// CourseGradebook is the teacher view: the full roster-by-assignment grid
// with per-student and per-assignment averages.
type CourseGradebook struct {
	Course             model.Course        `json:"course"`
	Assignments        []model.Assignment  `json:"assignments"`
	Rows               []GradebookRow      `json:"rows"`
	AssignmentAverages []AssignmentAverage `json:"assignment_averages"`
}

// StudentAssignmentGrade is one assignment in the student gradebook view:
// the student's own submission plus the class average for comparison.
type StudentAssignmentGrade struct {
	Assignment   model.Assignment       `json:"assignment"`
	Status       model.SubmissionStatus `json:"status"`
	Submission   *model.Submission      `json:"submission,omitempty"`
	ClassAverage *int                   `json:"class_average"`
}

// StudentCourseGrades groups a student's grades for one enrolled course.
type StudentCourseGrades struct {
	Course      model.Course             `json:"course"`
	Assignments []StudentAssignmentGrade `json:"assignments"`
	Average     *int                     `json:"average"`
}

// AssignmentOverview is the student assignments-page row: each assignment
// with its course title and derived status.
type AssignmentOverview struct {
	Assignment  model.Assignment       `json:"assignment"`
	CourseTitle string                 `json:"course_title"`
	Status      model.SubmissionStatus `json:"status"`
	Grade       *int                   `json:"grade"`
}

// GradebookService derives everything the grade views show. Nothing here is
// cached or stored: every call recomputes from the live store, so a grade
// written through the mutation path is visible to the very next query from
// any view (read-your-writes across the shared store).
type GradebookService struct {
	courseRepo     *repository.CourseRepository
	assignmentRepo *repository.AssignmentRepository
	submissionRepo *repository.SubmissionRepository
	userRepo       *repository.UserRepository
}

// NewGradebookService creates a new GradebookService.
func NewGradebookService(
	courseRepo *repository.CourseRepository,
	assignmentRepo *repository.AssignmentRepository,
	submissionRepo *repository.SubmissionRepository,
	userRepo *repository.UserRepository,
) *GradebookService {
	return &GradebookService{
		courseRepo:     courseRepo,
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		userRepo:       userRepo,
	}
}

// StudentAverage computes one student's average over their graded
// submissions for the course's assignments. nil when none are graded.
func (s *GradebookService) StudentAverage(ctx context.Context, courseID int, studentID string) (*int, error) {
	assignments, err := s.assignmentRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	subs, err := s.submissionRepo.ListByAssignments(ctx, assignmentIDs(assignments))
	if err != nil {
		return nil, err
	}
	var grades []int
	for i := range subs {
		if subs[i].StudentID == studentID && subs[i].Grade != nil {
			grades = append(grades, *subs[i].Grade)
		}
	}
	return roundAverage(grades), nil
}

// AssignmentClassAverage computes the class average for one assignment over
// every graded submission. nil when none are graded.
func (s *GradebookService) AssignmentClassAverage(ctx context.Context, assignmentID int) (*int, error) {
	subs, err := s.submissionRepo.ListByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	return classAverage(subs, assignmentID), nil
}

// CourseGradebook builds the teacher gradebook grid for one course. Roster
// ids that no longer resolve to a user are skipped, the same way every
// aggregate treats dangling references.
func (s *GradebookService) CourseGradebook(ctx context.Context, courseID int) (*CourseGradebook, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignmentRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	subs, err := s.submissionRepo.ListByAssignments(ctx, assignmentIDs(assignments))
	if err != nil {
		return nil, err
	}

	byPair := make(map[int]map[string]*model.Submission, len(assignments))
	for i := range subs {
		sub := &subs[i]
		if byPair[sub.AssignmentID] == nil {
			byPair[sub.AssignmentID] = make(map[string]*model.Submission)
		}
		byPair[sub.AssignmentID][sub.StudentID] = sub
	}

	now := time.Now().UTC()
	rows := make([]GradebookRow, 0, len(course.StudentIDs))
	for _, studentID := range course.StudentIDs {
		student, err := s.userRepo.GetByID(ctx, studentID)
		if err != nil {
			continue
		}
		cells := make([]GradeCell, 0, len(assignments))
		var grades []int
		for i := range assignments {
			a := &assignments[i]
			sub := byPair[a.ID][studentID]
			cells = append(cells, GradeCell{
				AssignmentID: a.ID,
				Status:       StatusOf(a, sub, now),
				Submission:   sub,
			})
			if sub != nil && sub.Grade != nil {
				grades = append(grades, *sub.Grade)
			}
		}
		rows = append(rows, GradebookRow{
			Student: *student,
			Cells:   cells,
			Average: roundAverage(grades),
		})
	}

	averages := make([]AssignmentAverage, 0, len(assignments))
	for i := range assignments {
		averages = append(averages, AssignmentAverage{
			AssignmentID: assignments[i].ID,
			Average:      classAverage(subs, assignments[i].ID),
		})
	}

	return &CourseGradebook{
		Course:             *course,
		Assignments:        assignments,
		Rows:               rows,
		AssignmentAverages: averages,
	}, nil
}

// StudentGradebook builds the student view: for each enrolled course, every
// assignment with the student's own submission and the class average.
// Course ids that no longer resolve (the course was deleted) are skipped.
func (s *GradebookService) StudentGradebook(ctx context.Context, student *model.User) ([]StudentCourseGrades, error) {
	if !student.IsStudent() {
		return nil, nil
	}

	now := time.Now().UTC()
	result := make([]StudentCourseGrades, 0, len(student.Student.CourseIDs))
	for _, courseID := range student.Student.CourseIDs {
		course, err := s.courseRepo.GetByID(ctx, courseID)
		if err != nil {
			continue
		}
		assignments, err := s.assignmentRepo.ListByCourse(ctx, courseID)
		if err != nil {
			return nil, err
		}
		subs, err := s.submissionRepo.ListByAssignments(ctx, assignmentIDs(assignments))
		if err != nil {
			return nil, err
		}

		entries := make([]StudentAssignmentGrade, 0, len(assignments))
		var grades []int
		for i := range assignments {
			a := &assignments[i]
			var own *model.Submission
			for j := range subs {
				if subs[j].AssignmentID == a.ID && subs[j].StudentID == student.ID {
					own = &subs[j]
					break
				}
			}
			entries = append(entries, StudentAssignmentGrade{
				Assignment:   *a,
				Status:       StatusOf(a, own, now),
				Submission:   own,
				ClassAverage: classAverage(subs, a.ID),
			})
			if own != nil && own.Grade != nil {
				grades = append(grades, *own.Grade)
			}
		}
		result = append(result, StudentCourseGrades{
			Course:      *course,
			Assignments: entries,
			Average:     roundAverage(grades),
		})
	}
	return result, nil
}

// AssignmentOverviews builds the student assignments page: every assignment
// across the student's live courses with its derived status and grade.
func (s *GradebookService) AssignmentOverviews(ctx context.Context, student *model.User) ([]AssignmentOverview, error) {
	if !student.IsStudent() {
		return nil, nil
	}

	now := time.Now().UTC()
	var result []AssignmentOverview
	for _, courseID := range student.Student.CourseIDs {
		course, err := s.courseRepo.GetByID(ctx, courseID)
		if err != nil {
			continue
		}
		assignments, err := s.assignmentRepo.ListByCourse(ctx, courseID)
		if err != nil {
			return nil, err
		}
		for i := range assignments {
			a := &assignments[i]
			sub, err := s.submissionRepo.GetByPair(ctx, a.ID, student.ID)
			if err != nil {
				sub = nil
			}
			var grade *int
			if sub != nil {
				grade = sub.Grade
			}
			result = append(result, AssignmentOverview{
				Assignment:  *a,
				CourseTitle: course.Title,
				Status:      StatusOf(a, sub, now),
				Grade:       grade,
			})
		}
	}
	return result, nil
}

func assignmentIDs(assignments []model.Assignment) []int {
	ids := make([]int, 0, len(assignments))
	for i := range assignments {
		ids = append(ids, assignments[i].ID)
	}
	return ids
}

func classAverage(subs []model.Submission, assignmentID int) *int {
	var grades []int
	for i := range subs {
		if subs[i].AssignmentID == assignmentID && subs[i].Grade != nil {
			grades = append(grades, *subs[i].Grade)
		}
	}
	return roundAverage(grades)
}
