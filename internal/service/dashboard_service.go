package service

import (
	"context"
	"time"

	"github.com/opencampus/campus-backend/internal/model"
	"github.com/opencampus/campus-backend/internal/repository"
)

// StudentDashboard consolidates the student landing-page metrics.
type StudentDashboard struct {
	EnrolledCourses    int                  `json:"enrolled_courses"`
	PendingAssignments int                  `json:"pending_assignments"`
	OverallAverage     *int                 `json:"overall_average"`
	OutstandingFees    float64              `json:"outstanding_fees"`
	UpcomingDeadlines  []AssignmentOverview `json:"upcoming_deadlines"`
}

// TeacherDashboard consolidates the teacher landing-page metrics.
type TeacherDashboard struct {
	TaughtCourses     int `json:"taught_courses"`
	TotalStudents     int `json:"total_students"`
	UngradedWork      int `json:"ungraded_work"`
	ActiveAssignments int `json:"active_assignments"`
}

// AdminDashboard consolidates whole-system counts for the admin landing page.
type AdminDashboard struct {
	TotalStudents   int     `json:"total_students"`
	TotalTeachers   int     `json:"total_teachers"`
	TotalCourses    int     `json:"total_courses"`
	FeesOutstanding float64 `json:"fees_outstanding"`
}

// DashboardService derives per-role dashboard summaries from the live store.
type DashboardService struct {
	userRepo       *repository.UserRepository
	courseRepo     *repository.CourseRepository
	assignmentRepo *repository.AssignmentRepository
	submissionRepo *repository.SubmissionRepository
	feeRepo        *repository.FeeRepository
	gradebook      *GradebookService
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	assignmentRepo *repository.AssignmentRepository,
	submissionRepo *repository.SubmissionRepository,
	feeRepo *repository.FeeRepository,
	gradebook *GradebookService,
) *DashboardService {
	return &DashboardService{
		userRepo:       userRepo,
		courseRepo:     courseRepo,
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		feeRepo:        feeRepo,
		gradebook:      gradebook,
	}
}

// ForStudent builds the student dashboard: enrollment and assignment
// counts, the average over every graded submission, outstanding fees, and
// the next due dates.
func (s *DashboardService) ForStudent(ctx context.Context, student *model.User) (*StudentDashboard, error) {
	overviews, err := s.gradebook.AssignmentOverviews(ctx, student)
	if err != nil {
		return nil, err
	}

	pending := 0
	var grades []int
	var upcoming []AssignmentOverview
	now := time.Now().UTC()
	for _, o := range overviews {
		switch o.Status {
		case model.StatusPending:
			pending++
		case model.StatusGraded:
			if o.Grade != nil {
				grades = append(grades, *o.Grade)
			}
		}
		if o.Status == model.StatusPending && o.Assignment.DueDate.After(now) {
			upcoming = append(upcoming, o)
		}
	}

	fees, err := s.feeRepo.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	outstanding := 0.0
	for i := range fees {
		if !fees[i].Paid {
			outstanding += fees[i].Amount
		}
	}

	courses, err := s.courseRepo.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	return &StudentDashboard{
		EnrolledCourses:    len(courses),
		PendingAssignments: pending,
		OverallAverage:     roundAverage(grades),
		OutstandingFees:    outstanding,
		UpcomingDeadlines:  upcoming,
	}, nil
}

// ForTeacher builds the teacher dashboard across the courses they teach.
// Students co-enrolled in several of the teacher's courses count once.
func (s *DashboardService) ForTeacher(ctx context.Context, teacherID string) (*TeacherDashboard, error) {
	courses, err := s.courseRepo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	students := make(map[string]struct{})
	totalAssignments := 0
	ungraded := 0
	for i := range courses {
		for _, id := range courses[i].StudentIDs {
			students[id] = struct{}{}
		}
		assignments, err := s.assignmentRepo.ListByCourse(ctx, courses[i].ID)
		if err != nil {
			return nil, err
		}
		totalAssignments += len(assignments)
		subs, err := s.submissionRepo.ListByAssignments(ctx, assignmentIDs(assignments))
		if err != nil {
			return nil, err
		}
		for j := range subs {
			if subs[j].Grade == nil {
				ungraded++
			}
		}
	}

	return &TeacherDashboard{
		TaughtCourses:     len(courses),
		TotalStudents:     len(students),
		UngradedWork:      ungraded,
		ActiveAssignments: totalAssignments,
	}, nil
}

// ForAdmin builds the whole-system dashboard counts.
func (s *DashboardService) ForAdmin(ctx context.Context) (*AdminDashboard, error) {
	students, err := s.userRepo.ListByRole(ctx, model.RoleStudent)
	if err != nil {
		return nil, err
	}
	teachers, err := s.userRepo.ListByRole(ctx, model.RoleTeacher)
	if err != nil {
		return nil, err
	}
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	fees, err := s.feeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	outstanding := 0.0
	for i := range fees {
		if !fees[i].Paid {
			outstanding += fees[i].Amount
		}
	}

	return &AdminDashboard{
		TotalStudents:   len(students),
		TotalTeachers:   len(teachers),
		TotalCourses:    len(courses),
		FeesOutstanding: outstanding,
	}, nil
}
