package service

import (
	"context"
	"testing"
	"time"

	"github.com/opencampus/campus-backend/internal/database"
	"github.com/opencampus/campus-backend/internal/model"
	"github.com/opencampus/campus-backend/internal/repository"
)

type testEnv struct {
	db             *database.MemDB
	userRepo       *repository.UserRepository
	courseRepo     *repository.CourseRepository
	assignmentRepo *repository.AssignmentRepository
	submissionRepo *repository.SubmissionRepository
	feeRepo        *repository.FeeRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := database.NewMemDB()
	return &testEnv{
		db:             db,
		userRepo:       repository.NewUserRepository(db),
		courseRepo:     repository.NewCourseRepository(db),
		assignmentRepo: repository.NewAssignmentRepository(db),
		submissionRepo: repository.NewSubmissionRepository(db),
		feeRepo:        repository.NewFeeRepository(db),
	}
}

func (env *testEnv) addStudent(t *testing.T, id string) *model.User {
	t.Helper()
	user := &model.User{
		ID:    id,
		Name:  "Student " + id,
		Email: id + "@example.com",
		Role:  model.RoleStudent,
		Student: &model.StudentProfile{
			GradeLevel: 10,
			CourseIDs:  []int{},
		},
	}
	if err := env.userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("create student %s: %v", id, err)
	}
	return user
}

func (env *testEnv) addCourse(t *testing.T, title string, studentIDs ...string) *model.Course {
	t.Helper()
	ctx := context.Background()
	course := &model.Course{
		Title:      title,
		ClassName:  "Grade 10",
		Section:    "A",
		TeacherIDs: []string{"teacher1"},
	}
	if err := env.courseRepo.Create(ctx, course); err != nil {
		t.Fatalf("create course: %v", err)
	}
	for _, sid := range studentIDs {
		if err := env.courseRepo.AddStudent(ctx, course.ID, sid); err != nil {
			t.Fatalf("add student %s: %v", sid, err)
		}
		if err := env.userRepo.AddCourse(ctx, sid, course.ID); err != nil {
			t.Fatalf("mirror enrollment for %s: %v", sid, err)
		}
	}
	got, err := env.courseRepo.GetByID(ctx, course.ID)
	if err != nil {
		t.Fatalf("reload course: %v", err)
	}
	return got
}

func (env *testEnv) addAssignment(t *testing.T, courseID int, due time.Time) *model.Assignment {
	t.Helper()
	a := &model.Assignment{
		CourseID: courseID,
		Title:    "Assignment",
		DueDate:  due,
	}
	if err := env.assignmentRepo.Create(context.Background(), a); err != nil {
		t.Fatalf("create assignment: %v", err)
	}
	return a
}

func (env *testEnv) grade(t *testing.T, assignmentID int, studentID string, grade int) {
	t.Helper()
	_, err := env.submissionRepo.UpsertByPair(context.Background(), assignmentID, studentID, func(s *model.Submission, created bool) {
		if created {
			s.SubmittedAt = time.Now().UTC()
		}
		g := grade
		s.Grade = &g
	})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
}

func TestStatusOf(t *testing.T) {
	now := time.Date(2025, time.May, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)
	grade := 90

	cases := []struct {
		name string
		due  time.Time
		sub  *model.Submission
		want model.SubmissionStatus
	}{
		{"no submission before due", future, nil, model.StatusPending},
		{"no submission after due", past, nil, model.StatusOverdue},
		{"due exactly now is not overdue", now, nil, model.StatusPending},
		{"ungraded submission", past, &model.Submission{SubmittedAt: past}, model.StatusSubmitted},
		{"graded submission", past, &model.Submission{SubmittedAt: past, Grade: &grade}, model.StatusGraded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := &model.Assignment{DueDate: tc.due}
			if got := StatusOf(a, tc.sub, now); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestStudentAverageRoundsHalfUp(t *testing.T) {
	env := newTestEnv(t)
	svc := NewGradebookService(env.courseRepo, env.assignmentRepo, env.submissionRepo, env.userRepo)
	ctx := context.Background()

	env.addStudent(t, "s1")
	course := env.addCourse(t, "Physics", "s1")
	due := time.Now().UTC().Add(24 * time.Hour)
	for i, g := range []int{90, 80, 71} {
		a := env.addAssignment(t, course.ID, due.Add(time.Duration(i)*time.Hour))
		env.grade(t, a.ID, "s1", g)
	}

	// (90+80+71)/3 = 80.33 -> 80
	avg, err := svc.StudentAverage(ctx, course.ID, "s1")
	if err != nil {
		t.Fatalf("StudentAverage: %v", err)
	}
	if avg == nil || *avg != 80 {
		t.Fatalf("expected 80, got %v", avg)
	}

	// Add 85 and 88: (90+80+71+85+88)/5 = 82.8 -> 83
	for i, g := range []int{85, 88} {
		a := env.addAssignment(t, course.ID, due.Add(time.Duration(10+i)*time.Hour))
		env.grade(t, a.ID, "s1", g)
	}
	avg, err = svc.StudentAverage(ctx, course.ID, "s1")
	if err != nil {
		t.Fatalf("StudentAverage: %v", err)
	}
	if avg == nil || *avg != 83 {
		t.Fatalf("expected half-up rounding to 83, got %v", avg)
	}
}

func TestStudentAverageNilWhenNothingGraded(t *testing.T) {
	env := newTestEnv(t)
	svc := NewGradebookService(env.courseRepo, env.assignmentRepo, env.submissionRepo, env.userRepo)
	ctx := context.Background()

	env.addStudent(t, "s1")
	course := env.addCourse(t, "Physics", "s1")
	a := env.addAssignment(t, course.ID, time.Now().UTC().Add(time.Hour))

	// Ungraded submission still yields no average.
	_, err := env.submissionRepo.UpsertByPair(ctx, a.ID, "s1", func(s *model.Submission, created bool) {
		s.SubmittedAt = time.Now().UTC()
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	avg, err := svc.StudentAverage(ctx, course.ID, "s1")
	if err != nil {
		t.Fatalf("StudentAverage: %v", err)
	}
	if avg != nil {
		t.Fatalf("expected nil average with no grades, got %d", *avg)
	}
}

func TestAssignmentClassAverage(t *testing.T) {
	env := newTestEnv(t)
	svc := NewGradebookService(env.courseRepo, env.assignmentRepo, env.submissionRepo, env.userRepo)
	ctx := context.Background()

	env.addStudent(t, "s1")
	env.addStudent(t, "s2")
	env.addStudent(t, "s3")
	course := env.addCourse(t, "History", "s1", "s2", "s3")
	a := env.addAssignment(t, course.ID, time.Now().UTC().Add(time.Hour))

	env.grade(t, a.ID, "s1", 95)
	env.grade(t, a.ID, "s2", 88)
	// s3 never submits; they must not drag the average down.

	avg, err := svc.AssignmentClassAverage(ctx, a.ID)
	if err != nil {
		t.Fatalf("AssignmentClassAverage: %v", err)
	}
	// (95+88)/2 = 91.5 -> 92
	if avg == nil || *avg != 92 {
		t.Fatalf("expected 92, got %v", avg)
	}
}

func TestCourseGradebookSkipsDanglingRosterEntries(t *testing.T) {
	env := newTestEnv(t)
	svc := NewGradebookService(env.courseRepo, env.assignmentRepo, env.submissionRepo, env.userRepo)
	ctx := context.Background()

	env.addStudent(t, "s1")
	env.addStudent(t, "s2")
	course := env.addCourse(t, "Calculus", "s1", "s2")
	a := env.addAssignment(t, course.ID, time.Now().UTC().Add(time.Hour))
	env.grade(t, a.ID, "s1", 100)

	// Delete s2 but leave the roster entry dangling.
	if err := env.userRepo.Delete(ctx, "s2"); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	gb, err := svc.CourseGradebook(ctx, course.ID)
	if err != nil {
		t.Fatalf("CourseGradebook: %v", err)
	}
	if len(gb.Rows) != 1 {
		t.Fatalf("expected 1 row after dangling entry skipped, got %d", len(gb.Rows))
	}
	if gb.Rows[0].Student.ID != "s1" {
		t.Errorf("unexpected row student %s", gb.Rows[0].Student.ID)
	}
	if gb.Rows[0].Average == nil || *gb.Rows[0].Average != 100 {
		t.Errorf("expected row average 100, got %v", gb.Rows[0].Average)
	}
	if len(gb.AssignmentAverages) != 1 || gb.AssignmentAverages[0].Average == nil || *gb.AssignmentAverages[0].Average != 100 {
		t.Errorf("unexpected assignment averages: %+v", gb.AssignmentAverages)
	}
}

func TestStudentGradebookSkipsDeletedCourses(t *testing.T) {
	env := newTestEnv(t)
	svc := NewGradebookService(env.courseRepo, env.assignmentRepo, env.submissionRepo, env.userRepo)
	ctx := context.Background()

	student := env.addStudent(t, "s1")
	kept := env.addCourse(t, "Kept", "s1")
	removed := env.addCourse(t, "Removed", "s1")

	// Delete the course record only; the enrollment id stays behind.
	if err := env.courseRepo.Delete(ctx, removed.ID); err != nil {
		t.Fatalf("delete course: %v", err)
	}

	student, err := env.userRepo.GetByID(ctx, "s1")
	if err != nil {
		t.Fatalf("reload student: %v", err)
	}

	grades, err := svc.StudentGradebook(ctx, student)
	if err != nil {
		t.Fatalf("StudentGradebook: %v", err)
	}
	if len(grades) != 1 {
		t.Fatalf("expected 1 course after deleted course skipped, got %d", len(grades))
	}
	if grades[0].Course.ID != kept.ID {
		t.Errorf("unexpected course %d", grades[0].Course.ID)
	}
}

func TestGradeVisibleToNextQuery(t *testing.T) {
	env := newTestEnv(t)
	svc := NewGradebookService(env.courseRepo, env.assignmentRepo, env.submissionRepo, env.userRepo)
	ctx := context.Background()

	student := env.addStudent(t, "s1")
	course := env.addCourse(t, "Physics", "s1")
	a := env.addAssignment(t, course.ID, time.Now().UTC().Add(time.Hour))

	student, err := env.userRepo.GetByID(ctx, "s1")
	if err != nil {
		t.Fatalf("reload student: %v", err)
	}

	before, err := svc.StudentGradebook(ctx, student)
	if err != nil {
		t.Fatalf("StudentGradebook: %v", err)
	}
	if got := before[0].Assignments[0].Status; got != model.StatusPending {
		t.Fatalf("expected Pending before grading, got %s", got)
	}

	env.grade(t, a.ID, "s1", 77)

	after, err := svc.StudentGradebook(ctx, student)
	if err != nil {
		t.Fatalf("StudentGradebook: %v", err)
	}
	entry := after[0].Assignments[0]
	if entry.Status != model.StatusGraded {
		t.Errorf("expected Graded after grading, got %s", entry.Status)
	}
	if entry.Submission == nil || entry.Submission.Grade == nil || *entry.Submission.Grade != 77 {
		t.Errorf("grade not visible in student view: %+v", entry.Submission)
	}
	if after[0].Average == nil || *after[0].Average != 77 {
		t.Errorf("expected course average 77, got %v", after[0].Average)
	}
}
