package service

import (
	"context"
	"testing"
	"time"

	"github.com/opencampus/campus-backend/internal/model"
)

func newAssignmentService(env *testEnv) *AssignmentService {
	return NewAssignmentService(env.assignmentRepo, env.submissionRepo, env.courseRepo)
}

func TestSubmitCreatesOneRecordPerPair(t *testing.T) {
	env := newTestEnv(t)
	svc := newAssignmentService(env)
	ctx := context.Background()

	env.addStudent(t, "s1")
	course := env.addCourse(t, "Physics", "s1")
	a := env.addAssignment(t, course.ID, time.Now().UTC().Add(time.Hour))

	first, err := svc.Submit(ctx, a.ID, "s1")
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := svc.Submit(ctx, a.ID, "s1")
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("resubmission created a new record: %d vs %d", first.ID, second.ID)
	}

	subs, err := svc.SubmissionsFor(ctx, a.ID)
	if err != nil {
		t.Fatalf("SubmissionsFor: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected exactly one submission for the pair, got %d", len(subs))
	}
}

func TestSubmitUnknownAssignment(t *testing.T) {
	env := newTestEnv(t)
	svc := newAssignmentService(env)

	if _, err := svc.Submit(context.Background(), 999, "s1"); !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestGradeRejectsOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	svc := newAssignmentService(env)
	ctx := context.Background()

	env.addStudent(t, "s1")
	course := env.addCourse(t, "Physics", "s1")
	a := env.addAssignment(t, course.ID, time.Now().UTC().Add(time.Hour))

	for _, bad := range []int{-1, 101, 150} {
		g := bad
		if _, err := svc.Grade(ctx, a.ID, "s1", &g, ""); err != ErrInvalidGrade {
			t.Errorf("grade %d: expected ErrInvalidGrade, got %v", bad, err)
		}
	}

	// The rejected grades must not have created a submission.
	sub, err := svc.SubmissionFor(ctx, a.ID, "s1")
	if err != nil {
		t.Fatalf("SubmissionFor: %v", err)
	}
	if sub != nil {
		t.Fatalf("rejected grade still wrote a submission: %+v", sub)
	}

	// Boundary values pass.
	for _, ok := range []int{0, 100} {
		g := ok
		if _, err := svc.Grade(ctx, a.ID, "s1", &g, ""); err != nil {
			t.Errorf("grade %d: unexpected error %v", ok, err)
		}
	}
}

func TestGradeWithoutPriorSubmission(t *testing.T) {
	env := newTestEnv(t)
	svc := newAssignmentService(env)
	ctx := context.Background()

	env.addStudent(t, "s1")
	course := env.addCourse(t, "Physics", "s1")
	a := env.addAssignment(t, course.ID, time.Now().UTC().Add(time.Hour))

	g := 85
	sub, err := svc.Grade(ctx, a.ID, "s1", &g, "good work")
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if sub.Grade == nil || *sub.Grade != 85 {
		t.Errorf("expected grade 85, got %v", sub.Grade)
	}
	if sub.SubmittedAt.IsZero() {
		t.Error("grading without a submission should stamp the grading moment")
	}
	if sub.Feedback != "good work" {
		t.Errorf("feedback not stored: %q", sub.Feedback)
	}
}

func TestGradeClearRevertsStatus(t *testing.T) {
	env := newTestEnv(t)
	svc := newAssignmentService(env)
	ctx := context.Background()

	env.addStudent(t, "s1")
	course := env.addCourse(t, "Physics", "s1")
	a := env.addAssignment(t, course.ID, time.Now().UTC().Add(time.Hour))

	if _, err := svc.Submit(ctx, a.ID, "s1"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	g := 70
	if _, err := svc.Grade(ctx, a.ID, "s1", &g, ""); err != nil {
		t.Fatalf("grade: %v", err)
	}

	sub, err := svc.Grade(ctx, a.ID, "s1", nil, "")
	if err != nil {
		t.Fatalf("clear grade: %v", err)
	}
	if sub.Grade != nil {
		t.Fatalf("grade not cleared: %v", *sub.Grade)
	}

	status := StatusOf(a, sub, time.Now().UTC())
	if status != model.StatusSubmitted {
		t.Errorf("expected Submitted after clearing, got %s", status)
	}
}

func TestListForCourseMissingCourse(t *testing.T) {
	env := newTestEnv(t)
	svc := newAssignmentService(env)

	assignments, err := svc.ListForCourse(context.Background(), 404)
	if err != nil {
		t.Fatalf("ListForCourse: %v", err)
	}
	if assignments == nil || len(assignments) != 0 {
		t.Fatalf("expected empty list for missing course, got %v", assignments)
	}
}

func TestOrphanedAssignmentStillRetrievable(t *testing.T) {
	env := newTestEnv(t)
	svc := newAssignmentService(env)
	ctx := context.Background()

	env.addStudent(t, "s1")
	course := env.addCourse(t, "Physics", "s1")
	a := env.addAssignment(t, course.ID, time.Now().UTC().Add(time.Hour))

	if err := env.courseRepo.Delete(ctx, course.ID); err != nil {
		t.Fatalf("delete course: %v", err)
	}

	// Direct lookup keeps working.
	got, err := svc.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID after course delete: %v", err)
	}
	if got.ID != a.ID {
		t.Errorf("unexpected assignment %d", got.ID)
	}

	// Course-scoped listing goes empty once the course is gone, even though
	// the record itself survives in the store.
	assignments, err := svc.ListForCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("ListForCourse: %v", err)
	}
	if len(assignments) != 0 {
		t.Errorf("expected empty course listing for deleted course, got %d", len(assignments))
	}

	raw, err := env.assignmentRepo.ListByCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("ListByCourse: %v", err)
	}
	if len(raw) != 1 {
		t.Errorf("orphaned assignment missing from the store, got %d", len(raw))
	}
}
