package service

import (
	"context"
	"strings"
	"testing"

	"github.com/opencampus/campus-backend/internal/model"
)

func TestRegisterDefaults(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.userRepo)
	ctx := context.Background()

	user, err := svc.Register(ctx, model.RegisterRequest{
		Name:  "Alice Johnson",
		Email: "alice@example.com",
		Role:  model.RoleStudent,
	}, "hash")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.ID == "" {
		t.Error("expected a generated id")
	}
	if user.Student == nil {
		t.Fatal("student registration must attach a student profile")
	}
	if user.Student.GradeLevel != DefaultGradeLevel {
		t.Errorf("expected default grade level %d, got %d", DefaultGradeLevel, user.Student.GradeLevel)
	}
	if len(user.Student.CourseIDs) != 0 {
		t.Errorf("new student should have no enrollments, got %v", user.Student.CourseIDs)
	}
	if !strings.HasPrefix(user.SchoolID, "S-") {
		t.Errorf("student school id should start with S-, got %q", user.SchoolID)
	}
	if user.Avatar != "https://picsum.photos/seed/alice/200" {
		t.Errorf("unexpected default avatar %q", user.Avatar)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.userRepo)
	ctx := context.Background()

	req := model.RegisterRequest{Name: "Bob", Email: "bob@example.com", Role: model.RoleTeacher}
	if _, err := svc.Register(ctx, req, "h"); err != nil {
		t.Fatalf("first register: %v", err)
	}

	// Same address with different case is still a duplicate.
	req.Email = "BOB@Example.com"
	if _, err := svc.Register(ctx, req, "h"); err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterNonStudentHasNoProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.userRepo)

	user, err := svc.Register(context.Background(), model.RegisterRequest{
		Name:  "Carol",
		Email: "carol@example.com",
		Role:  model.RoleTeacher,
	}, "h")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Student != nil {
		t.Error("teacher registration must not attach a student profile")
	}
	if !strings.HasPrefix(user.SchoolID, "T-") {
		t.Errorf("teacher school id should start with T-, got %q", user.SchoolID)
	}
}

func TestUpdateRoleChangeTogglesProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.userRepo)
	ctx := context.Background()

	user, err := svc.Register(ctx, model.RegisterRequest{
		Name:  "Dan",
		Email: "dan@example.com",
		Role:  model.RoleStudent,
	}, "h")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	promoted, err := svc.Update(ctx, user.ID, model.UpdateUserRequest{
		Name:  "Dan",
		Email: "dan@example.com",
		Role:  model.RoleTeacher,
	})
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if promoted.Student != nil {
		t.Error("role change to teacher should drop the student profile")
	}

	demoted, err := svc.Update(ctx, user.ID, model.UpdateUserRequest{
		Name:       "Dan",
		Email:      "dan@example.com",
		Role:       model.RoleStudent,
		GradeLevel: 11,
	})
	if err != nil {
		t.Fatalf("demote: %v", err)
	}
	if demoted.Student == nil {
		t.Fatal("role change to student should attach a profile")
	}
	if demoted.Student.GradeLevel != 11 {
		t.Errorf("expected grade level 11, got %d", demoted.Student.GradeLevel)
	}
}

func TestUpdateEmailCollision(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.userRepo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, model.RegisterRequest{Name: "A", Email: "a@example.com", Role: model.RoleTeacher}, "h"); err != nil {
		t.Fatalf("register a: %v", err)
	}
	b, err := svc.Register(ctx, model.RegisterRequest{Name: "B", Email: "b@example.com", Role: model.RoleTeacher}, "h")
	if err != nil {
		t.Fatalf("register b: %v", err)
	}

	_, err = svc.Update(ctx, b.ID, model.UpdateUserRequest{Name: "B", Email: "a@example.com", Role: model.RoleTeacher})
	if err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken on collision, got %v", err)
	}

	// Keeping your own email is not a collision.
	if _, err := svc.Update(ctx, b.ID, model.UpdateUserRequest{Name: "B2", Email: "b@example.com", Role: model.RoleTeacher}); err != nil {
		t.Fatalf("self-email update: %v", err)
	}
}

func TestDeleteSilentVsStrict(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.userRepo)

	// Default store ignores deletes of missing users.
	if err := svc.Delete(context.Background(), "ghost"); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
}
