package service

import (
	"context"
	"strings"
	"testing"

	"github.com/opencampus/campus-backend/internal/model"
)

type stubChatClient struct {
	gotMessages []ChatMessage
	reply       string
}

func (s *stubChatClient) Complete(_ context.Context, messages []ChatMessage) (string, error) {
	s.gotMessages = messages
	return s.reply, nil
}

func TestBuildCourseContext(t *testing.T) {
	course := &model.Course{
		Title:       "Introduction to Physics",
		Description: "Mechanics, waves, and thermodynamics.",
	}
	want := "Course: Introduction to Physics. Description: Mechanics, waves, and thermodynamics."
	if got := BuildCourseContext(course); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAskInjectsCourseContext(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	course := env.addCourse(t, "Physics")
	stub := &stubChatClient{reply: "F = ma"}
	svc := NewTutorService(env.courseRepo, stub)

	answer, err := svc.Ask(ctx, course.ID, []ChatMessage{{Role: "user", Content: "What is Newton's second law?"}})
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if answer != "F = ma" {
		t.Errorf("unexpected answer %q", answer)
	}

	if len(stub.gotMessages) != 2 {
		t.Fatalf("expected system turn + user turn, got %d messages", len(stub.gotMessages))
	}
	if stub.gotMessages[0].Role != "system" {
		t.Errorf("first turn should be the system context, got role %q", stub.gotMessages[0].Role)
	}
	if want := "Course: Physics."; !strings.Contains(stub.gotMessages[0].Content, want) {
		t.Errorf("system turn %q missing course context %q", stub.gotMessages[0].Content, want)
	}
}

func TestAskDisabledReturnsFallback(t *testing.T) {
	env := newTestEnv(t)

	svc := NewTutorService(env.courseRepo, nil)
	if svc.Enabled() {
		t.Error("service with nil client should report disabled")
	}

	// Even an unknown course gets the fallback: the disabled path answers
	// before touching the store.
	answer, err := svc.Ask(context.Background(), 999, nil)
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	want := "I'm sorry, my AI features are currently disabled. Please contact an administrator."
	if answer != want {
		t.Errorf("disabled reply = %q, want %q", answer, want)
	}
}

func TestAskUnknownCourse(t *testing.T) {
	env := newTestEnv(t)

	svc := NewTutorService(env.courseRepo, &stubChatClient{reply: "hi"})
	if _, err := svc.Ask(context.Background(), 999, nil); !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
