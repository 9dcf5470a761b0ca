package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/opencampus/campus-backend/internal/model"
	"github.com/opencampus/campus-backend/internal/repository"
)

// disabledReply is returned whenever no upstream chat model is configured.
const disabledReply = "I'm sorry, my AI features are currently disabled. Please contact an administrator."

// ChatMessage is one turn in a tutor conversation.
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant system"`
	Content string `json:"content" binding:"required"`
}

// ChatClient sends a conversation to an upstream chat model and returns the
// assistant reply.
type ChatClient interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}

// HTTPChatClient calls an OpenAI-compatible chat completion endpoint.
type HTTPChatClient struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

// NewHTTPChatClient creates a chat client against an OpenAI-compatible API.
func NewHTTPChatClient(endpoint, apiKey, model string) *HTTPChatClient {
	return &HTTPChatClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// Complete posts the conversation upstream and returns the first choice.
func (c *HTTPChatClient) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("tutor upstream returned %d: %s", resp.StatusCode, raw)
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("tutor upstream returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}

// TutorService answers course-scoped questions through an upstream chat
// model. A nil client means the feature is disabled and every question gets
// a fixed fallback reply instead of an error.
type TutorService struct {
	courseRepo *repository.CourseRepository
	client     ChatClient
}

// NewTutorService creates a new TutorService. client may be nil.
func NewTutorService(courseRepo *repository.CourseRepository, client ChatClient) *TutorService {
	return &TutorService{courseRepo: courseRepo, client: client}
}

// Enabled reports whether an upstream chat model is configured.
func (s *TutorService) Enabled() bool {
	return s.client != nil
}

// BuildCourseContext renders the course into the context line prepended to
// every tutor conversation.
func BuildCourseContext(course *model.Course) string {
	return fmt.Sprintf("Course: %s. Description: %s", course.Title, course.Description)
}

// Ask sends a conversation about one course to the tutor. The course
// context is injected as a system turn ahead of the caller's messages.
func (s *TutorService) Ask(ctx context.Context, courseID int, messages []ChatMessage) (string, error) {
	if s.client == nil {
		return disabledReply, nil
	}
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return "", err
	}
	withContext := make([]ChatMessage, 0, len(messages)+1)
	withContext = append(withContext, ChatMessage{
		Role:    "system",
		Content: "You are a helpful course tutor. " + BuildCourseContext(course),
	})
	withContext = append(withContext, messages...)
	return s.client.Complete(ctx, withContext)
}
