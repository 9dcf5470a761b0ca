package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/opencampus/campus-backend/internal/database"
	"github.com/opencampus/campus-backend/internal/model"
	"github.com/opencampus/campus-backend/internal/repository"
)

// ErrEmailTaken is returned when registration or an update collides with an
// existing account's email. Email is the natural key for accounts; the
// duplicate check here is what keeps it unique, the store itself does not.
var ErrEmailTaken = errors.New("email already registered")

// DefaultGradeLevel is assigned to self-registered students.
const DefaultGradeLevel = 9

// UserService handles account business logic.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List retrieves all users, optionally filtered by role.
func (s *UserService) List(ctx context.Context, role model.Role) ([]model.User, error) {
	if role == "" {
		return s.userRepo.List(ctx)
	}
	return s.userRepo.ListByRole(ctx, role)
}

// GetByID retrieves a user by id.
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// Register creates an account from a self-registration request: generated
// school id and default avatar; students start at the default grade level
// with no enrollments. Rejects duplicate emails.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest, passwordHash string) (*model.User, error) {
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		Avatar:       defaultAvatar(req.Name),
		SchoolID:     generateSchoolID(req.Role),
		PasswordHash: passwordHash,
	}
	if req.Role == model.RoleStudent {
		user.Student = &model.StudentProfile{GradeLevel: DefaultGradeLevel, CourseIDs: []int{}}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Create makes an admin-created account. Rejects duplicate emails and keeps
// the student-profile invariant: the profile exists exactly for students.
func (s *UserService) Create(ctx context.Context, req model.CreateUserRequest, passwordHash string) (*model.User, error) {
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		Avatar:       defaultAvatar(req.Name),
		SchoolID:     generateSchoolID(req.Role),
		Contact:      req.Contact,
		PasswordHash: passwordHash,
	}
	if req.Role == model.RoleStudent {
		grade := req.GradeLevel
		if grade == 0 {
			grade = DefaultGradeLevel
		}
		user.Student = &model.StudentProfile{GradeLevel: grade, CourseIDs: []int{}}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update modifies an existing account. A role change to or from Student
// attaches or drops the student profile so the invariant holds.
func (s *UserService) Update(ctx context.Context, id string, req model.UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(user.Email, req.Email) {
		if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
			return nil, ErrEmailTaken
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Contact = req.Contact
	if req.Role == model.RoleStudent {
		if user.Student == nil {
			user.Student = &model.StudentProfile{CourseIDs: []int{}}
		}
		if req.GradeLevel != 0 {
			user.Student.GradeLevel = req.GradeLevel
		} else if user.Student.GradeLevel == 0 {
			user.Student.GradeLevel = DefaultGradeLevel
		}
	} else {
		user.Student = nil
	}
	user.Role = req.Role

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateAvatar stores a new avatar reference for the user. The value (URL
// or data URL) is opaque to the server.
func (s *UserService) UpdateAvatar(ctx context.Context, id, avatar string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Avatar = avatar
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account. Course rosters, submissions, and fees keep
// their references to the gone user; queries tolerate them.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}

// IsNotFound reports whether err is the store's missing-record error.
func IsNotFound(err error) bool {
	return errors.Is(err, database.ErrNotFound)
}

func generateSchoolID(role model.Role) string {
	prefix := "U"
	if len(role) > 0 {
		prefix = strings.ToUpper(string(role[0]))
	}
	stamp := fmt.Sprintf("%d", time.Now().UnixMilli())
	return fmt.Sprintf("%s-%s", prefix, stamp[len(stamp)-5:])
}

func defaultAvatar(name string) string {
	seed := strings.Fields(name)
	if len(seed) == 0 {
		return "https://picsum.photos/seed/user/200"
	}
	return fmt.Sprintf("https://picsum.photos/seed/%s/200", strings.ToLower(seed[0]))
}
