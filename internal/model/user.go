package model

// Role identifies what a user can see and do.
type Role string

const (
	RoleStudent Role = "Student"
	RoleTeacher Role = "Teacher"
	RoleAdmin   Role = "Admin"
)

// StudentProfile carries the fields that only exist for students.
// Invariant: User.Student is non-nil exactly when User.Role == RoleStudent.
type StudentProfile struct {
	GradeLevel int   `json:"grade_level"`
	CourseIDs  []int `json:"course_ids"`
}

// User represents any account in the system: student, teacher, or admin.
type User struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Role         Role            `json:"role"`
	Avatar       string          `json:"avatar"`
	SchoolID     string          `json:"school_id"`
	Contact      string          `json:"contact,omitempty"`
	PasswordHash string          `json:"-"`
	Student      *StudentProfile `json:"student,omitempty"`
}

// IsStudent reports whether the user is a student with a profile attached.
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent && u.Student != nil
}

// EnrolledIn reports whether a student user is enrolled in the given course.
func (u *User) EnrolledIn(courseID int) bool {
	if !u.IsStudent() {
		return false
	}
	for _, id := range u.Student.CourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}

// RegisterRequest is the payload for self-registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	Role     Role   `json:"role" binding:"required,oneof=Student Teacher Admin"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4,max=128"`
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateUserRequest is the payload for admin-created accounts.
type CreateUserRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email,max=254"`
	Role       Role   `json:"role" binding:"required,oneof=Student Teacher Admin"`
	Contact    string `json:"contact" binding:"omitempty,max=40"`
	Password   string `json:"password" binding:"required,min=6,max=128"`
	GradeLevel int    `json:"grade_level" binding:"omitempty,min=1,max=13"`
}

// UpdateUserRequest is the payload for updating an existing account.
type UpdateUserRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email,max=254"`
	Role       Role   `json:"role" binding:"required,oneof=Student Teacher Admin"`
	Contact    string `json:"contact" binding:"omitempty,max=40"`
	GradeLevel int    `json:"grade_level" binding:"omitempty,min=1,max=13"`
}

// UpdateAvatarRequest carries a new avatar reference (URL or data URL).
// The server treats the value as opaque.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}
