package model

import "time"

// Assignment represents graded work set for a course.
type Assignment struct {
	ID          int       `json:"id"`
	CourseID    int       `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"due_date"`
}

// CreateAssignmentRequest is the payload for creating a new assignment.
type CreateAssignmentRequest struct {
	CourseID    int       `json:"course_id" binding:"required"`
	Title       string    `json:"title" binding:"required,min=2,max=255"`
	Description string    `json:"description" binding:"omitempty,max=2000"`
	DueDate     time.Time `json:"due_date" binding:"required"`
}

// UpdateAssignmentRequest is the payload for updating an existing assignment.
type UpdateAssignmentRequest struct {
	Title       string    `json:"title" binding:"required,min=2,max=255"`
	Description string    `json:"description" binding:"omitempty,max=2000"`
	DueDate     time.Time `json:"due_date" binding:"required"`
}
