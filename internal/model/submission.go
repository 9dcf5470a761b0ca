package model

import (
	"encoding/json"
	"time"
)

// SubmissionStatus is the derived state of an assignment for one student.
// It is computed at query time and never stored.
type SubmissionStatus string

const (
	StatusGraded    SubmissionStatus = "Graded"
	StatusSubmitted SubmissionStatus = "Submitted"
	StatusOverdue   SubmissionStatus = "Overdue"
	StatusPending   SubmissionStatus = "Pending"
)

// Submission records a student's work for an assignment.
// At most one submission exists per (assignment, student) pair; all writes
// go through the upsert in the submission repository.
// A nil Grade means ungraded.
type Submission struct {
	ID           int       `json:"id"`
	AssignmentID int       `json:"assignment_id"`
	StudentID    string    `json:"student_id"`
	SubmittedAt  time.Time `json:"submitted_at"`
	Grade        *int      `json:"grade"`
	Feedback     string    `json:"feedback,omitempty"`
}

// GradeValue distinguishes an explicit JSON null (clear the grade) from an
// omitted field. The grade field is required but nullable on the wire.
type GradeValue struct {
	Present bool
	Value   *int
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the
// field is present, which is what flips Present.
func (g *GradeValue) UnmarshalJSON(b []byte) error {
	g.Present = true
	if string(b) == "null" {
		g.Value = nil
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	g.Value = &n
	return nil
}

// GradeSubmissionRequest is the payload for grading (or clearing a grade on)
// a student's submission. "grade": null returns the submission to Submitted.
type GradeSubmissionRequest struct {
	StudentID string     `json:"student_id" binding:"required"`
	Grade     GradeValue `json:"grade"`
	Feedback  string     `json:"feedback" binding:"omitempty,max=4000"`
}
