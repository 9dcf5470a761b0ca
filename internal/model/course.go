package model

import "time"

// MaterialType enumerates the supported course material kinds.
type MaterialType string

const (
	MaterialVideo    MaterialType = "video"
	MaterialDocument MaterialType = "document"
	MaterialSlides   MaterialType = "slides"
)

// CourseMaterial is a learning resource attached to a course.
// Its ID is unique within the owning course only.
// For video/document the URL is the resource; for slides the Content list
// holds the slide image references and URL is ignored.
type CourseMaterial struct {
	ID      int          `json:"id"`
	Type    MaterialType `json:"type"`
	Title   string       `json:"title"`
	URL     string       `json:"url"`
	Content []string     `json:"content,omitempty"`
}

// Announcement is a dated notice posted to a course by one of its teachers.
// Announcements are never edited or deleted; the newest comes first.
type Announcement struct {
	ID       int       `json:"id"`
	CourseID int       `json:"course_id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
}

// Course represents a taught course with its embedded materials,
// announcements, and student roster.
type Course struct {
	ID            int              `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	ClassName     string           `json:"class_name"`
	Section       string           `json:"section"`
	CreatorID     string           `json:"creator_id,omitempty"`
	TeacherIDs    []string         `json:"teacher_ids"`
	Materials     []CourseMaterial `json:"materials"`
	StudentIDs    []string         `json:"student_ids"`
	Announcements []Announcement   `json:"announcements"`
}

// TaughtBy reports whether the given user teaches this course.
func (c *Course) TaughtBy(userID string) bool {
	for _, id := range c.TeacherIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// HasStudent reports whether the given student is on the roster.
func (c *Course) HasStudent(studentID string) bool {
	for _, id := range c.StudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}

// CreateCourseRequest is the payload for creating a new course.
type CreateCourseRequest struct {
	Title       string   `json:"title" binding:"required,min=2,max=255"`
	Description string   `json:"description" binding:"omitempty,max=2000"`
	ClassName   string   `json:"class_name" binding:"required,min=1,max=50"`
	Section     string   `json:"section" binding:"required,min=1,max=10"`
	TeacherIDs  []string `json:"teacher_ids" binding:"required,min=1"`
	StudentIDs  []string `json:"student_ids" binding:"omitempty"`
}

// UpdateCourseRequest is the payload for updating an existing course.
// Materials and announcements are managed through their own endpoints.
type UpdateCourseRequest struct {
	Title       string   `json:"title" binding:"required,min=2,max=255"`
	Description string   `json:"description" binding:"omitempty,max=2000"`
	ClassName   string   `json:"class_name" binding:"required,min=1,max=50"`
	Section     string   `json:"section" binding:"required,min=1,max=10"`
	TeacherIDs  []string `json:"teacher_ids" binding:"required,min=1"`
}

// AddMaterialRequest is the payload for attaching a material to a course.
type AddMaterialRequest struct {
	Type    MaterialType `json:"type" binding:"required,oneof=video document slides"`
	Title   string       `json:"title" binding:"required,min=1,max=255"`
	URL     string       `json:"url" binding:"omitempty,max=2048"`
	Content []string     `json:"content" binding:"omitempty"`
}

// PostAnnouncementRequest is the payload for posting a course announcement.
type PostAnnouncementRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=255"`
	Content string `json:"content" binding:"required,min=1,max=4000"`
}

// EnrollRequest identifies the student to add to or remove from a roster.
type EnrollRequest struct {
	StudentID string `json:"student_id" binding:"required"`
}
