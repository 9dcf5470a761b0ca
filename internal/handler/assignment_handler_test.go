package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/opencampus/campus-backend/internal/database"
	"github.com/opencampus/campus-backend/internal/model"
	"github.com/opencampus/campus-backend/internal/repository"
	"github.com/opencampus/campus-backend/internal/service"
	"github.com/opencampus/campus-backend/internal/validator"
)

// gradeTestEnv wires a real store behind the grading route so requests
// exercise the full bind-validate-mutate path.
type gradeTestEnv struct {
	router         *gin.Engine
	submissionRepo *repository.SubmissionRepository
	assignmentID   int
	studentID      string
}

func newGradeTestEnv(t *testing.T) *gradeTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.Setup()

	db := database.NewMemDB()
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	ctx := context.Background()
	student := &model.User{
		ID:      "stu-1",
		Name:    "Grade Student",
		Email:   "grade-student@example.com",
		Role:    model.RoleStudent,
		Student: &model.StudentProfile{GradeLevel: 10, CourseIDs: []int{}},
	}
	if err := userRepo.Create(ctx, student); err != nil {
		t.Fatalf("create student: %v", err)
	}
	course := &model.Course{Title: "Algebra", ClassName: "10A", Section: "A"}
	if err := courseRepo.Create(ctx, course); err != nil {
		t.Fatalf("create course: %v", err)
	}
	assignment := &model.Assignment{
		CourseID: course.ID,
		Title:    "Worksheet 1",
		DueDate:  time.Now().Add(24 * time.Hour),
	}
	if err := assignmentRepo.Create(ctx, assignment); err != nil {
		t.Fatalf("create assignment: %v", err)
	}

	assignmentService := service.NewAssignmentService(assignmentRepo, submissionRepo, courseRepo)
	gradebookService := service.NewGradebookService(courseRepo, assignmentRepo, submissionRepo, userRepo)
	userService := service.NewUserService(userRepo)
	h := NewAssignmentHandler(assignmentService, gradebookService, userService)

	router := gin.New()
	router.POST("/assignments/:id/grade", h.GradeSubmission)

	return &gradeTestEnv{
		router:         router,
		submissionRepo: submissionRepo,
		assignmentID:   assignment.ID,
		studentID:      student.ID,
	}
}

func (env *gradeTestEnv) postGrade(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/assignments/"+strconv.Itoa(env.assignmentID)+"/grade", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func TestGradeSubmissionOmittedGradeRejected(t *testing.T) {
	env := newGradeTestEnv(t)

	rec := env.postGrade(t, `{"student_id":"`+env.studentID+`","grade":90}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("seed grade: status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	rec = env.postGrade(t, `{"student_id":"`+env.studentID+`"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("omitted grade: status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
	}

	sub, err := env.submissionRepo.GetByPair(context.Background(), env.assignmentID, env.studentID)
	if err != nil {
		t.Fatalf("get submission: %v", err)
	}
	if sub.Grade == nil || *sub.Grade != 90 {
		t.Fatalf("stored grade = %v, want untouched 90", sub.Grade)
	}
}

func TestGradeSubmissionExplicitNullClears(t *testing.T) {
	env := newGradeTestEnv(t)

	rec := env.postGrade(t, `{"student_id":"`+env.studentID+`","grade":85}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("seed grade: status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	rec = env.postGrade(t, `{"student_id":"`+env.studentID+`","grade":null}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("null grade: status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	sub, err := env.submissionRepo.GetByPair(context.Background(), env.assignmentID, env.studentID)
	if err != nil {
		t.Fatalf("get submission: %v", err)
	}
	if sub.Grade != nil {
		t.Fatalf("stored grade = %d, want cleared", *sub.Grade)
	}
}
