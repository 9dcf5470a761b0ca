package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/opencampus/campus-backend/internal/config"
	"github.com/opencampus/campus-backend/internal/handler"
	"github.com/opencampus/campus-backend/internal/middleware"
	"github.com/opencampus/campus-backend/internal/response"
	"github.com/opencampus/campus-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Course     *handler.CourseHandler
	Assignment *handler.AssignmentHandler
	Gradebook  *handler.GradebookHandler
	Fee        *handler.FeeHandler
	Timetable  *handler.TimetableHandler
	Dashboard  *handler.DashboardHandler
	Tutor      *handler.TutorHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
	}

	// ─── 2. Shared Group (Any Authenticated Role) ──────────────────────
	api := router.Group("/api/v1")
	api.Use(middleware.RequireJWT(authService))
	{
		api.GET("/me", handlers.Auth.Me)
		api.PUT("/me/avatar", handlers.Auth.UpdateAvatar)

		api.GET("/courses", handlers.Course.ListCourses)
		api.GET("/courses/:id", handlers.Course.GetCourse)
		api.GET("/courses/:id/roster", handlers.Course.GetRoster)
		api.GET("/courses/:id/assignments", handlers.Assignment.ListForCourse)
		api.GET("/assignments/:id", handlers.Assignment.GetAssignment)

		api.GET("/timetables", handlers.Timetable.ListTimetables)
		api.GET("/timetables/class", handlers.Timetable.GetTimetable)
	}

	// ─── 3. Student Group ──────────────────────────────────────────────
	studentAPI := router.Group("/api/v1/student")
	studentAPI.Use(middleware.RequireStudentJWT(authService))
	{
		studentAPI.GET("/dashboard", handlers.Dashboard.StudentDashboard)
		studentAPI.GET("/assignments", handlers.Assignment.ListMine)
		studentAPI.GET("/assignments/:id/submission", handlers.Assignment.MySubmission)
		studentAPI.POST("/assignments/:id/submit", handlers.Assignment.Submit)
		studentAPI.GET("/grades", handlers.Gradebook.MyGrades)
		studentAPI.GET("/fees", handlers.Fee.MyFees)
		studentAPI.POST("/fees/:id/payments", handlers.Fee.RecordPayment)
		studentAPI.POST("/courses/:id/tutor", handlers.Tutor.Ask)
	}

	// ─── 4. WebSocket Group (Student WS Auth) ──────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireStudentWSAuth(authService))
	{
		ws.GET("/student/courses/:id/tutor", handlers.Tutor.TutorStream)
	}

	// ─── 5. Teacher Group ──────────────────────────────────────────────
	teacherAPI := router.Group("/api/v1/teacher")
	teacherAPI.Use(middleware.RequireTeacherJWT(authService))
	{
		teacherAPI.GET("/dashboard", handlers.Dashboard.TeacherDashboard)

		teacherAPI.POST("/courses", handlers.Course.CreateCourse)
		teacherAPI.PUT("/courses/:id", handlers.Course.UpdateCourse)
		teacherAPI.POST("/courses/:id/materials", handlers.Course.AddMaterial)
		teacherAPI.POST("/courses/:id/announcements", handlers.Course.PostAnnouncement)
		teacherAPI.POST("/courses/:id/enrollments", handlers.Course.EnrollStudent)
		teacherAPI.DELETE("/courses/:id/enrollments/:student_id", handlers.Course.UnenrollStudent)
		teacherAPI.GET("/courses/:id/gradebook", handlers.Gradebook.CourseGradebook)

		teacherAPI.POST("/assignments", handlers.Assignment.CreateAssignment)
		teacherAPI.PUT("/assignments/:id", handlers.Assignment.UpdateAssignment)
		teacherAPI.DELETE("/assignments/:id", handlers.Assignment.DeleteAssignment)
		teacherAPI.GET("/assignments/:id/submissions", handlers.Assignment.ListSubmissions)
		teacherAPI.POST("/assignments/:id/grade", handlers.Assignment.GradeSubmission)
	}

	// ─── 6. Admin Group ────────────────────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		adminAPI.GET("/dashboard", handlers.Dashboard.AdminDashboard)

		adminAPI.GET("/users", handlers.User.ListUsers)
		adminAPI.POST("/users", handlers.User.CreateUser)
		adminAPI.GET("/users/:id", handlers.User.GetUser)
		adminAPI.PUT("/users/:id", handlers.User.UpdateUser)
		adminAPI.DELETE("/users/:id", handlers.User.DeleteUser)

		adminAPI.DELETE("/courses/:id", handlers.Course.DeleteCourse)

		adminAPI.GET("/fees", handlers.Fee.ListFees)
		adminAPI.POST("/fees", handlers.Fee.CreateFee)
		adminAPI.GET("/students/:id/fees", handlers.Fee.StudentFees)
	}

	return router
}
