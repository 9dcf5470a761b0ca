package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/opencampus/campus-backend/internal/middleware"
	"github.com/opencampus/campus-backend/internal/response"
	"github.com/opencampus/campus-backend/internal/service"
	"github.com/opencampus/campus-backend/internal/validator"
	ws "github.com/opencampus/campus-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// TutorHandler handles the course-scoped AI tutor, over plain HTTP and
// over a WebSocket stream.
type TutorHandler struct {
	tutorService *service.TutorService
	userService  *service.UserService
	log          zerolog.Logger
	upgrader     websocket.Upgrader
}

// NewTutorHandler creates a new TutorHandler.
func NewTutorHandler(tutorService *service.TutorService, userService *service.UserService, log zerolog.Logger, allowedOrigins []string) *TutorHandler {
	return &TutorHandler{
		tutorService: tutorService,
		userService:  userService,
		log:          log.With().Str("component", "tutor_handler").Logger(),
		upgrader:     buildUpgrader(allowedOrigins),
	}
}

// AskRequest is the HTTP payload for a one-shot tutor question.
type AskRequest struct {
	Question string                `json:"question" binding:"required,min=1,max=4000"`
	History  []service.ChatMessage `json:"history" binding:"omitempty,dive"`
}

// Ask godoc
// POST /api/v1/student/courses/:id/tutor
// One-shot question and answer, with the conversation history carried by
// the client.
func (h *TutorHandler) Ask(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req AskRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	claims := middleware.GetClaims(c)
	if !h.enrolled(c, claims.UserID, courseID) {
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
		return
	}

	messages := append(req.History, service.ChatMessage{Role: "user", Content: req.Question})
	answer, err := h.tutorService.Ask(c.Request.Context(), courseID, messages)
	if err != nil {
		if service.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		h.log.Error().Err(err).Int("course_id", courseID).Msg("tutor upstream failed")
		response.Fail(c, http.StatusBadGateway, response.ErrTutorUnavailable)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"answer": answer})
}

// TutorStream godoc
// WS /ws/v1/student/courses/:id/tutor?token=...
// Upgrades to a WebSocket for a back-and-forth tutor conversation.
func (h *TutorHandler) TutorStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course ID"})
		return
	}

	if !h.enrolled(c, claims.UserID, courseID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not enrolled in this course"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().
		Str("student_id", claims.UserID).
		Int("course_id", courseID).
		Logger()

	wsLog.Info().Msg("Student connected to tutor")

	for {
		var msg ws.AskRequest
		if err := ws.ReadJSON(conn, &msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			} else {
				wsLog.Debug().Msg("Connection closed")
			}
			break
		}

		switch msg.Action {
		case ws.ActionPing:
			_ = ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong})
		case ws.ActionAsk:
			if msg.Question == "" {
				_ = ws.WriteError(conn, "question is required")
				continue
			}
			messages := make([]service.ChatMessage, 0, len(msg.History)+1)
			for _, turn := range msg.History {
				messages = append(messages, service.ChatMessage{Role: turn.Role, Content: turn.Content})
			}
			messages = append(messages, service.ChatMessage{Role: "user", Content: msg.Question})

			answer, err := h.tutorService.Ask(c.Request.Context(), courseID, messages)
			if err != nil {
				wsLog.Error().Err(err).Msg("tutor upstream failed")
				_ = ws.WriteError(conn, "the tutor is currently unavailable")
				continue
			}
			_ = ws.WriteTyped(conn, ws.AnswerResponse{Event: ws.EventAnswer, Answer: answer})
		default:
			_ = ws.WriteError(conn, "unknown action")
		}
	}
}

func (h *TutorHandler) enrolled(c *gin.Context, userID string, courseID int) bool {
	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return false
	}
	return user.EnrolledIn(courseID)
}
