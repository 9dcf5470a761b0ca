package websocket

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionAsk  Action = "ask"
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// AskRequest is sent by the client to pose a question to the tutor.
// History carries the prior turns so the conversation stays stateless
// on the server.
type AskRequest struct {
	Action   Action        `json:"action"`
	Question string        `json:"question"`
	History  []HistoryTurn `json:"history"`
}

// HistoryTurn is one prior turn of the conversation.
type HistoryTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventError  Event = "error"
	EventAnswer Event = "answer"
	EventPong   Event = "pong"
)

// AnswerResponse carries the tutor's reply to a question.
type AnswerResponse struct {
	Event  Event  `json:"event"`
	Answer string `json:"answer"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
