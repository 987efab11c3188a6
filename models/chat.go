package models

import "time"

// Chat roles for stylist conversation turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn in the stylist conversation. The transcript is
// append-only for the session's lifetime.
type ChatMessage struct {
	Role       string    `json:"role"`
	Text       string    `json:"text"`
	IsThinking bool      `json:"is_thinking,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ChatRequest is the body of a stylist chat call.
type ChatRequest struct {
	Message string `json:"message" binding:"required" example:"I need a dress for a summer wedding"`
}

// ChatResult is the payload returned after a stylist exchange.
type ChatResult struct {
	SessionID string      `json:"session_id"`
	Reply     ChatMessage `json:"reply"`
	Messages  int         `json:"messages"`
}
