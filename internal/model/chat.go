package model

import "time"

// Chat roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is one entry of a user's chat transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"-"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	IsError   bool      `json:"is_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatRequest carries the user's next message.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Message ChatMessage `json:"message"`
}

// TranscriptResponse is the full conversation, oldest first.
type TranscriptResponse struct {
	Messages []ChatMessage `json:"messages"`
}
