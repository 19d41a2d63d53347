package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dsntech/dsnpass-go/internal/assistant"
	"github.com/dsntech/dsnpass-go/internal/metrics"
	"github.com/dsntech/dsnpass-go/internal/model"
	"github.com/google/uuid"
)

const (
	// ChatSystemInstruction sets the assistant persona.
	ChatSystemInstruction = `You are "Dsn Ai", a helpful cybersecurity assistant created by Dsn Technology for the "Password Generator" app. ` +
		`Respond in Swahili (Kiswahili) by default. Be professional, concise, and educational about tech, security, and passwords.`

	welcomeText  = "Habari! Mimi ni Dsn Ai. Naweza kukusaidia vipi kuhusu usalama wa mtandao, manenosiri, au maswali mengine yoyote ya teknolojia?"
	fallbackText = "Samahani, sikuweza kuelewa hilo."
	retryText    = "Samahani, kuna tatizo la mtandao. Tafadhali jaribu tena."

	welcomeID = "welcome"

	maxMessageRunes = 4000
	maxReplyRunes   = 32000
	transcriptLimit = 200
)

var (
	ErrEmptyMessage   = errors.New("message is required")
	ErrMessageTooLong = errors.New("message is too long")
)

type messageStore interface {
	Append(ctx context.Context, msgs ...model.ChatMessage) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]model.ChatMessage, error)
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
}

// ChatService relays user messages to the assistant and keeps per-user transcripts.
type ChatService struct {
	provider assistant.Provider
	store    messageStore
	guard    *assistant.Guard
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewChatService creates a new ChatService.
func NewChatService(p assistant.Provider, store messageStore, guard *assistant.Guard, m *metrics.Metrics) *ChatService {
	return &ChatService{
		provider: p,
		store:    store,
		guard:    guard,
		metrics:  m,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Welcome is the greeting that opens every transcript. It is never stored.
func Welcome() model.ChatMessage {
	return model.ChatMessage{ID: welcomeID, Role: model.RoleModel, Text: welcomeText}
}

// Transcript returns the welcome message followed by the user's stored messages.
func (s *ChatService) Transcript(ctx context.Context, userID int64) (model.TranscriptResponse, error) {
	stored, err := s.store.ListByUser(ctx, userID, transcriptLimit)
	if err != nil {
		return model.TranscriptResponse{}, err
	}
	return model.TranscriptResponse{Messages: append([]model.ChatMessage{Welcome()}, stored...)}, nil
}

// Clear deletes the user's stored transcript.
func (s *ChatService) Clear(ctx context.Context, userID int64) error {
	n, err := s.store.DeleteByUser(ctx, userID)
	if err != nil {
		return err
	}
	slog.Info("chat transcript cleared", "user_id", userID, "messages", n)
	return nil
}

// Send relays text to the assistant and returns its reply. Upstream failures
// are not returned as errors: the reply is a model message flagged IsError
// carrying user-facing retry text.
func (s *ChatService) Send(ctx context.Context, userID int64, req model.ChatRequest) (model.ChatResponse, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		s.metrics.ObserveAssistant("chat", metrics.OutcomeBadInput, 0)
		return model.ChatResponse{}, ErrEmptyMessage
	}
	if len([]rune(text)) > maxMessageRunes {
		s.metrics.ObserveAssistant("chat", metrics.OutcomeBadInput, 0)
		return model.ChatResponse{}, ErrMessageTooLong
	}

	release, err := s.guard.Acquire("chat:" + strconv.FormatInt(userID, 10))
	if err != nil {
		s.metrics.ObserveAssistant("chat", metrics.OutcomeBusy, 0)
		return model.ChatResponse{}, err
	}
	defer release()

	userMsg := s.newMessage(userID, model.RoleUser, text)

	start := time.Now()
	replyText, err := s.provider.SendPrompt(ctx, text)
	took := time.Since(start)

	var reply model.ChatMessage
	switch {
	case err != nil:
		slog.Error("assistant chat failed", "user_id", userID, "error", err)
		s.metrics.ObserveAssistant("chat", metrics.OutcomeError, took)
		reply = s.newMessage(userID, model.RoleModel, retryText)
		reply.IsError = true
	case strings.TrimSpace(replyText) == "":
		s.metrics.ObserveAssistant("chat", metrics.OutcomeOK, took)
		reply = s.newMessage(userID, model.RoleModel, fallbackText)
	default:
		s.metrics.ObserveAssistant("chat", metrics.OutcomeOK, took)
		reply = s.newMessage(userID, model.RoleModel, truncateRunes(replyText, maxReplyRunes))
	}

	// Persisting is best effort; the reply is returned regardless.
	if err := s.store.Append(ctx, userMsg, reply); err != nil {
		slog.Warn("storing chat messages failed", "user_id", userID, "error", err)
	}

	return model.ChatResponse{Message: reply}, nil
}

func (s *ChatService) newMessage(userID int64, role, text string) model.ChatMessage {
	return model.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      role,
		Text:      text,
		CreatedAt: s.now(),
	}
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
