package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dsntech/dsnpass-go/internal/assistant"
	"github.com/dsntech/dsnpass-go/internal/middleware"
	"github.com/dsntech/dsnpass-go/internal/model"
	"github.com/dsntech/dsnpass-go/internal/service"
)

type memMessages struct {
	msgs []model.ChatMessage
}

func (m *memMessages) Append(_ context.Context, msgs ...model.ChatMessage) error {
	m.msgs = append(m.msgs, msgs...)
	return nil
}

func (m *memMessages) ListByUser(_ context.Context, userID int64, _ int) ([]model.ChatMessage, error) {
	var out []model.ChatMessage
	for _, msg := range m.msgs {
		if msg.UserID == userID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *memMessages) DeleteByUser(_ context.Context, userID int64) (int64, error) {
	n := len(m.msgs)
	m.msgs = nil
	return int64(n), nil
}

func authed(method, path, body string, userID int64) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

func TestChatHandler(t *testing.T) {
	p := assistant.ProviderFunc(func(_ context.Context, text string) (string, error) {
		return "Tumia nenosiri refu.", nil
	})
	h := NewChatHandler(service.NewChatService(p, &memMessages{}, assistant.NewGuard(), nil))

	rec := httptest.NewRecorder()
	h.HandleSend(rec, authed(http.MethodPost, "/api/v1/chat", `{"message": "Nenosiri bora ni lipi?"}`, 7))
	if rec.Code != http.StatusOK {
		t.Fatalf("send status = %d, body %s", rec.Code, rec.Body)
	}
	var sent model.ChatResponse
	json.NewDecoder(rec.Body).Decode(&sent)
	if sent.Message.Role != model.RoleModel || sent.Message.Text != "Tumia nenosiri refu." {
		t.Errorf("unexpected reply %+v", sent.Message)
	}

	rec = httptest.NewRecorder()
	h.HandleTranscript(rec, authed(http.MethodGet, "/api/v1/chat", "", 7))
	var transcript model.TranscriptResponse
	json.NewDecoder(rec.Body).Decode(&transcript)
	if len(transcript.Messages) != 3 || transcript.Messages[0].ID != "welcome" {
		t.Errorf("unexpected transcript %+v", transcript.Messages)
	}

	rec = httptest.NewRecorder()
	h.HandleClear(rec, authed(http.MethodDelete, "/api/v1/chat", "", 7))
	if rec.Code != http.StatusNoContent {
		t.Errorf("clear status = %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.HandleSend(rec, authed(http.MethodPost, "/api/v1/chat", `{"message": "   "}`, 7))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty message status = %d, want 400", rec.Code)
	}
}

func TestChatHandler_ProviderFailureIsNotAnHTTPError(t *testing.T) {
	p := assistant.ProviderFunc(func(context.Context, string) (string, error) {
		return "", errors.New("upstream down")
	})
	h := NewChatHandler(service.NewChatService(p, &memMessages{}, assistant.NewGuard(), nil))

	rec := httptest.NewRecorder()
	h.HandleSend(rec, authed(http.MethodPost, "/api/v1/chat", `{"message": "hi"}`, 1))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp model.ChatResponse
	json.NewDecoder(rec.Body).Decode(&resp)
	if !resp.Message.IsError {
		t.Errorf("expected error-flagged reply, got %+v", resp.Message)
	}
}

func TestChatHandler_Busy(t *testing.T) {
	guard := assistant.NewGuard()
	release, err := guard.Acquire("chat:3")
	if err != nil {
		t.Fatalf("Acquire() unexpected error: %v", err)
	}
	defer release()

	h := NewChatHandler(service.NewChatService(assistant.ProviderFunc(func(context.Context, string) (string, error) {
		return "never", nil
	}), &memMessages{}, guard, nil))

	rec := httptest.NewRecorder()
	h.HandleSend(rec, authed(http.MethodPost, "/api/v1/chat", `{"message": "hi"}`, 3))
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestChatHandler_Unauthenticated(t *testing.T) {
	h := NewChatHandler(service.NewChatService(nil, &memMessages{}, assistant.NewGuard(), nil))
	rec := httptest.NewRecorder()
	h.HandleSend(rec, httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"hi"}`)))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSuggestHandler(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		replyErr   error
		body       string
		wantStatus int
	}{
		{
			name:       "ok",
			reply:      `[{"password": "Xy7!Xy7!Xy7!Xy7!", "type": "High Entropy", "explanation": "random"}]`,
			body:       `{"length": 16}`,
			wantStatus: http.StatusOK,
		},
		{name: "empty body uses defaults", reply: `[{"password": "abc", "type": "Phonetic"}]`, wantStatus: http.StatusOK},
		{name: "invalid length", body: `{"length": 1000}`, wantStatus: http.StatusBadRequest},
		{name: "provider down", replyErr: errors.New("quota"), body: `{}`, wantStatus: http.StatusBadGateway},
		{name: "malformed reply", reply: "sorry, I can't", body: `{}`, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := assistant.ProviderFunc(func(context.Context, string) (string, error) {
				return tt.reply, tt.replyErr
			})
			h := NewSuggestHandler(service.NewSuggestService(p, assistant.NewGuard(), nil))

			rec := httptest.NewRecorder()
			h.HandleSuggest(rec, authed(http.MethodPost, "/api/v1/suggest", tt.body, 1))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body)
			}
			if tt.wantStatus == http.StatusOK {
				var resp model.SuggestResponse
				json.NewDecoder(rec.Body).Decode(&resp)
				if len(resp.Suggestions) == 0 || resp.Suggestions[0].Strength.Label == "" {
					t.Errorf("unexpected suggestions %+v", resp.Suggestions)
				}
			}
		})
	}
}
