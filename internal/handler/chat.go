package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dsntech/dsnpass-go/internal/assistant"
	"github.com/dsntech/dsnpass-go/internal/model"
	"github.com/dsntech/dsnpass-go/internal/service"
)

// ChatHandler handles HTTP requests for the chat assistant.
type ChatHandler struct {
	service *service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// HandleSend handles POST /api/v1/chat requests.
func (h *ChatHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req model.ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Send(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage), errors.Is(err, service.ErrMessageTooLong):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, assistant.ErrBusy):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		default:
			slog.Error("chat failed", "user_id", userID, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleTranscript handles GET /api/v1/chat requests.
func (h *ChatHandler) HandleTranscript(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Transcript(r.Context(), userID)
	if err != nil {
		slog.Error("loading transcript failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleClear handles DELETE /api/v1/chat requests.
func (h *ChatHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.service.Clear(r.Context(), userID); err != nil {
		slog.Error("clearing transcript failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
