package handler

import (
	"errors"
	"net/http"

	"github.com/dsntech/dsnpass-go/internal/assistant"
	"github.com/dsntech/dsnpass-go/internal/model"
	"github.com/dsntech/dsnpass-go/internal/service"
)

// SuggestHandler handles HTTP requests for AI password suggestions.
type SuggestHandler struct {
	service *service.SuggestService
}

// NewSuggestHandler creates a new SuggestHandler.
func NewSuggestHandler(svc *service.SuggestService) *SuggestHandler {
	return &SuggestHandler{service: svc}
}

// HandleSuggest handles POST /api/v1/suggest requests.
func (h *SuggestHandler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req model.GenerateRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Suggest(r.Context(), userID, req)
	if err != nil {
		switch {
		case isValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, assistant.ErrBusy):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		case errors.Is(err, service.ErrAssistantUnavailable):
			writeJSON(w, http.StatusBadGateway, errorResponse(service.ErrAssistantUnavailable.Error()))
		case errors.Is(err, service.ErrMalformedSuggestions):
			writeJSON(w, http.StatusBadGateway, errorResponse(service.ErrMalformedSuggestions.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
