package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dsntech/dsnpass-go/internal/assistant"
	"github.com/dsntech/dsnpass-go/internal/metrics"
	"github.com/dsntech/dsnpass-go/internal/model"
	"github.com/dsntech/dsnpass-go/internal/password"
)

const suggestPrompt = `Generate 3 distinct, highly secure password variations based on these constraints:
- Length: %d
- Include Uppercase: %t
- Include Numbers: %t
- Include Symbols: %t

1. One should be 'Phonetic' (pronounceable but complex).
2. One should be 'High Entropy' (completely random distribution).
3. One should be 'Pattern-Free' (avoids common keyboard walks).

Ensure they strictly follow the length constraint.
Reply with a JSON array of objects with the string fields "password", "type" and "explanation".`

var (
	ErrAssistantUnavailable = errors.New("assistant is unavailable, please try again")
	ErrMalformedSuggestions = errors.New("assistant returned malformed suggestions")
)

// SuggestService asks the assistant for password variations.
type SuggestService struct {
	provider assistant.Provider
	guard    *assistant.Guard
	metrics  *metrics.Metrics
}

// NewSuggestService creates a new SuggestService.
func NewSuggestService(p assistant.Provider, guard *assistant.Guard, m *metrics.Metrics) *SuggestService {
	return &SuggestService{provider: p, guard: guard, metrics: m}
}

// SuggestPrompt renders the prompt sent for cfg.
func SuggestPrompt(cfg password.Config) string {
	return fmt.Sprintf(suggestPrompt, cfg.Length, cfg.Uppercase, cfg.Numbers, cfg.Symbols)
}

// Suggest returns the assistant's variations for req, each scored locally.
func (s *SuggestService) Suggest(ctx context.Context, userID int64, req model.GenerateRequest) (model.SuggestResponse, error) {
	cfg, err := configFromRequest(req)
	if err != nil {
		s.metrics.ObserveAssistant("suggest", metrics.OutcomeBadInput, 0)
		return model.SuggestResponse{}, err
	}

	release, err := s.guard.Acquire("suggest:" + strconv.FormatInt(userID, 10))
	if err != nil {
		s.metrics.ObserveAssistant("suggest", metrics.OutcomeBusy, 0)
		return model.SuggestResponse{}, err
	}
	defer release()

	start := time.Now()
	raw, err := s.provider.SendPrompt(ctx, SuggestPrompt(cfg))
	took := time.Since(start)
	if err != nil {
		slog.Error("assistant suggest failed", "user_id", userID, "error", err)
		s.metrics.ObserveAssistant("suggest", metrics.OutcomeError, took)
		return model.SuggestResponse{}, fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
	}

	suggestions, err := parseSuggestions(raw)
	if err != nil {
		slog.Error("assistant suggest reply unusable", "user_id", userID, "error", err)
		s.metrics.ObserveAssistant("suggest", metrics.OutcomeError, took)
		return model.SuggestResponse{}, err
	}

	s.metrics.ObserveAssistant("suggest", metrics.OutcomeOK, took)
	return model.SuggestResponse{Suggestions: suggestions}, nil
}

// parseSuggestions decodes the model's JSON array, tolerating a Markdown code fence.
func parseSuggestions(raw string) ([]model.Suggestion, error) {
	body := strings.TrimSpace(raw)
	if strings.HasPrefix(body, "```") {
		body = strings.TrimPrefix(body, "```json")
		body = strings.TrimPrefix(body, "```")
		body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	}

	var items []struct {
		Password    string `json:"password"`
		Type        string `json:"type"`
		Explanation string `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(body), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSuggestions, err)
	}

	out := make([]model.Suggestion, 0, len(items))
	for _, it := range items {
		if it.Password == "" {
			continue
		}
		out = append(out, model.Suggestion{
			Password:    it.Password,
			Type:        it.Type,
			Explanation: it.Explanation,
			Strength:    strengthResponse(password.ScoreStrength(it.Password)),
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no passwords", ErrMalformedSuggestions)
	}
	return out, nil
}
