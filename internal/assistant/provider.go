// Package assistant connects the app to a hosted generative-language model.
package assistant

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrBusy          = errors.New("a request of this kind is already in progress")
	ErrEmptyResponse = errors.New("model returned no text")
)

// Provider sends a prompt to a language model and returns its reply.
type Provider interface {
	SendPrompt(ctx context.Context, text string) (string, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, text string) (string, error)

// SendPrompt calls f.
func (f ProviderFunc) SendPrompt(ctx context.Context, text string) (string, error) {
	return f(ctx, text)
}

// Guard allows at most one in-flight request per key.
type Guard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewGuard creates an empty Guard.
func NewGuard() *Guard {
	return &Guard{inflight: make(map[string]struct{})}
}

// Acquire claims key. It returns ErrBusy if key is already held.
// The returned release func must be called exactly once.
func (g *Guard) Acquire(key string) (release func(), err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, held := g.inflight[key]; held {
		return nil, ErrBusy
	}
	g.inflight[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inflight, key)
			g.mu.Unlock()
		})
	}, nil
}
