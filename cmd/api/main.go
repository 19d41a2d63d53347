package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/dsntech/dsnpass-go/internal/assistant"
	"github.com/dsntech/dsnpass-go/internal/config"
	"github.com/dsntech/dsnpass-go/internal/crypto"
	"github.com/dsntech/dsnpass-go/internal/handler"
	"github.com/dsntech/dsnpass-go/internal/metrics"
	"github.com/dsntech/dsnpass-go/internal/middleware"
	"github.com/dsntech/dsnpass-go/internal/repository"
	"github.com/dsntech/dsnpass-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	m := metrics.New()

	genService := service.NewGeneratorService(m)
	genHandler := handler.NewGeneratorHandler(genService)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(m))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())

	r.Post("/api/v1/generate", genHandler.HandleGenerate)
	r.Post("/api/v1/strength", genHandler.HandleStrength)
	r.Post("/api/v1/export", genHandler.HandleExport)
	r.Get("/api/v1/advice", handler.HandleAdvice)
	r.Get("/api/v1/about", handler.HandleAbout)

	// Accounts and the assistant need the database.
	startCtx, cancelStart := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := repository.NewDB(startCtx, cfg.DatabaseDSN)
	cancelStart()
	if err != nil {
		slog.Warn("database connection failed, auth and assistant routes disabled", "error", err)
	} else {
		defer db.Close()

		tokens := crypto.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)
		userRepo := repository.NewUserRepository(db)
		authService := service.NewAuthService(userRepo, crypto.NewHasher(), tokens)
		authHandler := handler.NewAuthHandler(authService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(tokens))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)

			if !cfg.AssistantEnabled() {
				slog.Warn("GEMINI_API_KEY not set, assistant routes disabled")
				return
			}

			guard := assistant.NewGuard()
			chatClient := assistant.NewGeminiClient("chat", cfg.GeminiAPIKey, cfg.AssistantTimeout,
				assistant.WithModel(cfg.GeminiModel),
				assistant.WithBaseURL(cfg.GeminiBaseURL),
				assistant.WithSystemInstruction(service.ChatSystemInstruction),
			)
			suggestClient := assistant.NewGeminiClient("suggest", cfg.GeminiAPIKey, cfg.AssistantTimeout,
				assistant.WithModel(cfg.GeminiModel),
				assistant.WithBaseURL(cfg.GeminiBaseURL),
				assistant.WithJSONResponse(),
			)

			chatHandler := handler.NewChatHandler(
				service.NewChatService(chatClient, repository.NewMessageRepository(db), guard, m))
			suggestHandler := handler.NewSuggestHandler(
				service.NewSuggestService(suggestClient, guard, m))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RateLimitBy(cfg.AssistantRPS, cfg.AssistantBurst, middleware.ByUser))
				r.Get("/api/v1/chat", chatHandler.HandleTranscript)
				r.Post("/api/v1/chat", chatHandler.HandleSend)
				r.Delete("/api/v1/chat", chatHandler.HandleClear)
				r.Post("/api/v1/suggest", suggestHandler.HandleSuggest)
			})
		})
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "model", cfg.GeminiModel)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
