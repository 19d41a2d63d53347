package service

import (
	"github.com/dsntech/dsnpass-go/internal/export"
	"github.com/dsntech/dsnpass-go/internal/metrics"
	"github.com/dsntech/dsnpass-go/internal/model"
	"github.com/dsntech/dsnpass-go/internal/password"
)

const defaultLength = 16

// GeneratorService handles password generation, scoring and export.
type GeneratorService struct {
	gen     *password.Generator
	metrics *metrics.Metrics
}

// NewGeneratorService creates a new GeneratorService backed by crypto/rand.
func NewGeneratorService(m *metrics.Metrics) *GeneratorService {
	return &GeneratorService{gen: password.NewGenerator(nil), metrics: m}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg, err := configFromRequest(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	pw, err := s.gen.Generate(cfg)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	strength := password.ScoreStrength(pw)
	s.metrics.ObserveGenerated(string(cfg.Mode), strength.Score)

	return model.GenerateResponse{
		Password: pw,
		Length:   len(pw),
		Mode:     string(cfg.Mode),
		Strength: strengthResponse(strength),
	}, nil
}

// Strength scores an arbitrary password.
func (s *GeneratorService) Strength(req model.StrengthRequest) model.StrengthResponse {
	return strengthResponse(password.ScoreStrength(req.Password))
}

// Export builds the text file for req. ok is false for an empty password.
func (s *GeneratorService) Export(req model.ExportRequest) (export.File, bool) {
	f, ok := export.New(req.Password, req.Filename)
	if ok {
		s.metrics.ObserveExport()
	}
	return f, ok
}

// configFromRequest applies the home screen defaults to missing fields.
func configFromRequest(req model.GenerateRequest) (password.Config, error) {
	mode, err := password.ParseMode(req.Mode)
	if err != nil {
		return password.Config{}, err
	}

	cfg := password.Config{
		Length:    intOrDefault(req.Length, defaultLength),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Uppercase: boolOrDefault(req.Uppercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
		Mode:      mode,
	}
	return cfg, cfg.Validate()
}

func strengthResponse(s password.Strength) model.StrengthResponse {
	return model.StrengthResponse{
		Score:   s.Score,
		Label:   string(s.Label),
		Message: s.Label.Message(),
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
