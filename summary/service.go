// Package summary produces a natural-language report of the inventory by prompting a
// text-generation service with the current item rows.
package summary

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/user/inventory-go/apperror"
	"github.com/user/inventory-go/config"
	"github.com/user/inventory-go/items"
)

// FallbackText is returned in place of a summary when generation fails.
const FallbackText = "Unable to generate insights at this time."

// Generation outcomes reported to the Recorder.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ItemLister is the read side of items.Store.
type ItemLister interface {
	List(ctx context.Context) ([]items.Item, error)
}

// Recorder observes generation calls.
type Recorder interface {
	ObserveGeneration(outcome string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveGeneration(string, time.Duration) {}

// Service runs the read, prompt, generate, sanitize pipeline.
type Service struct {
	items    ItemLister
	gen      Generator
	cfg      config.GenerationConfig
	recorder Recorder
	log      *zap.Logger
}

// NewService creates a new Service. recorder may be nil.
func NewService(lister ItemLister, gen Generator, cfg config.GenerationConfig, recorder Recorder, log *zap.Logger) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{items: lister, gen: gen, cfg: cfg, recorder: recorder, log: log}
}

// Summarize returns the cleaned report. Only a storage failure is an error; a generation
// failure is logged and answered with FallbackText.
func (s *Service) Summarize(ctx context.Context) (string, error) {
	list, err := s.items.List(ctx)
	if err != nil {
		return "", apperror.NewDatabaseError("Failed to fetch items.", err)
	}

	prompt := BuildPrompt(list, s.cfg.CurrencyName, s.cfg.CurrencySymbol)

	genCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.gen.Generate(genCtx, prompt)
	elapsed := time.Since(start)
	if err != nil {
		s.recorder.ObserveGeneration(OutcomeFailure, elapsed)
		s.log.Error("AI summary error",
			zap.Int("item_count", len(list)),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return FallbackText, nil
	}
	s.recorder.ObserveGeneration(OutcomeSuccess, elapsed)
	s.log.Debug("Summary generated", zap.Int("item_count", len(list)), zap.Duration("elapsed", elapsed))

	return Sanitize(text, s.cfg.CurrencySymbol), nil
}
