// Package inquiry answers free-text visitor questions with a generated reply
// and a call-to-action, degrading to canned answers when generation fails.
package inquiry

import (
	"context"
	"strconv"
	"strings"

	"github.com/cecoladevelopment/site-backend/internal/classifier"
	"github.com/cecoladevelopment/site-backend/internal/errors"
	"github.com/cecoladevelopment/site-backend/internal/generator"
	"github.com/cecoladevelopment/site-backend/internal/logger"
	"github.com/cecoladevelopment/site-backend/internal/metrics"
	"github.com/cecoladevelopment/site-backend/internal/models"
)

type Responder struct {
	generator generator.Generator
	logger    logger.Logger
}

// NewResponder returns a Responder. gen may be nil when no generation
// credential is configured; every request then fails with SERVICE_UNAVAILABLE.
func NewResponder(gen generator.Generator, log logger.Logger) *Responder {
	return &Responder{
		generator: gen,
		logger:    log.With(map[string]interface{}{"component": "inquiry"}),
	}
}

// Respond answers query. Generation failures never surface as errors: the
// query is classified with the raw-query table and a canned answer returned.
func (r *Responder) Respond(ctx context.Context, query string) (*models.InquiryResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.NewInvalidInputError("Missing query", "Please provide a question or problem description")
	}

	if r.generator == nil {
		r.logger.Error("generation credential missing", nil)
		return nil, errors.NewServiceUnavailableError("AI service not configured", "generation API key not set in environment variables")
	}

	r.logger.Info("answering inquiry", map[string]interface{}{
		"provider":    r.generator.Name(),
		"queryLength": len(query),
	})

	result := r.generator.Generate(ctx, query)
	if !result.Usable() {
		return r.fallback(query, result), nil
	}

	section := classifier.GeneratedText.Classify(result.Text)
	r.record(section, false)

	return &models.InquiryResponse{
		Success:  true,
		Response: result.Text,
		Section:  section,
		CTA:      models.NewCTA(section),
	}, nil
}

func (r *Responder) fallback(query string, result generator.Result) *models.InquiryResponse {
	metrics.GenerationFailures.WithLabelValues(r.generator.Name()).Inc()

	log := r.logger
	if result.Err != nil {
		log = log.WithError(result.Err)
	}
	log.Warn("generation unavailable, using keyword fallback", map[string]interface{}{
		"provider": r.generator.Name(),
	})

	rule := classifier.RawQuery.Match(query)
	r.record(rule.Section, true)

	return &models.InquiryResponse{
		Success:  true,
		Response: rule.Response,
		Section:  rule.Section,
		CTA:      models.NewCTA(rule.Section),
		Fallback: true,
	}
}

func (r *Responder) record(section models.Section, fallback bool) {
	metrics.InquiriesTotal.WithLabelValues(string(section), strconv.FormatBool(fallback)).Inc()
}
