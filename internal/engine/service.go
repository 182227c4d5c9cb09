// Package engine implements the template selection and artifact assembly
// flow: match the idea against the catalog, derive an application name,
// substitute it into the selected template's artifacts, and optionally hand
// the frontend to a deployment provider.
package engine

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"promptforge/internal/catalog"
	"promptforge/internal/deploy"
	"promptforge/internal/metrics"
)

// ErrBlankIdea rejects requests whose idea text is empty after trimming.
// It is the only per-request error a generation can return.
var ErrBlankIdea = errors.New("idea must not be blank")

// Deployer publishes a generated frontend to an external static-hosting
// provider. Implementations convert every provider error into a Failed
// outcome rather than returning it.
type Deployer interface {
	Deploy(ctx context.Context, appName, frontend string) deploy.Outcome
}

// FallbackGenerator produces a full artifact set for ideas no catalog
// keyword matched. It is optional and best-effort.
type FallbackGenerator interface {
	GenerateApp(ctx context.Context, idea string) (catalog.Artifacts, error)
}

// Result is the full outcome of one generation request.
type Result struct {
	AppName    string
	Idea       string
	Artifacts  catalog.Artifacts
	Match      MatchResult
	Deployment deploy.Outcome
}

// Service orchestrates one generation per call. It holds no mutable state,
// so concurrent calls are safe.
type Service struct {
	catalog  *catalog.Catalog
	deployer Deployer          // nil when no deployment credential is configured
	fallback FallbackGenerator // nil when AI generation is not configured
	logger   *zap.Logger
}

func NewService(cat *catalog.Catalog, deployer Deployer, fallback FallbackGenerator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalog:  cat,
		deployer: deployer,
		fallback: fallback,
		logger:   logger,
	}
}

// Generate runs the full flow for one idea. Deployment failures degrade the
// Deployment field only; the artifacts are always returned.
func (s *Service) Generate(ctx context.Context, idea string) (*Result, error) {
	if strings.TrimSpace(idea) == "" {
		return nil, ErrBlankIdea
	}

	match := Match(idea, s.catalog)
	appName := DeriveName(idea)

	tmpl, ok := s.catalog.Get(match.TemplateID)
	if !ok {
		// Match is total over the catalog; this cannot happen.
		tmpl = s.catalog.Default()
	}
	raw := tmpl.Artifacts()
	source := match.TemplateID

	if match.Score == 0 && s.fallback != nil {
		generated, err := s.fallback.GenerateApp(ctx, idea)
		if err != nil {
			s.logger.Warn("ai fallback failed, using default template",
				zap.String("appName", appName),
				zap.Error(err))
		} else {
			raw = generated
			source = "ai"
			metrics.AIFallbacks.Inc()
		}
	}

	// AI output passes through the same substitution so the no-leftover
	// guarantee holds for every response.
	artifacts := Assemble(raw, appName)
	metrics.GenerationsTotal.WithLabelValues(source).Inc()

	outcome := deploy.NotAttempted()
	if s.deployer != nil {
		outcome = s.deployer.Deploy(ctx, appName, artifacts.Frontend)
	}
	metrics.DeploymentsTotal.WithLabelValues(string(outcome.Status)).Inc()

	s.logger.Info("generated app",
		zap.String("template", match.TemplateID),
		zap.Int("score", match.Score),
		zap.String("appName", appName),
		zap.String("source", source),
		zap.String("deploymentStatus", string(outcome.Status)))

	return &Result{
		AppName:    appName,
		Idea:       idea,
		Artifacts:  artifacts,
		Match:      match,
		Deployment: outcome,
	}, nil
}
