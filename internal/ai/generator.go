// Package ai holds the optional OpenAI-backed fallback generator, used when
// no catalog keyword matches an idea. It is best-effort: any failure here
// sends the caller back to the default template.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"promptforge/internal/catalog"
)

const fallbackPromptTemplate = `Generate a complete full-stack web application for this idea: "%s"

Return a JSON object with these fields:
- frontend_code: Complete React + Vite app code with all files (App.jsx, package.json, etc.)
- backend_code: Complete FastAPI Python code with all routes
- database_schema: Supabase PostgreSQL schema with tables
- deploy_instructions: Step-by-step deployment guide for Netlify + Render + Supabase

Make the code production-ready, well-commented, and include modern UI styling similar to Cursor/Windsurf dark theme.`

const systemPrompt = "You are an expert full-stack developer who generates complete, production-ready web applications."

type Generator struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewGenerator(apiKey, model string, logger *zap.Logger) *Generator {
	if model == "" {
		model = openai.GPT4
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}
}

// generatedApp mirrors the JSON object the model is asked to produce.
type generatedApp struct {
	FrontendCode       string `json:"frontend_code"`
	BackendCode        string `json:"backend_code"`
	DatabaseSchema     string `json:"database_schema"`
	DeployInstructions string `json:"deploy_instructions"`
}

// GenerateApp asks the model for a full artifact set for the given idea.
func (g *Generator) GenerateApp(ctx context.Context, idea string) (catalog.Artifacts, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(fallbackPromptTemplate, idea)},
		},
		Temperature: 0.7,
		MaxTokens:   4000,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil && shouldRetry(err) {
		g.logger.Warn("openai call failed, retrying once", zap.Error(err))
		time.Sleep(2 * time.Second)
		resp, err = g.client.CreateChatCompletion(ctx, req)
	}
	if err != nil {
		return catalog.Artifacts{}, fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return catalog.Artifacts{}, errors.New("openai returned empty response")
	}

	app, err := parseResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return catalog.Artifacts{}, err
	}

	return catalog.Artifacts{
		Frontend: app.FrontendCode,
		Backend:  app.BackendCode,
		Database: app.DatabaseSchema,
		Deploy:   app.DeployInstructions,
	}, nil
}

// parseResponse strips an optional markdown fence and decodes the app JSON.
func parseResponse(content string) (*generatedApp, error) {
	cleaned := strings.TrimSpace(content)
	if idx := strings.Index(cleaned, "```json"); idx != -1 {
		cleaned = cleaned[idx+len("```json"):]
		if end := strings.Index(cleaned, "```"); end != -1 {
			cleaned = cleaned[:end]
		}
	}
	cleaned = strings.TrimSpace(cleaned)

	var app generatedApp
	if err := json.Unmarshal([]byte(cleaned), &app); err != nil {
		return nil, fmt.Errorf("parse model output: %w", err)
	}
	if app.FrontendCode == "" && app.BackendCode == "" {
		return nil, errors.New("model output contained no code")
	}
	return &app, nil
}

// shouldRetry reports whether an OpenAI error looks transient.
func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode >= 500 || apiErr.HTTPStatusCode == 429
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "connection reset by peer")
}
