package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"promptforge/internal/deploy"
	"promptforge/internal/engine"
)

// APIHandler holds dependencies for HTTP handlers.
type APIHandler struct {
	svc    *engine.Service
	logger *zap.Logger
}

func NewAPIHandler(svc *engine.Service, logger *zap.Logger) *APIHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &APIHandler{svc: svc, logger: logger}
}

// GenerateRequest is the request body for POST /api/generate.
type GenerateRequest struct {
	Idea string `json:"idea" binding:"required"`
}

// GenerateResponse is the response body for a successful generation.
type GenerateResponse struct {
	AppName            string `json:"appName"`
	Idea               string `json:"idea"`
	FrontendCode       string `json:"frontendCode"`
	BackendCode        string `json:"backendCode"`
	DatabaseSchema     string `json:"databaseSchema"`
	DeployInstructions string `json:"deployInstructions"`
	DeploymentStatus   string `json:"deploymentStatus"`
	LiveURL            string `json:"liveUrl,omitempty"`
	DeploymentError    string `json:"deploymentError,omitempty"`
}

// Generate handles POST /api/generate. A blank or missing idea is a 400;
// everything else, including a failed deployment, is a 200 with the full
// artifact set.
func (h *APIHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idea is required"})
		return
	}

	result, err := h.svc.Generate(c.Request.Context(), req.Idea)
	if err != nil {
		if errors.Is(err, engine.ErrBlankIdea) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "idea must not be blank"})
			return
		}
		h.logger.Error("generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := GenerateResponse{
		AppName:            result.AppName,
		Idea:               result.Idea,
		FrontendCode:       result.Artifacts.Frontend,
		BackendCode:        result.Artifacts.Backend,
		DatabaseSchema:     result.Artifacts.Database,
		DeployInstructions: result.Artifacts.Deploy,
		DeploymentStatus:   string(result.Deployment.Status),
	}
	switch result.Deployment.Status {
	case deploy.StatusDeployed:
		resp.LiveURL = result.Deployment.URL
	case deploy.StatusFailed:
		resp.DeploymentError = result.Deployment.Reason
	}

	c.JSON(http.StatusOK, resp)
}

// Health handles GET /api/health.
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "service": "promptforge-backend"})
}
