package controller

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"lechemin_backend/internal/config"
	"lechemin_backend/internal/model"
	"lechemin_backend/internal/service"
	"lechemin_backend/internal/util"
	"lechemin_backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// AIController is the generation endpoint. It speaks its own wire contract:
// every error body is {"error": string}, success bodies are the validated
// payload verbatim with Cache-Control: no-store.
type AIController struct {
	Gen service.Generator
	Cfg *config.Config
}

func NewAIController(gen service.Generator, cfg *config.Config) *AIController {
	return &AIController{Gen: gen, Cfg: cfg}
}

type generateRequest struct {
	Goal    string          `json:"goal"`
	Answers model.AnswerMap `json:"answers"`
	Action  string          `json:"action"`
}

func (c *AIController) Generate(ctx *gin.Context) {
	origin := ctx.GetHeader("Origin")
	if !security.OriginAllowed(origin, c.Cfg.CORS.AllowedOrigins) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Forbidden origin"})
		return
	}

	if c.Cfg.AI.RequireAuth && util.GetUserFromContext(ctx) == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if !c.Gen.Enabled() {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server not configured"})
		return
	}

	var req generateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	goal := strings.TrimSpace(req.Goal)
	if n := utf8.RuneCountInString(goal); n < 3 || n > 200 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goal"})
		return
	}

	action := service.ParseAction(req.Action)

	raw, err := c.Gen.Generate(ctx.Request.Context(), goal, req.Answers, action)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUpstreamTimeout):
			ctx.JSON(http.StatusGatewayTimeout, gin.H{"error": "Upstream timeout"})
		case errors.Is(err, util.ErrInvalidModelJSON):
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "Invalid JSON from model"})
		case errors.Is(err, util.ErrFailedValidation):
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "Response failed validation"})
		case errors.Is(err, util.ErrUpstream):
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "Upstream error"})
		case errors.Is(err, util.ErrNotConfigured):
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server not configured"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		}
		return
	}

	ctx.Header("Cache-Control", "no-store")
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}
