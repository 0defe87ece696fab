package controller

import (
	"lechemin_backend/internal/model"
	"lechemin_backend/internal/service"
	"lechemin_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// QuizController exposes the never-failing quiz/roadmap operations: the
// remote generation path with its deterministic local fallback. An empty
// question list from /quiz/next tells the client to request the roadmap.
type QuizController struct {
	RoadmapService *service.RoadmapService
}

func NewQuizController(roadmapService *service.RoadmapService) *QuizController {
	return &QuizController{RoadmapService: roadmapService}
}

type quizStartRequest struct {
	Goal string `json:"goal" binding:"required"`
}

type quizStateRequest struct {
	Goal    string          `json:"goal" binding:"required"`
	Answers model.AnswerMap `json:"answers"`
}

func (c *QuizController) Start(ctx *gin.Context) {
	var req quizStartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "goal is required")
		return
	}

	questions := c.RoadmapService.StartQuiz(ctx.Request.Context(), req.Goal)
	util.Success(ctx, questions)
}

func (c *QuizController) Next(ctx *gin.Context) {
	var req quizStateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "goal is required")
		return
	}

	questions := c.RoadmapService.NextQuestions(ctx.Request.Context(), req.Goal, req.Answers)
	if questions == nil {
		questions = []model.QuizQuestion{}
	}
	util.Success(ctx, questions)
}

func (c *QuizController) GenerateRoadmap(ctx *gin.Context) {
	var req quizStateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "goal is required")
		return
	}

	roadmap := c.RoadmapService.RequestRoadmap(ctx.Request.Context(), req.Goal, req.Answers)
	util.Success(ctx, roadmap)
}
