package controller

import (
	"lechemin_backend/internal/model"
	"lechemin_backend/internal/service"
	"lechemin_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

func parseProgressType(s string) (model.ProgressType, bool) {
	switch model.ProgressType(s) {
	case model.ProgressSkill:
		return model.ProgressSkill, true
	case model.ProgressResource:
		return model.ProgressResource, true
	}
	return "", false
}

func (c *ProgressController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.ProgressService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"records": records,
		"notices": c.ProgressService.Notices(claims.UserID),
	})
}

type toggleRequest struct {
	ModuleID  string `json:"module_id" binding:"required"`
	Type      string `json:"type" binding:"required"`
	Key       string `json:"key" binding:"required"`
	Completed bool   `json:"completed"`
}

func (c *ProgressController) Toggle(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req toggleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "module_id, type and key are required")
		return
	}

	ptype, ok := parseProgressType(req.Type)
	if !ok {
		util.BadRequest(ctx, "type must be skill or resource")
		return
	}

	result := c.ProgressService.Toggle(claims.UserID, req.ModuleID, ptype, req.Key, req.Completed)
	util.Success(ctx, result)
}

type toggleAllRequest struct {
	ModuleID  string   `json:"module_id" binding:"required"`
	Type      string   `json:"type" binding:"required"`
	Keys      []string `json:"keys" binding:"required"`
	Completed bool     `json:"completed"`
}

func (c *ProgressController) ToggleAll(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req toggleAllRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "module_id, type and keys are required")
		return
	}

	ptype, ok := parseProgressType(req.Type)
	if !ok {
		util.BadRequest(ctx, "type must be skill or resource")
		return
	}

	result := c.ProgressService.ToggleAll(claims.UserID, req.ModuleID, ptype, req.Keys, req.Completed)
	util.Success(ctx, result)
}
