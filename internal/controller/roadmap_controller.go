package controller

import (
	"errors"

	"lechemin_backend/internal/model"
	"lechemin_backend/internal/service"
	"lechemin_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// RoadmapController manages the user's saved roadmaps.
type RoadmapController struct {
	Library *service.RoadmapLibraryService
}

func NewRoadmapController(library *service.RoadmapLibraryService) *RoadmapController {
	return &RoadmapController{Library: library}
}

func (c *RoadmapController) Save(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var roadmap model.SkillsRoadmap
	if err := ctx.ShouldBindJSON(&roadmap); err != nil {
		util.BadRequest(ctx, "invalid roadmap payload")
		return
	}
	if roadmap.Topic == "" || len(roadmap.Competencies) == 0 {
		util.BadRequest(ctx, "invalid roadmap payload")
		return
	}

	id, err := c.Library.Save(claims.UserID, roadmap)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"id": id})
}

func (c *RoadmapController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	roadmaps, err := c.Library.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, roadmaps)
}

func (c *RoadmapController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	roadmap, err := c.Library.Get(ctx.Param("id"), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrRoadmapNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, roadmap)
}
