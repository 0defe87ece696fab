package controller

import (
	"lechemin_backend/internal/service"
	"lechemin_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PathController struct {
	ContentService *service.ContentService
}

func NewPathController(contentService *service.ContentService) *PathController {
	return &PathController{ContentService: contentService}
}

func (c *PathController) ListPaths(ctx *gin.Context) {
	paths, err := c.ContentService.ListPaths(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, paths)
}

func (c *PathController) GetPath(ctx *gin.Context) {
	modules, err := c.ContentService.GetPath(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if len(modules) == 0 {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, modules)
}
