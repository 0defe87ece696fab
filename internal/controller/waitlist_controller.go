package controller

import (
	"lechemin_backend/internal/service"
	"lechemin_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type WaitlistController struct {
	WaitlistService *service.WaitlistService
}

func NewWaitlistController(waitlistService *service.WaitlistService) *WaitlistController {
	return &WaitlistController{WaitlistService: waitlistService}
}

type waitlistRequest struct {
	Email string `json:"email" binding:"required"`
	Topic string `json:"topic"`
}

func (c *WaitlistController) Join(ctx *gin.Context) {
	var req waitlistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "email is required")
		return
	}

	switch c.WaitlistService.Join(req.Email, req.Topic) {
	case service.WaitlistOK, service.WaitlistDuplicate:
		// A resubmission is a success from the user's point of view.
		util.Success(ctx, gin.H{"ok": true})
	case service.WaitlistInvalidEmail:
		util.BadRequest(ctx, "invalid email")
	case service.WaitlistInvalidTopic:
		util.BadRequest(ctx, "invalid topic")
	default:
		util.InternalServerError(ctx)
	}
}
