package controller

import (
	"github.com/DmytroRudikov/Meduzzen-internship/internal/service"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"github.com/gin-gonic/gin"
)

type InviteController struct {
	InviteService *service.InviteService
}

func NewInviteController(inviteService *service.InviteService) *InviteController {
	return &InviteController{InviteService: inviteService}
}

func (c *InviteController) Create(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}
	companyID, ok := uintParam(ctx, "company_id")
	if !ok {
		return
	}

	var req service.CreateInviteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	invite, err := c.InviteService.Create(actorID, companyID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, invite)
}

func (c *InviteController) ListMine(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}

	invites, err := c.InviteService.ListForUser(actorID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, invites)
}

func (c *InviteController) ListForCompany(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}
	companyID, ok := uintParam(ctx, "company_id")
	if !ok {
		return
	}

	invites, err := c.InviteService.ListForCompany(actorID, companyID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, invites)
}

func (c *InviteController) Accept(ctx *gin.Context) {
	c.resolve(ctx, c.InviteService.Accept, "accepted")
}

func (c *InviteController) Decline(ctx *gin.Context) {
	c.resolve(ctx, c.InviteService.Decline, "declined")
}

func (c *InviteController) Cancel(ctx *gin.Context) {
	c.resolve(ctx, c.InviteService.Cancel, "cancelled")
}

func (c *InviteController) resolve(ctx *gin.Context, action func(actorID, inviteID uint) error, verb string) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}
	inviteID, ok := uintParam(ctx, "invite_id")
	if !ok {
		return
	}

	if err := action(actorID, inviteID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"invite_id": inviteID, "status": verb})
}
