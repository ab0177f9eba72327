package controller

import (
	"github.com/DmytroRudikov/Meduzzen-internship/internal/service"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"github.com/gin-gonic/gin"
)

type MemberController struct {
	MemberService *service.MemberService
}

func NewMemberController(memberService *service.MemberService) *MemberController {
	return &MemberController{MemberService: memberService}
}

func (c *MemberController) List(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}
	companyID, ok := uintParam(ctx, "company_id")
	if !ok {
		return
	}

	members, err := c.MemberService.List(actorID, companyID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, members)
}

func (c *MemberController) AppointAdmin(ctx *gin.Context) {
	c.roleAction(ctx, c.MemberService.AppointAdmin)
}

func (c *MemberController) RemoveAdmin(ctx *gin.Context) {
	c.roleAction(ctx, c.MemberService.RemoveAdmin)
}

func (c *MemberController) Kick(ctx *gin.Context) {
	c.roleAction(ctx, c.MemberService.Kick)
}

func (c *MemberController) roleAction(ctx *gin.Context, action func(actorID, companyID, companyMemberID uint) error) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}
	companyID, ok := uintParam(ctx, "company_id")
	if !ok {
		return
	}
	companyMemberID, ok := uintParam(ctx, "member_id")
	if !ok {
		return
	}

	if err := action(actorID, companyID, companyMemberID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"company_member_id": companyMemberID})
}

func (c *MemberController) Leave(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}
	companyID, ok := uintParam(ctx, "company_id")
	if !ok {
		return
	}

	if err := c.MemberService.Leave(actorID, companyID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"left": companyID})
}
