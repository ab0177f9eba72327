package controller

import (
	"github.com/DmytroRudikov/Meduzzen-internship/internal/service"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
	MemberService    *service.MemberService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService, memberService *service.MemberService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService, MemberService: memberService}
}

func (c *AnalyticsController) MyRating(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}

	rating, err := c.AnalyticsService.OverallRating(actorID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"rating": rating})
}

func (c *AnalyticsController) MyRatingDynamics(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}

	points, err := c.AnalyticsService.MyRatingDynamics(actorID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, points)
}

func (c *AnalyticsController) MyQuizzesPassed(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}

	passages, err := c.AnalyticsService.QuizzesPassed(actorID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, passages)
}

func (c *AnalyticsController) MembersRatingDynamics(ctx *gin.Context) {
	companyID, ok := c.elevatedCompany(ctx)
	if !ok {
		return
	}

	points, err := c.AnalyticsService.MembersRatingDynamics(companyID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, points)
}

func (c *AnalyticsController) MemberRatingDynamics(ctx *gin.Context) {
	companyID, ok := c.elevatedCompany(ctx)
	if !ok {
		return
	}
	companyMemberID, ok := uintParam(ctx, "member_id")
	if !ok {
		return
	}

	points, err := c.AnalyticsService.MemberRatingDynamics(companyID, companyMemberID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, points)
}

func (c *AnalyticsController) MembersPassed(ctx *gin.Context) {
	companyID, ok := c.elevatedCompany(ctx)
	if !ok {
		return
	}

	passages, err := c.AnalyticsService.MembersPassed(companyID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, passages)
}

func (c *AnalyticsController) elevatedCompany(ctx *gin.Context) (uint, bool) {
	actorID, ok := actor(ctx)
	if !ok {
		return 0, false
	}
	companyID, ok := uintParam(ctx, "company_id")
	if !ok {
		return 0, false
	}
	if _, err := c.MemberService.RequireElevated(companyID, actorID); err != nil {
		respondServiceError(ctx, err)
		return 0, false
	}
	return companyID, true
}
