package controller

import (
	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/service"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"github.com/gin-gonic/gin"
)

type ResultsController struct {
	ResultsService *service.ResultsService
	MemberService  *service.MemberService
}

func NewResultsController(resultsService *service.ResultsService, memberService *service.MemberService) *ResultsController {
	return &ResultsController{ResultsService: resultsService, MemberService: memberService}
}

// Record accepts a quiz submission from a company member and returns
// the new cumulative summary.
func (c *ResultsController) Record(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}
	companyID, ok := uintParam(ctx, "company_id")
	if !ok {
		return
	}
	quizID, ok := uintParam(ctx, "quiz_id")
	if !ok {
		return
	}

	if _, err := c.MemberService.Membership(companyID, actorID); err != nil {
		respondServiceError(ctx, err)
		return
	}

	var req service.AnswerQuiz
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	summary, err := c.ResultsService.RecordResults(ctx.Request.Context(), req, companyID, quizID, actorID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, summary)
}

func (c *ResultsController) MyResults(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}

	results, err := c.ResultsService.UserResults(actorID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// MyAverage is the actor's system-wide running average.
func (c *ResultsController) MyAverage(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}

	average, err := c.ResultsService.UserAverage(actorID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"average_result": average})
}

// MemberResults lists one member's summaries; the member themselves or
// an elevated role may look.
func (c *ResultsController) MemberResults(ctx *gin.Context) {
	member, companyID, ok := c.visibleMember(ctx)
	if !ok {
		return
	}

	results, err := c.ResultsService.MemberResults(member.UserID, companyID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

func (c *ResultsController) MemberResultsByQuiz(ctx *gin.Context) {
	member, companyID, ok := c.visibleMember(ctx)
	if !ok {
		return
	}
	quizID, ok := uintParam(ctx, "quiz_id")
	if !ok {
		return
	}

	results, err := c.ResultsService.MemberResultsByQuiz(member.UserID, companyID, quizID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

func (c *ResultsController) MemberAverage(ctx *gin.Context) {
	member, companyID, ok := c.visibleMember(ctx)
	if !ok {
		return
	}

	average, err := c.ResultsService.MemberAverage(member.UserID, companyID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"average_result": average})
}

func (c *ResultsController) CompanyResults(ctx *gin.Context) {
	companyID, ok := c.elevatedCompany(ctx)
	if !ok {
		return
	}

	results, err := c.ResultsService.CompanyResults(companyID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

func (c *ResultsController) CompanyResultsByQuiz(ctx *gin.Context) {
	companyID, ok := c.elevatedCompany(ctx)
	if !ok {
		return
	}
	quizID, ok := uintParam(ctx, "quiz_id")
	if !ok {
		return
	}

	results, err := c.ResultsService.CompanyResultsByQuiz(companyID, quizID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// visibleMember resolves the target member and checks the actor may see
// that member's results.
func (c *ResultsController) visibleMember(ctx *gin.Context) (*model.MemberRecord, uint, bool) {
	actorID, ok := actor(ctx)
	if !ok {
		return nil, 0, false
	}
	companyID, ok := uintParam(ctx, "company_id")
	if !ok {
		return nil, 0, false
	}
	companyMemberID, ok := uintParam(ctx, "member_id")
	if !ok {
		return nil, 0, false
	}

	member, err := c.MemberService.GetByMemberID(companyID, companyMemberID)
	if err != nil {
		respondServiceError(ctx, err)
		return nil, 0, false
	}
	if member.UserID != actorID {
		if _, err := c.MemberService.RequireElevated(companyID, actorID); err != nil {
			respondServiceError(ctx, err)
			return nil, 0, false
		}
	}
	return member, companyID, true
}

func (c *ResultsController) elevatedCompany(ctx *gin.Context) (uint, bool) {
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
