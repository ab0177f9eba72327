package controller

import (
	"github.com/DmytroRudikov/Meduzzen-internship/internal/service"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"github.com/gin-gonic/gin"
)

type ExportController struct {
	ExportService *service.ExportService
	MemberService *service.MemberService
}

func NewExportController(exportService *service.ExportService, memberService *service.MemberService) *ExportController {
	return &ExportController{ExportService: exportService, MemberService: memberService}
}

// exportFormat reads ?format=, defaulting to json.
func exportFormat(ctx *gin.Context) (service.ExportFormat, bool) {
	switch ctx.DefaultQuery("format", "json") {
	case "json":
		return service.FormatJSON, true
	case "csv":
		return service.FormatCSV, true
	default:
		util.BadRequest(ctx, "format must be json or csv")
		return "", false
	}
}

func prepareDownload(ctx *gin.Context, format service.ExportFormat, name string) {
	if format == service.FormatCSV {
		ctx.Header("Content-Type", "text/csv")
		ctx.Header("Content-Disposition", `attachment; filename="`+name+`.csv"`)
		return
	}
	ctx.Header("Content-Type", "application/json")
	ctx.Header("Content-Disposition", `attachment; filename="`+name+`.json"`)
}

// MyData exports the actor's own cached attempt detail across every
// company.
func (c *ExportController) MyData(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}
	format, ok := exportFormat(ctx)
	if !ok {
		return
	}

	prepareDownload(ctx, format, "my_quiz_answers")
	if err := c.ExportService.ExportUser(ctx.Request.Context(), ctx.Writer, format, actorID); err != nil {
		util.LogInternalError(ctx, err)
	}
}

// MemberData exports one member's cached detail inside the company; the
// member themselves or an elevated role may pull it.
func (c *ExportController) MemberData(ctx *gin.Context) {
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
	format, ok := exportFormat(ctx)
	if !ok {
		return
	}

	member, err := c.MemberService.GetByMemberID(companyID, companyMemberID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	if member.UserID != actorID {
		if _, err := c.MemberService.RequireElevated(companyID, actorID); err != nil {
			respondServiceError(ctx, err)
			return
		}
	}

	prepareDownload(ctx, format, "member_quiz_answers")
	if err := c.ExportService.ExportUserInCompany(ctx.Request.Context(), ctx.Writer, format, member.UserID, companyID); err != nil {
		util.LogInternalError(ctx, err)
	}
}

// CompanyData exports every cached answer recorded in the company.
func (c *ExportController) CompanyData(ctx *gin.Context) {
	companyID, format, ok := c.elevatedExport(ctx)
	if !ok {
		return
	}

	prepareDownload(ctx, format, "company_quiz_answers")
	if err := c.ExportService.ExportCompany(ctx.Request.Context(), ctx.Writer, format, companyID); err != nil {
		util.LogInternalError(ctx, err)
	}
}

// QuizData narrows the company export to one quiz.
func (c *ExportController) QuizData(ctx *gin.Context) {
	companyID, format, ok := c.elevatedExport(ctx)
	if !ok {
		return
	}
	quizID, ok := uintParam(ctx, "quiz_id")
	if !ok {
		return
	}

	prepareDownload(ctx, format, "quiz_answers")
	if err := c.ExportService.ExportQuizInCompany(ctx.Request.Context(), ctx.Writer, format, companyID, quizID); err != nil {
		util.LogInternalError(ctx, err)
	}
}

func (c *ExportController) elevatedExport(ctx *gin.Context) (uint, service.ExportFormat, bool) {
	actorID, ok := actor(ctx)
	if !ok {
		return 0, "", false
	}
	companyID, ok := uintParam(ctx, "company_id")
	if !ok {
		return 0, "", false
	}
	format, ok := exportFormat(ctx)
	if !ok {
		return 0, "", false
	}
	if _, err := c.MemberService.RequireElevated(companyID, actorID); err != nil {
		respondServiceError(ctx, err)
		return 0, "", false
	}
	return companyID, format, true
}
