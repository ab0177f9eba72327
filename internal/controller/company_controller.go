package controller

import (
	"github.com/DmytroRudikov/Meduzzen-internship/internal/service"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"github.com/gin-gonic/gin"
)

type CompanyController struct {
	CompanyService *service.CompanyService
}

func NewCompanyController(companyService *service.CompanyService) *CompanyController {
	return &CompanyController{CompanyService: companyService}
}

func (c *CompanyController) Create(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}

	var req service.CreateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	company, err := c.CompanyService.Create(actorID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, company)
}

func (c *CompanyController) List(ctx *gin.Context) {
	companies, err := c.CompanyService.ListVisible()
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, companies)
}

func (c *CompanyController) Get(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}
	companyID, ok := uintParam(ctx, "company_id")
	if !ok {
		return
	}

	company, err := c.CompanyService.Get(actorID, companyID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, company)
}

func (c *CompanyController) Update(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}
	companyID, ok := uintParam(ctx, "company_id")
	if !ok {
		return
	}

	var req service.UpdateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	company, err := c.CompanyService.Update(actorID, companyID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, company)
}

func (c *CompanyController) Delete(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}
	companyID, ok := uintParam(ctx, "company_id")
	if !ok {
		return
	}

	if err := c.CompanyService.Delete(actorID, companyID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": companyID})
}
