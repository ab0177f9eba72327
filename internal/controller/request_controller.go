package controller

import (
	"github.com/DmytroRudikov/Meduzzen-internship/internal/service"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"github.com/gin-gonic/gin"
)

type RequestController struct {
	RequestService *service.RequestService
}

func NewRequestController(requestService *service.RequestService) *RequestController {
	return &RequestController{RequestService: requestService}
}

func (c *RequestController) Create(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}

	var req service.CreateRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	request, err := c.RequestService.Create(actorID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, request)
}

func (c *RequestController) ListMine(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}

	requests, err := c.RequestService.ListForUser(actorID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, requests)
}

func (c *RequestController) ListForCompany(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}
	companyID, ok := uintParam(ctx, "company_id")
	if !ok {
		return
	}

	requests, err := c.RequestService.ListForCompany(actorID, companyID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, requests)
}

func (c *RequestController) Accept(ctx *gin.Context) {
	c.resolve(ctx, c.RequestService.Accept, "accepted")
}

func (c *RequestController) Decline(ctx *gin.Context) {
	c.resolve(ctx, c.RequestService.Decline, "declined")
}

func (c *RequestController) Cancel(ctx *gin.Context) {
	c.resolve(ctx, c.RequestService.Cancel, "cancelled")
}

func (c *RequestController) resolve(ctx *gin.Context, action func(actorID, requestID uint) error, verb string) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}
	requestID, ok := uintParam(ctx, "request_id")
	if !ok {
		return
	}

	if err := action(actorID, requestID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"request_id": requestID, "status": verb})
}
