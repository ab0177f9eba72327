package controller

import (
	"github.com/DmytroRudikov/Meduzzen-internship/internal/service"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

func (c *UserController) List(ctx *gin.Context) {
	users, err := c.UserService.List()
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

func (c *UserController) Get(ctx *gin.Context) {
	userID, ok := uintParam(ctx, "user_id")
	if !ok {
		return
	}

	user, err := c.UserService.Get(userID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

func (c *UserController) Update(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}
	userID, ok := uintParam(ctx, "user_id")
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Update(actorID, userID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

func (c *UserController) Delete(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}
	userID, ok := uintParam(ctx, "user_id")
	if !ok {
		return
	}

	if err := c.UserService.Delete(actorID, userID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": userID})
}
