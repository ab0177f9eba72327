package controller

import (
	"github.com/DmytroRudikov/Meduzzen-internship/internal/service"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

func (c *AuthController) SignUp(ctx *gin.Context) {
	var req service.SignUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.SignUp(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

func (c *AuthController) SignIn(ctx *gin.Context) {
	var req service.SignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.SignIn(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"access_token": token, "token_type": "bearer"})
}

func (c *AuthController) Me(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}

	user, err := c.AuthService.Me(actorID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}
