package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"github.com/gin-gonic/gin"
)

// respondServiceError translates service sentinels into HTTP statuses;
// anything unrecognized is logged and reported as a 500.
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrCompanyNotFound),
		errors.Is(err, util.ErrMemberNotFound),
		errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrInviteNotFound),
		errors.Is(err, util.ErrRequestNotFound),
		errors.Is(err, util.ErrNotificationNotFound),
		errors.Is(err, util.ErrNoResults):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, util.ErrEmailRegistered):
		util.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, util.ErrNotAllAnswered),
		errors.Is(err, util.ErrTooFewQuestions),
		errors.Is(err, util.ErrTooFewOptions),
		errors.Is(err, util.ErrAnswerNotInOptions),
		errors.Is(err, util.ErrStatusResolved):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// uintParam parses a numeric path parameter; on failure it writes the
// 400 itself and returns false.
func uintParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(value), true
}

// actor extracts the authenticated user's id; the auth middleware
// guarantees presence on protected routes.
func actor(ctx *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return 0, false
	}
	return claims.UserID, true
}
