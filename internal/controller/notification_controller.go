package controller

import (
	"github.com/DmytroRudikov/Meduzzen-internship/internal/service"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	NotificationService *service.NotificationService
}

func NewNotificationController(notificationService *service.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

func (c *NotificationController) ListUnread(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}

	notifications, err := c.NotificationService.ListUnread(actorID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, notifications)
}

func (c *NotificationController) MarkRead(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}
	notificationID, ok := uintParam(ctx, "notification_id")
	if !ok {
		return
	}

	if err := c.NotificationService.MarkRead(actorID, notificationID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"notification_id": notificationID, "status": "read"})
}
