package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/controllers"
)

func SetupNotificationRoutes(protected *gin.RouterGroup, notificationController *controllers.NotificationController) {
	notifications := protected.Group("/notifications")
	{
		notifications.GET("", notificationController.GetNotifications)
		notifications.POST("/read-all", notificationController.MarkAllRead)
	}
}
