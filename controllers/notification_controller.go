package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/models"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

func (nc *NotificationController) GetNotifications(c *gin.Context) {
	var notifications []models.Notification
	if err := nc.DB.Order("timestamp desc").Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}

	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    notifications,
		Meta:    gin.H{"unread": unread},
	})
}

func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	if err := nc.DB.Model(&models.Notification{}).Where("is_read = ?", false).Update("is_read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications read", "success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "All notifications marked as read"})
}
