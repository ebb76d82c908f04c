package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/controllers"
	"github.com/safe-edu/api-go/middleware"
	"github.com/safe-edu/api-go/models"
)

func SetupDeviceRoutes(protected *gin.RouterGroup, deviceController *controllers.DeviceController) {
	// The digital safety console is staff-only
	devices := protected.Group("/device-logs")
	devices.Use(middleware.RequireRoles(models.RoleAdministrator, models.RoleCounselor, models.RoleTeacher))
	{
		devices.GET("", deviceController.GetDeviceLogs)
		devices.POST("", deviceController.CreateDeviceLog)
		devices.POST("/:id/dismiss", deviceController.DismissFlag)
		devices.POST("/:id/escalate", deviceController.EscalateFlag)
	}
}
