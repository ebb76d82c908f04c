package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/controllers"
	"github.com/safe-edu/api-go/middleware"
	"github.com/safe-edu/api-go/models"
)

func SetupAdminRoutes(protected *gin.RouterGroup, auditController *controllers.AuditController, userController *controllers.UserController) {
	admin := protected.Group("")
	admin.Use(middleware.RequireRoles(models.RoleAdministrator))
	{
		admin.GET("/audit-logs", auditController.GetAuditLogs)

		users := admin.Group("/users")
		{
			users.GET("", userController.GetUsers)
			users.POST("", userController.CreateUser)
			users.PATCH("/:id/active", userController.SetUserActive)
		}
	}
}
