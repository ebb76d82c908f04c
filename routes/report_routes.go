package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/controllers"
	"github.com/safe-edu/api-go/middleware"
	"github.com/safe-edu/api-go/models"
)

func SetupReportRoutes(protected *gin.RouterGroup, reportController *controllers.ReportController) {
	reports := protected.Group("/reports")
	reports.Use(middleware.RequireRoles(models.RoleAdministrator, models.RoleCounselor, models.RoleParent))
	{
		reports.GET("", reportController.GetReports)
		reports.GET("/:id/download", reportController.GetReportDownloadURL)

		generators := reports.Group("")
		generators.Use(middleware.RequireRoles(models.RoleAdministrator, models.RoleCounselor))
		{
			generators.POST("", reportController.GenerateReport)
		}
	}
}
