package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/controllers"
	"github.com/safe-edu/api-go/middleware"
	"github.com/safe-edu/api-go/models"
)

func SetupIncidentRoutes(protected *gin.RouterGroup, incidentController *controllers.IncidentController) {
	protected.GET("/incident-types", incidentController.GetIncidentTypes)

	incidents := protected.Group("/incidents")
	{
		incidents.GET("", incidentController.GetIncidents)
		// Parents may submit reports too; their records carry the parent-reported flag
		incidents.POST("", incidentController.CreateIncident)

		staff := incidents.Group("")
		staff.Use(middleware.RequireRoles(models.RoleAdministrator, models.RoleCounselor, models.RoleTeacher))
		{
			staff.PATCH("/:id/status", incidentController.UpdateIncidentStatus)
		}
	}
}
