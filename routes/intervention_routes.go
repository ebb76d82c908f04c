package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/controllers"
	"github.com/safe-edu/api-go/middleware"
	"github.com/safe-edu/api-go/models"
)

func SetupInterventionRoutes(protected *gin.RouterGroup, interventionController *controllers.InterventionController) {
	interventions := protected.Group("/interventions")
	{
		interventions.GET("", interventionController.GetInterventions)

		caseworkers := interventions.Group("")
		caseworkers.Use(middleware.RequireRoles(models.RoleAdministrator, models.RoleCounselor))
		{
			caseworkers.POST("", interventionController.CreateIntervention)
			caseworkers.PATCH("/:id/status", interventionController.UpdateInterventionStatus)
			caseworkers.POST("/:id/milestones", interventionController.AddMilestone)
			caseworkers.POST("/:id/attachment", interventionController.GetAttachmentUploadURL)
		}
	}
}
