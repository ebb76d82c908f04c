package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/controllers"
	"github.com/safe-edu/api-go/middleware"
	"github.com/safe-edu/api-go/models"
)

func SetupStudentRoutes(protected *gin.RouterGroup, studentController *controllers.StudentController, insightController *controllers.InsightController) {
	students := protected.Group("/students")
	{
		students.GET("", studentController.GetStudents)
		students.GET("/:id", studentController.GetStudentDetail)

		registry := students.Group("")
		registry.Use(middleware.RequireRoles(models.RoleAdministrator, models.RoleCounselor))
		{
			registry.POST("", studentController.CreateStudent)
			registry.PUT("/:id", studentController.UpdateStudent)
			registry.POST("/:id/guardians", studentController.AddGuardian)
		}

		staff := students.Group("")
		staff.Use(middleware.RequireRoles(models.RoleAdministrator, models.RoleCounselor, models.RoleTeacher))
		{
			staff.POST("/:id/insight", insightController.GetBehavioralInsight)
		}
	}
}
