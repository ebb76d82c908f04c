package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/controllers"
	"github.com/safe-edu/api-go/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	studentController := controllers.NewStudentController(db)
	incidentController := controllers.NewIncidentController(db)
	interventionController := controllers.NewInterventionController(db)
	deviceController := controllers.NewDeviceController(db)
	reportController := controllers.NewReportController(db)
	notificationController := controllers.NewNotificationController(db)
	auditController := controllers.NewAuditController(db)
	dashboardController := controllers.NewDashboardController(db)
	insightController := controllers.NewInsightController(db)
	userController := controllers.NewUserController(db)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/login/google", authController.GoogleLogin)
		public.POST("/refresh-token", authController.RefreshToken)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)

		protected.GET("/dashboard/summary", dashboardController.GetSummary)

		SetupStudentRoutes(protected, studentController, insightController)
		SetupIncidentRoutes(protected, incidentController)
		SetupInterventionRoutes(protected, interventionController)
		SetupDeviceRoutes(protected, deviceController)
		SetupReportRoutes(protected, reportController)
		SetupNotificationRoutes(protected, notificationController)
		SetupAdminRoutes(protected, auditController, userController)
	}
}
