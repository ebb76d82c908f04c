package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/utils"
	"github.com/safe-edu/api-go/views"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetSummary computes the dashboard numbers over the records visible to the
// caller's role. Recomputed on every request, nothing is cached.
func (dc *DashboardController) GetSummary(c *gin.Context) {
	user := utils.GetUser(c)
	view := loadScopedView(dc.DB, user)
	stats := views.Summarize(view.Incidents, loadDeviceLogs(dc.DB))

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: stats})
}
