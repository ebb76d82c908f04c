package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/config"
	"github.com/safe-edu/api-go/models"
	"github.com/safe-edu/api-go/utils"
	"gorm.io/gorm"
)

type InsightController struct {
	DB      *gorm.DB
	Insight *config.InsightConfig
}

func NewInsightController(db *gorm.DB) *InsightController {
	return &InsightController{DB: db, Insight: config.NewInsightConfig()}
}

// GetBehavioralInsight sends the student's role-visible incident history to
// the narrative insight endpoint. The call is advisory: it always answers 200
// with either the generated assessment or the fixed fallback.
func (ic *InsightController) GetBehavioralInsight(c *gin.Context) {
	user := utils.GetUser(c)
	id := c.Param("id")

	view := loadScopedView(ic.DB, user)
	found := false
	for _, s := range view.Students {
		if s.ID == id {
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	history := make([]models.Incident, 0)
	for _, inc := range view.Incidents {
		if inc.StudentID == id {
			history = append(history, inc)
		}
	}

	result := ic.Insight.GetBehavioralInsight(history)

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: result})
}
