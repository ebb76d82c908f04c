package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/models"
	"github.com/safe-edu/api-go/utils"
	"gorm.io/gorm"
)

type IncidentController struct {
	DB *gorm.DB
}

func NewIncidentController(db *gorm.DB) *IncidentController {
	return &IncidentController{DB: db}
}

func (ic *IncidentController) GetIncidentTypes(c *gin.Context) {
	var types []models.IncidentType
	if err := ic.DB.Order("name asc").Find(&types).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load incident types"})
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: types})
}

func (ic *IncidentController) GetIncidents(c *gin.Context) {
	user := utils.GetUser(c)
	view := loadScopedView(ic.DB, user)

	status := c.Query("status")
	incidents := view.Incidents
	if status != "" {
		filtered := make([]models.Incident, 0, len(incidents))
		for _, inc := range incidents {
			if inc.Status == status {
				filtered = append(filtered, inc)
			}
		}
		incidents = filtered
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: incidents})
}

func (ic *IncidentController) CreateIncident(c *gin.Context) {
	user := utils.GetUser(c)

	var input struct {
		StudentID       string `json:"studentId" binding:"required"`
		IncidentTypeID  string `json:"incidentTypeId" binding:"required"`
		DateOccurred    string `json:"dateOccurred" binding:"required"`
		Location        string `json:"location" binding:"required"`
		Description     string `json:"description" binding:"required"`
		ImmediateAction string `json:"immediateAction"`
		IsAnonymous     bool   `json:"isAnonymous"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	occurred, err := time.Parse(time.RFC3339, input.DateOccurred)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dateOccurred must be RFC3339", "success": false})
		return
	}

	var student models.Student
	if err := ic.DB.First(&student, "id = ?", input.StudentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found", "success": false})
		return
	}

	incident := models.Incident{
		StudentID:        student.ID,
		ReportedByUserID: user.UserID,
		IncidentTypeID:   input.IncidentTypeID,
		DateReported:     time.Now(),
		DateOccurred:     occurred,
		Location:         input.Location,
		Description:      input.Description,
		ImmediateAction:  input.ImmediateAction,
		Status:           models.IncidentStatusPending,
		IsAnonymous:      input.IsAnonymous,
		ParentReported:   user.Role == models.RoleParent,
	}

	tx := ic.DB.Begin()
	if err := tx.Create(&incident).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create incident", "success": false})
		return
	}

	entry := models.AuditLogEntry{
		Timestamp: time.Now(),
		UserID:    user.UserID,
		UserName:  user.FullName,
		Action:    "Created Incident Record for " + student.LastName,
		Category:  models.AuditCategoryRegistry,
		IPAddress: c.ClientIP(),
	}
	if err := tx.Create(&entry).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create incident", "success": false})
		return
	}
	tx.Commit()

	utils.AppendNotification(ic.DB, "New Incident Reported",
		fmt.Sprintf("%s %s was reported for an event at %s.", student.FirstName, student.LastName, incident.Location),
		models.NotificationTypeIncident)

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: incident, Message: "Incident recorded"})
}

// UpdateIncidentStatus overwrites the status field and appends one audit
// entry. Any value from the status set is accepted regardless of the
// current one.
func (ic *IncidentController) UpdateIncidentStatus(c *gin.Context) {
	user := utils.GetUser(c)
	id := c.Param("id")

	var input struct {
		Status string `json:"status" binding:"required,oneof=Pending Investigating Resolved Closed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var incident models.Incident
	if err := ic.DB.First(&incident, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Incident not found"})
		return
	}

	if err := ic.DB.Model(&incident).Update("status", input.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status", "success": false})
		return
	}

	// Best effort from here: the status change stands even if these fail
	utils.AppendAuditLog(ic.DB, user,
		fmt.Sprintf("Modified Incident #%s Status to %s", incident.ID, input.Status),
		models.AuditCategoryAudit, c.ClientIP())
	utils.AppendNotification(ic.DB, "Incident Status Updated",
		fmt.Sprintf("Incident #%s is now %s.", incident.ID, input.Status),
		models.NotificationTypeSystem)

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: incident})
}
