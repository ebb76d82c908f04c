package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/models"
	"github.com/safe-edu/api-go/utils"
	"gorm.io/gorm"
)

type DeviceController struct {
	DB *gorm.DB
}

func NewDeviceController(db *gorm.DB) *DeviceController {
	return &DeviceController{DB: db}
}

func (dc *DeviceController) GetDeviceLogs(c *gin.Context) {
	logs := loadDeviceLogs(dc.DB)

	if c.Query("filter") == "flagged" {
		flagged := make([]models.DeviceUsageRecord, 0, len(logs))
		for _, l := range logs {
			if l.Flagged {
				flagged = append(flagged, l)
			}
		}
		logs = flagged
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: logs})
}

func (dc *DeviceController) CreateDeviceLog(c *gin.Context) {
	var input struct {
		StudentID           string `json:"studentId" binding:"required"`
		DeviceID            string `json:"deviceId" binding:"required"`
		UsageStart          string `json:"usageStart" binding:"required"`
		UsageEnd            string `json:"usageEnd" binding:"required"`
		ActivityDescription string `json:"activityDescription"`
		Flagged             bool   `json:"flagged"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	start, err := time.Parse(time.RFC3339, input.UsageStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "usageStart must be RFC3339", "success": false})
		return
	}
	end, err := time.Parse(time.RFC3339, input.UsageEnd)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "usageEnd must be RFC3339", "success": false})
		return
	}

	record := models.DeviceUsageRecord{
		StudentID:           input.StudentID,
		DeviceID:            input.DeviceID,
		UsageStart:          start,
		UsageEnd:            end,
		ActivityDescription: input.ActivityDescription,
		Flagged:             input.Flagged,
	}

	if err := dc.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record device usage", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: record})
}

// DismissFlag clears the flag on a device usage record without further action.
func (dc *DeviceController) DismissFlag(c *gin.Context) {
	user := utils.GetUser(c)
	id := c.Param("id")

	var record models.DeviceUsageRecord
	if err := dc.DB.First(&record, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Device usage record not found"})
		return
	}

	if err := dc.DB.Model(&record).Update("flagged", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to dismiss flag", "success": false})
		return
	}

	utils.AppendAuditLog(dc.DB, user, "Dismissed Device Flag #"+record.ID, models.AuditCategoryAudit, c.ClientIP())

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: record})
}

// EscalateFlag converts a flagged device usage record into a Digital Misuse
// incident and clears the flag.
func (dc *DeviceController) EscalateFlag(c *gin.Context) {
	user := utils.GetUser(c)
	id := c.Param("id")

	var record models.DeviceUsageRecord
	if err := dc.DB.First(&record, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Device usage record not found"})
		return
	}

	if !record.Flagged {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Record is not flagged", "success": false})
		return
	}

	var digitalMisuse models.IncidentType
	if err := dc.DB.Where("name = ?", "Digital Misuse").First(&digitalMisuse).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Digital Misuse incident type is missing", "success": false})
		return
	}

	incident := models.Incident{
		StudentID:        record.StudentID,
		ReportedByUserID: user.UserID,
		IncidentTypeID:   digitalMisuse.ID,
		DateReported:     time.Now(),
		DateOccurred:     record.UsageStart,
		Location:         "Device " + record.DeviceID,
		Description:      record.ActivityDescription,
		ImmediateAction:  "Escalated from digital safety console.",
		Status:           models.IncidentStatusPending,
	}

	tx := dc.DB.Begin()
	if err := tx.Create(&incident).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to escalate record", "success": false})
		return
	}
	if err := tx.Model(&record).Update("flagged", false).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to escalate record", "success": false})
		return
	}
	tx.Commit()

	utils.AppendAuditLog(dc.DB, user, "Escalated Device Flag #"+record.ID+" to Incident", models.AuditCategoryAudit, c.ClientIP())
	utils.AppendNotification(dc.DB, "Device Activity Escalated",
		"A flagged device session was escalated into an incident report.",
		models.NotificationTypeIncident)

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: incident, Message: "Record escalated to incident"})
}
