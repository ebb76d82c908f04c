package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/safe-edu/api-go/models"
	"github.com/safe-edu/api-go/utils"
	"gorm.io/gorm"
)

type InterventionController struct {
	DB      *gorm.DB
	Storage *storageClient
}

func NewInterventionController(db *gorm.DB) *InterventionController {
	return &InterventionController{DB: db, Storage: newStorageClient()}
}

func (vc *InterventionController) GetInterventions(c *gin.Context) {
	user := utils.GetUser(c)
	view := loadScopedView(vc.DB, user)
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: view.Interventions})
}

func (vc *InterventionController) CreateIntervention(c *gin.Context) {
	user := utils.GetUser(c)

	var input struct {
		StudentID         string   `json:"studentId" binding:"required"`
		InterventionType  string   `json:"interventionType" binding:"required"`
		Description       string   `json:"description" binding:"required"`
		StartDate         string   `json:"startDate" binding:"required"`
		LinkedIncidentIDs []string `json:"linkedIncidentIds"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	start, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be YYYY-MM-DD", "success": false})
		return
	}

	var student models.Student
	if err := vc.DB.First(&student, "id = ?", input.StudentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found", "success": false})
		return
	}

	plan := models.InterventionPlan{
		StudentID:         student.ID,
		AssignedByUserID:  user.UserID,
		InterventionType:  input.InterventionType,
		Description:       input.Description,
		StartDate:         start,
		Status:            models.InterventionStatusActive,
		LinkedIncidentIDs: pq.StringArray(input.LinkedIncidentIDs),
	}

	if err := vc.DB.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create intervention plan", "success": false})
		return
	}

	utils.AppendAuditLog(vc.DB, user, "Opened Intervention Plan for "+student.LastName, models.AuditCategoryRegistry, c.ClientIP())

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: plan, Message: "Intervention plan created"})
}

func (vc *InterventionController) UpdateInterventionStatus(c *gin.Context) {
	user := utils.GetUser(c)
	id := c.Param("id")

	var input struct {
		Status string `json:"status" binding:"required,oneof=Active Completed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var plan models.InterventionPlan
	if err := vc.DB.First(&plan, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Intervention plan not found"})
		return
	}

	updates := map[string]interface{}{"status": input.Status}
	if input.Status == models.InterventionStatusCompleted && plan.EndDate == nil {
		now := time.Now()
		updates["end_date"] = &now
	}

	if err := vc.DB.Model(&plan).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status", "success": false})
		return
	}

	utils.AppendAuditLog(vc.DB, user,
		fmt.Sprintf("Modified Intervention #%s Status to %s", plan.ID, input.Status),
		models.AuditCategoryAudit, c.ClientIP())

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: plan})
}

// AddMilestone appends one milestone entry. Milestones are append-only; there
// is no update or delete path.
func (vc *InterventionController) AddMilestone(c *gin.Context) {
	user := utils.GetUser(c)
	id := c.Param("id")

	var input struct {
		Date    string `json:"date" binding:"required"`
		Title   string `json:"title" binding:"required"`
		Notes   string `json:"notes"`
		Outcome string `json:"outcome"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD", "success": false})
		return
	}

	var plan models.InterventionPlan
	if err := vc.DB.First(&plan, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Intervention plan not found"})
		return
	}

	milestone := models.Milestone{
		InterventionPlanID: plan.ID,
		Date:               date,
		Title:              input.Title,
		Notes:              input.Notes,
		Outcome:            input.Outcome,
		RecordedBy:         user.FullName,
	}

	if err := vc.DB.Create(&milestone).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record milestone", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: milestone})
}

// GetAttachmentUploadURL hands out a presigned PUT URL for a plan attachment
// and records the resulting object metadata on the plan.
func (vc *InterventionController) GetAttachmentUploadURL(c *gin.Context) {
	user := utils.GetUser(c)
	id := c.Param("id")

	var input struct {
		FileName    string `json:"fileName" binding:"required"`
		ContentType string `json:"contentType" binding:"required"`
		FileSize    int64  `json:"fileSize" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var plan models.InterventionPlan
	if err := vc.DB.First(&plan, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Intervention plan not found"})
		return
	}

	key := fmt.Sprintf("interventions/%s/%s%s", plan.ID, uuid.New().String(), filepath.Ext(input.FileName))
	uploadURL, err := vc.Storage.presignPut(key, input.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload URL", "success": false})
		return
	}

	updates := map[string]interface{}{
		"attachment_key":  key,
		"attachment_name": input.FileName,
		"attachment_size": input.FileSize,
	}
	if err := vc.DB.Model(&plan).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record attachment", "success": false})
		return
	}

	utils.AppendAuditLog(vc.DB, user, "Attached Document to Intervention #"+plan.ID, models.AuditCategoryRegistry, c.ClientIP())

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: gin.H{
		"uploadUrl": uploadURL,
		"key":       key,
		"expiresIn": 3600,
	}})
}
