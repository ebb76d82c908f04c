package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/models"
	"github.com/safe-edu/api-go/utils"
	"gorm.io/gorm"
)

type ReportController struct {
	DB      *gorm.DB
	Storage *storageClient
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db, Storage: newStorageClient()}
}

func (rc *ReportController) GetReports(c *gin.Context) {
	var reports []models.GeneratedReport
	if err := rc.DB.Order("date_generated desc").Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reports"})
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: reports})
}

// GenerateReport snapshots the caller's role-visible records into a CSV file
// in object storage. The row is appended as Processing and flipped to Ready
// once the upload lands.
func (rc *ReportController) GenerateReport(c *gin.Context) {
	user := utils.GetUser(c)

	var input struct {
		Title string `json:"title" binding:"required"`
		Type  string `json:"type" binding:"required,oneof='Incident Summary' 'Digital Safety Audit' 'Welfare Progress' 'Annual Review'"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	report := models.GeneratedReport{
		Title:         input.Title,
		Type:          input.Type,
		GeneratedBy:   user.FullName,
		DateGenerated: time.Now(),
		Status:        models.ReportStatusProcessing,
	}
	if err := rc.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report", "success": false})
		return
	}

	content, err := rc.buildReportCSV(input.Type, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report", "success": false})
		return
	}

	key := fmt.Sprintf("reports/%s.csv", report.ID)
	if err := rc.Storage.putObject(c.Request.Context(), key, "text/csv", content); err != nil {
		// Row stays in Processing; the UI shows it as still pending
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store report file", "success": false})
		return
	}

	updates := map[string]interface{}{
		"status":    models.ReportStatusReady,
		"file_key":  key,
		"file_size": int64(len(content)),
	}
	if err := rc.DB.Model(&report).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize report", "success": false})
		return
	}

	utils.AppendAuditLog(rc.DB, user, "Generated System Report: "+report.Type, models.AuditCategoryAudit, c.ClientIP())
	utils.AppendNotification(rc.DB, "Report Generated",
		fmt.Sprintf("The report %q is now ready for review.", report.Title),
		models.NotificationTypeReport)

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: report, Message: "Report generated"})
}

func (rc *ReportController) buildReportCSV(reportType string, user *utils.UserClaims) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	switch reportType {
	case "Digital Safety Audit":
		if err := w.Write([]string{"record_id", "student_id", "device_id", "usage_start", "usage_end", "flagged", "activity"}); err != nil {
			return nil, err
		}
		for _, l := range loadDeviceLogs(rc.DB) {
			row := []string{
				l.ID, l.StudentID, l.DeviceID,
				l.UsageStart.Format(time.RFC3339), l.UsageEnd.Format(time.RFC3339),
				strconv.FormatBool(l.Flagged), l.ActivityDescription,
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}

	default:
		view := loadScopedView(rc.DB, user)
		if err := w.Write([]string{"incident_id", "student_id", "status", "date_reported", "location", "description"}); err != nil {
			return nil, err
		}
		for _, inc := range view.Incidents {
			row := []string{
				inc.ID, inc.StudentID, inc.Status,
				inc.DateReported.Format(time.RFC3339), inc.Location, inc.Description,
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (rc *ReportController) GetReportDownloadURL(c *gin.Context) {
	id := c.Param("id")

	var report models.GeneratedReport
	if err := rc.DB.First(&report, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	if report.Status != models.ReportStatusReady || report.FileKey == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "Report is still processing", "success": false})
		return
	}

	downloadURL, err := rc.Storage.presignGet(report.FileKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create download URL", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: gin.H{
		"downloadUrl": downloadURL,
		"fileSize":    report.FileSize,
		"expiresIn":   3600,
	}})
}
