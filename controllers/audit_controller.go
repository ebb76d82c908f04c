package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/models"
	"gorm.io/gorm"
)

type AuditController struct {
	DB *gorm.DB
}

func NewAuditController(db *gorm.DB) *AuditController {
	return &AuditController{DB: db}
}

// GetAuditLogs lists audit entries newest first, optionally filtered by
// category. Read-only: there are no mutation endpoints for audit entries.
func (ac *AuditController) GetAuditLogs(c *gin.Context) {
	query := ac.DB.Model(&models.AuditLogEntry{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "50"))
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	var total int64
	query.Count(&total)

	var entries []models.AuditLogEntry
	if err := query.Order("timestamp desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load audit logs"})
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    entries,
		Pagination: &PaginationMeta{
			CurrentPage: page,
			PageSize:    pageSize,
			TotalItems:  total,
			TotalPages:  totalPages,
		},
	})
}
