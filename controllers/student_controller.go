package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/config"
	"github.com/safe-edu/api-go/models"
	"github.com/safe-edu/api-go/utils"
	"github.com/safe-edu/api-go/views"
	"gorm.io/gorm"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

type StudentInput struct {
	LRN           string `json:"lrn" binding:"required"`
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	MiddleName    string `json:"middleName"`
	DateOfBirth   string `json:"dateOfBirth" binding:"required"`
	Gender        string `json:"gender"`
	GradeLevel    string `json:"gradeLevel" binding:"required"`
	Section       string `json:"section" binding:"required"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
	Background    string `json:"background"`
}

func (sc *StudentController) GetStudents(c *gin.Context) {
	user := utils.GetUser(c)
	view := loadScopedView(sc.DB, user)

	q := strings.ToLower(strings.TrimSpace(c.Query("q")))
	students := view.Students
	if q != "" {
		filtered := make([]models.Student, 0, len(students))
		for _, s := range students {
			haystack := strings.ToLower(s.FirstName + " " + s.LastName + " " + s.LRN + " " + s.Section)
			if strings.Contains(haystack, q) {
				filtered = append(filtered, s)
			}
		}
		students = filtered
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: students})
}

func (sc *StudentController) GetStudentDetail(c *gin.Context) {
	user := utils.GetUser(c)
	id := c.Param("id")

	view := loadScopedView(sc.DB, user)
	var student *models.Student
	for i := range view.Students {
		if view.Students[i].ID == id {
			student = &view.Students[i]
			break
		}
	}
	if student == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var incidents []models.Incident
	for _, inc := range view.Incidents {
		if inc.StudentID == id {
			incidents = append(incidents, inc)
		}
	}
	var plans []models.InterventionPlan
	for _, p := range view.Interventions {
		if p.StudentID == id {
			plans = append(plans, p)
		}
	}

	var liveGuardians []models.Guardian
	sc.DB.Where("student_id = ?", id).Find(&liveGuardians)
	guardians := make([]models.Guardian, 0)
	for _, g := range views.MergeByID(config.DemoGuardians(), liveGuardians, guardianID) {
		if g.StudentID == id {
			guardians = append(guardians, g)
		}
	}

	deviceLogs := make([]models.DeviceUsageRecord, 0)
	for _, l := range loadDeviceLogs(sc.DB) {
		if l.StudentID == id {
			deviceLogs = append(deviceLogs, l)
		}
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: gin.H{
		"student":       student,
		"guardians":     guardians,
		"incidents":     incidents,
		"interventions": plans,
		"device_logs":   deviceLogs,
	}})
}

func (sc *StudentController) CreateStudent(c *gin.Context) {
	user := utils.GetUser(c)

	var input StudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	dob, err := time.Parse("2006-01-02", input.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dateOfBirth must be YYYY-MM-DD", "success": false})
		return
	}

	student := models.Student{
		LRN:           input.LRN,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		MiddleName:    input.MiddleName,
		DateOfBirth:   dob,
		Gender:        input.Gender,
		GradeLevel:    input.GradeLevel,
		Section:       input.Section,
		Address:       input.Address,
		ContactNumber: input.ContactNumber,
		Background:    input.Background,
	}

	if err := sc.DB.Create(&student).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A student with this LRN already exists", "success": false})
		return
	}

	utils.AppendAuditLog(sc.DB, user, "Created Student Record for "+student.LastName, models.AuditCategoryRegistry, c.ClientIP())

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: student, Message: "Student registered successfully"})
}

func (sc *StudentController) UpdateStudent(c *gin.Context) {
	user := utils.GetUser(c)
	id := c.Param("id")

	var student models.Student
	if err := sc.DB.First(&student, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var input struct {
		GradeLevel    string `json:"gradeLevel"`
		Section       string `json:"section"`
		Address       string `json:"address"`
		ContactNumber string `json:"contactNumber"`
		Background    string `json:"background"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	updates := map[string]interface{}{}
	if input.GradeLevel != "" {
		updates["grade_level"] = input.GradeLevel
	}
	if input.Section != "" {
		updates["section"] = input.Section
	}
	if input.Address != "" {
		updates["address"] = input.Address
	}
	if input.ContactNumber != "" {
		updates["contact_number"] = input.ContactNumber
	}
	if input.Background != "" {
		updates["background"] = input.Background
	}

	if len(updates) > 0 {
		if err := sc.DB.Model(&student).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update student", "success": false})
			return
		}
		utils.AppendAuditLog(sc.DB, user, "Updated Student Record for "+student.LastName, models.AuditCategoryRegistry, c.ClientIP())
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: student})
}

func (sc *StudentController) AddGuardian(c *gin.Context) {
	user := utils.GetUser(c)
	id := c.Param("id")

	var student models.Student
	if err := sc.DB.First(&student, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		return
	}

	var input struct {
		FirstName             string `json:"firstName" binding:"required"`
		LastName              string `json:"lastName" binding:"required"`
		RelationshipToStudent string `json:"relationship" binding:"required"`
		ContactNumber         string `json:"contactNumber"`
		Email                 string `json:"email" binding:"omitempty,email"`
		Address               string `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	guardian := models.Guardian{
		StudentID:             student.ID,
		FirstName:             input.FirstName,
		LastName:              input.LastName,
		RelationshipToStudent: input.RelationshipToStudent,
		ContactNumber:         input.ContactNumber,
		Email:                 input.Email,
		Address:               input.Address,
	}

	if err := sc.DB.Create(&guardian).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add guardian", "success": false})
		return
	}

	utils.AppendAuditLog(sc.DB, user, "Linked Guardian to Student "+student.LastName, models.AuditCategoryRegistry, c.ClientIP())

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: guardian})
}
