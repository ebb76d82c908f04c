package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/models"
	"github.com/safe-edu/api-go/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserController is the administrator-only user management surface.
type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func (uc *UserController) GetUsers(c *gin.Context) {
	var users []models.User
	if err := uc.DB.Order("created_at desc").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: users})
}

// CreateUser provisions an account of any role. Parent accounts require a
// linked LRN; a parent links to exactly one student.
func (uc *UserController) CreateUser(c *gin.Context) {
	admin := utils.GetUser(c)

	var input struct {
		Username  string `json:"username" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=6"`
		FullName  string `json:"fullName" binding:"required"`
		Role      string `json:"role" binding:"required,oneof=Teacher Counselor Administrator Parent"`
		LinkedLRN string `json:"linkedLrn"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if !validateUsername(input.Username) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username", "success": false})
		return
	}

	if input.Role == models.RoleParent && input.LinkedLRN == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parent accounts require a linked LRN", "success": false})
		return
	}
	if input.Role != models.RoleParent && input.LinkedLRN != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only Parent accounts carry a linked LRN", "success": false})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password", "success": false})
		return
	}
	hashedPasswordStr := string(hashedPassword)

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: &hashedPasswordStr,
		FullName: input.FullName,
		Role:     input.Role,
		IsActive: true,
		Provider: "email",
	}
	if input.LinkedLRN != "" {
		user.LinkedLRN = &input.LinkedLRN
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists", "success": false})
		return
	}

	utils.AppendAuditLog(uc.DB, admin, "Provisioned Account for "+user.FullName, models.AuditCategorySecurity, c.ClientIP())

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: user, Message: "User created"})
}

func (uc *UserController) SetUserActive(c *gin.Context) {
	admin := utils.GetUser(c)
	id := c.Param("id")

	var input struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var user models.User
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := uc.DB.Model(&user).Update("is_active", *input.IsActive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user", "success": false})
		return
	}

	action := "Deactivated Account for " + user.FullName
	if *input.IsActive {
		action = "Reactivated Account for " + user.FullName
	} else {
		// A deactivated account loses its refresh tokens immediately
		uc.DB.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{})
	}
	utils.AppendAuditLog(uc.DB, admin, action, models.AuditCategorySecurity, c.ClientIP())

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: user})
}
