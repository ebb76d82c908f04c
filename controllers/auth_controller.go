package controllers

import (
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/config"
	"github.com/safe-edu/api-go/models"
	"github.com/safe-edu/api-go/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB           *gorm.DB
	GoogleConfig *config.GoogleConfig
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:           db,
		GoogleConfig: config.NewGoogleConfig(),
	}
}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

func validateUsername(username string) bool {
	trimmed := strings.TrimSpace(username)
	if len(trimmed) < 3 || len(trimmed) > 30 {
		return false
	}
	return usernamePattern.MatchString(trimmed)
}

func (ac *AuthController) generateTokens(user *models.User) (string, string, error) {
	accessClaims := jwt.MapClaims{
		"user_id":   user.ID,
		"role":      user.Role,
		"full_name": user.FullName,
		"exp":       time.Now().Add(time.Hour * 24).Unix(),
	}
	if user.LinkedLRN != nil {
		accessClaims["linked_lrn"] = *user.LinkedLRN
	}

	accessTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessToken, err := accessTokenBase.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", "", err
	}

	refreshTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(),
	})
	refreshToken, err := refreshTokenBase.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"full_name":  user.FullName,
		"role":       user.Role,
		"is_active":  user.IsActive,
		"linked_lrn": user.LinkedLRN,
	}
}

// Register enrolls a new staff account. Parent accounts are provisioned by an
// administrator through user management, never via self-registration.
func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		FullName string `json:"fullName" binding:"required"`
		Role     string `json:"role" binding:"required,oneof=Teacher Counselor"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if !validateUsername(input.Username) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username must start with a letter and contain only letters, numbers, and underscores", "success": false})
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

	if err := ac.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists", "success": false})
		return
	}

	utils.AppendAuditLog(ac.DB, &utils.UserClaims{UserID: user.ID, Role: user.Role, FullName: user.FullName},
		"Registry Enrollment Completed", models.AuditCategorySecurity, c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    userPayload(&user),
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Demo bypass accounts sign in without touching the users table
	if bypass := config.FindBypassAccount(input.Email, input.Password); bypass != nil {
		ac.issueSession(c, bypass, false)
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if user.Password == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
		return
	}

	ac.issueSession(c, &user, true)
}

func (ac *AuthController) issueSession(c *gin.Context, user *models.User, persist bool) {
	accessToken, refreshToken, err := ac.generateTokens(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token", "success": false})
		return
	}

	if persist {
		ac.DB.Create(&models.RefreshToken{
			UserID:         user.ID,
			Token:          refreshToken,
			ExpirationDate: time.Now().Add(time.Hour * 24 * 30),
		})

		now := time.Now()
		ac.DB.Model(user).Update("last_login", &now)
	}

	utils.AppendAuditLog(ac.DB, &utils.UserClaims{UserID: user.ID, Role: user.Role, FullName: user.FullName},
		"System Authentication Successful", models.AuditCategoryAccess, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{
		"token_type":    "Bearer",
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user":          userPayload(user),
		"success":       true,
	})
}

func (ac *AuthController) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var refreshToken models.RefreshToken
	if err := ac.DB.Where("token = ?", input.RefreshToken).First(&refreshToken).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token", "success": false})
		return
	}

	if time.Now().After(refreshToken.ExpirationDate) {
		ac.DB.Delete(&refreshToken)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token expired", "success": false})
		return
	}

	var user models.User
	if err := ac.DB.First(&user, "id = ?", refreshToken.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found", "success": false})
		return
	}

	accessToken, newRefreshToken, err := ac.generateTokens(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token", "success": false})
		return
	}

	// Rotate the stored refresh token in place
	refreshToken.Token = newRefreshToken
	refreshToken.ExpirationDate = time.Now().Add(time.Hour * 24 * 30)
	ac.DB.Save(&refreshToken)

	c.JSON(http.StatusOK, gin.H{
		"token_type":    "Bearer",
		"access_token":  accessToken,
		"refresh_token": newRefreshToken,
		"user":          userPayload(&user),
		"success":       true,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	user := utils.GetUser(c)

	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&input); err == nil && input.RefreshToken != "" {
		ac.DB.Where("token = ?", input.RefreshToken).Delete(&models.RefreshToken{})
	}

	utils.AppendAuditLog(ac.DB, user, "User Initiated Logout", models.AuditCategoryAccess, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// GoogleLogin accepts a Google ID token, or an authorization code exchanged
// server-side, as an alternate staff sign-in path. The account must already
// exist; roles are never assigned from Google data.
func (ac *AuthController) GoogleLogin(c *gin.Context) {
	var input struct {
		IDToken string `json:"id_token"`
		Code    string `json:"code"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	idToken := input.IDToken
	if idToken == "" {
		if input.Code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id_token or code is required", "success": false})
			return
		}
		token, err := ac.GoogleConfig.ExchangeCode(c.Request.Context(), input.Code)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization code", "success": false})
			return
		}
		idToken, _ = token.Extra("id_token").(string)
		if idToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization code", "success": false})
			return
		}
	}

	userInfo, err := ac.GoogleConfig.VerifyIDToken(idToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google token", "success": false})
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", userInfo.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No account is registered for this Google identity", "success": false})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
		return
	}

	if user.GoogleID == nil {
		ac.DB.Model(&user).Updates(map[string]interface{}{"google_id": userInfo.ID, "provider": "google"})
	}

	ac.issueSession(c, &user, true)
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	// Bypass accounts have no database row; answer from the claims
	if strings.HasPrefix(claims.UserID, "demo-") {
		c.JSON(http.StatusOK, gin.H{"success": true, "user": gin.H{
			"id":         claims.UserID,
			"full_name":  claims.FullName,
			"role":       claims.Role,
			"linked_lrn": claims.LinkedLRN,
		}})
		return
	}

	var user models.User
	if err := ac.DB.First(&user, "id = ?", claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": userPayload(&user)})
}

func (ac *AuthController) UpdateProfile(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input struct {
		FullName string `json:"fullName"`
		Username string `json:"username"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var user models.User
	if err := ac.DB.First(&user, "id = ?", claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	updates := map[string]interface{}{}
	if input.FullName != "" {
		updates["full_name"] = input.FullName
	}
	if input.Username != "" {
		if !validateUsername(input.Username) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username", "success": false})
			return
		}
		updates["username"] = input.Username
	}

	if len(updates) > 0 {
		if err := ac.DB.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken", "success": false})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": userPayload(&user)})
}
