package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/safe-edu/api-go/config"
	"github.com/safe-edu/api-go/models"
	"github.com/safe-edu/api-go/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := config.MigrateModels(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	config.SeedIncidentTypes(db)
	return db
}

// testRouter builds a bare router that injects the given claims the way
// AuthMiddleware would.
func testRouter(claims *utils.UserClaims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set(string(utils.UserContextKey), claims)
		}
		c.Next()
	})
	return r
}

func performJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedStudent(t *testing.T, db *gorm.DB, id, lrn, first, last string) models.Student {
	t.Helper()
	student := models.Student{ID: id, LRN: lrn, FirstName: first, LastName: last, GradeLevel: "10", Section: "Mabini"}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("failed to seed student %s: %v", id, err)
	}
	return student
}

func countAuditEntries(t *testing.T, db *gorm.DB, category string) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.AuditLogEntry{}).Where("category = ?", category).Count(&n).Error; err != nil {
		t.Fatalf("failed to count audit entries: %v", err)
	}
	return n
}
