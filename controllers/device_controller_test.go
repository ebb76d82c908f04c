package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/safe-edu/api-go/models"
	"gorm.io/gorm"
)

func seedFlaggedLog(t *testing.T, db *gorm.DB, id string) models.DeviceUsageRecord {
	t.Helper()
	record := models.DeviceUsageRecord{
		ID: id, StudentID: "s1", DeviceID: "TAB-0042",
		UsageStart:          time.Now().Add(-2 * time.Hour),
		UsageEnd:            time.Now().Add(-1 * time.Hour),
		ActivityDescription: "Restricted content access during class hours.",
		Flagged:             true,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("failed to seed device record: %v", err)
	}
	return record
}

func TestDismissFlag(t *testing.T) {
	db := setupTestDB(t)
	dc := NewDeviceController(db)

	seedStudent(t, db, "s1", "101234567890", "Rafael", "Santos")
	seedFlaggedLog(t, db, "d1")

	r := testRouter(teacherClaims())
	r.POST("/device-logs/:id/dismiss", dc.DismissFlag)
	w := performJSON(r, http.MethodPost, "/device-logs/d1/dismiss", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var record models.DeviceUsageRecord
	db.First(&record, "id = ?", "d1")
	if record.Flagged {
		t.Fatalf("dismiss must clear the flag")
	}
}

func TestEscalateFlagCreatesIncident(t *testing.T) {
	db := setupTestDB(t)
	dc := NewDeviceController(db)

	seedStudent(t, db, "s1", "101234567890", "Rafael", "Santos")
	seedFlaggedLog(t, db, "d1")

	r := testRouter(teacherClaims())
	r.POST("/device-logs/:id/escalate", dc.EscalateFlag)
	w := performJSON(r, http.MethodPost, "/device-logs/d1/escalate", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var record models.DeviceUsageRecord
	db.First(&record, "id = ?", "d1")
	if record.Flagged {
		t.Fatalf("escalation must clear the flag")
	}

	var incident models.Incident
	if err := db.First(&incident, "student_id = ?", "s1").Error; err != nil {
		t.Fatalf("escalation must create an incident: %v", err)
	}
	var digitalMisuse models.IncidentType
	db.Where("name = ?", "Digital Misuse").First(&digitalMisuse)
	if incident.IncidentTypeID != digitalMisuse.ID {
		t.Fatalf("escalated incident must be Digital Misuse, got type %s", incident.IncidentTypeID)
	}
}

func TestEscalateUnflaggedRecordRejected(t *testing.T) {
	db := setupTestDB(t)
	dc := NewDeviceController(db)

	seedStudent(t, db, "s1", "101234567890", "Rafael", "Santos")
	record := models.DeviceUsageRecord{ID: "d1", StudentID: "s1", DeviceID: "TAB-0042", Flagged: false}
	db.Create(&record)

	r := testRouter(teacherClaims())
	r.POST("/device-logs/:id/escalate", dc.EscalateFlag)
	w := performJSON(r, http.MethodPost, "/device-logs/d1/escalate", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unflagged record, got %d", w.Code)
	}
}
