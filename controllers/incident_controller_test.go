package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/safe-edu/api-go/models"
	"github.com/safe-edu/api-go/utils"
)

func teacherClaims() *utils.UserClaims {
	return &utils.UserClaims{UserID: "u_teacher", Role: models.RoleTeacher, FullName: "Ms. Sarah Teacher"}
}

func TestUpdateIncidentStatus(t *testing.T) {
	db := setupTestDB(t)
	ic := NewIncidentController(db)

	seedStudent(t, db, "s1", "101234567890", "Rafael", "Santos")
	incident := models.Incident{
		ID: "i1", StudentID: "s1", ReportedByUserID: "u_teacher",
		IncidentTypeID: "it1", DateReported: time.Now(), DateOccurred: time.Now(),
		Location: "Main Hallway", Description: "Test incident",
		Status: models.IncidentStatusPending,
	}
	if err := db.Create(&incident).Error; err != nil {
		t.Fatalf("failed to seed incident: %v", err)
	}

	before := countAuditEntries(t, db, models.AuditCategoryAudit)

	r := testRouter(teacherClaims())
	r.PATCH("/incidents/:id/status", ic.UpdateIncidentStatus)
	w := performJSON(r, http.MethodPatch, "/incidents/i1/status", map[string]string{"status": "Resolved"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Incident
	if err := db.First(&updated, "id = ?", "i1").Error; err != nil {
		t.Fatalf("failed to reload incident: %v", err)
	}
	if updated.Status != models.IncidentStatusResolved {
		t.Fatalf("expected status Resolved, got %s", updated.Status)
	}
	if updated.Location != "Main Hallway" || updated.Description != "Test incident" {
		t.Fatalf("status update must not touch other fields")
	}

	after := countAuditEntries(t, db, models.AuditCategoryAudit)
	if after != before+1 {
		t.Fatalf("expected exactly one new Audit entry, got %d", after-before)
	}
}

func TestUpdateIncidentStatusAcceptsBackwardTransition(t *testing.T) {
	db := setupTestDB(t)
	ic := NewIncidentController(db)

	seedStudent(t, db, "s1", "101234567890", "Rafael", "Santos")
	incident := models.Incident{
		ID: "i1", StudentID: "s1", ReportedByUserID: "u_teacher",
		IncidentTypeID: "it1", Status: models.IncidentStatusClosed,
	}
	db.Create(&incident)

	r := testRouter(teacherClaims())
	r.PATCH("/incidents/:id/status", ic.UpdateIncidentStatus)
	// Closed back to Pending is allowed
	w := performJSON(r, http.MethodPatch, "/incidents/i1/status", map[string]string{"status": "Pending"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for backward transition, got %d", w.Code)
	}
}

func TestUpdateIncidentStatusRejectsUnknownValue(t *testing.T) {
	db := setupTestDB(t)
	ic := NewIncidentController(db)

	r := testRouter(teacherClaims())
	r.PATCH("/incidents/:id/status", ic.UpdateIncidentStatus)
	w := performJSON(r, http.MethodPatch, "/incidents/i1/status", map[string]string{"status": "Archived"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status value, got %d", w.Code)
	}
}

func TestCreateIncidentSetsParentReportedFlag(t *testing.T) {
	db := setupTestDB(t)
	ic := NewIncidentController(db)

	seedStudent(t, db, "s1", "101234567890", "Rafael", "Santos")

	lrn := "101234567890"
	parent := &utils.UserClaims{UserID: "u_parent", Role: models.RoleParent, FullName: "Elena Santos", LinkedLRN: &lrn}
	r := testRouter(parent)
	r.POST("/incidents", ic.CreateIncident)

	w := performJSON(r, http.MethodPost, "/incidents", map[string]interface{}{
		"studentId":      "s1",
		"incidentTypeId": "it4",
		"dateOccurred":   time.Now().Format(time.RFC3339),
		"location":       "School Bus",
		"description":    "Reported altercation on the ride home.",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var incident models.Incident
	if err := db.First(&incident, "student_id = ?", "s1").Error; err != nil {
		t.Fatalf("incident was not persisted: %v", err)
	}
	if !incident.ParentReported {
		t.Fatalf("incident submitted by a parent must carry the parent-reported flag")
	}
	if incident.Status != models.IncidentStatusPending {
		t.Fatalf("new incidents start Pending, got %s", incident.Status)
	}

	if n := countAuditEntries(t, db, models.AuditCategoryRegistry); n != 1 {
		t.Fatalf("expected one Registry audit entry, got %d", n)
	}

	var notifications []models.Notification
	db.Find(&notifications)
	if len(notifications) != 1 || notifications[0].Type != models.NotificationTypeIncident {
		t.Fatalf("expected one incident notification, got %+v", notifications)
	}
}

func TestCreateIncidentUnknownStudent(t *testing.T) {
	db := setupTestDB(t)
	ic := NewIncidentController(db)

	r := testRouter(teacherClaims())
	r.POST("/incidents", ic.CreateIncident)
	w := performJSON(r, http.MethodPost, "/incidents", map[string]interface{}{
		"studentId":      "missing",
		"incidentTypeId": "it1",
		"dateOccurred":   time.Now().Format(time.RFC3339),
		"location":       "Gym",
		"description":    "x",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown student, got %d", w.Code)
	}
}
