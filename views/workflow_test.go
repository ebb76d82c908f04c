package views

import (
	"testing"

	"github.com/safe-edu/api-go/models"
)

// Walks a small campus through a reporting cycle and checks what each role
// ends up seeing plus the resulting dashboard numbers.
func TestIncidentReviewAcrossRoles(t *testing.T) {
	students := []models.Student{
		{ID: "s1", LRN: "101234567890", FirstName: "Rafael", LastName: "Santos"},
		{ID: "s2", LRN: "101234567891", FirstName: "Maria Clara", LastName: "Dela Cruz"},
		{ID: "s3", LRN: "101234567892", FirstName: "Jose", LastName: "Rizal"},
	}
	incidents := []models.Incident{
		{ID: "i1", StudentID: "s1", ReportedByUserID: "u_teacher", Status: models.IncidentStatusPending},
		{ID: "i2", StudentID: "s2", ReportedByUserID: "u_counselor", Status: models.IncidentStatusResolved},
	}
	var plans []models.InterventionPlan

	admin := &models.User{ID: "u_admin", Role: models.RoleAdministrator}
	adminView := ForAccount(students, incidents, plans, admin)
	if len(adminView.Incidents) != 2 {
		t.Fatalf("administrator should see both incidents, got %d", len(adminView.Incidents))
	}
	if len(adminView.Students) != 3 {
		t.Fatalf("administrator should see all students, got %d", len(adminView.Students))
	}

	teacher := &models.User{ID: "u_teacher", Role: models.RoleTeacher}
	teacherView := ForAccount(students, incidents, plans, teacher)
	if len(teacherView.Incidents) != 1 || teacherView.Incidents[0].ID != "i1" {
		t.Fatalf("teacher should see only their own report, got %+v", teacherView.Incidents)
	}

	stats := Summarize(adminView.Incidents, nil)
	if stats.TotalIncidents != 2 {
		t.Fatalf("expected 2 total incidents, got %d", stats.TotalIncidents)
	}
	if stats.ActiveIncidents != 1 {
		t.Fatalf("expected 1 active incident, got %d", stats.ActiveIncidents)
	}
	if stats.ResolutionRate != 50 {
		t.Fatalf("expected 50%% resolution rate, got %d", stats.ResolutionRate)
	}
}
