package views

import (
	"testing"

	"github.com/safe-edu/api-go/models"
)

func strPtr(s string) *string { return &s }

func fixtureRecords() ([]models.Student, []models.Incident, []models.InterventionPlan) {
	students := []models.Student{
		{ID: "s1", LRN: "101234567890", FirstName: "Rafael", LastName: "Santos"},
		{ID: "s2", LRN: "101234567891", FirstName: "Maria Clara", LastName: "Dela Cruz"},
		{ID: "demo-s1", LRN: "900000000001", FirstName: "Sample", LastName: "Learner"},
	}
	incidents := []models.Incident{
		{ID: "i1", StudentID: "s1", ReportedByUserID: "u_teacher", Status: models.IncidentStatusPending},
		{ID: "i2", StudentID: "s2", ReportedByUserID: "u_counselor", Status: models.IncidentStatusResolved},
		{ID: "i3", StudentID: "s1", ReportedByUserID: "u_counselor", Status: models.IncidentStatusClosed},
	}
	plans := []models.InterventionPlan{
		{ID: "p1", StudentID: "s1", Status: models.InterventionStatusActive},
		{ID: "p2", StudentID: "s2", Status: models.InterventionStatusCompleted},
	}
	return students, incidents, plans
}

func TestForAccountAdministrator(t *testing.T) {
	students, incidents, plans := fixtureRecords()
	admin := &models.User{ID: "u_admin", Role: models.RoleAdministrator}

	view := ForAccount(students, incidents, plans, admin)
	if len(view.Students) != 3 || len(view.Incidents) != 3 || len(view.Interventions) != 2 {
		t.Fatalf("administrator should see everything, got %d/%d/%d",
			len(view.Students), len(view.Incidents), len(view.Interventions))
	}
}

func TestForAccountCounselor(t *testing.T) {
	students, incidents, plans := fixtureRecords()
	counselor := &models.User{ID: "u_counselor", Role: models.RoleCounselor}

	view := ForAccount(students, incidents, plans, counselor)
	if len(view.Incidents) != 3 {
		t.Fatalf("counselor should see all incidents, got %d", len(view.Incidents))
	}
}

func TestForAccountTeacherOwnReportsOnly(t *testing.T) {
	students, incidents, plans := fixtureRecords()
	teacher := &models.User{ID: "u_teacher", Role: models.RoleTeacher}

	view := ForAccount(students, incidents, plans, teacher)
	if len(view.Students) != 3 {
		t.Fatalf("teacher students should pass through, got %d", len(view.Students))
	}
	if len(view.Interventions) != 2 {
		t.Fatalf("teacher interventions should pass through, got %d", len(view.Interventions))
	}
	if len(view.Incidents) != 1 {
		t.Fatalf("expected 1 own incident, got %d", len(view.Incidents))
	}
	for _, inc := range view.Incidents {
		if inc.ReportedByUserID != teacher.ID {
			t.Fatalf("incident %s not reported by teacher", inc.ID)
		}
	}
}

func TestForAccountParentLinked(t *testing.T) {
	students, incidents, plans := fixtureRecords()
	parent := &models.User{ID: "u_parent", Role: models.RoleParent, LinkedLRN: strPtr("101234567890")}

	view := ForAccount(students, incidents, plans, parent)
	// demo student plus the linked one
	if len(view.Students) != 2 {
		t.Fatalf("expected demo + linked student, got %d", len(view.Students))
	}
	if len(view.Incidents) != 2 {
		t.Fatalf("expected the linked student's 2 incidents, got %d", len(view.Incidents))
	}
	for _, inc := range view.Incidents {
		if inc.StudentID != "s1" {
			t.Fatalf("incident %s belongs to %s, not the linked student", inc.ID, inc.StudentID)
		}
	}
	if len(view.Interventions) != 1 || view.Interventions[0].ID != "p1" {
		t.Fatalf("expected plan p1 only, got %v", view.Interventions)
	}
}

func TestForAccountParentNoMatchIsSilentlyEmpty(t *testing.T) {
	students, incidents, plans := fixtureRecords()
	parent := &models.User{ID: "u_parent", Role: models.RoleParent, LinkedLRN: strPtr("000000000000")}

	view := ForAccount(students, incidents, plans, parent)
	if len(view.Incidents) != 0 || len(view.Interventions) != 0 {
		t.Fatalf("unlinked parent must see no incidents or plans, got %d/%d",
			len(view.Incidents), len(view.Interventions))
	}
	for _, s := range view.Students {
		if s.ID != "demo-s1" {
			t.Fatalf("unlinked parent may see demo records only, saw %s", s.ID)
		}
	}
}

func TestForAccountParentNilLRN(t *testing.T) {
	students, incidents, plans := fixtureRecords()
	parent := &models.User{ID: "u_parent", Role: models.RoleParent}

	view := ForAccount(students, incidents, plans, parent)
	if len(view.Incidents) != 0 || len(view.Interventions) != 0 {
		t.Fatalf("parent without linked LRN must see no records")
	}
}

func TestForAccountUnknownRoleFailsClosed(t *testing.T) {
	students, incidents, plans := fixtureRecords()
	stranger := &models.User{ID: "u_x", Role: "Superintendent"}

	view := ForAccount(students, incidents, plans, stranger)
	if len(view.Students) != 0 || len(view.Incidents) != 0 || len(view.Interventions) != 0 {
		t.Fatalf("unrecognized role must see nothing, got %d/%d/%d",
			len(view.Students), len(view.Incidents), len(view.Interventions))
	}
}

func TestForAccountNilAccount(t *testing.T) {
	students, incidents, plans := fixtureRecords()
	view := ForAccount(students, incidents, plans, nil)
	if len(view.Students) != 0 || len(view.Incidents) != 0 || len(view.Interventions) != 0 {
		t.Fatalf("nil account must see nothing")
	}
}
