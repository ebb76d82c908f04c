package views

import (
	"strings"

	"github.com/safe-edu/api-go/models"
)

// DemoIDPrefix marks seeded sample records. They stay visible to Parent
// accounts so a freshly provisioned account is never an empty dashboard.
const DemoIDPrefix = "demo-"

// ScopedView is the subset of registry records a signed-in account may see.
type ScopedView struct {
	Students      []models.Student
	Incidents     []models.Incident
	Interventions []models.InterventionPlan
}

// ForAccount filters the full record sets down to what the account's role is
// authorized to see. It is a pure function of its inputs.
//
// Parent accounts resolve their student through the linked LRN; a parent whose
// LRN matches no student gets empty lists, not an error. Unrecognized roles
// fail closed and see nothing.
func ForAccount(students []models.Student, incidents []models.Incident, plans []models.InterventionPlan, account *models.User) ScopedView {
	if account == nil {
		return ScopedView{}
	}

	switch account.Role {
	case models.RoleCounselor, models.RoleAdministrator:
		return ScopedView{Students: students, Incidents: incidents, Interventions: plans}

	case models.RoleTeacher:
		var mine []models.Incident
		for _, inc := range incidents {
			if inc.ReportedByUserID == account.ID {
				mine = append(mine, inc)
			}
		}
		return ScopedView{Students: students, Incidents: mine, Interventions: plans}

	case models.RoleParent:
		return forParent(students, incidents, plans, account)
	}

	// Unknown role: deny all data rather than fall through to full visibility.
	return ScopedView{}
}

func forParent(students []models.Student, incidents []models.Incident, plans []models.InterventionPlan, account *models.User) ScopedView {
	var view ScopedView

	var linked *models.Student
	for i := range students {
		if account.LinkedLRN != nil && students[i].LRN == *account.LinkedLRN {
			linked = &students[i]
			break
		}
	}

	for _, s := range students {
		if strings.HasPrefix(s.ID, DemoIDPrefix) {
			view.Students = append(view.Students, s)
		}
	}
	if linked == nil {
		// Silently empty: the account simply has nothing linked yet.
		return view
	}
	if !strings.HasPrefix(linked.ID, DemoIDPrefix) {
		view.Students = append(view.Students, *linked)
	}

	for _, inc := range incidents {
		if inc.StudentID == linked.ID {
			view.Incidents = append(view.Incidents, inc)
		}
	}
	for _, p := range plans {
		if p.StudentID == linked.ID {
			view.Interventions = append(view.Interventions, p)
		}
	}
	return view
}
