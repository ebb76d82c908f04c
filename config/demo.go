package config

import (
	"fmt"
	"log"
	"time"

	"github.com/safe-edu/api-go/models"
	"gorm.io/gorm"
)

// Predefined offline accounts accepted as a login shortcut without touching
// the users table. Mirrors the demo tuples the dashboard ships with.
type BypassAccount struct {
	Email    string
	Password string
	User     models.User
}

func strRef(s string) *string { return &s }

func BypassAccounts() []BypassAccount {
	return []BypassAccount{
		{
			Email:    "admin@gmail.com",
			Password: "admin123",
			User: models.User{
				ID: "demo-u-admin", Username: "admin", Email: "admin@gmail.com",
				FullName: "System Administrator", Role: models.RoleAdministrator, IsActive: true,
			},
		},
		{
			Email:    "teacher@gmail.com",
			Password: "teacher123",
			User: models.User{
				ID: "demo-u-teacher", Username: "teacher", Email: "teacher@gmail.com",
				FullName: "Ms. Sarah Teacher", Role: models.RoleTeacher, IsActive: true,
			},
		},
		{
			Email:    "counselor@gmail.com",
			Password: "counselor123",
			User: models.User{
				ID: "demo-u-counselor", Username: "counselor", Email: "counselor@gmail.com",
				FullName: "Dr. John Counselor", Role: models.RoleCounselor, IsActive: true,
			},
		},
		{
			Email:    "parent@gmail.com",
			Password: "parent123",
			User: models.User{
				ID: "demo-u-parent", Username: "parent", Email: "parent@gmail.com",
				FullName: "Elena Santos", Role: models.RoleParent, IsActive: true,
				LinkedLRN: strRef("900000000001"),
			},
		},
	}
}

// FindBypassAccount matches a credential pair against the offline accounts.
// Returns nil when no tuple matches.
func FindBypassAccount(email, password string) *models.User {
	for _, acc := range BypassAccounts() {
		if acc.Email == email && acc.Password == password {
			user := acc.User
			return &user
		}
	}
	return nil
}

// Static incident type lookup set, inserted once at startup.
func SeedIncidentTypes(db *gorm.DB) {
	types := []models.IncidentType{
		{ID: "it1", Name: "Bullying", Description: "Repeated harmful behavior towards a peer."},
		{ID: "it2", Name: "Academic Dishonesty", Description: "Cheating, plagiarism, or unauthorized collaboration."},
		{ID: "it3", Name: "Property Damage", Description: "Vandalism or accidental damage to school property."},
		{ID: "it4", Name: "Verbal Altercation", Description: "Heated argument involving inappropriate language."},
		{ID: "it5", Name: "Digital Misuse", Description: "Unauthorized access or inappropriate content consumption on school devices."},
		{ID: "it6", Name: "Tardiness", Description: "Repeated failure to arrive on time."},
		{ID: "it7", Name: "Disrespectful Language", Description: "Inappropriate language directed at staff or peers."},
	}
	for _, it := range types {
		if err := db.Where(models.IncidentType{ID: it.ID}).FirstOrCreate(&it).Error; err != nil {
			log.Printf("incident type seed failed for %s: %v", it.Name, err)
		}
	}
}

// Demo records overlaid onto live query results so a fresh install still has
// something to show. All ids carry the demo- prefix the view layer recognizes.

func DemoStudents() []models.Student {
	return []models.Student{
		{
			ID: "demo-s1", LRN: "900000000001", FirstName: "Rafael", LastName: "Santos",
			DateOfBirth: time.Date(2008, 5, 15, 0, 0, 0, 0, time.UTC), Gender: "Male",
			GradeLevel: "10", Section: "Mabini", Address: "Bgy 1, Quezon City",
			ContactNumber: "0917-123-4567",
			Background:    "Rafael is a highly creative student with a passion for digital arts. He often struggles with time management during high-pressure exam periods.",
		},
		{
			ID: "demo-s2", LRN: "900000000002", FirstName: "Maria Clara", LastName: "Dela Cruz",
			DateOfBirth: time.Date(2009, 11, 20, 0, 0, 0, 0, time.UTC), Gender: "Female",
			GradeLevel: "9", Section: "Rizal", Address: "Bgy 5, Manila",
			ContactNumber: "0918-234-5678",
			Background:    "Maria Clara is an academic achiever but has recently shown signs of social anxiety.",
		},
		{
			ID: "demo-s3", LRN: "900000000003", FirstName: "Ethan James", LastName: "Miller",
			DateOfBirth: time.Date(2007, 2, 10, 0, 0, 0, 0, time.UTC), Gender: "Male",
			GradeLevel: "11", Section: "Bonifacio", Address: "Bgy 12, Makati",
			ContactNumber: "0919-345-6789",
			Background:    "Ethan is an athletic student who excels in team sports. He occasionally faces challenges with verbal altercations.",
		},
	}
}

func DemoIncidents() []models.Incident {
	incidents := make([]models.Incident, 0, 8)
	studentIDs := []string{"demo-s1", "demo-s2", "demo-s3"}
	typeIDs := []string{"it1", "it2", "it3", "it4", "it5", "it6", "it7"}
	for i := 0; i < 8; i++ {
		status := models.IncidentStatusPending
		followUp := ""
		if i%2 == 0 {
			status = models.IncidentStatusResolved
			followUp = "Resolved via peer-to-peer mediation session."
		}
		when := time.Now().AddDate(0, 0, -i)
		incidents = append(incidents, models.Incident{
			ID:               fmt.Sprintf("demo-inc-%d", i+1),
			StudentID:        studentIDs[i%3],
			ReportedByUserID: "demo-u-teacher",
			IncidentTypeID:   typeIDs[i%7],
			DateReported:     when,
			DateOccurred:     when,
			Location:         "Main Hallway",
			Description:      "Example incident log for behavioral tracking and resolution demonstration.",
			ImmediateAction:  "Counselor referral initiated.",
			Status:           status,
			FollowUpNotes:    followUp,
		})
	}
	return incidents
}

func DemoInterventions() []models.InterventionPlan {
	return []models.InterventionPlan{
		{
			ID: "demo-int-1", StudentID: "demo-s1", AssignedByUserID: "demo-u-counselor",
			InterventionType: "Counseling Session",
			Description:      "Weekly anger management and social skills training.",
			StartDate:        time.Now().AddDate(0, 0, -14),
			Status:           models.InterventionStatusActive,
			Milestones: []models.Milestone{
				{
					ID: "demo-m1", InterventionPlanID: "demo-int-1",
					Date:       time.Now().AddDate(0, 0, -13),
					Title:      "Initial Assessment",
					Notes:      "Rafael was hesitant but acknowledged the impact of his stress on others.",
					Outcome:    "Proceed with weekly sessions",
					RecordedBy: "Dr. John Counselor",
				},
			},
		},
		{
			ID: "demo-int-2", StudentID: "demo-s2", AssignedByUserID: "demo-u-counselor",
			InterventionType: "Peer Support Group",
			Description:      "Structured small-group sessions to build social confidence.",
			StartDate:        time.Now().AddDate(0, 0, -7),
			Status:           models.InterventionStatusActive,
		},
	}
}

func DemoDeviceLogs() []models.DeviceUsageRecord {
	return []models.DeviceUsageRecord{
		{
			ID: "demo-dev-1", StudentID: "demo-s1", DeviceID: "TAB-0042",
			UsageStart:          time.Now().Add(-3 * time.Hour),
			UsageEnd:            time.Now().Add(-2 * time.Hour),
			ActivityDescription: "Attempted access to restricted social media during class hours.",
			Flagged:             true,
		},
		{
			ID: "demo-dev-2", StudentID: "demo-s2", DeviceID: "LAB-0117",
			UsageStart:          time.Now().Add(-26 * time.Hour),
			UsageEnd:            time.Now().Add(-25 * time.Hour),
			ActivityDescription: "Research on assigned science topic.",
			Flagged:             false,
		},
		{
			ID: "demo-dev-3", StudentID: "demo-s3", DeviceID: "TAB-0008",
			UsageStart:          time.Now().Add(-50 * time.Hour),
			UsageEnd:            time.Now().Add(-49 * time.Hour),
			ActivityDescription: "Unauthorized game installation detected on school tablet.",
			Flagged:             true,
		},
	}
}

func DemoGuardians() []models.Guardian {
	return []models.Guardian{
		{
			ID: "demo-g1", StudentID: "demo-s1", FirstName: "Elena", LastName: "Santos",
			RelationshipToStudent: "Mother", ContactNumber: "0917-111-2233",
			Email: "parent@gmail.com", Address: "Bgy 1, Quezon City",
		},
		{
			ID: "demo-g2", StudentID: "demo-s2", FirstName: "Jose", LastName: "Dela Cruz",
			RelationshipToStudent: "Father", ContactNumber: "0918-444-5566",
			Email: "jose.delacruz@example.com", Address: "Bgy 5, Manila",
		},
	}
}
