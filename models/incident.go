package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	IncidentStatusPending       = "Pending"
	IncidentStatusInvestigating = "Investigating"
	IncidentStatusResolved      = "Resolved"
	IncidentStatusClosed        = "Closed"
)

type IncidentType struct {
	ID          string `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string `gorm:"unique;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (it *IncidentType) BeforeCreate(tx *gorm.DB) error {
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	return nil
}

// Incident records are created by report submission and mutated only via
// status updates. They are never hard-deleted.
type Incident struct {
	ID               string       `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
	StudentID        string       `gorm:"not null;type:varchar(64);index" json:"student_id"`
	Student          Student      `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	ReportedByUserID string       `gorm:"not null;type:varchar(64);index" json:"reported_by_user_id"`
	IncidentTypeID   string       `gorm:"not null;type:varchar(64)" json:"incident_type_id"`
	IncidentType     IncidentType `json:"incident_type,omitempty" gorm:"foreignKey:IncidentTypeID"`
	DateReported     time.Time    `json:"date_reported"`
	DateOccurred     time.Time    `json:"date_occurred"`
	Location         string       `json:"location"`
	Description      string       `gorm:"type:text" json:"description"`
	ImmediateAction  string       `gorm:"type:text" json:"immediate_action"`
	Status           string       `gorm:"not null;default:'Pending';type:varchar(20)" json:"status"` // Pending, Investigating, Resolved, Closed
	IsAnonymous      bool         `gorm:"default:false" json:"is_anonymous"`
	ParentReported   bool         `gorm:"default:false" json:"parent_reported"`
	FollowUpNotes    string       `gorm:"type:text" json:"follow_up_notes,omitempty"`
}

func (i *Incident) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
