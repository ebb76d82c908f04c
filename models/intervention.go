package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	InterventionStatusActive    = "Active"
	InterventionStatusCompleted = "Completed"
)

type InterventionPlan struct {
	ID               string         `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	StudentID        string         `gorm:"not null;type:varchar(64);index" json:"student_id"`
	Student          Student        `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	AssignedByUserID string         `gorm:"not null;type:varchar(64)" json:"assigned_by_user_id"`
	InterventionType string         `gorm:"not null" json:"intervention_type"`
	Description      string         `gorm:"type:text" json:"description"`
	StartDate        time.Time      `json:"start_date"`
	EndDate          *time.Time     `json:"end_date,omitempty"`
	Status           string         `gorm:"not null;default:'Active';type:varchar(20)" json:"status"` // Active, Completed
	LinkedIncidentIDs pq.StringArray `gorm:"type:text[]" json:"linked_incident_ids,omitempty"`
	// Milestones are append-only; existing entries are never edited
	Milestones     []Milestone `json:"milestones,omitempty" gorm:"foreignKey:InterventionPlanID"`
	AttachmentKey  string      `json:"attachment_key,omitempty"`
	AttachmentName string      `json:"attachment_name,omitempty"`
	AttachmentSize int64       `json:"attachment_size,omitempty"`
}

func (p *InterventionPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type Milestone struct {
	ID                 string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	InterventionPlanID string    `gorm:"not null;type:varchar(64);index" json:"intervention_plan_id"`
	Date               time.Time `json:"date"`
	Title              string    `gorm:"not null" json:"title"`
	Notes              string    `gorm:"type:text" json:"notes"`
	Outcome            string    `json:"outcome"`
	RecordedBy         string    `json:"recorded_by"`
}

func (m *Milestone) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
