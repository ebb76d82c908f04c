package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID        string         `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	// LRN is the learner reference number, unique across the registry
	LRN           string             `gorm:"column:lrn;unique;not null;type:varchar(20)" json:"lrn"`
	FirstName     string             `gorm:"not null" json:"first_name"`
	LastName      string             `gorm:"not null" json:"last_name"`
	MiddleName    string             `json:"middle_name,omitempty"`
	DateOfBirth   time.Time          `json:"date_of_birth"`
	Gender        string             `gorm:"type:varchar(20)" json:"gender"`
	GradeLevel    string             `gorm:"type:varchar(10)" json:"grade_level"`
	Section       string             `gorm:"type:varchar(50)" json:"section"`
	Address       string             `json:"address"`
	ContactNumber string             `gorm:"type:varchar(30)" json:"contact_number"`
	Background    string             `gorm:"type:text" json:"background,omitempty"`
	Incidents     []Incident         `json:"incidents,omitempty" gorm:"foreignKey:StudentID"`
	Interventions []InterventionPlan `json:"interventions,omitempty" gorm:"foreignKey:StudentID"`
	DeviceLogs    []DeviceUsageRecord `json:"device_logs,omitempty" gorm:"foreignKey:StudentID"`
	Guardians     []Guardian          `json:"guardians,omitempty" gorm:"foreignKey:StudentID"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
