package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceUsageRecord is a logged device session. A flagged record is pending
// either dismissal (flag cleared) or escalation into an Incident.
type DeviceUsageRecord struct {
	ID                  string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	StudentID           string    `gorm:"not null;type:varchar(64);index" json:"student_id"`
	Student             Student   `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	DeviceID            string    `gorm:"not null;type:varchar(64)" json:"device_id"`
	UsageStart          time.Time `json:"usage_start"`
	UsageEnd            time.Time `json:"usage_end"`
	ActivityDescription string    `gorm:"type:text" json:"activity_description"`
	Flagged             bool      `gorm:"default:false;index" json:"flagged"`
}

func (d *DeviceUsageRecord) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}
