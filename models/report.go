package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReportStatusProcessing = "Processing"
	ReportStatusReady      = "Ready"
)

// GeneratedReport rows form an append-only list; finished reports flip from
// Processing to Ready once the file lands in object storage.
type GeneratedReport struct {
	ID            string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Title         string    `gorm:"not null" json:"title"`
	Type          string    `gorm:"not null;type:varchar(50)" json:"type"` // Incident Summary, Digital Safety Audit, Welfare Progress, Annual Review
	GeneratedBy   string    `gorm:"not null;type:varchar(64)" json:"generated_by"`
	DateGenerated time.Time `json:"date_generated"`
	Status        string    `gorm:"not null;default:'Processing';type:varchar(20)" json:"status"` // Processing, Ready
	FileKey       string    `json:"file_key,omitempty"`
	FileSize      int64     `json:"file_size"`
}

func (r *GeneratedReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
