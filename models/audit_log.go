package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditCategorySecurity = "Security"
	AuditCategoryAccess   = "Access"
	AuditCategoryRegistry = "Registry"
	AuditCategoryAudit    = "Audit"
)

// AuditLogEntry is append-only: entries are never mutated or deleted once
// written. There are no update or delete paths for this model anywhere.
type AuditLogEntry struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `gorm:"not null;type:varchar(64);index" json:"user_id"`
	UserName  string    `json:"user_name"`
	Action    string    `gorm:"not null" json:"action"`
	Category  string    `gorm:"not null;type:varchar(20);index" json:"category"` // Security, Access, Registry, Audit
	IPAddress string    `gorm:"type:varchar(45)" json:"ip_address"`
}

func (a *AuditLogEntry) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
