package utils

import (
	"log"
	"time"

	"github.com/safe-edu/api-go/models"
	"gorm.io/gorm"
)

// AppendAuditLog writes one audit entry. Best effort: the caller's main write
// is never rolled back when the audit insert fails, we only log the failure.
func AppendAuditLog(db *gorm.DB, actor *UserClaims, action, category, ip string) {
	if actor == nil {
		return
	}
	entry := models.AuditLogEntry{
		Timestamp: time.Now(),
		UserID:    actor.UserID,
		UserName:  actor.FullName,
		Action:    action,
		Category:  category,
		IPAddress: ip,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("audit log write failed for %s: %v", action, err)
	}
}

// AppendNotification records a session-surfaced notification. Same best-effort
// contract as AppendAuditLog.
func AppendNotification(db *gorm.DB, title, message, notifType string) {
	notif := models.Notification{
		Title:     title,
		Message:   message,
		Timestamp: time.Now(),
		Type:      notifType,
	}
	if err := db.Create(&notif).Error; err != nil {
		log.Printf("notification write failed for %q: %v", title, err)
	}
}
