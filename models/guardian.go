package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Guardian struct {
	ID                    string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
	StudentID             string    `gorm:"not null;type:varchar(64);index" json:"student_id"`
	FirstName             string    `gorm:"not null" json:"first_name"`
	LastName              string    `gorm:"not null" json:"last_name"`
	RelationshipToStudent string    `gorm:"type:varchar(50)" json:"relationship_to_student"`
	ContactNumber         string    `gorm:"type:varchar(30)" json:"contact_number"`
	Email                 string    `json:"email"`
	Address               string    `json:"address"`
}

func (g *Guardian) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return nil
}
