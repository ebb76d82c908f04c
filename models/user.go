package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleTeacher       = "Teacher"
	RoleCounselor     = "Counselor"
	RoleAdministrator = "Administrator"
	RoleParent        = "Parent"
)

type User struct {
	ID        string         `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  *string        `gorm:"type:varchar(255)" json:"-"` // Don't expose password in JSON
	FullName  string         `gorm:"not null" json:"full_name"`
	Role      string         `gorm:"not null;type:varchar(20)" json:"role"` // Teacher, Counselor, Administrator, Parent
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	// Parent accounts are linked to exactly one student by learner reference number
	LinkedLRN     *string        `gorm:"type:varchar(20)" json:"linked_lrn,omitempty"`
	GoogleID      *string        `gorm:"unique" json:"-"`
	Provider      string         `gorm:"default:'email'" json:"provider"`
	LastLogin     *time.Time     `json:"last_login,omitempty"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
