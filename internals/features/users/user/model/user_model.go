package model

import (
	"time"
)

// UserModel represents the users table.
type UserModel struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"size:255;not null" json:"username"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Active   bool   `gorm:"not null;default:true" json:"active"`

	// 1:0..1 — the contact details row is owned by the user and goes with it.
	ContactDetails *ContactDetailsModel `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"contact_details,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
