package model

// ContactDetailsModel represents the contact_details table.
// Exactly one row per user (unique user_id), removed by cascade when the
// owning user row is deleted.
type ContactDetailsModel struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Address     string `gorm:"size:255;not null" json:"address"`
	PhoneNumber string `gorm:"size:50;not null" json:"phone_number"`
	UserID      int    `gorm:"not null;uniqueIndex" json:"user_id"`
}

func (ContactDetailsModel) TableName() string {
	return "contact_details"
}
