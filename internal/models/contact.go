package models

import "time"

// ContactMessage is a visitor inquiry submitted through the public
// site. Reference is an opaque code returned to the sender.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Reference string    `gorm:"uniqueIndex;not null" json:"reference"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}
