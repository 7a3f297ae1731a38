package models

import "time"

// Event is a single calendar entry. No recurrence model.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	TimeOfDay   string    `json:"time"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
}
