package models

import "time"

// Family is a directory entry for one household, distinct from the
// User login ledger. Members are replaced wholesale on update.
type Family struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	HeadName      string         `gorm:"not null" json:"headName"`
	ContactNumber string         `json:"contactNumber"`
	Address       string         `json:"address"`
	PhotoRef      string         `json:"photoRef,omitempty"`
	Members       []FamilyMember `gorm:"constraint:OnDelete:CASCADE" json:"members"`
	CreatedAt     time.Time      `gorm:"not null" json:"createdAt"`
}

type FamilyMember struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FamilyID uint   `gorm:"index;not null" json:"-"`
	Position int    `gorm:"not null;default:0" json:"-"`
	Name     string `gorm:"not null" json:"name"`
	Age      int    `gorm:"not null" json:"age"`
	Relation string `gorm:"not null" json:"relation"`
}
