package models

import "time"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User is one parish household account: its login and its dues ledger.
// Total is derived from the four dues fields and is never accepted
// from a client; the repository recomputes it on every dues write.
type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"not null" json:"name"`
	Username          string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash      string    `gorm:"not null" json:"-"`
	PhotoRef          string    `json:"photoRef,omitempty"`
	MonthlyCollection int64     `gorm:"not null;default:0" json:"monthlyCollection"`
	Cleaning          int64     `gorm:"not null;default:0" json:"cleaning"`
	CommonWork        int64     `gorm:"not null;default:0" json:"commonWork"`
	FuneralFund       int64     `gorm:"not null;default:0" json:"funeralFund"`
	Total             int64     `gorm:"not null;default:0" json:"total"`
	IsAdmin           bool      `gorm:"not null;default:false" json:"isAdmin"`
	CreatedAt         time.Time `gorm:"not null" json:"createdAt"`
}

func (user *User) Role() string {
	if user.IsAdmin {
		return RoleAdmin
	}
	return RoleMember
}
