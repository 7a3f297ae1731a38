package models

import "time"

const (
	MediaKindPhoto = "photo"
	MediaKindVideo = "video"
)

const (
	MediaCategoryWorship  = "worship"
	MediaCategoryFestival = "festival"
	MediaCategoryYouth    = "youth"
	MediaCategoryCharity  = "charity"
	MediaCategoryOther    = "other"
)

// MediaItem is a gallery asset. Either Payload (inline base64) or
// Filename (a stored object reference) is set, never both empty.
type MediaItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Category    string    `gorm:"not null" json:"category"`
	Kind        string    `gorm:"not null" json:"kind"`
	Payload     string    `json:"payload,omitempty"`
	Filename    string    `json:"filename,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
}

func IsValidMediaKind(kind string) bool {
	switch kind {
	case MediaKindPhoto, MediaKindVideo:
		return true
	default:
		return false
	}
}

func IsValidMediaCategory(category string) bool {
	switch category {
	case MediaCategoryWorship, MediaCategoryFestival, MediaCategoryYouth, MediaCategoryCharity, MediaCategoryOther:
		return true
	default:
		return false
	}
}
