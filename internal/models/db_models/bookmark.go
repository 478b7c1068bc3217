package db_models

import "github.com/google/uuid"

type Bookmark struct {
	BaseModel
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_bookmark_user_trip;index;not null"`
	Title        string    `gorm:"uniqueIndex:idx_bookmark_user_trip;not null"`
	Location     string    `gorm:"uniqueIndex:idx_bookmark_user_trip;not null"`
	Description  string
	TravelMode   string    `gorm:"size:64;index"`
	BookmarkedAt int64     `gorm:"not null;index"`
}
