package models

import (
	"time"
)

// ReadingList is a user-curated collection of posts.
type ReadingList struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	IsPublic    bool      `gorm:"default:false" json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Posts is filled by the enrichment layer from the join rows.
	Posts []Post `gorm:"-" json:"posts,omitempty"`
}

// ReadingListPost links a reading list to a saved post.
type ReadingListPost struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ReadingListID uint      `gorm:"not null;uniqueIndex:idx_list_post" json:"reading_list_id"`
	PostID        uint      `gorm:"not null;uniqueIndex:idx_list_post" json:"post_id"`
	CreatedAt     time.Time `json:"created_at"`
}
