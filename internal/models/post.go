// Package models contains data structures for the application's domain models.
package models

import (
	"math"
	"strings"
	"time"
)

// wordsPerMinute is the assumed reading speed for read-time estimates.
const wordsPerMinute = 200

// Post represents a published article in the Inkwell application.
//
// Author, Categories and the computed counts are filled by the enrichment
// layer after the primary fetch; they are deliberately not declared as GORM
// associations so the store stays free of relation coupling.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author        UserSummary `gorm:"-" json:"author"`
	Categories    []Category  `gorm:"-" json:"categories,omitempty"`
	CommentsCount int         `gorm:"-" json:"comments_count"`
	LikesCount    int         `gorm:"-" json:"likes_count"`
	Liked         bool        `gorm:"-" json:"liked"`
	ReadTime      int         `gorm:"-" json:"read_time,omitempty"`
}

// EstimateReadTime returns ceil(wordCount/200) minutes for whitespace-split
// content. Empty content reads in zero minutes.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / float64(wordsPerMinute)))
}

// Category is a post classification label.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// PostCategory links posts to categories.
type PostCategory struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	PostID     uint `gorm:"not null;uniqueIndex:idx_post_category" json:"post_id"`
	CategoryID uint `gorm:"not null;uniqueIndex:idx_post_category;index" json:"category_id"`
}
