// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Comment represents a comment on a post. A comment with a nil
// ParentCommentID is top-level; a non-nil parent references a top-level
// comment (one nesting level, replies-to-replies group under the id they
// name).
type Comment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PostID          uint      `gorm:"not null;index" json:"post_id"`
	UserID          uint      `gorm:"not null" json:"user_id"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	ParentCommentID *uint     `gorm:"index" json:"parent_comment_id"`
	CreatedAt       time.Time `json:"created_at"`

	// Author is filled by the enrichment layer, not a declared association.
	Author UserSummary `gorm:"-" json:"author"`
}

// IsTopLevel reports whether the comment has no parent reference.
func (c *Comment) IsTopLevel() bool {
	return c.ParentCommentID == nil
}

// excerptLen is the maximum length of comment excerpts used in notifications.
const excerptLen = 50

// Excerpt returns the first 50 characters of the content, with "..." appended
// when the content is longer.
func (c *Comment) Excerpt() string {
	runes := []rune(c.Content)
	if len(runes) <= excerptLen {
		return c.Content
	}
	return string(runes[:excerptLen]) + "..."
}
