package models

import (
	"time"
)

// Report is a user-filed complaint about a post. Resolution is one-way:
// an open report can be resolved, never re-opened.
type Report struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	ReporterID uint       `gorm:"not null;index" json:"reporter_id"`
	PostID     uint       `gorm:"not null;index" json:"post_id"`
	Reason     string     `gorm:"type:text;not null" json:"reason"`
	Resolved   bool       `gorm:"default:false;index" json:"resolved"`
	ResolvedAt *time.Time `json:"resolved_at"`
	ResolvedBy *uint      `json:"resolved_by"`
	CreatedAt  time.Time  `json:"created_at"`

	// Reporter and Post are filled by the enrichment layer.
	Reporter UserSummary `gorm:"-" json:"reporter"`
	Post     *Post       `gorm:"-" json:"post,omitempty"`
}
