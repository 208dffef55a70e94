package models

import (
	"time"
)

// NotificationType enumerates the events that produce a notification row.
type NotificationType string

const (
	// NotificationTypeComment is sent to a post author when someone comments.
	NotificationTypeComment NotificationType = "comment"
	// NotificationTypeReply is sent to a comment author when someone replies.
	NotificationTypeReply NotificationType = "reply"
	// NotificationTypeLike is sent to a post author when someone likes the post.
	NotificationTypeLike NotificationType = "like"
)

// Notification is a best-effort message addressed to a recipient profile.
type Notification struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	RecipientID uint             `gorm:"not null;index" json:"recipient_id"`
	Type        NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	Message     string           `gorm:"type:text" json:"message"`
	IsRead      bool             `gorm:"default:false" json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`
}
