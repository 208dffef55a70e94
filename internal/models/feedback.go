package models

import (
	"time"
)

// Feedback is a free-form message submitted through the feedback form.
type Feedback struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index" json:"user_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Feedback    string    `gorm:"type:text;not null" json:"feedback"`
	CreatedAt   time.Time `json:"created_at"`
}
