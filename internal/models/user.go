// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an author profile in the Inkwell application.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	DisplayName    string    `gorm:"uniqueIndex;not null" json:"display_name"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profile_picture"`
	IsAdmin        bool      `gorm:"default:false" json:"is_admin"`
	IsBanned       bool      `gorm:"default:false" json:"is_banned"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// FollowersCount is not persisted; computed at query time.
	FollowersCount int64 `gorm:"-" json:"followers_count,omitempty"`
}

// UserSummary is the author shape attached to enriched rows. Missing authors
// are substituted with Placeholder rather than failing the primary payload.
type UserSummary struct {
	ID             uint   `json:"id,omitempty"`
	DisplayName    string `json:"display_name"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// PlaceholderAuthor is attached when the referenced profile row is missing.
func PlaceholderAuthor() UserSummary {
	return UserSummary{DisplayName: "Unknown"}
}

// Summary converts a full user row into its embeddable author shape.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:             u.ID,
		DisplayName:    u.DisplayName,
		ProfilePicture: u.ProfilePicture,
	}
}

// Follow links a follower profile to the profile being followed.
// The pair must be unique.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follower_followee" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;uniqueIndex:idx_follower_followee;index" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}
