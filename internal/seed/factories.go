// Package seed provides helpers to create demo and test data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configure the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	// MaxDays spreads created_at timestamps over this many days back.
	MaxDays int
	// SkipBcrypt stores a fixed placeholder hash instead of running bcrypt
	// per user. Seeding hundreds of users with real bcrypt is slow.
	SkipBcrypt bool
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (f *Factory) pastTimestamp() time.Time {
	daysBack := f.rng.Intn(f.opts.MaxDays)
	hoursBack := f.rng.Intn(24)
	minsBack := f.rng.Intn(60)
	return time.Now().
		Add(-time.Duration(daysBack) * 24 * time.Hour).
		Add(-time.Duration(hoursBack) * time.Hour).
		Add(-time.Duration(minsBack) * time.Minute)
}

// BuildUser constructs a user without persisting it.
func (f *Factory) BuildUser(i int) *models.User {
	displayName := fmt.Sprintf("%s-%s-%d",
		strings.ToLower(gofakeit.AdjectiveDescriptive()),
		strings.ToLower(gofakeit.NounConcrete()), i)
	// Display names are constrained to [a-zA-Z0-9_-]; gofakeit occasionally
	// produces multi-word nouns.
	displayName = strings.ReplaceAll(displayName, " ", "-")

	password := "$2a$10$seededseededseededseedeuZZZZZZZZZZZZZZZZZZZZZZZZZZZZZ"
	if !f.opts.SkipBcrypt {
		hashed, err := bcrypt.GenerateFromPassword([]byte("Password1234!"), bcrypt.MinCost)
		if err == nil {
			password = string(hashed)
		}
	}

	return &models.User{
		DisplayName: displayName,
		Email:       fmt.Sprintf("%s@example.com", displayName),
		Password:    password,
		Bio:         gofakeit.Sentence(8),
		CreatedAt:   f.pastTimestamp(),
	}
}

// CreateUser builds and persists a user.
func (f *Factory) CreateUser(i int) (*models.User, error) {
	user := f.BuildUser(i)
	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// BuildPost constructs a post without persisting it.
func (f *Factory) BuildPost(user *models.User) *models.Post {
	created := f.pastTimestamp()
	if created.Before(user.CreatedAt) {
		created = user.CreatedAt.Add(time.Hour)
	}
	return &models.Post{
		Title:     strings.TrimSuffix(gofakeit.Sentence(6), "."),
		Content:   gofakeit.Paragraph(3, 5, 12, "\n\n"),
		UserID:    user.ID,
		CreatedAt: created,
	}
}

// CreatePost builds and persists a post, attaching it to the given categories.
func (f *Factory) CreatePost(user *models.User, categoryIDs []uint) (*models.Post, error) {
	post := f.BuildPost(user)
	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	for _, cid := range categoryIDs {
		link := models.PostCategory{PostID: post.ID, CategoryID: cid}
		if err := f.db.Create(&link).Error; err != nil {
			return nil, fmt.Errorf("link post %d to category %d: %w", post.ID, cid, err)
		}
	}
	return post, nil
}

// CreateComment persists a comment, optionally as a reply.
func (f *Factory) CreateComment(user *models.User, post *models.Post, parentID *uint) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:          post.ID,
		UserID:          user.ID,
		Content:         gofakeit.Sentence(12),
		ParentCommentID: parentID,
		CreatedAt:       post.CreatedAt.Add(time.Duration(1+f.rng.Intn(72)) * time.Hour),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// CreateReadingList persists a reading list holding the given posts, in order.
func (f *Factory) CreateReadingList(user *models.User, public bool, postIDs []uint) (*models.ReadingList, error) {
	list := &models.ReadingList{
		UserID:      user.ID,
		Title:       strings.TrimSuffix(gofakeit.Sentence(3), "."),
		Description: gofakeit.Sentence(10),
		IsPublic:    public,
	}
	if err := f.db.Create(list).Error; err != nil {
		return nil, fmt.Errorf("create reading list: %w", err)
	}
	base := time.Now().Add(-time.Duration(len(postIDs)) * time.Minute)
	for i, pid := range postIDs {
		entry := models.ReadingListPost{
			ReadingListID: list.ID,
			PostID:        pid,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}
		if err := f.db.Create(&entry).Error; err != nil {
			return nil, fmt.Errorf("add post %d to list %d: %w", pid, list.ID, err)
		}
	}
	return list, nil
}
