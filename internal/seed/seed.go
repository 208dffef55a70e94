package seed

import (
	"fmt"
	"log"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	opts    Options
	factory *Factory
}

// NewSeeder creates a Seeder with the given options.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, opts: opts, factory: NewFactory(db, opts)}
}

// ClearAll deletes all seeded rows. Dependent tables go first so foreign key
// constraints hold throughout.
func (s *Seeder) ClearAll() error {
	tables := []any{
		&models.Notification{},
		&models.Report{},
		&models.Feedback{},
		&models.ReadingListPost{},
		&models.ReadingList{},
		&models.Like{},
		&models.Comment{},
		&models.PostCategory{},
		&models.Post{},
		&models.Follow{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("clear %T: %w", table, err)
		}
	}
	log.Println("cleared existing data")
	return nil
}

// Run seeds categories, users, posts, and the social mesh around them.
func (s *Seeder) Run() error {
	if s.opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	if err := Categories(s.db); err != nil {
		return err
	}

	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return fmt.Errorf("load categories: %w", err)
	}

	numUsers := s.opts.NumUsers
	if numUsers <= 0 {
		numUsers = 50
	}
	numPosts := s.opts.NumPosts
	if numPosts <= 0 {
		numPosts = 200
	}

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser(i)
		if err != nil {
			return err
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users", len(users))

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		post, err := s.factory.CreatePost(author, s.pickCategoryIDs(categories))
		if err != nil {
			return err
		}
		posts = append(posts, post)
	}
	log.Printf("seeded %d posts", len(posts))

	if err := s.seedSocialMesh(users, posts); err != nil {
		return err
	}

	log.Println("seeding complete")
	return nil
}

// pickCategoryIDs selects zero to three distinct categories for a post.
func (s *Seeder) pickCategoryIDs(categories []models.Category) []uint {
	if len(categories) == 0 {
		return nil
	}
	n := s.factory.rng.Intn(4)
	picked := make([]uint, 0, n)
	seen := make(map[uint]struct{}, n)
	for len(picked) < n {
		c := categories[s.factory.rng.Intn(len(categories))]
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		picked = append(picked, c.ID)
	}
	return picked
}

// seedSocialMesh wires follows, likes, comments with replies, and reading
// lists across the seeded users and posts.
func (s *Seeder) seedSocialMesh(users []*models.User, posts []*models.Post) error {
	rng := s.factory.rng

	// Each user follows a handful of others.
	follows := 0
	for _, follower := range users {
		n := rng.Intn(6)
		for j := 0; j < n; j++ {
			followee := users[rng.Intn(len(users))]
			if followee.ID == follower.ID {
				continue
			}
			edge := models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}
			err := s.db.Where("follower_id = ? AND followee_id = ?", follower.ID, followee.ID).
				FirstOrCreate(&edge).Error
			if err != nil {
				return fmt.Errorf("seed follow: %w", err)
			}
			follows++
		}
	}

	// Likes, skewed so early posts collect more.
	likes := 0
	for _, user := range users {
		n := rng.Intn(10)
		for j := 0; j < n; j++ {
			post := posts[rng.Intn(len(posts))]
			like := models.Like{UserID: user.ID, PostID: post.ID}
			err := s.db.Where("user_id = ? AND post_id = ?", user.ID, post.ID).
				FirstOrCreate(&like).Error
			if err != nil {
				return fmt.Errorf("seed like: %w", err)
			}
			likes++
		}
	}

	// Comments with occasional one-level replies.
	comments := 0
	for _, post := range posts {
		n := rng.Intn(5)
		var lastTopLevel *models.Comment
		for j := 0; j < n; j++ {
			commenter := users[rng.Intn(len(users))]
			var parentID *uint
			if lastTopLevel != nil && rng.Intn(3) == 0 {
				parentID = &lastTopLevel.ID
			}
			comment, err := s.factory.CreateComment(commenter, post, parentID)
			if err != nil {
				return err
			}
			if parentID == nil {
				lastTopLevel = comment
			}
			comments++
		}
	}

	// A third of users curate a reading list.
	lists := 0
	for _, user := range users {
		if rng.Intn(3) != 0 {
			continue
		}
		n := 1 + rng.Intn(5)
		postIDs := make([]uint, 0, n)
		seen := make(map[uint]struct{}, n)
		for len(postIDs) < n {
			p := posts[rng.Intn(len(posts))]
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			postIDs = append(postIDs, p.ID)
		}
		if _, err := s.factory.CreateReadingList(user, rng.Intn(2) == 0, postIDs); err != nil {
			return err
		}
		lists++
	}

	log.Printf("seeded social mesh: %d follows, %d likes, %d comments, %d reading lists",
		follows, likes, comments, lists)
	return nil
}
