package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// minQueryLen is the shortest query that triggers a search. Anything shorter
// returns empty results without touching the database.
const minQueryLen = 2

// SearchResults holds the two result groups of a site search.
type SearchResults struct {
	Posts  []*models.Post       `json:"posts"`
	People []models.UserSummary `json:"people"`
}

type SearchService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	enricher *PostEnricher
}

func NewSearchService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	enricher *PostEnricher,
) *SearchService {
	return &SearchService{
		postRepo: postRepo,
		userRepo: userRepo,
		enricher: enricher,
	}
}

// Search matches posts by title or content and people by display name.
func (s *SearchService) Search(ctx context.Context, query string, limit, offset int) (*SearchResults, error) {
	results := &SearchResults{
		Posts:  []*models.Post{},
		People: []models.UserSummary{},
	}

	query = strings.TrimSpace(query)
	if len([]rune(query)) < minQueryLen {
		return results, nil
	}

	posts, err := s.postRepo.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	s.enricher.EnrichPosts(ctx, posts)
	results.Posts = posts

	users, err := s.userRepo.SearchByDisplayName(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range users {
		results.People = append(results.People, users[i].Summary())
	}

	return results, nil
}
