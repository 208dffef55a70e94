package service

import (
	"context"
	"errors"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"gorm.io/gorm"
)

type ReadingListService struct {
	listRepo repository.ReadingListRepository
	postRepo repository.PostRepository
	enricher *PostEnricher
}

type CreateReadingListInput struct {
	UserID      uint
	Title       string
	Description string
	IsPublic    bool
}

type UpdateReadingListInput struct {
	UserID      uint
	ListID      uint
	Title       string
	Description string
	IsPublic    *bool
}

func NewReadingListService(
	listRepo repository.ReadingListRepository,
	postRepo repository.PostRepository,
	enricher *PostEnricher,
) *ReadingListService {
	return &ReadingListService{
		listRepo: listRepo,
		postRepo: postRepo,
		enricher: enricher,
	}
}

func (s *ReadingListService) CreateList(ctx context.Context, in CreateReadingListInput) (*models.ReadingList, error) {
	const maxTitleLen = 255

	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 255 characters)")
	}

	list := &models.ReadingList{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		IsPublic:    in.IsPublic,
	}
	if err := s.listRepo.Create(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// GetList returns a list with its saved posts. Private lists are only
// visible to their owner; to anyone else they do not exist.
func (s *ReadingListService) GetList(ctx context.Context, listID, viewerID uint) (*models.ReadingList, error) {
	list, err := s.getVisible(ctx, listID, viewerID)
	if err != nil {
		return nil, err
	}

	ids, err := s.listRepo.PostIDs(ctx, listID)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Restore most-recently-saved order; ListByIDs does not preserve input order.
	byID := make(map[uint]*models.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}
	ordered := make([]*models.Post, 0, len(posts))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}

	s.enricher.EnrichPosts(ctx, ordered)
	list.Posts = make([]models.Post, 0, len(ordered))
	for _, p := range ordered {
		list.Posts = append(list.Posts, *p)
	}
	return list, nil
}

func (s *ReadingListService) getVisible(ctx context.Context, listID, viewerID uint) (*models.ReadingList, error) {
	list, err := s.listRepo.GetByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Reading list", listID)
		}
		return nil, err
	}
	if !list.IsPublic && list.UserID != viewerID {
		return nil, models.NewNotFoundError("Reading list", listID)
	}
	return list, nil
}

// ListsForUser returns a user's lists. Viewers other than the owner only see
// public lists.
func (s *ReadingListService) ListsForUser(ctx context.Context, ownerID, viewerID uint) ([]*models.ReadingList, error) {
	lists, err := s.listRepo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if ownerID == viewerID {
		return lists, nil
	}
	visible := make([]*models.ReadingList, 0, len(lists))
	for _, l := range lists {
		if l.IsPublic {
			visible = append(visible, l)
		}
	}
	return visible, nil
}

func (s *ReadingListService) UpdateList(ctx context.Context, in UpdateReadingListInput) (*models.ReadingList, error) {
	list, err := s.requireOwned(ctx, in.ListID, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		list.Title = in.Title
	}
	if in.Description != "" {
		list.Description = in.Description
	}
	if in.IsPublic != nil {
		list.IsPublic = *in.IsPublic
	}

	if err := s.listRepo.Update(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *ReadingListService) DeleteList(ctx context.Context, listID, userID uint) error {
	if _, err := s.requireOwned(ctx, listID, userID); err != nil {
		return err
	}
	return s.listRepo.Delete(ctx, listID)
}

// AddPost saves a post to an owned list. Saving the same post again is a
// no-op.
func (s *ReadingListService) AddPost(ctx context.Context, listID, postID, userID uint) error {
	if _, err := s.requireOwned(ctx, listID, userID); err != nil {
		return err
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", postID)
		}
		return err
	}
	return s.listRepo.AddPost(ctx, listID, postID)
}

func (s *ReadingListService) RemovePost(ctx context.Context, listID, postID, userID uint) error {
	if _, err := s.requireOwned(ctx, listID, userID); err != nil {
		return err
	}
	return s.listRepo.RemovePost(ctx, listID, postID)
}

func (s *ReadingListService) requireOwned(ctx context.Context, listID, userID uint) (*models.ReadingList, error) {
	list, err := s.listRepo.GetByID(ctx, listID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Reading list", listID)
		}
		return nil, err
	}
	if list.UserID != userID {
		return nil, models.NewUnauthorizedError("You can only modify your own reading lists")
	}
	return list, nil
}
