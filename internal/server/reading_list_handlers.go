package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateReadingList handles POST /api/reading_lists
func (s *Server) CreateReadingList(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		IsPublic    bool   `json:"is_public"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	list, err := s.readingListService.CreateList(c.UserContext(), service.CreateReadingListInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(list)
}

// GetMyReadingLists handles GET /api/reading_lists
func (s *Server) GetMyReadingLists(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	lists, err := s.readingListService.ListsForUser(c.UserContext(), userID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(lists)
}

// GetUserReadingLists handles GET /api/users/:id/reading_lists. Viewers other
// than the owner only see public lists.
func (s *Server) GetUserReadingLists(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	viewerID, _ := s.optionalUserID(c)

	lists, err := s.readingListService.ListsForUser(c.UserContext(), id, viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(lists)
}

// GetReadingList handles GET /api/reading_lists/:id
// @Summary Reading list detail
// @Description A reading list with its saved posts in most-recently-saved order
// @Tags reading-lists
// @Produce json
// @Param id path int true "Reading list ID"
// @Success 200 {object} models.ReadingList
// @Failure 404 {object} object{error=string}
// @Router /reading_lists/{id} [get]
func (s *Server) GetReadingList(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	list, err := s.readingListService.GetList(c.UserContext(), id, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(list)
}

// UpdateReadingList handles PUT /api/reading_lists/:id
func (s *Server) UpdateReadingList(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		IsPublic    *bool  `json:"is_public"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if _, err := s.readingListService.UpdateList(c.UserContext(), service.UpdateReadingListInput{
		UserID:      userID,
		ListID:      id,
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteReadingList handles DELETE /api/reading_lists/:id
func (s *Server) DeleteReadingList(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.readingListService.DeleteList(c.UserContext(), id, userID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// AddReadingListPost handles POST /api/reading_list_posts
func (s *Server) AddReadingListPost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		ReadingListID uint `json:"reading_list_id"`
		PostID        uint `json:"post_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.ReadingListID == 0 || req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("reading_list_id and post_id are required"))
	}

	if err := s.readingListService.AddPost(c.UserContext(), req.ReadingListID, req.PostID, userID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// RemoveReadingListPost handles DELETE /api/reading_list_posts
func (s *Server) RemoveReadingListPost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		ReadingListID uint `json:"reading_list_id"`
		PostID        uint `json:"post_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.ReadingListID == 0 || req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("reading_list_id and post_id are required"))
	}

	if err := s.readingListService.RemovePost(c.UserContext(), req.ReadingListID, req.PostID, userID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
