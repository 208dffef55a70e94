package server

import (
	"github.com/gofiber/fiber/v2"

	"inkwell/internal/service"
)

// GetCategories handles GET /api/categories
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.categoryRepo.List(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(categories)
}

// SubmitFeedback handles POST /api/feedback. Anonymous submissions are
// accepted, so auth is optional here.
// @Summary Submit feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Success 200 {object} models.Feedback
// @Router /feedback [post]
func (s *Server) SubmitFeedback(c *fiber.Ctx) error {
	var body struct {
		Email       string `json:"email"`
		DisplayName string `json:"display_name"`
		Feedback    string `json:"feedback"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	userID, _ := s.optionalUserID(c)
	fb, err := s.feedbackService.SubmitFeedback(c.UserContext(), service.CreateFeedbackInput{
		UserID:      userID,
		Email:       body.Email,
		DisplayName: body.DisplayName,
		Feedback:    body.Feedback,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fb)
}

// GetFeedback handles GET /api/feedback (admin only).
// @Summary List feedback
// @Tags feedback
// @Produce json
// @Success 200 {array} models.Feedback
// @Router /feedback [get]
func (s *Server) GetFeedback(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	items, err := s.feedbackService.ListFeedback(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(items)
}
