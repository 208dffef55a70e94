package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetLikes handles GET /api/likes?postId=
// @Summary Likes for a post
// @Description Like count and rows for a post
// @Tags likes
// @Produce json
// @Param postId query int true "Post ID"
// @Success 200 {object} object{count=int,likes=[]models.Like}
// @Failure 400 {object} object{error=string}
// @Router /likes [get]
func (s *Server) GetLikes(c *fiber.Ctx) error {
	postID := c.QueryInt("postId")
	if postID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("postId query parameter is required"))
	}

	likes, err := s.likeRepo.ListByPost(c.UserContext(), uint(postID))
	if err != nil {
		return respondServiceError(c, err)
	}
	if likes == nil {
		likes = []models.Like{}
	}
	return c.JSON(fiber.Map{
		"count": len(likes),
		"likes": likes,
	})
}

// LikePost handles POST /api/likes
// @Summary Like a post
// @Description Record a like; repeat likes are no-ops and the post author is notified once
// @Tags likes
// @Accept json
// @Produce json
// @Param request body object{post_id=int} true "Post to like"
// @Success 200 {object} object{success=bool}
// @Failure 400 {object} object{error=string}
// @Router /likes [post]
func (s *Server) LikePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		PostID uint `json:"post_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("post_id is required"))
	}

	if err := s.likeService.LikePost(c.UserContext(), userID, req.PostID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// UnlikePost handles DELETE /api/likes
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		PostID uint `json:"post_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("post_id is required"))
	}

	if err := s.likeService.UnlikePost(c.UserContext(), userID, req.PostID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
