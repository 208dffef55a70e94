package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/comments?post_id=
// @Summary Comments for a post
// @Description Flat list of comments, newest first, with authors attached
// @Tags comments
// @Produce json
// @Param post_id query int true "Post ID"
// @Success 200 {array} models.Comment
// @Failure 400 {object} object{error=string}
// @Router /comments [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID := c.QueryInt("post_id")
	if postID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("post_id query parameter is required"))
	}

	comments, err := s.commentService.ListComments(c.UserContext(), uint(postID))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comments)
}

// GetCommentThreads handles GET /api/comments/threads?post_id=
// @Summary Threaded comments for a post
// @Description Top-level comments with their direct replies grouped underneath
// @Tags comments
// @Produce json
// @Param post_id query int true "Post ID"
// @Success 200 {array} service.CommentThread
// @Failure 400 {object} object{error=string}
// @Router /comments/threads [get]
func (s *Server) GetCommentThreads(c *fiber.Ctx) error {
	postID := c.QueryInt("post_id")
	if postID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("post_id query parameter is required"))
	}

	threads, err := s.commentService.ListThreads(c.UserContext(), uint(postID))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(threads)
}

// GetPostComments handles GET /api/posts/:id/comments
func (s *Server) GetPostComments(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comments)
}

// CreateComment handles POST /api/comments
// @Summary Create comment
// @Description Create a comment or reply; notifies the post author and, for replies, the parent author
// @Tags comments
// @Accept json
// @Produce json
// @Param request body object{post_id=int,content=string,parent_comment_id=int} true "New comment"
// @Success 200 {object} models.Comment
// @Failure 400 {object} object{error=string}
// @Router /comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		PostID          uint   `json:"post_id"`
		Content         string `json:"content"`
		ParentCommentID *uint  `json:"parent_comment_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("post_id is required"))
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		UserID:          userID,
		PostID:          req.PostID,
		Content:         req.Content,
		ParentCommentID: req.ParentCommentID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comment)
}

// DeleteComment handles DELETE /api/comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.UserContext(), service.DeleteCommentInput{
		UserID:    userID,
		CommentID: id,
	}); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
