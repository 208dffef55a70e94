package server

import (
	"github.com/gofiber/fiber/v2"
)

// Search handles GET /api/search?query=
// @Summary Search posts and people
// @Description Pattern search over post titles/content and display names; queries shorter than two characters return empty groups
// @Tags search
// @Produce json
// @Param query query string true "Search query"
// @Success 200 {object} service.SearchResults
// @Router /search [get]
func (s *Server) Search(c *fiber.Ctx) error {
	query := c.Query("query")
	p := parsePagination(c, 20)

	results, err := s.searchService.Search(c.UserContext(), query, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(results)
}
