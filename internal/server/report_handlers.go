package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateReport handles POST /api/reports
// @Summary File a report
// @Description Report a post for admin review
// @Tags reports
// @Accept json
// @Produce json
// @Param request body object{post_id=int,reason=string} true "Report"
// @Success 200 {object} models.Report
// @Failure 400 {object} object{error=string}
// @Router /reports [post]
func (s *Server) CreateReport(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		PostID uint   `json:"post_id"`
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("post_id is required"))
	}

	report, err := s.moderationService.CreateReport(c.UserContext(), service.CreateReportInput{
		ReporterID: userID,
		PostID:     req.PostID,
		Reason:     req.Reason,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(report)
}

// GetReports handles GET /api/reports (admin). An optional resolved query
// parameter filters to open (false) or resolved (true) reports.
func (s *Server) GetReports(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	var resolved *bool
	if raw := c.Query("resolved"); raw != "" {
		val := raw == "true" || raw == "1"
		resolved = &val
	}

	reports, err := s.moderationService.ListReports(c.UserContext(), resolved, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(reports)
}

// ResolveReport handles PUT /api/reports/:id/resolve (admin)
// @Summary Resolve a report
// @Description Mark a report handled; resolving again keeps the original resolution
// @Tags reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} models.Report
// @Failure 404 {object} object{error=string}
// @Router /reports/{id}/resolve [put]
func (s *Server) ResolveReport(c *fiber.Ctx) error {
	adminID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	report, err := s.moderationService.ResolveReport(c.UserContext(), id, adminID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(report)
}
