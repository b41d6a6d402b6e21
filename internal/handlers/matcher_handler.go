package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumelens/web/internal/models"
	"resumelens/web/internal/services"
)

// MatcherHandler serves the job matcher screen's two entry paths, which
// converge on the same sorted candidate list.
type MatcherHandler struct {
	matcher services.MatcherService
	intake  services.IntakeService
}

func NewMatcherHandler(
	matcher services.MatcherService,
	intake services.IntakeService,
) *MatcherHandler {
	return &MatcherHandler{
		matcher: matcher,
		intake:  intake,
	}
}

// HandleMatchUpload handles POST /matcher/upload: the backend extracts
// the job description and scores the stored resumes in one call.
func (h *MatcherHandler) HandleMatchUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "a single file field named 'file' is required",
		})
	}

	filename, data, err := h.intake.ReadFile(file)
	if err != nil {
		return respondError(c, err)
	}

	sess := sessionFrom(c)
	ctx, release, err := sess.BeginAction(c.Context(), models.ViewJobMatcher, "match-upload")
	if err != nil {
		return respondError(c, err)
	}
	defer release()

	match, err := h.matcher.MatchUpload(ctx, filename, data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(match)
}

// HandleMatchText handles POST /matcher/text: a parallel gap-analysis
// fan-out over every stored resume, joined and sorted before rendering.
func (h *MatcherHandler) HandleMatchText(c *fiber.Ctx) error {
	var req models.MatchTextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	sess := sessionFrom(c)
	ctx, release, err := sess.BeginAction(c.Context(), models.ViewJobMatcher, "match-text")
	if err != nil {
		return respondError(c, err)
	}
	defer release()

	match, err := h.matcher.MatchText(ctx, req.JobDescription)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(match)
}
