package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumelens/web/internal/models"
	"resumelens/web/internal/services"
)

// AnalysisHandler dispatches the job-description screen's two
// operations, gap analysis and ranking, against the shared selection.
type AnalysisHandler struct {
	analysis services.AnalysisService
}

func NewAnalysisHandler(analysis services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis}
}

// HandleAnalyze handles POST /analysis. The mode/cardinality guard runs
// before any request slot is taken: an invalid pair never reaches the
// backend.
func (h *AnalysisHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "mode must be 'gaps' or 'rank' and job_description is required",
		})
	}

	sess := sessionFrom(c)
	ids := sess.SelectedIDs()
	if err := services.ValidateAnalysis(req.Mode, ids); err != nil {
		return respondError(c, err)
	}

	ctx, release, err := sess.BeginAction(c.Context(), models.ViewJobDescription, "analysis")
	if err != nil {
		return respondError(c, err)
	}
	defer release()

	result, err := h.analysis.Analyze(ctx, req.Mode, req.JobDescription, ids)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.AnalysisResponse{
		Mode:   req.Mode,
		Result: result,
	})
}
