package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resumelens/web/internal/analyzer"
	"resumelens/web/internal/models"
	"resumelens/web/internal/services"
)

// LibraryHandler serves the manage screen: the stored resume list with
// selection, expansion, follow-up questions, comparison and feedback.
type LibraryHandler struct {
	client   analyzer.Client
	analysis services.AnalysisService
}

func NewLibraryHandler(
	client analyzer.Client,
	analysis services.AnalysisService,
) *LibraryHandler {
	return &LibraryHandler{
		client:   client,
		analysis: analysis,
	}
}

// HandleList handles GET /resumes. The selection is reconciled against
// the fresh list so stale ids can never be submitted later.
func (h *LibraryHandler) HandleList(c *fiber.Ctx) error {
	sess := sessionFrom(c)
	ctx, release, err := sess.BeginAction(c.Context(), models.ViewManage, "list")
	if err != nil {
		return respondError(c, err)
	}
	defer release()

	records, err := h.client.ListResumes(ctx)
	if err != nil {
		return respondError(c, err)
	}

	ids := make([]string, len(records))
	for i, record := range records {
		ids[i] = record.ID
	}
	sess.ReconcileSelection(ids)

	expanded := sess.ExpandedID()
	views := make([]models.ResumeView, len(records))
	for i, record := range records {
		views[i] = models.ResumeView{
			ResumeRecord: record,
			Selected:     sess.IsSelected(record.ID),
			Expanded:     record.ID == expanded,
		}
	}

	return c.JSON(fiber.Map{
		"resumes": views,
	})
}

// HandleToggleSelect handles POST /resumes/:id/select.
func (h *LibraryHandler) HandleToggleSelect(c *fiber.Ctx) error {
	sess := sessionFrom(c)
	selected, ids := sess.ToggleSelect(c.Params("id"))
	return c.JSON(fiber.Map{
		"selected":     selected,
		"selected_ids": ids,
	})
}

// HandleToggleExpand handles POST /resumes/:id/expand. At most one
// record is expanded at a time.
func (h *LibraryHandler) HandleToggleExpand(c *fiber.Ctx) error {
	sess := sessionFrom(c)
	expanded := sess.ToggleExpand(c.Params("id"))
	return c.JSON(fiber.Map{
		"expanded_id": expanded,
	})
}

// HandleQuestions handles GET /resumes/:id/questions. An unexpected
// payload shape degrades to an empty list with an inline notice instead
// of failing the view.
func (h *LibraryHandler) HandleQuestions(c *fiber.Ctx) error {
	sess := sessionFrom(c)
	ctx, release, err := sess.BeginAction(c.Context(), models.ViewManage, "questions:"+c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	defer release()

	questions, _, err := h.client.GenerateQuestions(ctx, c.Params("id"))
	if err != nil {
		if errors.Is(err, analyzer.ErrUnexpectedShape) {
			return c.JSON(models.QuestionsResponse{
				Questions: []string{},
				Notice:    "questions arrived in an unexpected format",
			})
		}
		return respondError(c, err)
	}

	return c.JSON(models.QuestionsResponse{Questions: questions})
}

// HandleCompare handles POST /resumes/compare for the current selection.
func (h *LibraryHandler) HandleCompare(c *fiber.Ctx) error {
	sess := sessionFrom(c)
	ids := sess.SelectedIDs()

	// Precondition first: an undersized selection must not open a
	// request slot or touch the network.
	if len(ids) < 2 {
		return respondError(c, services.NewValidationError("select at least 2 resumes to compare"))
	}

	ctx, release, err := sess.BeginAction(c.Context(), models.ViewManage, "compare")
	if err != nil {
		return respondError(c, err)
	}
	defer release()

	comparison, err := h.analysis.CompareSelected(ctx, ids)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.CompareResponse{Comparison: comparison})
}

// HandleFeedback handles POST /feedback.
func (h *LibraryHandler) HandleFeedback(c *fiber.Ctx) error {
	var req models.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_id is required",
		})
	}

	sess := sessionFrom(c)
	ctx, release, err := sess.BeginAction(c.Context(), models.ViewManage, "feedback")
	if err != nil {
		return respondError(c, err)
	}
	defer release()

	if err := h.client.SendFeedback(ctx, req.ResumeID, req.IsPositive, req.FeedbackText); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "success",
	})
}

// HandleFeedbackStats handles GET /feedback/stats.
func (h *LibraryHandler) HandleFeedbackStats(c *fiber.Ctx) error {
	sess := sessionFrom(c)
	ctx, release, err := sess.BeginAction(c.Context(), models.ViewManage, "feedback-stats")
	if err != nil {
		return respondError(c, err)
	}
	defer release()

	stats, err := h.client.FeedbackStats(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// HandleSearch handles POST /resumes/search (semantic search over the
// stored resumes, delegated to the analyzer).
func (h *LibraryHandler) HandleSearch(c *fiber.Ctx) error {
	var req models.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "query is required",
		})
	}

	sess := sessionFrom(c)
	ctx, release, err := sess.BeginAction(c.Context(), models.ViewManage, "search")
	if err != nil {
		return respondError(c, err)
	}
	defer release()

	results, err := h.client.SearchResumes(ctx, req.Query, req.NResults)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"results": results,
	})
}
