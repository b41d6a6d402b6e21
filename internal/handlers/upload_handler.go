package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumelens/web/internal/analyzer"
	"resumelens/web/internal/models"
	"resumelens/web/internal/services"
)

type UploadHandler struct {
	client analyzer.Client
	intake services.IntakeService
	model  string
}

func NewUploadHandler(
	client analyzer.Client,
	intake services.IntakeService,
	model string,
) *UploadHandler {
	return &UploadHandler{
		client: client,
		intake: intake,
		model:  model,
	}
}

// HandleUpload handles POST /resumes/upload: it stages the single file,
// uploads it to the analyzer and immediately asks for a summary of the
// returned file id.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
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
	ctx, release, err := sess.BeginAction(c.Context(), models.ViewUpload, "upload")
	if err != nil {
		return respondError(c, err)
	}
	defer release()

	fileID, err := h.client.UploadResume(ctx, filename, data)
	if err != nil {
		return respondError(c, err)
	}

	summary, err := h.client.Summarize(ctx, fileID, h.model)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.UploadResponse{
		FileID:  fileID,
		Summary: summary,
		Lines:   services.RenderSummary(summary),
	})
}
