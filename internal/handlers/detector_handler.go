package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumelens/web/internal/models"
	"resumelens/web/internal/services"
)

type DetectorHandler struct {
	detector services.DetectorService
	intake   services.IntakeService
}

func NewDetectorHandler(
	detector services.DetectorService,
	intake services.IntakeService,
) *DetectorHandler {
	return &DetectorHandler{
		detector: detector,
		intake:   intake,
	}
}

// HandleDetect handles POST /detector: single-file submit producing the
// suspicion verdict plus its display risk tier.
func (h *DetectorHandler) HandleDetect(c *fiber.Ctx) error {
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
	ctx, release, err := sess.BeginAction(c.Context(), models.ViewFakeDetector, "detect")
	if err != nil {
		return respondError(c, err)
	}
	defer release()

	verdict, err := h.detector.Detect(ctx, filename, data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(verdict)
}
