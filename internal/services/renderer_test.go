package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resumelens/web/internal/models"
)

func TestRenderSummary_MixedMarkup(t *testing.T) {
	summary := "**Key Skills**\n- Go\n• Kubernetes\n\nSeven years of backend experience."

	lines := RenderSummary(summary)

	assert.Equal(t, []models.SummaryLine{
		{Kind: LineHeading, Text: "Key Skills"},
		{Kind: LineBullet, Text: "Go"},
		{Kind: LineBullet, Text: "Kubernetes"},
		{Kind: LineText, Text: "Seven years of backend experience."},
	}, lines)
}

func TestRenderSummary_BlankLinesSkipped(t *testing.T) {
	lines := RenderSummary("\n\n   \nplain line\n\n")

	assert.Equal(t, []models.SummaryLine{
		{Kind: LineText, Text: "plain line"},
	}, lines)
}

func TestRenderSummary_HeadingTrimsAsterisks(t *testing.T) {
	lines := RenderSummary("**Experience**")

	assert.Equal(t, []models.SummaryLine{
		{Kind: LineHeading, Text: "Experience"},
	}, lines)
}

func TestRenderSummary_Empty(t *testing.T) {
	assert.Empty(t, RenderSummary(""))
}
