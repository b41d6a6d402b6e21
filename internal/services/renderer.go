package services

import (
	"strings"

	"resumelens/web/internal/models"
)

const (
	LineHeading = "heading"
	LineBullet  = "bullet"
	LineText    = "text"
)

// RenderSummary classifies each line of a summary for display:
// "**"-prefixed lines become headings, "-"/"•"-prefixed lines become
// indented bullet items, blank lines are skipped and everything else is
// plain text.
func RenderSummary(summary string) []models.SummaryLine {
	var lines []models.SummaryLine

	for _, raw := range strings.Split(summary, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "**"):
			text := strings.TrimSpace(strings.Trim(line, "*"))
			lines = append(lines, models.SummaryLine{Kind: LineHeading, Text: text})
		case strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•"):
			text := strings.TrimSpace(strings.TrimLeft(line, "-•"))
			lines = append(lines, models.SummaryLine{Kind: LineBullet, Text: text})
		default:
			lines = append(lines, models.SummaryLine{Kind: LineText, Text: line})
		}
	}

	return lines
}
