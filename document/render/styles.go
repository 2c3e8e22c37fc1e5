package render

import (
	"fmt"
	"regexp"
	"time"
)

// Shared layout constants for both renderers.
const (
	fontFamily = "Helvetica"

	titleSize   = 24.0
	sectionSize = 16.0
	bodySize    = 12.0

	pageMargin = 15.0
)

// Section headings, in render order.
const (
	headingGeneralInfo    = "General Information"
	headingSteps          = "Implementation Steps"
	headingMaterials      = "Materials Needed"
	headingTips           = "Tips & Best Practices"
	headingGuidance       = "Customized Implementation Guidance"
	headingOverview       = "Overview"
	headingCustomSteps    = "Customized Steps"
	headingGuideMaterials = "Materials"
	headingTimeAlloc      = "Recommended Time Allocation"
	headingTimeline       = "Timeline"
	headingOutcomes       = "Expected Outcomes"
	headingReferences     = "References"
)

func footerText(now time.Time) string {
	return fmt.Sprintf("Generated by InnoTools - %s", now.Format("2006-01-02"))
}

var markdownMarks = regexp.MustCompile(`[*#]+ ?`)

// stripMarkdown flattens markdown emphasis and headings for plain-text
// rendering inside documents. Guidance text arrives markdown-formatted but
// neither renderer lays out rich text.
func stripMarkdown(s string) string {
	return markdownMarks.ReplaceAllString(s, "")
}
