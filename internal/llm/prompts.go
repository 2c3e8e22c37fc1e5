package llm

import (
	"fmt"
	"strings"

	"innotools-backend/internal/catalog"
)

// PromptContext carries the user-supplied situation into prompt building.
// Optional fields are rendered as "Not specified" when absent.
type PromptContext struct {
	Goal              string
	TeamSize          string
	TimeAvailable     string
	ExperienceLevel   string
	Industry          string
	AdditionalContext string
}

const recommendationPromptHeader = `You are an expert innovation consultant who helps teams select the most appropriate innovation tools for their needs.
Based on the following user context, recommend the top 3-5 innovation tools from the provided list that would be most suitable.`

const recommendationPromptFooter = `For each recommended tool, please provide:
1. A confidence score between 0-100 for how well it matches their needs
2. Specific reasoning for why this tool is appropriate for their context
3. Brief implementation guidance tailored to their specific situation

Also provide a summary paragraph of your overall recommendation strategy.
You may use markdown emphasis (bold, lists) inside free-text fields.
Only recommend tools from the list above.

Format your response as valid JSON matching this structure:
{
  "recommendations": [
    {
      "tool": {FULL_TOOL_OBJECT},
      "score": number,
      "reasoning": "string",
      "implementationGuide": "string"
    }
  ],
  "summary": "string"
}`

// BuildRecommendationPrompt renders the recommendation prompt for the given
// user context over the full catalog.
func BuildRecommendationPrompt(pc PromptContext, tools []catalog.Tool) string {
	var b strings.Builder
	b.WriteString(recommendationPromptHeader)
	b.WriteString("\n\nUSER CONTEXT:\n")
	writeContext(&b, pc)
	b.WriteString("\nAVAILABLE TOOLS:\n")
	for _, tool := range tools {
		fmt.Fprintf(&b, `
Name: %s
Description: %s
Category: %s
Difficulty: %s
Time Required: %s
Team Size: %s
Benefits: %s
`, tool.Name, tool.Description, tool.Category, tool.Difficulty, tool.TimeRequired, tool.TeamSize, strings.Join(tool.Benefits, ", "))
	}
	b.WriteString("\n")
	b.WriteString(recommendationPromptFooter)
	return b.String()
}

const guidancePromptFooter = `Please provide:
1. A comprehensive implementation guide tailored to their specific context and goal
2. A list of customized steps for their particular situation
3. A list of specific materials they will need
4. A timeline broken down by phases that accounts for their time constraints in minutes
5. A list of expected outcomes they can anticipate

FORMAT INSTRUCTIONS:
- Use markdown formatting for the implementation guide and timeline
- Use headings (##, ###) to structure the content
- Use **bold** for emphasis on important points
- Use bullet points and numbered lists where appropriate

Format your response as valid JSON matching this structure:
{
  "guide": "Comprehensive implementation guidance as string with markdown formatting",
  "customSteps": ["Step 1", "Step 2", "Step 3"],
  "materials": ["Material 1", "Material 2", "Material 3"],
  "timeline": "Detailed timeline as string with markdown formatting",
  "expectedOutcomes": ["Outcome 1", "Outcome 2", "Outcome 3"]
}`

// BuildGuidancePrompt renders the implementation-guidance prompt for one tool.
func BuildGuidancePrompt(pc PromptContext, tool catalog.Tool) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are an expert innovation consultant who helps teams implement innovation methodologies effectively.
I need detailed implementation guidance for using the %q innovation tool in the following context:

USER CONTEXT:
`, tool.Name)
	writeContext(&b, pc)
	fmt.Fprintf(&b, `
TOOL INFORMATION:
Name: %s
Description: %s
Category: %s
Standard Steps:
%s
Standard Materials: %s
Difficulty: %s
Standard Time Required: %s
Standard Team Size: %s
Tips:
%s
`, tool.Name, tool.Description, tool.Category, strings.Join(tool.Steps, "\n"),
		strings.Join(tool.Materials, ", "), tool.Difficulty, tool.TimeRequired, tool.TeamSize,
		strings.Join(tool.Tips, "\n"))

	timeAvailable := orNotSpecified(pc.TimeAvailable)
	fmt.Fprintf(&b, "\nIMPORTANT: The user has specified time in minutes, so make sure your implementation guidance and timeline fit within their available time of %s.\n\n", timeAvailable)
	b.WriteString(guidancePromptFooter)
	return b.String()
}

func writeContext(b *strings.Builder, pc PromptContext) {
	fmt.Fprintf(b, "Goal: %s\n", pc.Goal)
	fmt.Fprintf(b, "Team Size: %s\n", orNotSpecified(pc.TeamSize))
	fmt.Fprintf(b, "Time Available: %s\n", orNotSpecified(pc.TimeAvailable))
	fmt.Fprintf(b, "Experience Level: %s\n", orNotSpecified(pc.ExperienceLevel))
	fmt.Fprintf(b, "Industry: %s\n", orNotSpecified(pc.Industry))
	fmt.Fprintf(b, "Additional Context: %s\n", orNone(pc.AdditionalContext))
}

func orNotSpecified(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Not specified"
	}
	return v
}

func orNone(v string) string {
	if strings.TrimSpace(v) == "" {
		return "None provided"
	}
	return v
}
