package recommend

import (
	"fmt"
	"strings"
	"unicode"

	"innotools-backend/internal/catalog"
)

// mockMarker tags every synthesized string so fallback output can never be
// mistaken for real guidance.
const mockMarker = "[MOCK DATA]"

// mockRecommendations deterministically synthesizes a recommendation set:
// the first min(3, len(tools)) catalog entries in catalog order with scores
// 95, 85, 75. No randomness; identical inputs yield identical output.
func mockRecommendations(uc UserContext, tools []catalog.Tool) RecommendationResponse {
	n := len(tools)
	if n > 3 {
		n = 3
	}

	recs := make([]ToolRecommendation, 0, n)
	for i := 0; i < n; i++ {
		tool := tools[i]
		recs = append(recs, ToolRecommendation{
			Tool:                tool,
			Score:               float64(95 - i*10),
			Reasoning:           mockReasoning(tool, uc.Goal),
			ImplementationGuide: mockGuideSnippet(tool),
		})
	}

	return RecommendationResponse{
		Recommendations: recs,
		Summary:         mockSummary(uc.Goal, tools[:n]),
		UsingMockData:   true,
	}
}

func mockReasoning(tool catalog.Tool, goal string) string {
	switch len(tool.Benefits) {
	case 0:
		return fmt.Sprintf("%s %s aligns with your goal of %q.", mockMarker, tool.Name, goal)
	case 1:
		return fmt.Sprintf("%s %s aligns with your goal of %q because it %s.",
			mockMarker, tool.Name, goal, lowerFirst(tool.Benefits[0]))
	default:
		return fmt.Sprintf("%s %s aligns with your goal of %q because it %s and %s.",
			mockMarker, tool.Name, goal, lowerFirst(tool.Benefits[0]), lowerFirst(tool.Benefits[1]))
	}
}

func mockGuideSnippet(tool catalog.Tool) string {
	return fmt.Sprintf(`%s When implementing %s for your specific context, focus on these key areas:
1. Customize the process to address your specific goal
2. Allocate appropriate time considering your constraints
3. Prepare your team with necessary background information
4. Document outcomes and learnings for future reference`, mockMarker, tool.Name)
}

func mockSummary(goal string, selected []catalog.Tool) string {
	focus := ""
	switch {
	case len(selected) >= 2:
		focus = fmt.Sprintf(" These recommendations focus on %s and %s approaches that can be implemented with your team size and experience level.",
			strings.ToLower(selected[0].Category), strings.ToLower(selected[1].Category))
	case len(selected) == 1:
		focus = fmt.Sprintf(" These recommendations focus on %s approaches that can be implemented with your team size and experience level.",
			strings.ToLower(selected[0].Category))
	}

	return fmt.Sprintf(`%s Based on your goal of %q and considering your specified constraints, I've recommended tools that provide a balance of structure and flexibility.%s

NOTE: These are MOCK RECOMMENDATIONS. To get actual AI-powered recommendations, please configure a valid OpenAI API key.`, mockMarker, goal, focus)
}

// mockImplementation synthesizes all five guidance fields from the tool's
// own data. Phase boundaries come from fixed fractions of the duration
// parsed at catalog load.
func mockImplementation(tool catalog.Tool, uc UserContext) ImplementationResponse {
	prep, exec, debrief := tool.Duration.Allocation()
	total := prep + exec + debrief

	guide := fmt.Sprintf(`%s # Implementation Guide for %s

## Customized for: %s

This implementation guide has been tailored to your specific context. The %s methodology will help you achieve your goal by providing a structured approach to innovation.

### Key Considerations
- Adapted for a team size of %s
- Modified to fit within %s
- Adjusted for %s
- Contextualized for the %s industry

## Implementation Process

### Preparation Phase (%d minutes)
Before diving into the core activities, **establish a solid foundation**: gather relevant data, set up the workspace, and brief your team.

### Execution Phase (%d minutes)
This is where the main work happens. Follow the structured process, encourage participation from all team members, and document insights as you go.

### Debrief Phase (%d minutes)
Summarize key findings, assign next steps, and capture learnings.

NOTE: This is MOCK GUIDANCE. To get actual AI-powered implementation guidance, please configure a valid OpenAI API key.`,
		mockMarker, tool.Name, uc.Goal, tool.Name,
		orYour(uc.TeamSize, "your team"),
		orYour(uc.TimeAvailable, "your available time"),
		orYour(uc.ExperienceLevel, "your experience level"),
		orYour(uc.Industry, "your"),
		prep, exec, debrief)

	customSteps := []string{
		fmt.Sprintf("%s **Define your specific objectives** related to %q (%d minutes)", mockMarker, uc.Goal, prep/2),
		fmt.Sprintf("%s Prepare your team with necessary context and background (%d minutes)", mockMarker, prep-prep/2),
		fmt.Sprintf("%s Execute a simplified version of %s (%d minutes)", mockMarker, tool.Name, exec),
		fmt.Sprintf("%s **Capture and analyze outputs** (%d minutes)", mockMarker, debrief/2),
		fmt.Sprintf("%s Implement findings into your current workflows (%d minutes)", mockMarker, debrief-debrief/2),
	}

	materials := make([]string, 0, 5)
	for i, m := range tool.Materials {
		if i == 3 {
			break
		}
		materials = append(materials, fmt.Sprintf("%s %s", mockMarker, m))
	}
	materials = append(materials,
		fmt.Sprintf("%s Documentation templates for %q", mockMarker, uc.Goal),
		fmt.Sprintf("%s **Customized worksheets** for your team's needs", mockMarker),
	)

	timeline := fmt.Sprintf(`%s ## Minute-by-Minute Timeline

### Phase 1: Preparation (0-%d minutes)
- Brief team members on goals and process
- Distribute materials and organize workspace

### Phase 2: Core Activity (%d-%d minutes)
- Introduce the problem and context
- Execute the main %s activity
- **Refine outputs**

### Phase 3: Debrief (%d-%d minutes)
- Summarize key findings
- Assign next steps
- Schedule follow-up if needed`,
		mockMarker, prep, prep, prep+exec, tool.Name, prep+exec, total)

	outcomes := []string{
		fmt.Sprintf("%s Clear insights related to %q", mockMarker, uc.Goal),
		fmt.Sprintf("%s A set of **actionable next steps** for implementation", mockMarker),
		fmt.Sprintf("%s Team alignment on key priorities", mockMarker),
		fmt.Sprintf("%s Documented process for future reference", mockMarker),
	}

	return ImplementationResponse{
		Guide:            guide,
		CustomSteps:      customSteps,
		Materials:        materials,
		Timeline:         timeline,
		ExpectedOutcomes: outcomes,
		UsingMockData:    true,
	}
}

func orYour(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
