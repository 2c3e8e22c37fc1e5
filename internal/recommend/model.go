package recommend

import (
	"innotools-backend/internal/catalog"
	"innotools-backend/internal/llm"
)

// UserContext is the per-request description of the requester's situation.
// Goal is the only mandatory field; everything else is optional free text.
type UserContext struct {
	Goal              string `json:"goal" binding:"required"`
	TeamSize          string `json:"teamSize"`
	TimeAvailable     string `json:"timeAvailable"`
	ExperienceLevel   string `json:"experienceLevel"`
	Industry          string `json:"industry"`
	AdditionalContext string `json:"additionalContext"`
}

func (uc UserContext) promptContext() llm.PromptContext {
	return llm.PromptContext{
		Goal:              uc.Goal,
		TeamSize:          uc.TeamSize,
		TimeAvailable:     uc.TimeAvailable,
		ExperienceLevel:   uc.ExperienceLevel,
		Industry:          uc.Industry,
		AdditionalContext: uc.AdditionalContext,
	}
}

// ToolRecommendation is one recommended tool with its match score. The full
// tool object is embedded so clients can render without a second lookup.
// External output is never decoded into this type directly; it goes through
// the wire shapes in validate.go first.
type ToolRecommendation struct {
	Tool                catalog.Tool `json:"tool"`
	Score               float64      `json:"score"`
	Reasoning           string       `json:"reasoning"`
	ImplementationGuide string       `json:"implementationGuide,omitempty"`
}

// RecommendationResponse is the ordered recommendation result.
type RecommendationResponse struct {
	Recommendations []ToolRecommendation `json:"recommendations"`
	Summary         string               `json:"summary"`
	UsingMockData   bool                 `json:"usingMockData"`
}

// ImplementationResponse is the structured implementation plan for one tool.
type ImplementationResponse struct {
	Guide            string   `json:"guide" validate:"required"`
	CustomSteps      []string `json:"customSteps" validate:"min=1,dive,required"`
	Materials        []string `json:"materials" validate:"min=1,dive,required"`
	Timeline         string   `json:"timeline" validate:"required"`
	ExpectedOutcomes []string `json:"expectedOutcomes" validate:"min=1,dive,required"`
	UsingMockData    bool     `json:"usingMockData"`
}
