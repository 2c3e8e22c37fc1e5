package recommend

import (
	"context"

	"innotools-backend/internal/catalog"
	"innotools-backend/internal/llm"
	"innotools-backend/internal/shared/telemetry"
)

// Mode selects between the external text-generation service and the
// deterministic mock generator. It is fixed once at construction; a failed
// external call downgrades only the request that hit it.
type Mode string

const (
	ModeExternal Mode = "external"
	ModeFallback Mode = "fallback"
)

// Service generates tool recommendations and implementation guidance.
// It is stateless and safe for concurrent use.
type Service struct {
	Catalog *catalog.Store
	LLM     llm.Client
	Mode    Mode
}

// NewService constructs a Service. A nil client forces fallback mode.
func NewService(store *catalog.Store, client llm.Client, mode Mode) *Service {
	if client == nil {
		client = llm.PlaceholderClient{}
		mode = ModeFallback
	}
	return &Service{Catalog: store, LLM: client, Mode: mode}
}

// Recommend produces 3-5 ranked tool recommendations for the user context.
// It never fails: any external-service or parse error is downgraded to the
// deterministic mock output with the mock-data flag set. Callers must have
// validated that the goal is non-empty.
func (s *Service) Recommend(ctx context.Context, uc UserContext) RecommendationResponse {
	tools := s.Catalog.All()
	if s.Mode != ModeExternal {
		return mockRecommendations(uc, tools)
	}

	prompt := llm.BuildRecommendationPrompt(uc.promptContext(), tools)
	raw, err := s.LLM.Complete(ctx, prompt)
	if err != nil {
		telemetry.Warn("recommend.fallback", map[string]any{"reason": err.Error()})
		return mockRecommendations(uc, tools)
	}

	resp, err := parseRecommendationResponse(raw, s.Catalog)
	if err != nil {
		telemetry.Warn("recommend.fallback", map[string]any{"reason": err.Error()})
		return mockRecommendations(uc, tools)
	}
	return resp
}

// Guidance produces an implementation plan for one tool. Same downgrade
// semantics as Recommend.
func (s *Service) Guidance(ctx context.Context, tool catalog.Tool, uc UserContext) ImplementationResponse {
	if s.Mode != ModeExternal {
		return mockImplementation(tool, uc)
	}

	prompt := llm.BuildGuidancePrompt(uc.promptContext(), tool)
	raw, err := s.LLM.Complete(ctx, prompt)
	if err != nil {
		telemetry.Warn("guidance.fallback", map[string]any{"tool_id": tool.ID, "reason": err.Error()})
		return mockImplementation(tool, uc)
	}

	resp, err := parseImplementationResponse(raw)
	if err != nil {
		telemetry.Warn("guidance.fallback", map[string]any{"tool_id": tool.ID, "reason": err.Error()})
		return mockImplementation(tool, uc)
	}
	return resp
}
