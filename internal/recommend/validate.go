package recommend

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"innotools-backend/internal/catalog"
)

var validate = validator.New()

// wireRecommendation is the parse-side shape of one external recommendation.
// The echoed tool object is untrusted: only its id is read, and the whole
// object is replaced by the canonical catalog record after resolution.
type wireRecommendation struct {
	Tool struct {
		ID string `json:"id" validate:"required"`
	} `json:"tool"`
	Score               float64 `json:"score" validate:"gte=0,lte=100"`
	Reasoning           string  `json:"reasoning" validate:"required"`
	ImplementationGuide string  `json:"implementationGuide"`
}

type wireRecommendationResponse struct {
	Recommendations []wireRecommendation `json:"recommendations" validate:"min=1,max=5,dive"`
	Summary         string               `json:"summary" validate:"required"`
}

// parseRecommendationResponse strictly parses the external-service output.
// Shape mismatches are errors, never repaired: the caller treats them the
// same way as a failed network call. Embedded tool objects are resolved by
// id against the catalog so a mangled echo cannot leak downstream.
func parseRecommendationResponse(raw string, store *catalog.Store) (RecommendationResponse, error) {
	var wire wireRecommendationResponse
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return RecommendationResponse{}, fmt.Errorf("recommendation response parse: %w", err)
	}
	if err := validate.Struct(wire); err != nil {
		return RecommendationResponse{}, fmt.Errorf("recommendation response schema: %w", err)
	}
	if want := minRecommendations(store.Len()); len(wire.Recommendations) < want {
		return RecommendationResponse{}, fmt.Errorf("recommendation response has %d items, need at least %d", len(wire.Recommendations), want)
	}

	recs := make([]ToolRecommendation, 0, len(wire.Recommendations))
	for i, item := range wire.Recommendations {
		tool, err := store.Get(item.Tool.ID)
		if err != nil {
			return RecommendationResponse{}, fmt.Errorf("recommendation %d references unknown tool %q", i, item.Tool.ID)
		}
		recs = append(recs, ToolRecommendation{
			Tool:                tool,
			Score:               item.Score,
			Reasoning:           item.Reasoning,
			ImplementationGuide: item.ImplementationGuide,
		})
	}

	return RecommendationResponse{
		Recommendations: recs,
		Summary:         wire.Summary,
	}, nil
}

// minRecommendations is the lower bound on an acceptable result size: three,
// degrading to the catalog size for smaller catalogs.
func minRecommendations(catalogSize int) int {
	if catalogSize < 3 {
		return catalogSize
	}
	return 3
}

// parseImplementationResponse strictly parses guidance output. All five
// fields must be present and non-empty.
func parseImplementationResponse(raw string) (ImplementationResponse, error) {
	var resp ImplementationResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return ImplementationResponse{}, fmt.Errorf("guidance response parse: %w", err)
	}
	if err := validate.Struct(resp); err != nil {
		return ImplementationResponse{}, fmt.Errorf("guidance response schema: %w", err)
	}

	resp.UsingMockData = false
	return resp, nil
}
