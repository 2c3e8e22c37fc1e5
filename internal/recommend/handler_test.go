package recommend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"innotools-backend/internal/catalog"
	"innotools-backend/internal/export"
	"innotools-backend/internal/recommend"
	"innotools-backend/internal/services/health"
	"innotools-backend/internal/shared/config"
	"innotools-backend/internal/shared/server"
)

type countingLLM struct {
	calls    int
	response string
	err      error
}

func (f *countingLLM) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func fixtureTools() []catalog.Tool {
	mk := func(id, name string) catalog.Tool {
		return catalog.Tool{
			ID:           id,
			Name:         name,
			Description:  "desc",
			Category:     "Ideation",
			Benefits:     []string{"Adds structure", "Builds momentum"},
			Difficulty:   "Beginner",
			TimeRequired: "30-60 minutes",
			TeamSize:     "2-8 people",
			Materials:    []string{"Sticky notes"},
			Steps:        []string{"Pick a subject", "Run the exercise"},
		}
	}
	return []catalog.Tool{mk("scamper", "SCAMPER"), mk("cjm", "Customer Journey Mapping")}
}

func newTestRouter(t *testing.T, client *countingLLM, mode recommend.Mode) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := catalog.New(fixtureTools())
	if err != nil {
		t.Fatalf("build store: %v", err)
	}
	svc := recommend.NewService(store, client, mode)

	return server.NewRouter(server.RouterDeps{
		Config:           config.Config{Env: "dev"},
		Health:           health.NewService(store.Len()),
		CatalogHandler:   catalog.NewHandler(store),
		RecommendHandler: recommend.NewHandler(svc),
		ExportHandler:    export.NewHandler(export.NewService(store, svc)),
	})
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRecommendationsMissingGoal(t *testing.T) {
	client := &countingLLM{}
	router := newTestRouter(t, client, recommend.ModeExternal)

	for _, body := range []string{`{}`, `{"goal": ""}`, `{"goal": "   "}`, `not json`} {
		resp := postJSON(router, "/api/v1/recommendations", body)
		if resp.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, resp.Code)
		}
	}
	if client.calls != 0 {
		t.Fatalf("no external call may be attempted for invalid input, got %d", client.calls)
	}
}

func TestRecommendationsFallbackResponse(t *testing.T) {
	client := &countingLLM{err: errors.New("unreachable")}
	router := newTestRouter(t, client, recommend.ModeExternal)

	resp := postJSON(router, "/api/v1/recommendations", `{"goal": "improve onboarding"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.Code, resp.Body.String())
	}

	var parsed recommend.RecommendationResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !parsed.UsingMockData {
		t.Fatal("expected usingMockData true")
	}
	if len(parsed.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations for 2-tool catalog, got %d", len(parsed.Recommendations))
	}
	if parsed.Recommendations[0].Score != 95 || parsed.Recommendations[1].Score != 85 {
		t.Errorf("scores = [%v, %v], want [95, 85]",
			parsed.Recommendations[0].Score, parsed.Recommendations[1].Score)
	}
	reasoning := strings.ToLower(parsed.Recommendations[0].Reasoning)
	if !strings.Contains(reasoning, "scamper") || !strings.Contains(reasoning, "improve onboarding") {
		t.Errorf("reasoning should mention tool and goal, got %q", reasoning)
	}
}

func TestRecommendationsExternalPath(t *testing.T) {
	payload := `{
		"recommendations": [
			{"tool": {"id": "cjm"}, "score": 91, "reasoning": "Maps the experience end to end"},
			{"tool": {"id": "scamper"}, "score": 74, "reasoning": "A structured second option"}
		],
		"summary": "Focus on the journey"
	}`
	client := &countingLLM{response: payload}
	router := newTestRouter(t, client, recommend.ModeExternal)

	resp := postJSON(router, "/api/v1/recommendations", `{"goal": "understand churn"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if client.calls != 1 {
		t.Fatalf("expected 1 external call, got %d", client.calls)
	}

	var parsed recommend.RecommendationResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if parsed.UsingMockData {
		t.Fatal("external response must not be flagged as mock")
	}
	if parsed.Recommendations[0].Tool.Name != "Customer Journey Mapping" {
		t.Errorf("expected canonical tool object, got %q", parsed.Recommendations[0].Tool.Name)
	}
}

func TestImplementationUnknownToolIs404BeforeValidation(t *testing.T) {
	client := &countingLLM{}
	router := newTestRouter(t, client, recommend.ModeExternal)

	// Invalid body: the unknown id must still win.
	resp := postJSON(router, "/api/v1/tools/nope/implementation", `{}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if client.calls != 0 {
		t.Fatalf("no external call may be attempted, got %d", client.calls)
	}
}

func TestImplementationMissingGoal(t *testing.T) {
	client := &countingLLM{}
	router := newTestRouter(t, client, recommend.ModeExternal)

	resp := postJSON(router, "/api/v1/tools/scamper/implementation", `{"goal": ""}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestImplementationFallbackOnExternalError(t *testing.T) {
	client := &countingLLM{err: errors.New("boom")}
	router := newTestRouter(t, client, recommend.ModeExternal)

	resp := postJSON(router, "/api/v1/tools/scamper/implementation", `{"goal": "improve onboarding"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var parsed recommend.ImplementationResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !parsed.UsingMockData {
		t.Fatal("expected usingMockData true")
	}
	if parsed.Guide == "" || parsed.Timeline == "" ||
		len(parsed.CustomSteps) == 0 || len(parsed.Materials) == 0 || len(parsed.ExpectedOutcomes) == 0 {
		t.Fatal("all five guidance fields must be populated")
	}
}
