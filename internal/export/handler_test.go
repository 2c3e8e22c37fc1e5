package export_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"innotools-backend/document/extract"
	"innotools-backend/internal/catalog"
	"innotools-backend/internal/export"
	"innotools-backend/internal/recommend"
)

type failingLLM struct{}

func (failingLLM) Complete(ctx context.Context, prompt string) (string, error) {
	return "", errors.New("unreachable")
}

func fixtureTools() []catalog.Tool {
	return []catalog.Tool{{
		ID:           "scamper",
		Name:         "SCAMPER",
		Description:  "A structured ideation checklist.",
		Category:     "Ideation",
		Benefits:     []string{"Structures the session"},
		Difficulty:   "Beginner",
		TimeRequired: "30-60 minutes",
		TeamSize:     "2-8 people",
		Materials:    []string{"Sticky notes"},
		Steps:        []string{"Pick a subject", "Work the checklist"},
	}}
}

func newExportRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := catalog.New(fixtureTools())
	if err != nil {
		t.Fatalf("build store: %v", err)
	}
	recommender := recommend.NewService(store, failingLLM{}, recommend.ModeExternal)

	router := gin.New()
	export.NewHandler(export.NewService(store, recommender)).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postExport(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestExportPDF(t *testing.T) {
	router := newExportRouter(t)

	resp := postExport(router, "/api/v1/documents/pdf", `{"toolId": "scamper"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); cd != "attachment; filename=scamper.pdf" {
		t.Errorf("content disposition = %q", cd)
	}

	text, err := extract.PDFText(resp.Body.Bytes())
	if err != nil {
		t.Fatalf("extract pdf: %v", err)
	}
	for _, want := range append([]string{"SCAMPER"}, fixtureTools()[0].Steps...) {
		if !strings.Contains(text, want) {
			t.Errorf("pdf text missing %q", want)
		}
	}
}

func TestExportDOCXWithGuidance(t *testing.T) {
	router := newExportRouter(t)

	body := `{"toolId": "scamper", "userContext": {"goal": "improve onboarding"}}`
	resp := postExport(router, "/api/v1/documents/docx", body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.Code, resp.Body.String())
	}
	want := "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	if ct := resp.Header().Get("Content-Type"); ct != want {
		t.Errorf("content type = %q", ct)
	}

	text, err := extract.DOCXText(resp.Body.Bytes())
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	if !strings.Contains(text, "SCAMPER") {
		t.Error("docx text missing tool name")
	}
	// External service is down, so the guidance pages come from the fallback.
	if !strings.Contains(text, "Customized Steps") {
		t.Error("docx text missing guidance section")
	}
}

func TestExportUnknownTool(t *testing.T) {
	router := newExportRouter(t)

	resp := postExport(router, "/api/v1/documents/pdf", `{"toolId": "nope"}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != "not_found" {
		t.Errorf("error code = %q", body.Error.Code)
	}
}

func TestExportInvalidBody(t *testing.T) {
	router := newExportRouter(t)

	cases := map[string]string{
		"not json":             `nope`,
		"missing toolId":       `{}`,
		"blank toolId":         `{"toolId": "  "}`,
		"context without goal": `{"toolId": "scamper", "userContext": {"industry": "SaaS"}}`,
	}
	for name, body := range cases {
		resp := postExport(router, "/api/v1/documents/docx", body)
		if resp.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, resp.Code)
		}
	}
}
