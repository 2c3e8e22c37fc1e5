package bootstrap

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"innotools-backend/internal/catalog"
	"innotools-backend/internal/export"
	"innotools-backend/internal/llm"
	"innotools-backend/internal/llm/openai"
	"innotools-backend/internal/recommend"
	"innotools-backend/internal/services/health"
	"innotools-backend/internal/shared/config"
	"innotools-backend/internal/shared/server"
	"innotools-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	Catalog          *catalog.Store
	LLM              llm.Client
	RecommendService *recommend.Service
	ExportService    *export.Service
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	store, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return BuildWithCatalog(cfg, store)
}

// BuildWithCatalog wires the application around an already-constructed
// catalog. Tests use this to inject fixture catalogs and fake LLM clients.
func BuildWithCatalog(cfg config.Config, store *catalog.Store) (*App, error) {
	llmClient, mode := buildLLM(cfg)

	recommendSvc := recommend.NewService(store, llmClient, mode)
	exportSvc := export.NewService(store, recommendSvc)

	app := &App{
		Config:           cfg,
		Catalog:          store,
		LLM:              llmClient,
		RecommendService: recommendSvc,
		ExportService:    exportSvc,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		Health:           health.NewService(store.Len()),
		CatalogHandler:   catalog.NewHandler(store),
		RecommendHandler: recommend.NewHandler(recommendSvc),
		ExportHandler:    export.NewHandler(exportSvc),
	})

	return app, nil
}

// buildLLM selects the generation mode once per process: external when a
// usable credential exists, fallback otherwise. A placeholder credential is
// never a startup failure.
func buildLLM(cfg config.Config) (llm.Client, recommend.Mode) {
	if !cfg.HasLLMCredential() {
		telemetry.Warn("llm.fallback_mode", map[string]any{
			"reason": "OPENAI_API_KEY missing or placeholder; serving deterministic mock data",
		})
		return llm.PlaceholderClient{}, recommend.ModeFallback
	}

	client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if err != nil {
		telemetry.Warn("llm.fallback_mode", map[string]any{"reason": err.Error()})
		return llm.PlaceholderClient{}, recommend.ModeFallback
	}

	telemetry.Info("llm.external_mode", map[string]any{"model": cfg.OpenAIModel})
	return client, recommend.ModeExternal
}
