package recommend

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"innotools-backend/internal/catalog"
	"innotools-backend/internal/shared/server/respond"
)

// Handler wires recommendation HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations", h.recommend)
	rg.POST("/tools/:id/implementation", h.implementation)
}

func (h *Handler) recommend(c *gin.Context) {
	uc, ok := bindUserContext(c)
	if !ok {
		return
	}

	resp := h.Svc.Recommend(c.Request.Context(), uc)
	c.Set("usingMockData", resp.UsingMockData)
	respond.OK(c, resp)
}

func (h *Handler) implementation(c *gin.Context) {
	// Tool resolution happens before context validation so an unknown id is
	// always a 404, regardless of body contents.
	tool, err := h.Svc.Catalog.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "tool not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to fetch tool", nil)
		return
	}

	uc, ok := bindUserContext(c)
	if !ok {
		return
	}

	resp := h.Svc.Guidance(c.Request.Context(), tool, uc)
	c.Set("usingMockData", resp.UsingMockData)
	respond.OK(c, resp)
}

// bindUserContext decodes and validates the request body. A missing or
// blank goal is rejected here, before any external call is attempted.
func bindUserContext(c *gin.Context) (UserContext, bool) {
	var uc UserContext
	if err := c.ShouldBindJSON(&uc); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "goal is required", nil)
		return UserContext{}, false
	}
	if strings.TrimSpace(uc.Goal) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "goal is required", nil)
		return UserContext{}, false
	}
	return uc, true
}
