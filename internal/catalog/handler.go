package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"innotools-backend/internal/shared/server/respond"
)

// Handler wires catalog HTTP handlers to the store.
type Handler struct {
	Store *Store
}

// NewHandler constructs a Handler.
func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tools", h.list)
	rg.GET("/tools/:id", h.get)
}

func (h *Handler) list(c *gin.Context) {
	filter := Filter{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
	}
	if raw := c.Query("maxMinutes"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respond.Error(c, http.StatusBadRequest, "validation_error", "maxMinutes must be a positive integer", nil)
			return
		}
		filter.MaxMinutes = parsed
	}

	respond.OK(c, h.Store.Filter(filter))
}

func (h *Handler) get(c *gin.Context) {
	tool, err := h.Store.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "tool not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to fetch tool", nil)
		return
	}
	respond.OK(c, tool)
}
