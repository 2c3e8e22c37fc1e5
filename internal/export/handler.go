package export

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"innotools-backend/internal/catalog"
	"innotools-backend/internal/recommend"
	"innotools-backend/internal/shared/server/respond"
)

// exportRequest is the shared body for both document endpoints. The user
// context is optional; when present it must carry a goal because it drives
// guidance generation.
type exportRequest struct {
	ToolID      string                 `json:"toolId"`
	UserContext *recommend.UserContext `json:"userContext,omitempty"`
}

// Handler wires document-export HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/pdf", h.export(FormatPDF))
	rg.POST("/documents/docx", h.export(FormatDOCX))
}

func (h *Handler) export(format Format) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req exportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
		if strings.TrimSpace(req.ToolID) == "" {
			respond.Error(c, http.StatusBadRequest, "validation_error", "toolId is required", nil)
			return
		}
		if req.UserContext != nil && strings.TrimSpace(req.UserContext.Goal) == "" {
			respond.Error(c, http.StatusBadRequest, "validation_error", "goal is required when userContext is provided", nil)
			return
		}

		doc, err := h.Svc.Render(c.Request.Context(), format, req.ToolID, req.UserContext)
		if err != nil {
			switch {
			case errors.Is(err, catalog.ErrNotFound):
				respond.Error(c, http.StatusNotFound, "not_found", "tool not found", nil)
			case errors.Is(err, ErrRender):
				respond.Error(c, http.StatusInternalServerError, "export_error", "failed to generate document", nil)
			default:
				respond.Error(c, http.StatusInternalServerError, "internal", "failed to generate document", nil)
			}
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", doc.FileName))
		c.Data(http.StatusOK, doc.ContentType, doc.Bytes)
	}
}
