package export

import (
	"context"
	"errors"
	"fmt"

	"innotools-backend/document/render"
	"innotools-backend/internal/catalog"
	"innotools-backend/internal/recommend"
	"innotools-backend/internal/shared/util"
)

// Format selects the binary document format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// ErrRender indicates document rendering failed; no partial document exists.
var ErrRender = errors.New("document rendering failed")

// Document is a rendered export ready to stream to the client.
type Document struct {
	Bytes       []byte
	FileName    string
	ContentType string
}

// Service renders tools into downloadable documents.
type Service struct {
	Catalog     *catalog.Store
	Recommender *recommend.Service
}

// NewService constructs a Service.
func NewService(store *catalog.Store, recommender *recommend.Service) *Service {
	return &Service{Catalog: store, Recommender: recommender}
}

// Render resolves the tool, generates customized guidance when a user
// context is supplied, and renders the requested format. Guidance generation
// never fails the export: the generator downgrades to mock output on any
// external-service error.
func (s *Service) Render(ctx context.Context, format Format, toolID string, uc *recommend.UserContext) (Document, error) {
	tool, err := s.Catalog.Get(toolID)
	if err != nil {
		return Document{}, err
	}

	var guidance *recommend.ImplementationResponse
	if uc != nil {
		resp := s.Recommender.Guidance(ctx, tool, *uc)
		guidance = &resp
	}

	switch format {
	case FormatPDF:
		data, err := render.PDF(tool, guidance)
		if err != nil {
			return Document{}, fmt.Errorf("%w: %v", ErrRender, err)
		}
		return Document{
			Bytes:       data,
			FileName:    util.AttachmentFileName(tool.Name, "pdf"),
			ContentType: "application/pdf",
		}, nil
	case FormatDOCX:
		data, err := render.DOCX(tool, guidance)
		if err != nil {
			return Document{}, fmt.Errorf("%w: %v", ErrRender, err)
		}
		return Document{
			Bytes:       data,
			FileName:    util.AttachmentFileName(tool.Name, "docx"),
			ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		}, nil
	default:
		return Document{}, fmt.Errorf("%w: unknown format %q", ErrRender, format)
	}
}
