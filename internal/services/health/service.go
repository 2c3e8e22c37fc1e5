package health

// Service encapsulates health-related checks.
type Service struct {
	CatalogSize int
}

// NewService constructs a new health service.
func NewService(catalogSize int) *Service {
	return &Service{CatalogSize: catalogSize}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]any {
	return map[string]any{"ok": true, "catalogSize": s.CatalogSize}
}
