package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Store holds the immutable in-memory catalog. It is safe for unlimited
// concurrent readers because it is never mutated after construction.
type Store struct {
	tools []Tool
	byID  map[string]Tool
}

var validate = validator.New()

// Load reads and validates the catalog from a JSON file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var tools []Tool
	if err := json.Unmarshal(data, &tools); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(tools)
}

// New validates the given tools and builds a Store. Duplicate ids and
// records failing field validation are rejected.
func New(tools []Tool) (*Store, error) {
	byID := make(map[string]Tool, len(tools))
	out := make([]Tool, 0, len(tools))
	for i, tool := range tools {
		if err := validate.Struct(tool); err != nil {
			return nil, fmt.Errorf("catalog entry %d (%s): %w", i, tool.ID, err)
		}
		if _, exists := byID[tool.ID]; exists {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, tool.ID)
		}
		tool.Duration = ParseDuration(tool.TimeRequired)
		byID[tool.ID] = tool
		out = append(out, tool)
	}
	return &Store{tools: out, byID: byID}, nil
}

// All returns every tool in catalog order. The returned slice is a copy so
// callers cannot mutate the store.
func (s *Store) All() []Tool {
	out := make([]Tool, len(s.tools))
	copy(out, s.tools)
	return out
}

// Get returns the tool with the given id, or ErrNotFound.
func (s *Store) Get(id string) (Tool, error) {
	tool, ok := s.byID[id]
	if !ok {
		return Tool{}, ErrNotFound
	}
	return tool, nil
}

// Len returns the number of tools in the catalog.
func (s *Store) Len() int {
	return len(s.tools)
}

// Filter describes optional catalog filters. Zero values mean "no filter".
type Filter struct {
	Category   string
	Difficulty string
	MaxMinutes int
}

// Filter returns tools matching every set filter, in catalog order.
// Duration filtering uses the range parsed at load time; tools with an
// unparseable descriptor are excluded when a duration cap is requested.
func (s *Store) Filter(f Filter) []Tool {
	out := make([]Tool, 0, len(s.tools))
	for _, tool := range s.tools {
		if f.Category != "" && !strings.EqualFold(tool.Category, f.Category) {
			continue
		}
		if f.Difficulty != "" && !strings.EqualFold(tool.Difficulty, f.Difficulty) {
			continue
		}
		if f.MaxMinutes > 0 {
			if tool.Duration.IsZero() || tool.Duration.Max > f.MaxMinutes {
				continue
			}
		}
		out = append(out, tool)
	}
	return out
}
