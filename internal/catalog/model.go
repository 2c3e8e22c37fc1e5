package catalog

import "errors"

// ErrNotFound indicates an unknown tool id.
var ErrNotFound = errors.New("tool not found")

// Tool is one innovation methodology entry in the static catalog.
// The catalog is loaded once at startup and never mutated afterwards.
type Tool struct {
	ID           string   `json:"id" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Category     string   `json:"category" validate:"required"`
	Benefits     []string `json:"benefits" validate:"required,min=1,dive,required"`
	UseCase      []string `json:"useCase,omitempty"`
	Difficulty   string   `json:"difficulty" validate:"required,oneof=Beginner Intermediate Advanced"`
	TimeRequired string   `json:"timeRequired" validate:"required"`
	TeamSize     string   `json:"teamSize" validate:"required"`
	Materials    []string `json:"materials" validate:"required,min=1,dive,required"`
	Steps        []string `json:"steps" validate:"required,min=1,dive,required"`
	Tips         []string `json:"tips,omitempty"`
	References   []string `json:"references,omitempty"`
	ImageURL     string   `json:"imageUrl,omitempty"`

	// Duration is parsed from TimeRequired at load time so nothing downstream
	// has to branch on the free-text descriptor.
	Duration DurationRange `json:"-"`
}
