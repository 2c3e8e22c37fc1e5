package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innotools-backend/internal/catalog"
)

func fixtureTool(id, name string) catalog.Tool {
	return catalog.Tool{
		ID:           id,
		Name:         name,
		Description:  "A test methodology",
		Category:     "Ideation",
		Benefits:     []string{"Speeds things up", "Aligns the team"},
		Difficulty:   "Beginner",
		TimeRequired: "30-60 minutes",
		TeamSize:     "2-8 people",
		Materials:    []string{"Sticky notes"},
		Steps:        []string{"Do the first thing", "Do the second thing"},
	}
}

func TestNewParsesDurations(t *testing.T) {
	store, err := catalog.New([]catalog.Tool{fixtureTool("a", "Tool A")})
	require.NoError(t, err)

	tool, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, catalog.DurationRange{Min: 30, Max: 60}, tool.Duration)
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := catalog.New([]catalog.Tool{fixtureTool("a", "Tool A"), fixtureTool("a", "Tool A2")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestNewRejectsInvalidDifficulty(t *testing.T) {
	bad := fixtureTool("a", "Tool A")
	bad.Difficulty = "Expert"
	_, err := catalog.New([]catalog.Tool{bad})
	require.Error(t, err)
}

func TestGetUnknownID(t *testing.T) {
	store, err := catalog.New([]catalog.Tool{fixtureTool("a", "Tool A")})
	require.NoError(t, err)

	_, err = store.Get("missing")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestFilter(t *testing.T) {
	short := fixtureTool("short", "Short Tool")
	long := fixtureTool("long", "Long Tool")
	long.Category = "Customer Research"
	long.Difficulty = "Advanced"
	long.TimeRequired = "2-4 hours"
	unparsed := fixtureTool("unparsed", "Unparsed Tool")
	unparsed.TimeRequired = "varies"

	store, err := catalog.New([]catalog.Tool{short, long, unparsed})
	require.NoError(t, err)

	t.Run("no filters returns catalog order", func(t *testing.T) {
		got := store.Filter(catalog.Filter{})
		require.Len(t, got, 3)
		assert.Equal(t, "short", got[0].ID)
	})

	t.Run("category is case-insensitive", func(t *testing.T) {
		got := store.Filter(catalog.Filter{Category: "customer research"})
		require.Len(t, got, 1)
		assert.Equal(t, "long", got[0].ID)
	})

	t.Run("difficulty", func(t *testing.T) {
		got := store.Filter(catalog.Filter{Difficulty: "Advanced"})
		require.Len(t, got, 1)
		assert.Equal(t, "long", got[0].ID)
	})

	t.Run("duration cap uses parsed range and drops unparseable", func(t *testing.T) {
		got := store.Filter(catalog.Filter{MaxMinutes: 90})
		require.Len(t, got, 1)
		assert.Equal(t, "short", got[0].ID)
	})
}

func TestLoadShippedCatalog(t *testing.T) {
	store, err := catalog.Load("../../data/tools.json")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, store.Len(), 3)

	tool, err := store.Get("scamper")
	require.NoError(t, err)
	assert.Equal(t, "SCAMPER", tool.Name)
	assert.False(t, tool.Duration.IsZero())
}

func TestAllReturnsACopy(t *testing.T) {
	store, err := catalog.New([]catalog.Tool{fixtureTool("a", "Tool A")})
	require.NoError(t, err)

	tools := store.All()
	tools[0].Name = "mutated"

	tool, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "Tool A", tool.Name)
}
