package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/craftbot/internal/adapters/catalog"
)

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadCatalog_ParsesRecipes(t *testing.T) {
	path := writeCatalog(t, `{
		"ENCHANTED_DIAMOND": {
			"name": "Enchanted Diamond",
			"recipe": {
				"A1": "DIAMOND:32", "A2": "DIAMOND:32", "A3": "DIAMOND:32",
				"B1": "DIAMOND:32", "B2": "DIAMOND:32", "B3": ""
			}
		},
		"DIAMOND": {"name": "Diamond"}
	}`)

	cat, err := catalog.NewFile(path).LoadCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, cat, 2)

	item, ok := cat["ENCHANTED_DIAMOND"]
	require.True(t, ok)
	assert.Equal(t, "Enchanted Diamond", item.Name)
	require.NotNil(t, item.Recipe)
	// Los slots vacíos se descartan
	require.Len(t, item.Recipe.Ingredients, 5)
	assert.Equal(t, "DIAMOND", item.Recipe.Ingredients[0].ItemID)
	assert.InDelta(t, 32.0, item.Recipe.Ingredients[0].Quantity, 0.001)
	assert.Equal(t, 1, item.Recipe.OutputCount)

	// Item base sin receta
	base, ok := cat["DIAMOND"]
	require.True(t, ok)
	assert.Nil(t, base.Recipe)
}

func TestLoadCatalog_SlotOrderIsDeterministic(t *testing.T) {
	path := writeCatalog(t, `{
		"MIXED": {
			"name": "Mixed",
			"recipe": {"C3": "LAST:1", "A1": "FIRST:1", "B2": "MIDDLE:1"}
		}
	}`)

	cat, err := catalog.NewFile(path).LoadCatalog(context.Background())
	require.NoError(t, err)

	recipe := cat["MIXED"].Recipe
	require.Len(t, recipe.Ingredients, 3)
	assert.Equal(t, "FIRST", recipe.Ingredients[0].ItemID)
	assert.Equal(t, "MIDDLE", recipe.Ingredients[1].ItemID)
	assert.Equal(t, "LAST", recipe.Ingredients[2].ItemID)
}

func TestLoadCatalog_OutputCountVariants(t *testing.T) {
	path := writeCatalog(t, `{
		"NUMERIC": {"recipe": {"A1": "X:1", "count": 4}},
		"STRING":  {"recipe": {"A1": "X:1", "count": "8"}},
		"INVALID": {"recipe": {"A1": "X:1", "count": "lots"}},
		"ZERO":    {"recipe": {"A1": "X:1", "count": 0}}
	}`)

	cat, err := catalog.NewFile(path).LoadCatalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, cat["NUMERIC"].Recipe.OutputCount)
	assert.Equal(t, 8, cat["STRING"].Recipe.OutputCount)
	assert.Equal(t, 1, cat["INVALID"].Recipe.OutputCount)
	assert.Equal(t, 1, cat["ZERO"].Recipe.OutputCount)
}

func TestLoadCatalog_SlotWithoutQuantity(t *testing.T) {
	path := writeCatalog(t, `{
		"SIMPLE": {"recipe": {"A1": "STICK", "A2": "IRON_INGOT:abc"}}
	}`)

	cat, err := catalog.NewFile(path).LoadCatalog(context.Background())
	require.NoError(t, err)

	recipe := cat["SIMPLE"].Recipe
	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, "STICK", recipe.Ingredients[0].ItemID)
	assert.InDelta(t, 1.0, recipe.Ingredients[0].Quantity, 0.001)
	// Cantidad no numérica cae a 1
	assert.InDelta(t, 1.0, recipe.Ingredients[1].Quantity, 0.001)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := catalog.NewFile(filepath.Join(t.TempDir(), "nope.json")).LoadCatalog(context.Background())
	assert.Error(t, err)
}

func TestLoadCatalog_MalformedJSON(t *testing.T) {
	path := writeCatalog(t, `{"BROKEN": `)
	_, err := catalog.NewFile(path).LoadCatalog(context.Background())
	assert.Error(t, err)
}
