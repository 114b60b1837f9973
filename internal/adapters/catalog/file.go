package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alejandrodnm/craftbot/internal/domain"
)

// craftingSlots define el orden canónico de la grid 3x3. El JSON no
// garantiza orden de keys, así que iteramos en este orden fijo para que
// las recetas parseadas sean deterministas.
var craftingSlots = []string{"A1", "A2", "A3", "B1", "B2", "B3", "C1", "C2", "C3"}

// rawItem es la entrada cruda del fichero de catálogo.
type rawItem struct {
	Name   string                     `json:"name"`
	Recipe map[string]json.RawMessage `json:"recipe"`
}

// File carga el catálogo desde un fichero JSON local.
// Cada entrada es itemID → {name, recipe}; la receta trae los slots de la
// grid como "INGREDIENT_ID:QTY" y opcionalmente "count" con las unidades
// que produce el craft.
type File struct {
	path string
}

// NewFile crea un provider que lee de path.
func NewFile(path string) *File {
	return &File{path: path}
}

// LoadCatalog lee y parsea el fichero completo. Las recetas se parsean
// aquí una sola vez; el resto del programa trabaja con el modelo de dominio.
func (f *File) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadCatalog: %w", err)
	}

	var entries map[string]rawItem
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("catalog.LoadCatalog: parse %s: %w", f.path, err)
	}

	cat := make(domain.Catalog, len(entries))
	for id, entry := range entries {
		item := domain.Item{ID: id, Name: entry.Name}
		if entry.Recipe != nil {
			item.Recipe = parseRecipe(entry.Recipe)
		}
		cat[id] = item
	}

	slog.Info("catalog loaded", "path", f.path, "items", len(cat))
	return cat, nil
}

// parseRecipe convierte la receta cruda en ingredientes por slot.
func parseRecipe(raw map[string]json.RawMessage) *domain.Recipe {
	recipe := &domain.Recipe{OutputCount: 1}

	for _, slot := range craftingSlots {
		msg, ok := raw[slot]
		if !ok {
			continue
		}
		var cell string
		if err := json.Unmarshal(msg, &cell); err != nil || cell == "" {
			continue
		}
		recipe.Ingredients = append(recipe.Ingredients, parseSlot(cell))
	}

	if msg, ok := raw["count"]; ok {
		recipe.OutputCount = parseOutputCount(msg)
	}
	return recipe
}

// parseSlot separa "INGREDIENT_ID:QTY". Sin cantidad, o con una cantidad
// que no es numérica, asume 1.
func parseSlot(cell string) domain.Ingredient {
	id, qty, found := strings.Cut(cell, ":")
	if !found {
		return domain.Ingredient{ItemID: cell, Quantity: 1}
	}
	n, err := strconv.Atoi(qty)
	if err != nil || n < 1 {
		n = 1
	}
	return domain.Ingredient{ItemID: id, Quantity: float64(n)}
}

// parseOutputCount acepta "count" como número o como string numérico,
// que de ambas formas aparece en los dumps. Valores inválidos caen a 1.
func parseOutputCount(msg json.RawMessage) int {
	var n int
	if err := json.Unmarshal(msg, &n); err == nil && n >= 1 {
		return n
	}
	var s string
	if err := json.Unmarshal(msg, &s); err == nil {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			return v
		}
	}
	return 1
}
