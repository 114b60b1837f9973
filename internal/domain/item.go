package domain

// Item es una entrada del catálogo de SkyBlock. El ID es la clave opaca que
// usan el bazaar y el auction house; Name es el nombre visible en el juego.
type Item struct {
	ID     string
	Name   string
	Recipe *Recipe // nil si el item no se puede craftear
}

// Recipe es la receta de crafteo ya parseada. Los descriptores "ID:QTY" del
// catálogo se parsean una sola vez al cargar, nunca dentro de la recursión.
type Recipe struct {
	// Ingredients conserva el orden de los slots del catálogo. Un mismo
	// sub-item puede aparecer en varios slots.
	Ingredients []Ingredient
	// OutputCount es cuántas unidades produce un craft. Siempre ≥ 1
	// (el loader lo valida y lo clampa).
	OutputCount int
}

// Ingredient es un par (item, cantidad) de un slot de la receta.
type Ingredient struct {
	ItemID   string
	Quantity float64
}

// Merged devuelve los ingredientes con los slots del mismo item fusionados,
// sumando cantidades y conservando el orden de primera aparición.
func (r *Recipe) Merged() []Ingredient {
	merged := make([]Ingredient, 0, len(r.Ingredients))
	index := make(map[string]int, len(r.Ingredients))

	for _, ing := range r.Ingredients {
		if i, ok := index[ing.ItemID]; ok {
			merged[i].Quantity += ing.Quantity
			continue
		}
		index[ing.ItemID] = len(merged)
		merged = append(merged, ing)
	}
	return merged
}

// Units devuelve OutputCount como float64, clampado a ≥ 1 por si la receta
// llegó sin pasar por el loader.
func (r *Recipe) Units() float64 {
	if r.OutputCount < 1 {
		return 1
	}
	return float64(r.OutputCount)
}

// Catalog mapea item ID → definición. Snapshot inmutable durante el run.
type Catalog map[string]Item

// FindByName busca el ID de un item por su nombre visible.
// Devuelve ("", false) si no existe — el caller lo reporta como "not found".
func (c Catalog) FindByName(name string) (string, bool) {
	for id, item := range c {
		if item.Name == name {
			return id, true
		}
	}
	return "", false
}
