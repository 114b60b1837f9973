package domain

import "math"

// ResolverConfig contiene los umbrales de las reglas de early-exit.
type ResolverConfig struct {
	// BulkQuantity y BulkUnitPrice definen la regla de compra al por mayor:
	// si una receta pide ≥ BulkQuantity unidades de un ingrediente que cuesta
	// ≤ BulkUnitPrice, el padre se compra entero en vez de craftearse.
	BulkQuantity  float64
	BulkUnitPrice float64
}

// DefaultResolverConfig devuelve los umbrales de producción.
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		BulkQuantity:  80,
		BulkUnitPrice: 1000,
	}
}

// Resolver decide, por cada nodo del grafo de recetas, si comprar el item o
// craftearlo desde sus sub-ingredientes. Todos los índices son snapshots
// read-only inyectados; el único estado mutable es el set de ancestros que
// vive dentro de cada llamada a Resolve.
type Resolver struct {
	cfg      ResolverConfig
	catalog  Catalog
	prices   PriceIndex
	auctions AuctionIndex
}

// NewResolver crea un Resolver sobre los snapshots dados.
func NewResolver(cfg ResolverConfig, catalog Catalog, prices PriceIndex, auctions AuctionIndex) *Resolver {
	return &Resolver{
		cfg:      cfg,
		catalog:  catalog,
		prices:   prices,
		auctions: auctions,
	}
}

// Resolve construye el árbol de costes para un item. Cada llamada top-level
// crea su propio set de ancestros; los árboles no se cachean entre llamadas.
func (r *Resolver) Resolve(itemID string) *CostNode {
	return r.resolve(itemID, make(map[string]bool))
}

func (r *Resolver) resolve(itemID string, ancestors map[string]bool) *CostNode {
	// Guard de ciclos: un ID repetido en la cadena activa corta la recursión.
	// El coste se deja sin resolver a propósito en vez de adivinarlo.
	if ancestors[itemID] {
		return &CostNode{Name: itemID, Count: 1, Note: NoteCycle}
	}

	item, ok := r.catalog[itemID]
	if !ok || item.Recipe == nil {
		return r.resolveBase(itemID)
	}

	// Scoped add/release: el defer garantiza que el ancestro se retira en
	// TODOS los paths de salida, incluidos los early-exits. Un remove
	// perdido corrompería la detección de ciclos en subárboles hermanos.
	ancestors[itemID] = true
	defer delete(ancestors, itemID)

	units := item.Recipe.Units()
	parentPrice, parentPriced := r.prices.Price(itemID)

	tree := &CostNode{Name: itemID, Count: 1}
	var totalCraftCost float64

	for _, ing := range item.Recipe.Merged() {
		child := r.resolve(ing.ItemID, ancestors)
		child.Count = ing.Quantity
		tree.Children = append(tree.Children, child)
		// Un hijo sin precio contribuye 0: el craft parece más barato de lo
		// que es, pero la estimación no se bloquea. Aproximación preservada.
		totalCraftCost += child.Cost * ing.Quantity

		subUnitPrice := r.bestUnitPrice(ing.ItemID)

		// Regla A (bulk): pedir al por mayor un ingrediente barato señala
		// que el padre se compra entero. Descarta los hijos ya construidos.
		if ing.Quantity >= r.cfg.BulkQuantity && subUnitPrice <= r.cfg.BulkUnitPrice {
			return &CostNode{Name: itemID, Count: 1, Note: NotePurchased, Cost: parentPrice}
		}

		// Regla B: este ingrediente por sí solo ya cuesta más que comprar el
		// item terminado. Sin precio del padre no hay con qué comparar (+Inf).
		parentTotal := math.Inf(1)
		if parentPriced {
			parentTotal = parentPrice * units
		}
		if subUnitPrice*ing.Quantity > parentTotal {
			return &CostNode{Name: itemID, Count: 1, Note: NotePurchased, Cost: parentTotal}
		}
	}

	// Decisión final: comprar gana si empata o si el craft quedó sin precio.
	totalMarket := parentPrice * units
	if totalMarket > 0 && (totalMarket <= totalCraftCost || totalCraftCost == 0) {
		return &CostNode{
			Name:  itemID,
			Count: units,
			Note:  NotePurchased,
			Cost:  totalMarket / units,
		}
	}

	tree.Cost = totalCraftCost / units
	return tree
}

// resolveBase resuelve una hoja sin receta: bazaar, si no auction, si no
// queda explícitamente sin precio (cost 0) para que el árbol siga completo.
func (r *Resolver) resolveBase(itemID string) *CostNode {
	if price, ok := r.prices.Price(itemID); ok {
		return &CostNode{Name: itemID, Count: 1, Note: NoteBaseItem, Cost: price}
	}
	if ask, ok := r.auctions.LowestAsk(itemID); ok {
		return &CostNode{Name: itemID, Count: 1, Note: NoteBaseAuction, Cost: ask}
	}
	return &CostNode{Name: itemID, Count: 1, Note: NoteBaseNoPrice}
}

// bestUnitPrice devuelve el mejor precio unitario conocido de un item:
// bazaar, si no lowest BIN, si no 0.
func (r *Resolver) bestUnitPrice(itemID string) float64 {
	if price, ok := r.prices.Price(itemID); ok {
		return price
	}
	if ask, ok := r.auctions.LowestAsk(itemID); ok {
		return ask
	}
	return 0
}
