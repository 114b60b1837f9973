package domain

import "strings"

// AuctionIndex mapea item ID (en mayúsculas) → lowest BIN. Es sparse: solo
// los items con subastas activas aparecen.
type AuctionIndex map[string]float64

// NewAuctionIndex construye el índice normalizando las claves a mayúsculas.
func NewAuctionIndex(lowestBins map[string]float64) AuctionIndex {
	index := make(AuctionIndex, len(lowestBins))
	for id, price := range lowestBins {
		index[strings.ToUpper(id)] = price
	}
	return index
}

// LowestAsk devuelve el lowest BIN de un item. Lookup exacto e insensible a
// mayúsculas; sin fuzzy matching ni fallbacks.
func (a AuctionIndex) LowestAsk(itemID string) (float64, bool) {
	price, ok := a[strings.ToUpper(itemID)]
	return price, ok
}
