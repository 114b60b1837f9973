package ports

import (
	"github.com/alejandrodnm/craftbot/internal/domain"
)

// Reporter consume los resultados del análisis y los presenta al usuario.
// Las estructuras llegan en memoria; el formato es cosa del adapter.
type Reporter interface {
	// ReportRanking presenta el ranking de crafts rentables.
	ReportRanking(ranked []domain.CraftProfit)

	// ReportTree presenta el árbol de costes de un item, con multiplicadores
	// acumulados y precios por línea.
	ReportTree(tree *domain.CostNode, prices domain.PriceIndex)

	// ReportRawItems presenta la lista agregada de compras raw y su coste
	// total normalizado por las unidades que produce la receta consultada.
	ReportRawItems(raw map[string]float64, prices domain.PriceIndex, auctions domain.AuctionIndex, units float64)
}
