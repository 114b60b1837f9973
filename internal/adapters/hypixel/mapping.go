package hypixel

import (
	"github.com/alejandrodnm/craftbot/internal/domain"
)

// mapQuotes convierte los productos del bazaar al modelo de dominio.
// El key del mapa es el product ID canónico; ignoramos el product_id del
// body porque en algunos dumps viejos no coincide.
func mapQuotes(products map[string]bazaarProduct) []domain.Quote {
	quotes := make([]domain.Quote, 0, len(products))
	for id, p := range products {
		quotes = append(quotes, domain.Quote{
			ItemID:         id,
			BuyPrice:       p.QuickStatus.BuyPrice,
			SellPrice:      p.QuickStatus.SellPrice,
			BuyMovingWeek:  p.QuickStatus.BuyMovingWeek,
			SellMovingWeek: p.QuickStatus.SellMovingWeek,
		})
	}
	return quotes
}
