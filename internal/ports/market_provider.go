package ports

import (
	"context"

	"github.com/alejandrodnm/craftbot/internal/domain"
)

// MarketProvider obtiene las cotizaciones del mercado continuo (bazaar).
type MarketProvider interface {
	// FetchQuotes devuelve una cotización por producto del bazaar.
	// Si el feed no expone la colección de productos devuelve error: sin
	// precios ningún resultado tiene sentido y el run aborta.
	FetchQuotes(ctx context.Context) ([]domain.Quote, error)
}
