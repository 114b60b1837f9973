package ports

import (
	"context"

	"github.com/alejandrodnm/craftbot/internal/domain"
)

// AuctionProvider obtiene el índice de lowest BINs del auction house.
type AuctionProvider interface {
	// FetchLowestBins devuelve el mapa item ID (mayúsculas) → lowest BIN.
	// Es sparse: solo items con subastas activas.
	FetchLowestBins(ctx context.Context) (domain.AuctionIndex, error)
}
