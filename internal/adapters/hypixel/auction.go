package hypixel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alejandrodnm/craftbot/internal/domain"
)

// FetchLowestBins descarga el dump de lowest BINs de Moulberry.
// El body es un mapa plano item ID → precio, sin envelope.
func (c *Client) FetchLowestBins(ctx context.Context) (domain.AuctionIndex, error) {
	url := c.lowestBinBase + "/lowestbin.json"

	var bins map[string]float64
	if err := c.get(ctx, c.lowestBinLimit, url, &bins); err != nil {
		return nil, fmt.Errorf("hypixel.FetchLowestBins: %w", err)
	}

	slog.Debug("lowest bins fetched", "items", len(bins))
	return domain.NewAuctionIndex(bins), nil
}
