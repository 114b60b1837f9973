package hypixel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alejandrodnm/craftbot/internal/domain"
)

// ErrNoProducts indica que el feed del bazaar vino sin la colección de
// productos. Sin precios el análisis no puede continuar.
var ErrNoProducts = errors.New("bazaar response has no products")

// FetchQuotes descarga el snapshot del bazaar y lo convierte a cotizaciones.
func (c *Client) FetchQuotes(ctx context.Context) ([]domain.Quote, error) {
	url := c.bazaarBase + "/v2/skyblock/bazaar"

	var resp bazaarResponse
	if err := c.get(ctx, c.bazaarLimiter, url, &resp); err != nil {
		return nil, fmt.Errorf("hypixel.FetchQuotes: %w", err)
	}
	if resp.Products == nil {
		return nil, fmt.Errorf("hypixel.FetchQuotes: %w", ErrNoProducts)
	}

	quotes := mapQuotes(resp.Products)
	slog.Debug("bazaar snapshot fetched", "products", len(quotes))
	return quotes, nil
}
