package hypixel

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/alejandrodnm/craftbot/internal/domain"
	"github.com/alejandrodnm/craftbot/internal/ports"
)

const (
	cacheKeyQuotes = "bazaar_quotes"
	cacheKeyBins   = "lowest_bins"
)

// Snapshot cachea las respuestas de los providers con TTL. En el loop
// interactivo cada consulta dispararía dos fetches; con esto un run
// reutiliza el mismo snapshot hasta que expira.
type Snapshot struct {
	market   ports.MarketProvider
	auctions ports.AuctionProvider
	cache    *gocache.Cache
}

// NewSnapshot envuelve los providers con una caché de ttl.
func NewSnapshot(market ports.MarketProvider, auctions ports.AuctionProvider, ttl time.Duration) *Snapshot {
	return &Snapshot{
		market:   market,
		auctions: auctions,
		cache:    gocache.New(ttl, 2*ttl),
	}
}

// FetchQuotes devuelve las cotizaciones cacheadas o delega en el provider.
func (s *Snapshot) FetchQuotes(ctx context.Context) ([]domain.Quote, error) {
	if v, ok := s.cache.Get(cacheKeyQuotes); ok {
		return v.([]domain.Quote), nil
	}
	quotes, err := s.market.FetchQuotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("hypixel.Snapshot: %w", err)
	}
	s.cache.Set(cacheKeyQuotes, quotes, gocache.DefaultExpiration)
	return quotes, nil
}

// FetchLowestBins devuelve el índice cacheado o delega en el provider.
func (s *Snapshot) FetchLowestBins(ctx context.Context) (domain.AuctionIndex, error) {
	if v, ok := s.cache.Get(cacheKeyBins); ok {
		return v.(domain.AuctionIndex), nil
	}
	bins, err := s.auctions.FetchLowestBins(ctx)
	if err != nil {
		return nil, fmt.Errorf("hypixel.Snapshot: %w", err)
	}
	s.cache.Set(cacheKeyBins, bins, gocache.DefaultExpiration)
	return bins, nil
}
