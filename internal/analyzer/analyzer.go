package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alejandrodnm/craftbot/internal/domain"
	"github.com/alejandrodnm/craftbot/internal/ports"
)

// ErrItemNotFound indica que el nombre consultado no existe en el catálogo.
// No es fatal: el loop interactivo lo reporta y sigue.
var ErrItemNotFound = errors.New("item not found in catalog")

// Config contiene los umbrales del análisis.
type Config struct {
	SpreadThreshold float64
	Resolver        domain.ResolverConfig
	MinSellPrice    float64
	TopN            int
}

// DefaultConfig devuelve una configuración sensata para producción.
func DefaultConfig() Config {
	return Config{
		SpreadThreshold: 1.07,
		Resolver:        domain.DefaultResolverConfig(),
		MinSellPrice:    50000,
		TopN:            20,
	}
}

// Analyzer es el orquestador: carga el catálogo, toma snapshots de precios
// y resuelve consultas de coste y ranking contra ellos.
type Analyzer struct {
	cfg      Config
	catalogs ports.CatalogProvider
	market   ports.MarketProvider
	auctions ports.AuctionProvider
	reporter ports.Reporter

	// Snapshot del run actual. El catálogo se carga una vez; los precios se
	// refrescan en cada consulta (el provider cachea con TTL por debajo).
	catalog domain.Catalog
}

// New crea un Analyzer con todas las dependencias inyectadas.
func New(
	cfg Config,
	catalogs ports.CatalogProvider,
	market ports.MarketProvider,
	auctions ports.AuctionProvider,
	reporter ports.Reporter,
) *Analyzer {
	return &Analyzer{
		cfg:      cfg,
		catalogs: catalogs,
		market:   market,
		auctions: auctions,
		reporter: reporter,
	}
}

// snapshot construye un resolver sobre el estado actual del mercado.
// Sin bazaar no hay análisis posible; sin lowest BINs se degrada a un índice
// vacío, el fallback de auction simplemente no encuentra nada.
func (a *Analyzer) snapshot(ctx context.Context) (*domain.Resolver, domain.PriceIndex, domain.AuctionIndex, error) {
	start := time.Now()

	if a.catalog == nil {
		cat, err := a.catalogs.LoadCatalog(ctx)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("analyzer.snapshot: %w", err)
		}
		a.catalog = cat
	}

	quotes, err := a.market.FetchQuotes(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("analyzer.snapshot: %w", err)
	}
	prices := domain.BuildPriceIndex(quotes, a.cfg.SpreadThreshold)

	bins, err := a.auctions.FetchLowestBins(ctx)
	if err != nil {
		slog.Warn("lowest bins unavailable, auction fallback disabled", "err", err)
		bins = domain.AuctionIndex{}
	}

	slog.Debug("market snapshot ready",
		"items", len(a.catalog),
		"priced", len(prices),
		"bins", len(bins),
		"duration", time.Since(start).Round(time.Millisecond),
	)

	resolver := domain.NewResolver(a.cfg.Resolver, a.catalog, prices, bins)
	return resolver, prices, bins, nil
}

// RankTop resuelve el coste de craft de todo el catálogo y reporta los
// topN crafts con mayor margen porcentual.
func (a *Analyzer) RankTop(ctx context.Context) error {
	resolver, _, _, err := a.snapshot(ctx)
	if err != nil {
		return fmt.Errorf("analyzer.RankTop: %w", err)
	}

	start := time.Now()
	ranked := domain.RankProfitable(resolver, a.cfg.MinSellPrice, a.cfg.TopN)
	slog.Info("profit ranking complete",
		"candidates", len(a.catalog),
		"profitable", len(ranked),
		"duration", time.Since(start).Round(time.Millisecond),
	)

	a.reporter.ReportRanking(ranked)
	return nil
}

// Explain resuelve el árbol de costes de un item identificado por su nombre
// visible, lo reporta junto con la lista agregada de raw items y devuelve el
// item ID resuelto.
func (a *Analyzer) Explain(ctx context.Context, name string) (string, error) {
	resolver, prices, bins, err := a.snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("analyzer.Explain: %w", err)
	}

	itemID, ok := a.catalog.FindByName(name)
	if !ok {
		return "", fmt.Errorf("analyzer.Explain: %q: %w", name, ErrItemNotFound)
	}

	tree := resolver.Resolve(itemID)
	a.reporter.ReportTree(tree, prices)

	units := 1.0
	if item, ok := a.catalog[itemID]; ok && item.Recipe != nil {
		units = item.Recipe.Units()
	}

	raw := domain.CollectRawItems(tree)
	a.reporter.ReportRawItems(raw, prices, bins, units)

	return itemID, nil
}
