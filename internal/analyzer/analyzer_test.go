package analyzer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/craftbot/internal/analyzer"
	"github.com/alejandrodnm/craftbot/internal/domain"
)

type fakeCatalog struct {
	cat   domain.Catalog
	err   error
	calls int
}

func (f *fakeCatalog) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	f.calls++
	return f.cat, f.err
}

type fakeMarket struct {
	quotes []domain.Quote
	err    error
}

func (f *fakeMarket) FetchQuotes(ctx context.Context) ([]domain.Quote, error) {
	return f.quotes, f.err
}

type fakeAuctions struct {
	bins domain.AuctionIndex
	err  error
}

func (f *fakeAuctions) FetchLowestBins(ctx context.Context) (domain.AuctionIndex, error) {
	return f.bins, f.err
}

type fakeReporter struct {
	rankings [][]domain.CraftProfit
	trees    []*domain.CostNode
	raws     []map[string]float64
	units    []float64
}

func (f *fakeReporter) ReportRanking(ranked []domain.CraftProfit) {
	f.rankings = append(f.rankings, ranked)
}

func (f *fakeReporter) ReportTree(tree *domain.CostNode, prices domain.PriceIndex) {
	f.trees = append(f.trees, tree)
}

func (f *fakeReporter) ReportRawItems(raw map[string]float64, prices domain.PriceIndex, auctions domain.AuctionIndex, units float64) {
	f.raws = append(f.raws, raw)
	f.units = append(f.units, units)
}

// testCatalog: GOLD_BLOCK se craftea con 9 GOLD_INGOT y se vende muy por
// encima del coste; GOLD_INGOT es un item base.
func testCatalog() domain.Catalog {
	return domain.Catalog{
		"GOLD_BLOCK": {
			ID:   "GOLD_BLOCK",
			Name: "Gold Block",
			Recipe: &domain.Recipe{
				Ingredients: []domain.Ingredient{{ItemID: "GOLD_INGOT", Quantity: 9}},
				OutputCount: 1,
			},
		},
		"GOLD_INGOT": {ID: "GOLD_INGOT", Name: "Gold Ingot"},
	}
}

func testQuotes() []domain.Quote {
	return []domain.Quote{
		// Spread estrecho → instabuy a 100,000
		{ItemID: "GOLD_BLOCK", BuyPrice: 100000, SellPrice: 98000},
		{ItemID: "GOLD_INGOT", BuyPrice: 10, SellPrice: 10},
	}
}

func newTestAnalyzer(cat *fakeCatalog, market *fakeMarket, auctions *fakeAuctions, rep *fakeReporter) *analyzer.Analyzer {
	return analyzer.New(analyzer.DefaultConfig(), cat, market, auctions, rep)
}

func TestRankTop_ReportsProfitableCrafts(t *testing.T) {
	rep := &fakeReporter{}
	a := newTestAnalyzer(
		&fakeCatalog{cat: testCatalog()},
		&fakeMarket{quotes: testQuotes()},
		&fakeAuctions{bins: domain.AuctionIndex{}},
		rep,
	)

	require.NoError(t, a.RankTop(context.Background()))
	require.Len(t, rep.rankings, 1)

	ranked := rep.rankings[0]
	require.Len(t, ranked, 1)
	// Craft: 9 * 10 = 90. Venta: 100,000. Profit 99,910.
	assert.Equal(t, "GOLD_BLOCK", ranked[0].ItemID)
	assert.Equal(t, "Gold Block", ranked[0].Name)
	assert.InDelta(t, 99910.0, ranked[0].Profit, 0.001)
	assert.InDelta(t, 90.0, ranked[0].CraftingCost, 0.001)
}

func TestRankTop_MarketFetchErrorIsFatal(t *testing.T) {
	a := newTestAnalyzer(
		&fakeCatalog{cat: testCatalog()},
		&fakeMarket{err: errors.New("bazaar down")},
		&fakeAuctions{},
		&fakeReporter{},
	)

	err := a.RankTop(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bazaar down")
}

func TestRankTop_CatalogErrorIsFatal(t *testing.T) {
	a := newTestAnalyzer(
		&fakeCatalog{err: errors.New("no such file")},
		&fakeMarket{quotes: testQuotes()},
		&fakeAuctions{},
		&fakeReporter{},
	)

	assert.Error(t, a.RankTop(context.Background()))
}

func TestExplain_ReportsTreeAndRawItems(t *testing.T) {
	rep := &fakeReporter{}
	a := newTestAnalyzer(
		&fakeCatalog{cat: testCatalog()},
		&fakeMarket{quotes: testQuotes()},
		&fakeAuctions{bins: domain.AuctionIndex{}},
		rep,
	)

	itemID, err := a.Explain(context.Background(), "Gold Block")
	require.NoError(t, err)
	assert.Equal(t, "GOLD_BLOCK", itemID)

	require.Len(t, rep.trees, 1)
	assert.Equal(t, "GOLD_BLOCK", rep.trees[0].Name)

	require.Len(t, rep.raws, 1)
	assert.InDelta(t, 9.0, rep.raws[0]["GOLD_INGOT"], 0.001)
	assert.InDelta(t, 1.0, rep.units[0], 0.001)
}

func TestExplain_UnknownNameIsNotFound(t *testing.T) {
	a := newTestAnalyzer(
		&fakeCatalog{cat: testCatalog()},
		&fakeMarket{quotes: testQuotes()},
		&fakeAuctions{},
		&fakeReporter{},
	)

	_, err := a.Explain(context.Background(), "Dirt Block")
	require.Error(t, err)
	assert.ErrorIs(t, err, analyzer.ErrItemNotFound)
}

func TestExplain_AuctionOutageDegrades(t *testing.T) {
	rep := &fakeReporter{}
	a := newTestAnalyzer(
		&fakeCatalog{cat: testCatalog()},
		&fakeMarket{quotes: testQuotes()},
		&fakeAuctions{err: errors.New("moulberry down")},
		rep,
	)

	// El fallback de auction se degrada a vacío, la consulta sigue funcionando
	_, err := a.Explain(context.Background(), "Gold Block")
	require.NoError(t, err)
	assert.Len(t, rep.trees, 1)
}

func TestSnapshot_CatalogLoadedOnce(t *testing.T) {
	cat := &fakeCatalog{cat: testCatalog()}
	a := newTestAnalyzer(
		cat,
		&fakeMarket{quotes: testQuotes()},
		&fakeAuctions{bins: domain.AuctionIndex{}},
		&fakeReporter{},
	)

	ctx := context.Background()
	_, err := a.Explain(ctx, "Gold Block")
	require.NoError(t, err)
	_, err = a.Explain(ctx, "Gold Block")
	require.NoError(t, err)

	assert.Equal(t, 1, cat.calls, "el catálogo se carga una sola vez por run")
}
