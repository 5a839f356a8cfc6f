/*
Package market provides the mock asset catalog, market news and seed alerts
the dashboard serves, and generates synthetic price history per chart range.
*/
package market

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shanehull/tradedash/internal/types"
)

var ErrUnknownTicker = errors.New("unknown ticker")

const placeholderURL = "#"

type seedAsset struct {
	asset     types.Asset
	basePrice float64
}

// rangeSpec controls how many points a range has and how wide it spreads.
type rangeSpec struct {
	days   int
	points int
}

var rangeSpecs = map[types.PriceRange]rangeSpec{
	types.Range1D: {days: 1, points: 24},
	types.Range1W: {days: 7, points: 7},
	types.Range1M: {days: 30, points: 30},
	types.Range1Y: {days: 365, points: 52},
}

// Catalog is read-only once built. Assets handed out share their price
// history maps with the catalog and must not be modified.
type Catalog struct {
	assets   []types.Asset
	byTicker map[string]int
	news     []types.NewsArticle
	alerts   []types.Alert
}

// NewCatalog builds the catalog, drawing price history from rng relative
// to now. A nil rng uses a time-seeded source.
func NewCatalog(rng *rand.Rand, now time.Time) *Catalog {
	if rng == nil {
		seed := uint64(now.UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	seeds := seedAssets()
	c := &Catalog{
		assets:   make([]types.Asset, 0, len(seeds)),
		byTicker: make(map[string]int, len(seeds)),
		news:     seedMarketNews(),
		alerts:   seedAlerts(),
	}

	for _, s := range seeds {
		a := s.asset
		a.PriceHistory = GeneratePriceHistory(s.basePrice, rng, now)
		c.byTicker[a.Ticker] = len(c.assets)
		c.assets = append(c.assets, a)
	}

	return c
}

// Assets returns the watchlist in display order.
func (c *Catalog) Assets() []types.Asset {
	out := make([]types.Asset, len(c.assets))
	copy(out, c.assets)
	return out
}

// Default is the asset selected when nothing else is.
func (c *Catalog) Default() types.Asset {
	return c.assets[0]
}

func (c *Catalog) Find(ticker string) (types.Asset, error) {
	i, ok := c.byTicker[strings.ToUpper(strings.TrimSpace(ticker))]
	if !ok {
		return types.Asset{}, fmt.Errorf("%w: %q", ErrUnknownTicker, ticker)
	}
	return c.assets[i], nil
}

func (c *Catalog) History(ticker string, r types.PriceRange) ([]types.PricePoint, error) {
	a, err := c.Find(ticker)
	if err != nil {
		return nil, err
	}
	points, ok := a.PriceHistory[r]
	if !ok {
		return nil, fmt.Errorf("unsupported range %q", r)
	}
	return points, nil
}

func (c *Catalog) MarketNews() []types.NewsArticle {
	out := make([]types.NewsArticle, len(c.news))
	copy(out, c.news)
	return out
}

// SeedAlerts returns the alerts a fresh dashboard starts with.
func (c *Catalog) SeedAlerts() []types.Alert {
	out := make([]types.Alert, len(c.alerts))
	copy(out, c.alerts)
	return out
}

// Tickers returns the catalog's tickers in watchlist order.
func (c *Catalog) Tickers() []string {
	out := make([]string, 0, len(c.assets))
	for _, a := range c.assets {
		out = append(out, a.Ticker)
	}
	return out
}

// GeneratePriceHistory returns synthetic points for every range around
// basePrice. Each price is basePrice*(1+(r-0.5)*days/10) rounded to cents.
func GeneratePriceHistory(basePrice float64, rng *rand.Rand, now time.Time) map[types.PriceRange][]types.PricePoint {
	history := make(map[types.PriceRange][]types.PricePoint, len(rangeSpecs))
	for _, r := range types.PriceRanges {
		rs := rangeSpecs[r]
		history[r] = generateRange(basePrice, rs.days, rs.points, rng, now)
	}
	return history
}

func generateRange(basePrice float64, days, points int, rng *rand.Rand, now time.Time) []types.PricePoint {
	data := make([]types.PricePoint, 0, points)
	for i := 0; i < points; i++ {
		back := float64(days*(points-i)) / float64(points)
		date := now.AddDate(0, 0, -int(math.Ceil(back)))

		price := basePrice * (1 + (rng.Float64()-0.5)*(float64(days)/10))

		data = append(data, types.PricePoint{
			Date:  date.Format(time.DateOnly),
			Price: decimal.NewFromFloat(price).Round(2).InexactFloat64(),
		})
	}
	return data
}
