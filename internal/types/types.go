package types

import "time"

type AssetType string

const (
	AssetCrypto AssetType = "Crypto"
	AssetEquity AssetType = "Equity"
)

// PriceRange is a chart window for an asset's price history.
type PriceRange string

const (
	Range1D PriceRange = "1D"
	Range1W PriceRange = "1W"
	Range1M PriceRange = "1M"
	Range1Y PriceRange = "1Y"
)

var PriceRanges = []PriceRange{Range1D, Range1W, Range1M, Range1Y}

type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type NewsArticle struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	Headline  string `json:"headline"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Summary   string `json:"summary,omitempty"`
}

type Asset struct {
	ID               string                      `json:"id"`
	Ticker           string                      `json:"ticker"`
	Name             string                      `json:"name"`
	Type             AssetType                   `json:"type"`
	Price            float64                     `json:"price"`
	Change24h        float64                     `json:"change24h"`
	Change24hPercent float64                     `json:"change24hPercent"`
	MarketCap        string                      `json:"marketCap"`
	Volume24h        string                      `json:"volume24h"`
	LogoURL          string                      `json:"logoUrl"`
	PriceHistory     map[PriceRange][]PricePoint `json:"priceHistory"`
	News             []NewsArticle               `json:"news"`
}

type AlertType string

const (
	AlertAbove AlertType = "above"
	AlertBelow AlertType = "below"
)

type AlertStatus string

// AlertTriggered is part of the model but nothing assigns it.
const (
	AlertActive    AlertStatus = "active"
	AlertTriggered AlertStatus = "triggered"
	AlertInactive  AlertStatus = "inactive"
)

// AllAssets is the ticker of an alert that applies to every asset.
const AllAssets = "All"

type Alert struct {
	ID          string      `json:"id"`
	AssetTicker string      `json:"assetTicker"`
	TargetPrice float64     `json:"targetPrice"`
	Type        AlertType   `json:"type"`
	Status      AlertStatus `json:"status"`
}

// TradingInsights is the merged result of the sentiment and signal stages.
type TradingInsights struct {
	TradingSignal    string  `json:"tradingSignal"`
	Rationale        string  `json:"rationale"`
	ConfidenceScore  float64 `json:"confidenceScore"`
	SentimentSummary string  `json:"sentimentSummary"`
}

type Holding struct {
	Ticker   string  `json:"ticker"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Value    float64 `json:"value"`
}

// InsightReport pairs an asset with the insights generated for it. Insights
// is nil when they could not be generated.
type InsightReport struct {
	Asset       Asset            `json:"asset"`
	Insights    *TradingInsights `json:"insights"`
	GeneratedAt time.Time        `json:"generatedAt"`
}
