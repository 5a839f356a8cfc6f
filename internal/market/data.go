package market

import "github.com/shanehull/tradedash/internal/types"

func seedAssets() []seedAsset {
	return []seedAsset{
		{
			basePrice: 68000,
			asset: types.Asset{
				ID:               "1",
				Ticker:           "BTC",
				Name:             "Bitcoin",
				Type:             types.AssetCrypto,
				Price:            68134.32,
				Change24h:        1254.32,
				Change24hPercent: 1.88,
				MarketCap:        "1.34T",
				Volume24h:        "24.5B",
				LogoURL:          "https://placehold.co/40x40/4B0082/FFFFFF/png?text=B",
				News: []types.NewsArticle{
					{ID: "n1", Source: "CoinDesk", Headline: "Bitcoin Halving Event Creates New Market Dynamics", Timestamp: "2h ago", URL: placeholderURL},
					{ID: "n2", Source: "Bloomberg", Headline: "Institutional Interest in Bitcoin ETFs Remains Strong", Timestamp: "5h ago", URL: placeholderURL},
				},
			},
		},
		{
			basePrice: 3500,
			asset: types.Asset{
				ID:               "2",
				Ticker:           "ETH",
				Name:             "Ethereum",
				Type:             types.AssetCrypto,
				Price:            3540.88,
				Change24h:        -56.12,
				Change24hPercent: -1.56,
				MarketCap:        "425.3B",
				Volume24h:        "12.1B",
				LogoURL:          "https://placehold.co/40x40/4B0082/FFFFFF/png?text=E",
				News: []types.NewsArticle{
					{ID: "n3", Source: "Reuters", Headline: `Ethereum "Dencun" Upgrade Goes Live, Slashing Fees`, Timestamp: "1d ago", URL: placeholderURL},
					{ID: "n4", Source: "The Block", Headline: "Vitalik Buterin Proposes New EIP to Improve Staking", Timestamp: "3d ago", URL: placeholderURL},
				},
			},
		},
		{
			basePrice: 195,
			asset: types.Asset{
				ID:               "3",
				Ticker:           "AAPL",
				Name:             "Apple Inc.",
				Type:             types.AssetEquity,
				Price:            194.82,
				Change24h:        2.75,
				Change24hPercent: 1.43,
				MarketCap:        "2.98T",
				Volume24h:        "54.3M",
				LogoURL:          "https://placehold.co/40x40/4B0082/FFFFFF/png?text=A",
				News: []types.NewsArticle{
					{ID: "n5", Source: "Wall Street Journal", Headline: "Apple Unveils New AI Features for iOS 18 at WWDC", Timestamp: "4h ago", URL: placeholderURL},
					{ID: "n6", Source: "CNBC", Headline: "Analysts Upgrade AAPL Stock on Vision Pro Sales Forecast", Timestamp: "1d ago", URL: placeholderURL},
				},
			},
		},
		{
			basePrice: 177,
			asset: types.Asset{
				ID:               "4",
				Ticker:           "GOOGL",
				Name:             "Alphabet Inc.",
				Type:             types.AssetEquity,
				Price:            177.45,
				Change24h:        -1.02,
				Change24hPercent: -0.57,
				MarketCap:        "2.19T",
				Volume24h:        "25.1M",
				LogoURL:          "https://placehold.co/40x40/4B0082/FFFFFF/png?text=G",
				News: []types.NewsArticle{
					{ID: "n7", Source: "TechCrunch", Headline: "Google I/O Showcases Gemini AI Integration Across Products", Timestamp: "8h ago", URL: placeholderURL},
					{ID: "n8", Source: "MarketWatch", Headline: "Alphabet faces antitrust scrutiny in the EU over advertising practices", Timestamp: "2d ago", URL: placeholderURL},
				},
			},
		},
	}
}

func seedAlerts() []types.Alert {
	return []types.Alert{
		{ID: "a1", AssetTicker: "BTC", TargetPrice: 70000, Type: types.AlertAbove, Status: types.AlertActive},
		{ID: "a2", AssetTicker: "AAPL", TargetPrice: 190, Type: types.AlertBelow, Status: types.AlertTriggered},
		{ID: "a3", AssetTicker: "ETH", TargetPrice: 4000, Type: types.AlertAbove, Status: types.AlertActive},
	}
}

func seedMarketNews() []types.NewsArticle {
	return []types.NewsArticle{
		{
			ID:        "mn1",
			Source:    "Reuters",
			Headline:  `Federal Reserve Holds Interest Rates Steady, Cites "Lack of Further Progress" on Inflation`,
			Timestamp: "30m ago",
			URL:       placeholderURL,
			Summary:   "The Federal Reserve concluded its two-day policy meeting by keeping its benchmark interest rate unchanged, signaling that rate cuts may be further off than previously anticipated.",
		},
		{
			ID:        "mn2",
			Source:    "Bloomberg",
			Headline:  "Global Supply Chain Pressures Ease, But Shipping Costs Remain a Concern",
			Timestamp: "1h ago",
			URL:       placeholderURL,
			Summary:   "While major bottlenecks have cleared, new geopolitical tensions and rising fuel costs are keeping shipping rates elevated, potentially impacting inflation for consumer goods.",
		},
		{
			ID:        "mn3",
			Source:    "The Economist",
			Headline:  "The Rise of AI in Corporate Decision-Making: Opportunities and Risks",
			Timestamp: "4h ago",
			URL:       placeholderURL,
			Summary:   "A deep dive into how artificial intelligence is transforming business strategy, from marketing and sales to operations and finance, and the ethical considerations that arise.",
		},
		{
			ID:        "mn4",
			Source:    "Financial Times",
			Headline:  "European Central Bank Signals Potential Rate Cut in June",
			Timestamp: "1d ago",
			URL:       placeholderURL,
			Summary:   "ECB officials have grown more confident that inflation is returning to its 2% target, paving the way for a possible interest rate reduction next month.",
		},
	}
}
