package market

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shanehull/tradedash/internal/types"
)

const defaultConcurrency = 4

// Insighter produces insights for one ticker from its news.
type Insighter interface {
	Insights(ctx context.Context, ticker string, articles []types.NewsArticle) (*types.TradingInsights, error)
}

// ParseTickers splits a comma separated list, upper-casing and dropping
// blanks and duplicates.
func ParseTickers(s string) []string {
	seen := make(map[string]struct{})
	var tickers []string
	for _, t := range strings.Split(s, ",") {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		tickers = append(tickers, t)
	}
	return tickers
}

// ProcessTickers generates a report per ticker with at most concurrency
// requests in flight. Reports come back in the order of tickers. Unknown
// tickers are logged and skipped; an insight failure yields a report with
// nil Insights.
func ProcessTickers(ctx context.Context, c *Catalog, tickers []string, in Insighter, concurrency int, log logrus.FieldLogger) []types.InsightReport {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)
	reports := make([]*types.InsightReport, len(tickers))

	total := len(tickers)
	processedCount := 0
	var processedMutex sync.Mutex

	for i, ticker := range tickers {
		asset, err := c.Find(ticker)
		if err != nil {
			log.WithError(err).Warn("skipping ticker")
			continue
		}

		wg.Add(1)
		sem <- struct{}{}

		go func(i int, a types.Asset) {
			defer wg.Done()
			defer func() { <-sem }()

			processedMutex.Lock()
			processedCount++
			log.Infof("Processing... %d/%d (%s)", processedCount, total, a.Ticker)
			processedMutex.Unlock()

			insights, err := in.Insights(ctx, a.Ticker, a.News)
			if err != nil {
				// Already logged by the pipeline.
				insights = nil
			}

			reports[i] = &types.InsightReport{
				Asset:       a,
				Insights:    insights,
				GeneratedAt: time.Now(),
			}
		}(i, asset)
	}

	wg.Wait()
	log.Info("Done processing")

	out := make([]types.InsightReport, 0, len(reports))
	for _, r := range reports {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}
