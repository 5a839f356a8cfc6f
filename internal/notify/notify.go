/*
Package notify reports generated insights on the console and by email.
*/
package notify

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/shanehull/tradedash/internal/types"
)

type Renderer interface {
	Render(report types.InsightReport) (*RenderedMessage, error)
}

type Sender interface {
	Send(msg *RenderedMessage) error
}

func formatHeadlines(news []types.NewsArticle) string {
	if len(news) == 0 {
		return "\tN/A\n"
	}
	var sb strings.Builder
	for _, n := range news {
		sb.WriteString(fmt.Sprintf("\t- %s (%s)\n", n.Headline, n.Source))
	}
	return sb.String()
}

// ReportInsights writes a human readable block per report to w.
func ReportInsights(w io.Writer, reports []types.InsightReport) {
	if len(reports) == 0 {
		fmt.Fprintln(w, "\n-------------------------------------------")
		fmt.Fprintln(w, "No assets to report on.")
		fmt.Fprintln(w, "-------------------------------------------")
		return
	}

	fmt.Fprintln(w, "\n===========================================")
	fmt.Fprintf(w, "%d ASSET REPORTS\n", len(reports))
	fmt.Fprintln(w, "===========================================")

	for i, r := range reports {
		a := r.Asset

		insightOutput := UnavailableMessage + "\n"
		if r.Insights != nil {
			insightOutput = fmt.Sprintf("Signal:     %s\n", r.Insights.TradingSignal) +
				fmt.Sprintf("Confidence: %s\n", percent(r.Insights.ConfidenceScore)) +
				fmt.Sprintf("Rationale:\n\t%s\n", r.Insights.Rationale) +
				fmt.Sprintf("Sentiment:\n\t%s\n", r.Insights.SentimentSummary)
		}

		consoleOutput := fmt.Sprintf("\n--- REPORT #%d ---\n", i+1) +
			fmt.Sprintf("Ticker: %s (%s)\n", a.Ticker, a.Name) +
			fmt.Sprintf("Price:  %s (%s)\n", money(a.Price), signedPercent(a.Change24hPercent)) +
			fmt.Sprintf("Headlines:\n%s", formatHeadlines(a.News)) +
			insightOutput

		fmt.Fprint(w, consoleOutput)
	}

	fmt.Fprintln(w, "\n===========================================")
}

// EmailReports renders and sends one email per report concurrently and
// returns how many were sent.
func EmailReports(reports []types.InsightReport, r Renderer, s Sender, log logrus.FieldLogger) int {
	var wg sync.WaitGroup
	var mu sync.Mutex
	sent := 0

	for _, report := range reports {
		msg, err := r.Render(report)
		if err != nil {
			log.WithError(err).WithField("ticker", report.Asset.Ticker).Error("failed to render email")
			continue
		}

		wg.Add(1)
		go func(msg *RenderedMessage) {
			defer wg.Done()
			if err := s.Send(msg); err != nil {
				return
			}
			mu.Lock()
			sent++
			mu.Unlock()
		}(msg)
	}
	wg.Wait()

	return sent
}
