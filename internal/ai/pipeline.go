package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/shanehull/tradedash/internal/types"
)

// DefaultHistoricalPriceData stands in for real price history, which is not
// wired into the signal stage.
const DefaultHistoricalPriceData = "Recent price action shows [trend]."

var (
	ErrInsightsUnavailable = errors.New("insights unavailable")
	ErrEmptySummary        = errors.New("failed to get sentiment summary")
)

type Stage string

const (
	StageSummarize Stage = "summarize"
	StageGenerate  Stage = "generate"
)

// UnavailableError is the only error Pipeline.Insights returns. It matches
// ErrInsightsUnavailable and wraps the cause for logging; callers are not
// expected to branch on the cause.
type UnavailableError struct {
	Ticker string
	Stage  Stage
	Err    error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("insights unavailable for %q at %s stage: %v", e.Ticker, e.Stage, e.Err)
}

func (e *UnavailableError) Unwrap() []error {
	return []error{ErrInsightsUnavailable, e.Err}
}

type SentimentSummarizer interface {
	Summarize(ctx context.Context, in SentimentInput) (SentimentOutput, error)
}

type SignalGenerator interface {
	Generate(ctx context.Context, in SignalInput) (SignalOutput, error)
}

type Option func(*Pipeline)

func WithHistoricalPriceData(s string) Option {
	return func(p *Pipeline) { p.priceData = s }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Pipeline) { p.log = log }
}

// Pipeline runs the sentiment stage and then the signal stage for one ticker.
type Pipeline struct {
	summarizer SentimentSummarizer
	generator  SignalGenerator
	priceData  string
	log        logrus.FieldLogger
}

func NewPipeline(summarizer SentimentSummarizer, generator SignalGenerator, opts ...Option) *Pipeline {
	p := &Pipeline{
		summarizer: summarizer,
		generator:  generator,
		priceData:  DefaultHistoricalPriceData,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Insights returns the merged insights for ticker or an *UnavailableError.
// A partially built record is never returned.
func (p *Pipeline) Insights(ctx context.Context, ticker string, articles []types.NewsArticle) (*types.TradingInsights, error) {
	sentiment, err := p.summarizer.Summarize(ctx, SentimentInput{
		Ticker:       ticker,
		NewsArticles: Headlines(articles),
	})
	if err == nil && sentiment.SentimentSummary == "" {
		err = ErrEmptySummary
	}
	if err != nil {
		return nil, p.unavailable(ticker, StageSummarize, err)
	}

	signal, err := p.generator.Generate(ctx, SignalInput{
		Ticker:              ticker,
		NewsSummary:         sentiment.SentimentSummary,
		HistoricalPriceData: p.priceData,
	})
	if err != nil {
		return nil, p.unavailable(ticker, StageGenerate, err)
	}

	return &types.TradingInsights{
		TradingSignal:    signal.TradingSignal,
		Rationale:        signal.Rationale,
		ConfidenceScore:  signal.ConfidenceScore,
		SentimentSummary: sentiment.SentimentSummary,
	}, nil
}

func (p *Pipeline) unavailable(ticker string, stage Stage, err error) error {
	p.log.WithFields(logrus.Fields{
		"ticker": ticker,
		"stage":  stage,
	}).WithError(err).Error("error getting trading insights")

	return &UnavailableError{Ticker: ticker, Stage: stage, Err: err}
}

// Headlines maps articles to their headline text, keeping order. The result
// is never nil.
func Headlines(articles []types.NewsArticle) []string {
	headlines := make([]string, 0, len(articles))
	for _, a := range articles {
		headlines = append(headlines, a.Headline)
	}
	return headlines
}
