package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/shanehull/tradedash/internal/prompt"
	"github.com/shanehull/tradedash/internal/types"
)

type fakeSummarizer struct {
	out   SentimentOutput
	err   error
	calls []SentimentInput
}

func (f *fakeSummarizer) Summarize(ctx context.Context, in SentimentInput) (SentimentOutput, error) {
	f.calls = append(f.calls, in)
	return f.out, f.err
}

type fakeGenerator struct {
	out   SignalOutput
	err   error
	calls []SignalInput
}

func (f *fakeGenerator) Generate(ctx context.Context, in SignalInput) (SignalOutput, error) {
	f.calls = append(f.calls, in)
	return f.out, f.err
}

var btcNews = []types.NewsArticle{
	{ID: "n1", Source: "CoinDesk", Headline: "Bitcoin Halving Event Creates New Market Dynamics"},
	{ID: "n2", Source: "Bloomberg", Headline: "Institutional Interest in Bitcoin ETFs Remains Strong"},
}

const btcSummary = "Overall positive sentiment driven by halving and ETF demand."

func newQuietPipeline(s SentimentSummarizer, g SignalGenerator) (*Pipeline, *logtest.Hook) {
	log, hook := logtest.NewNullLogger()
	return NewPipeline(s, g, WithLogger(log)), hook
}

func TestPipeline_BTCScenario(t *testing.T) {
	s := &fakeSummarizer{out: SentimentOutput{SentimentSummary: btcSummary}}
	g := &fakeGenerator{out: SignalOutput{
		TradingSignal:   "Buy",
		Rationale:       "Positive sentiment and rising ETF demand support upward momentum.",
		ConfidenceScore: 0.72,
	}}
	p, hook := newQuietPipeline(s, g)

	got, err := p.Insights(context.Background(), "BTC", btcNews)

	assert.Equal(t, nil, err)
	assert.Equal(t, &types.TradingInsights{
		TradingSignal:    "Buy",
		Rationale:        "Positive sentiment and rising ETF demand support upward momentum.",
		ConfidenceScore:  0.72,
		SentimentSummary: btcSummary,
	}, got)
	assert.Equal(t, 0, len(hook.AllEntries()))

	assert.Equal(t, 1, len(s.calls))
	assert.Equal(t, SentimentInput{
		Ticker: "BTC",
		NewsArticles: []string{
			"Bitcoin Halving Event Creates New Market Dynamics",
			"Institutional Interest in Bitcoin ETFs Remains Strong",
		},
	}, s.calls[0])
}

func TestPipeline_GeneratorReceivesSummaryVerbatim(t *testing.T) {
	summary := "  Mixed: upgrade hype vs. regulatory fear.\n"
	s := &fakeSummarizer{out: SentimentOutput{SentimentSummary: summary}}
	g := &fakeGenerator{out: SignalOutput{TradingSignal: "Hold", Rationale: "r", ConfidenceScore: 0.5}}
	p, _ := newQuietPipeline(s, g)

	_, err := p.Insights(context.Background(), "ETH", nil)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(g.calls))
	assert.Equal(t, SignalInput{
		Ticker:              "ETH",
		NewsSummary:         summary,
		HistoricalPriceData: DefaultHistoricalPriceData,
	}, g.calls[0])
}

func TestPipeline_NilArticlesBecomeEmptyHeadlines(t *testing.T) {
	s := &fakeSummarizer{out: SentimentOutput{SentimentSummary: "neutral"}}
	g := &fakeGenerator{}
	p, _ := newQuietPipeline(s, g)

	_, err := p.Insights(context.Background(), "GOOGL", nil)

	assert.Equal(t, nil, err)
	assert.NotEqual(t, nil, s.calls[0].NewsArticles)
	assert.Equal(t, 0, len(s.calls[0].NewsArticles))
}

func TestPipeline_CustomPriceData(t *testing.T) {
	s := &fakeSummarizer{out: SentimentOutput{SentimentSummary: "positive"}}
	g := &fakeGenerator{}
	log, _ := logtest.NewNullLogger()
	p := NewPipeline(s, g, WithLogger(log), WithHistoricalPriceData("Up 4% this week."))

	_, err := p.Insights(context.Background(), "AAPL", nil)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Up 4% this week.", g.calls[0].HistoricalPriceData)
}

func TestPipeline_ShapeIsStable(t *testing.T) {
	s := &fakeSummarizer{out: SentimentOutput{SentimentSummary: btcSummary}}
	g := &fakeGenerator{out: SignalOutput{TradingSignal: "Buy", Rationale: "r", ConfidenceScore: 0.9}}
	p, _ := newQuietPipeline(s, g)

	first, err1 := p.Insights(context.Background(), "BTC", btcNews)
	second, err2 := p.Insights(context.Background(), "BTC", btcNews)

	assert.Equal(t, nil, err1)
	assert.Equal(t, nil, err2)
	assert.Equal(t, first, second)
	assert.Equal(t, true, first != second)
}

func TestPipeline_SummarizerErrorIsContained(t *testing.T) {
	netErr := errors.New("dial tcp: connection refused")
	s := &fakeSummarizer{err: netErr}
	g := &fakeGenerator{}
	p, hook := newQuietPipeline(s, g)

	got, err := p.Insights(context.Background(), "BTC", btcNews)

	assert.Equal(t, true, got == nil)
	assert.Equal(t, true, errors.Is(err, ErrInsightsUnavailable))
	assert.Equal(t, true, errors.Is(err, netErr))
	assert.Equal(t, 0, len(g.calls))

	var unavailable *UnavailableError
	assert.Equal(t, true, errors.As(err, &unavailable))
	assert.Equal(t, StageSummarize, unavailable.Stage)
	assert.Equal(t, "BTC", unavailable.Ticker)

	assert.Equal(t, 1, len(hook.AllEntries()))
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestPipeline_EmptySummaryIsContained(t *testing.T) {
	s := &fakeSummarizer{out: SentimentOutput{SentimentSummary: ""}}
	g := &fakeGenerator{}
	p, _ := newQuietPipeline(s, g)

	got, err := p.Insights(context.Background(), "BTC", btcNews)

	assert.Equal(t, true, got == nil)
	assert.Equal(t, true, errors.Is(err, ErrInsightsUnavailable))
	assert.Equal(t, true, errors.Is(err, ErrEmptySummary))
	assert.Equal(t, 0, len(g.calls))
}

func TestPipeline_GeneratorErrorIsContained(t *testing.T) {
	s := &fakeSummarizer{out: SentimentOutput{SentimentSummary: "positive"}}
	g := &fakeGenerator{err: prompt.ErrInvalidOutput}
	p, _ := newQuietPipeline(s, g)

	got, err := p.Insights(context.Background(), "AAPL", nil)

	assert.Equal(t, true, got == nil)
	assert.Equal(t, true, errors.Is(err, ErrInsightsUnavailable))

	var unavailable *UnavailableError
	assert.Equal(t, true, errors.As(err, &unavailable))
	assert.Equal(t, StageGenerate, unavailable.Stage)
}

func TestPipeline_EndToEndWithStubModel(t *testing.T) {
	var order []string
	var signalPrompt string
	m := prompt.ModelFunc(func(ctx context.Context, req prompt.Request) (string, error) {
		order = append(order, req.Template)
		switch req.Template {
		case "summarizeNewsSentiment":
			return `{"sentimentSummary":"` + btcSummary + `"}`, nil
		default:
			signalPrompt = req.Prompt
			return "```json\n" + `{"tradingSignal":"Buy","rationale":"ETF demand.","confidenceScore":0.72}` + "\n```", nil
		}
	})

	log, _ := logtest.NewNullLogger()
	p := NewPipeline(
		NewSummarizer(m, NewSentimentTemplate()),
		NewGenerator(m, NewSignalTemplate()),
		WithLogger(log),
	)

	got, err := p.Insights(context.Background(), "BTC", btcNews)

	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"summarizeNewsSentiment", "generateTradingInsights"}, order)
	assert.Equal(t, true, strings.Contains(signalPrompt, "News Summary: "+btcSummary+"\n"))
	assert.Equal(t, "Buy", got.TradingSignal)
	assert.Equal(t, 0.72, got.ConfidenceScore)
	assert.Equal(t, btcSummary, got.SentimentSummary)
}

func TestPipeline_NetworkFailureThroughModel(t *testing.T) {
	m := prompt.ModelFunc(func(ctx context.Context, req prompt.Request) (string, error) {
		return "", errors.New("network unreachable")
	})
	log, _ := logtest.NewNullLogger()
	p := NewPipeline(NewSummarizer(m, NewSentimentTemplate()), NewGenerator(m, NewSignalTemplate()), WithLogger(log))

	got, err := p.Insights(context.Background(), "BTC", btcNews)

	assert.Equal(t, true, got == nil)
	assert.Equal(t, true, errors.Is(err, ErrInsightsUnavailable))
	assert.Equal(t, true, errors.Is(err, prompt.ErrModelCall))
}

func TestHeadlines(t *testing.T) {
	got := Headlines(btcNews)

	assert.Equal(t, []string{btcNews[0].Headline, btcNews[1].Headline}, got)
}
