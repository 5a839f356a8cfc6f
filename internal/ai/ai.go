/*
Package ai generates trading insights for an asset with two Gemini-backed
stages: a news sentiment summary followed by a trading signal.
*/
package ai

import (
	"context"

	"google.golang.org/genai"

	"github.com/shanehull/tradedash/internal/prompt"
)

type SentimentInput struct {
	Ticker       string   `json:"ticker"`
	NewsArticles []string `json:"newsArticles" validate:"required"`
}

type SentimentOutput struct {
	SentimentSummary string `json:"sentimentSummary"`
}

type SignalInput struct {
	Ticker              string `json:"ticker"`
	NewsSummary         string `json:"newsSummary"`
	HistoricalPriceData string `json:"historicalPriceData"`
}

type SignalOutput struct {
	TradingSignal   string  `json:"tradingSignal"`
	Rationale       string  `json:"rationale"`
	ConfidenceScore float64 `json:"confidenceScore"`
}

type SentimentTemplate = prompt.Template[SentimentInput, SentimentOutput]

type SignalTemplate = prompt.Template[SignalInput, SignalOutput]

func NewSentimentTemplate() *SentimentTemplate {
	return prompt.MustTemplate[SentimentInput, SentimentOutput](
		"summarizeNewsSentiment",
		sentimentSystemInstruction,
		sentimentPromptTemplate,
		getSentimentSchema(),
	)
}

func NewSignalTemplate() *SignalTemplate {
	return prompt.MustTemplate[SignalInput, SignalOutput](
		"generateTradingInsights",
		signalSystemInstruction,
		signalPromptTemplate,
		getSignalSchema(),
	)
}

// Summarizer produces a free-text sentiment summary from a ticker's headlines.
type Summarizer struct {
	model prompt.Model
	tmpl  *SentimentTemplate
}

func NewSummarizer(model prompt.Model, tmpl *SentimentTemplate) *Summarizer {
	return &Summarizer{model: model, tmpl: tmpl}
}

func (s *Summarizer) Summarize(ctx context.Context, in SentimentInput) (SentimentOutput, error) {
	return s.tmpl.Invoke(ctx, s.model, in)
}

// Generator turns a sentiment summary and a price description into a
// trading signal. The confidence score is passed through unchecked.
type Generator struct {
	model prompt.Model
	tmpl  *SignalTemplate
}

func NewGenerator(model prompt.Model, tmpl *SignalTemplate) *Generator {
	return &Generator{model: model, tmpl: tmpl}
}

func (g *Generator) Generate(ctx context.Context, in SignalInput) (SignalOutput, error) {
	return g.tmpl.Invoke(ctx, g.model, in)
}

func getSentimentSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"sentimentSummary": {
				Type:        genai.TypeString,
				Description: "A summary of the sentiment expressed in the news articles.",
			},
		},
		Required: []string{"sentimentSummary"},
	}
}

func getSignalSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"tradingSignal": {
				Type:        genai.TypeString,
				Description: "A trading signal (e.g., Buy, Sell, Hold) based on the analysis.",
			},
			"rationale": {
				Type:        genai.TypeString,
				Description: "The rationale behind the trading signal, based on news sentiment and historical price data.",
			},
			"confidenceScore": {
				Type:        genai.TypeNumber,
				Description: "A confidence score (0-1) indicating the reliability of the trading signal.",
			},
		},
		Required: []string{"tradingSignal", "rationale", "confidenceScore"},
	}
}
