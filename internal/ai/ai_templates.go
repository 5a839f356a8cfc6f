package ai

const sentimentSystemInstruction = `
You are an expert financial analyst covering crypto assets and US equities.
You read news headlines and judge the market sentiment they express.
Respond only with JSON matching the requested schema.
`

const sentimentPromptTemplate = `You are an expert financial analyst. Summarize the sentiment of the following news articles related to {{.Ticker}}.

News Articles:
{{range .NewsArticles}}- {{.}}
{{end}}
Provide a concise summary of the overall sentiment (positive, negative, or neutral) and any potential impact on the asset's price.
`

const signalSystemInstruction = `
You are an expert financial analyst specializing in generating trading insights.
Respond only with JSON matching the requested schema.
`

const signalPromptTemplate = `Based on the provided news summary and historical price data for {{.Ticker}}, generate a trading signal (Buy, Sell, or Hold), a rationale for the signal, and a confidence score (0-1).

News Summary: {{.NewsSummary}}
Historical Price Data: {{.HistoricalPriceData}}

Consider both the sentiment expressed in the news and the trends observed in the historical price data to form your analysis.

Output your trading signal, rationale, and confidence score in the following format:
{
  "tradingSignal": "...",
  "rationale": "...",
  "confidenceScore": 0.0
}

tradingSignal: A trading signal (e.g., Buy, Sell, Hold) based on the analysis.
rationale: The rationale behind the trading signal, based on news sentiment and historical price data.
confidenceScore: A confidence score (0-1) indicating the reliability of the trading signal.
`
