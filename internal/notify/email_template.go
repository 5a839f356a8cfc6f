package notify

const emailHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.Asset.Ticker}} insights</title>
  <style>
    body {
      margin: 0;
      padding: 24px;
      background-color: #f3f4f6;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      color: #111827;
      line-height: 1.5;
    }

    .container {
      max-width: 640px;
      margin: 0 auto;
      background: #ffffff;
      border-radius: 8px;
      border: 1px solid #e5e7eb;
      overflow: hidden;
    }

    .header {
      padding: 20px 24px;
      background: linear-gradient(135deg, #4b0082 0%, #2e1065 100%);
      color: #ffffff;
    }

    .ticker {
      font-size: 24px;
      font-weight: 700;
      letter-spacing: 0.05em;
    }

    .name {
      font-size: 15px;
      opacity: 0.9;
    }

    .signal {
      display: inline-block;
      margin-top: 8px;
      padding: 4px 10px;
      font-size: 12px;
      font-weight: 700;
      border-radius: 4px;
      text-transform: uppercase;
      letter-spacing: 0.05em;
      background: #6b7280;
    }

    .signal-buy { background: #16a34a; }
    .signal-sell { background: #dc2626; }

    .section {
      padding: 16px 24px;
      border-top: 1px solid #f3f4f6;
    }

    .section-title {
      font-size: 11px;
      font-weight: 700;
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.1em;
      margin-bottom: 12px;
    }

    .meta-label {
      color: #6b7280;
      padding-right: 16px;
      white-space: nowrap;
    }

    .news-list {
      margin: 0;
      padding-left: 20px;
      font-size: 14px;
    }

    .unavailable {
      color: #b91c1c;
      font-size: 14px;
    }

    .footer {
      padding: 12px 24px;
      font-size: 12px;
      color: #9ca3af;
    }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="ticker">{{.Asset.Ticker}}</div>
      <div class="name">{{.Asset.Name}}</div>
      {{if .Insights}}
      <span class="signal {{signalClass .Insights.TradingSignal}}">{{.Insights.TradingSignal}}</span>
      {{end}}
    </div>

    <div class="section">
      <div class="section-title">Market</div>
      <table>
        <tr><td class="meta-label">Price</td><td>{{money .Asset.Price}}</td></tr>
        <tr><td class="meta-label">24h Change</td><td>{{signedPercent .Asset.Change24hPercent}}</td></tr>
        <tr><td class="meta-label">Market Cap</td><td>{{.Asset.MarketCap}}</td></tr>
      </table>
    </div>

    {{if .Insights}}
    <div class="section">
      <div class="section-title">Rationale</div>
      <p>{{.Insights.Rationale}}</p>
      <p>Confidence: {{percent .Insights.ConfidenceScore}}</p>
    </div>

    <div class="section">
      <div class="section-title">Sentiment</div>
      <p>{{.Insights.SentimentSummary}}</p>
    </div>
    {{else}}
    <div class="section">
      <p class="unavailable">{{.Unavailable}}</p>
    </div>
    {{end}}

    {{if .Asset.News}}
    <div class="section">
      <div class="section-title">Headlines</div>
      <ul class="news-list">
        {{range .Asset.News}}
        <li>{{.Headline}} ({{.Source}}, {{.Timestamp}})</li>
        {{end}}
      </ul>
    </div>
    {{end}}

    <div class="footer">Generated {{.GeneratedAt.Format "02 Jan 2006 3:04 PM"}}. Not financial advice.</div>
  </div>
</body>
</html>`
