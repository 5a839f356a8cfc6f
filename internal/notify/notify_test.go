package notify

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	logtest "github.com/sirupsen/logrus/hooks/test"
	gomail "gopkg.in/mail.v2"

	"github.com/shanehull/tradedash/internal/types"
)

var generatedAt = time.Date(2024, 6, 12, 15, 4, 0, 0, time.UTC)

func btcReport() types.InsightReport {
	return types.InsightReport{
		Asset: types.Asset{
			Ticker:           "BTC",
			Name:             "Bitcoin",
			Price:            68134.32,
			Change24hPercent: 1.88,
			MarketCap:        "1.34T",
			News: []types.NewsArticle{
				{ID: "n1", Source: "CoinDesk", Headline: "Bitcoin Halving Event Creates New Market Dynamics", Timestamp: "2h ago"},
			},
		},
		Insights: &types.TradingInsights{
			TradingSignal:    "Buy",
			Rationale:        "Positive sentiment and rising ETF demand support upward momentum.",
			ConfidenceScore:  0.72,
			SentimentSummary: "Overall positive.",
		},
		GeneratedAt: generatedAt,
	}
}

func TestPlainText(t *testing.T) {
	doc := `<html><head><style>.x { color: red; }</style></head><body>` +
		`<div class="a">Hello <b>World</b></div>` +
		`<ul><li>One</li><li>Two</li></ul>` +
		`<table><tr><td>Price</td><td>$1.00</td></tr></table>` +
		`</body></html>`

	got, err := PlainText(doc)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Hello World\n• One\n• Two\nPrice $1.00\n", got)
}

func TestRender_WithInsights(t *testing.T) {
	msg, err := NewHTMLEmailRenderer().Render(btcReport())

	assert.Equal(t, nil, err)
	assert.Equal(t, "Trading Insights: BTC - Buy", msg.Subject)
	assert.Equal(t, true, strings.Contains(msg.HTML, `class="signal signal-buy"`))
	assert.Equal(t, true, strings.Contains(msg.HTML, "$68134.32"))

	assert.Equal(t, true, strings.Contains(msg.Text, "Confidence: 72%"))
	assert.Equal(t, true, strings.Contains(msg.Text, "24h Change +1.88%"))
	assert.Equal(t, true, strings.Contains(msg.Text, "• Bitcoin Halving Event Creates New Market Dynamics (CoinDesk, 2h ago)"))
	assert.Equal(t, true, strings.Contains(msg.Text, "Generated 12 Jun 2024 3:04 PM."))
	assert.Equal(t, false, strings.Contains(msg.Text, "font-family"))
	assert.Equal(t, false, strings.Contains(msg.Text, UnavailableMessage))
}

func TestRender_Unavailable(t *testing.T) {
	report := btcReport()
	report.Insights = nil

	msg, err := NewHTMLEmailRenderer().Render(report)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Trading Insights: BTC - unavailable", msg.Subject)
	assert.Equal(t, true, strings.Contains(msg.Text, UnavailableMessage))
	assert.Equal(t, false, strings.Contains(msg.Text, "Confidence"))
}

func TestSignalClass(t *testing.T) {
	assert.Equal(t, "signal-buy", signalClass(" BUY "))
	assert.Equal(t, "signal-sell", signalClass("Sell"))
	assert.Equal(t, "signal-hold", signalClass("Accumulate"))
}

func TestReportInsights(t *testing.T) {
	unavailable := btcReport()
	unavailable.Asset.Ticker = "ETH"
	unavailable.Insights = nil

	var buf bytes.Buffer
	ReportInsights(&buf, []types.InsightReport{btcReport(), unavailable})
	out := buf.String()

	assert.Equal(t, true, strings.Contains(out, "2 ASSET REPORTS"))
	assert.Equal(t, true, strings.Contains(out, "Ticker: BTC (Bitcoin)"))
	assert.Equal(t, true, strings.Contains(out, "Signal:     Buy"))
	assert.Equal(t, true, strings.Contains(out, "--- REPORT #2 ---\nTicker: ETH"))
	assert.Equal(t, true, strings.Contains(out, UnavailableMessage))
}

func TestReportInsights_Empty(t *testing.T) {
	var buf bytes.Buffer
	ReportInsights(&buf, nil)

	assert.Equal(t, true, strings.Contains(buf.String(), "No assets to report on."))
}

type fakeDialer struct {
	mu   sync.Mutex
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func testEmailConfig() EmailConfig {
	return EmailConfig{
		SMTPServer: "smtp.example.com",
		SMTPPort:   587,
		FromEmail:  "alerts@example.com",
		ToEmail:    "me@example.com",
		Enabled:    true,
	}
}

func TestEmailSender_Send(t *testing.T) {
	d := &fakeDialer{}
	log, _ := logtest.NewNullLogger()
	s := newEmailSender(testEmailConfig(), d, log)

	err := s.Send(&RenderedMessage{Subject: "Trading Insights: BTC - Buy", Text: "plain", HTML: "<p>html</p>"})

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(d.sent))
	assert.Equal(t, []string{"Trading Insights: BTC - Buy"}, d.sent[0].GetHeader("Subject"))
	assert.Equal(t, []string{"me@example.com"}, d.sent[0].GetHeader("To"))

	var raw bytes.Buffer
	_, err = d.sent[0].WriteTo(&raw)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(raw.String(), "text/plain"))
	assert.Equal(t, true, strings.Contains(raw.String(), "text/html"))
}

func TestEmailSender_Disabled(t *testing.T) {
	d := &fakeDialer{}
	cfg := testEmailConfig()
	cfg.Enabled = false
	log, _ := logtest.NewNullLogger()

	err := newEmailSender(cfg, d, log).Send(&RenderedMessage{Text: "x"})

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(d.sent))
}

func TestEmailSender_Failure(t *testing.T) {
	d := &fakeDialer{err: errors.New("535 auth failed")}
	log, hook := logtest.NewNullLogger()

	err := newEmailSender(testEmailConfig(), d, log).Send(&RenderedMessage{Text: "x"})

	assert.NotEqual(t, nil, err)
	assert.Equal(t, "failed to send email", hook.LastEntry().Message)
}

func TestEmailReports(t *testing.T) {
	d := &fakeDialer{}
	log, _ := logtest.NewNullLogger()
	s := newEmailSender(testEmailConfig(), d, log)

	second := btcReport()
	second.Asset.Ticker = "ETH"

	sent := EmailReports([]types.InsightReport{btcReport(), second}, NewHTMLEmailRenderer(), s, log)

	assert.Equal(t, 2, sent)
	assert.Equal(t, 2, len(d.sent))
}
