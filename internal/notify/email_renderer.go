package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/shanehull/tradedash/internal/types"
)

// UnavailableMessage is shown in place of insights that could not be
// generated.
const UnavailableMessage = "Insights could not be generated right now."

// NotificationData is what the email template renders.
type NotificationData struct {
	types.InsightReport
	Unavailable string
}

type RenderedMessage struct {
	Subject string
	Text    string
	HTML    string
}

// HTMLEmailRenderer renders insight reports as HTML emails with a plain text
// alternative derived from the HTML.
type HTMLEmailRenderer struct {
	tmpl *template.Template
}

func NewHTMLEmailRenderer() *HTMLEmailRenderer {
	t := template.Must(template.New("email").Funcs(templateFuncs).Parse(emailHTMLTemplate))
	return &HTMLEmailRenderer{tmpl: t}
}

func (r *HTMLEmailRenderer) Render(report types.InsightReport) (*RenderedMessage, error) {
	data := NotificationData{InsightReport: report, Unavailable: UnavailableMessage}

	var htmlBuf bytes.Buffer
	if err := r.tmpl.Execute(&htmlBuf, data); err != nil {
		return nil, fmt.Errorf("failed to render HTML template: %w", err)
	}

	text, err := PlainText(htmlBuf.String())
	if err != nil {
		return nil, fmt.Errorf("failed to derive plain text: %w", err)
	}

	return &RenderedMessage{
		Subject: subject(report),
		Text:    text,
		HTML:    htmlBuf.String(),
	}, nil
}

func subject(report types.InsightReport) string {
	if report.Insights == nil {
		return fmt.Sprintf("Trading Insights: %s - unavailable", report.Asset.Ticker)
	}
	return fmt.Sprintf("Trading Insights: %s - %s", report.Asset.Ticker, report.Insights.TradingSignal)
}

var templateFuncs = template.FuncMap{
	"money":         money,
	"percent":       percent,
	"signedPercent": signedPercent,
	"signalClass":   signalClass,
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// percent formats a 0-1 score. Scores outside that range are shown as is.
func percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

func signedPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

func signalClass(signal string) string {
	switch strings.ToLower(strings.TrimSpace(signal)) {
	case "buy":
		return "signal-buy"
	case "sell":
		return "signal-sell"
	default:
		return "signal-hold"
	}
}
