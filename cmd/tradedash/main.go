package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shanehull/tradedash/internal/ai"
	"github.com/shanehull/tradedash/internal/config"
	"github.com/shanehull/tradedash/internal/logger"
	"github.com/shanehull/tradedash/internal/market"
	"github.com/shanehull/tradedash/internal/notify"
	"github.com/shanehull/tradedash/internal/portfolio"
	"github.com/shanehull/tradedash/internal/prompt"
	"github.com/shanehull/tradedash/internal/server"
)

var (
	configPath = flag.String("config", "", "(-c) Path to a YAML config file")
	tickerStr  = flag.String("ticker", "", "(-t) Comma-separated tickers to report on (default: whole watchlist)")
	serve      = flag.Bool("serve", false, "(-s) Run the HTTP API instead of a one-shot report")
	email      = flag.Bool("email", false, "(-e) Email the report when SMTP is configured")
)

func init() {
	flag.StringVar(configPath, "c", "", "(-c) Path to a YAML config file (shorthand)")
	flag.StringVar(tickerStr, "t", "", "(-t) Comma-separated tickers to report on (shorthand)")
	flag.BoolVar(serve, "s", false, "(-s) Run the HTTP API instead of a one-shot report (shorthand)")
	flag.BoolVar(email, "e", false, "(-e) Email the report when SMTP is configured (shorthand)")

	flag.Usage = func() {
		flagSet := flag.CommandLine
		fmt.Printf("Usage of %s:\n", "tradedash")

		order := []string{
			"config",
			"ticker",
			"serve",
			"email",
		}

		for _, name := range order {
			f := flagSet.Lookup(name)
			if f != nil {
				fmt.Printf("  -%s\n", f.Name)
				fmt.Printf("    %s\n", f.Usage)
			}
		}
		fmt.Println("\nEnvironment: GEMINI_API_KEY (required), SMTP_USER, SMTP_PASS, TO_EMAIL, LOG_LEVEL")
	}
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Fatal error loading config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Printf("Fatal error setting up logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Error("tradedash exited with error")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	model, err := prompt.NewGeminiModel(ctx, prompt.GeminiConfig{
		APIKey:            cfg.Gemini.APIKey,
		Model:             cfg.Gemini.Model,
		RequestsPerMinute: cfg.Gemini.RequestsPerMinute,
		Burst:             cfg.Gemini.Burst,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to set up model: %w", err)
	}

	pipeline := ai.NewPipeline(
		ai.NewSummarizer(model, ai.NewSentimentTemplate()),
		ai.NewGenerator(model, ai.NewSignalTemplate()),
		ai.WithHistoricalPriceData(cfg.Insights.HistoricalPriceData),
		ai.WithLogger(log),
	)

	catalog := market.NewCatalog(nil, time.Now())

	if *serve {
		h := server.NewHandler(
			catalog,
			pipeline,
			portfolio.NewAlertBook(catalog.SeedAlerts()),
			portfolio.NewWallet(cfg.Wallet.StartingCash),
			log,
		)
		return server.New(cfg.Server, h, log).Run(ctx)
	}

	tickers := market.ParseTickers(*tickerStr)
	if len(tickers) == 0 {
		tickers = catalog.Tickers()
	}

	reportCtx := ctx
	if cfg.Insights.Timeout > 0 {
		var cancel context.CancelFunc
		reportCtx, cancel = context.WithTimeout(ctx, cfg.Insights.Timeout)
		defer cancel()
	}

	reports := market.ProcessTickers(reportCtx, catalog, tickers, pipeline, cfg.Insights.Concurrency, log)
	notify.ReportInsights(os.Stdout, reports)

	if *email {
		if !cfg.Email.Enabled() {
			log.Warn("email requested but SMTP is not configured")
			return nil
		}
		sender := notify.NewEmailSender(notify.EmailConfig{
			SMTPServer: cfg.Email.SMTPServer,
			SMTPPort:   cfg.Email.SMTPPort,
			SMTPUser:   cfg.Email.SMTPUser,
			SMTPPass:   cfg.Email.SMTPPass,
			FromEmail:  cfg.Email.Sender(),
			ToEmail:    cfg.Email.ToEmail,
			Enabled:    true,
		}, log)
		sent := notify.EmailReports(reports, notify.NewHTMLEmailRenderer(), sender, log)
		log.Infof("Emailed %d/%d reports", sent, len(reports))
	}

	return nil
}
