/*
Package portfolio holds the in-memory wallet and price alert book behind the
dashboard.
*/
package portfolio

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/shanehull/tradedash/internal/types"
)

const DefaultStartingCash = 100000

var (
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInvalidPrice         = errors.New("price must be positive")
	ErrInsufficientCash     = errors.New("you don't have enough cash for this purchase")
	ErrInsufficientHoldings = errors.New("not enough holdings to sell")
)

type TradeSide string

const (
	SideBuy  TradeSide = "buy"
	SideSell TradeSide = "sell"
)

// PriceFunc reports the current price of ticker.
type PriceFunc func(ticker string) (float64, error)

// Summary is a point-in-time view of the wallet valued at current prices.
type Summary struct {
	Cash       float64         `json:"cash"`
	Holdings   []types.Holding `json:"holdings"`
	TotalValue float64         `json:"totalValue"`
}

// Wallet tracks cash and per-ticker quantities. Holdings are valued at the
// price supplied when the summary is taken, not the trade price.
type Wallet struct {
	mutex    sync.Mutex
	cash     decimal.Decimal
	holdings map[string]decimal.Decimal
}

func NewWallet(startingCash float64) *Wallet {
	return &Wallet{
		cash:     decimal.NewFromFloat(startingCash),
		holdings: make(map[string]decimal.Decimal),
	}
}

// Trade applies a buy or sell of quantity units at price.
func (w *Wallet) Trade(side TradeSide, ticker string, quantity, price float64) error {
	switch side {
	case SideBuy:
		return w.Buy(ticker, quantity, price)
	case SideSell:
		return w.Sell(ticker, quantity, price)
	default:
		return fmt.Errorf("unknown trade side %q", side)
	}
}

func (w *Wallet) Buy(ticker string, quantity, price float64) error {
	qty, px, err := tradeAmounts(quantity, price)
	if err != nil {
		return err
	}
	ticker = normalizeTicker(ticker)

	w.mutex.Lock()
	defer w.mutex.Unlock()

	cost := qty.Mul(px)
	if cost.GreaterThan(w.cash) {
		return fmt.Errorf("%w: cost %s, cash %s", ErrInsufficientCash, cost.StringFixed(2), w.cash.StringFixed(2))
	}

	w.cash = w.cash.Sub(cost)
	w.holdings[ticker] = w.holdings[ticker].Add(qty)
	return nil
}

func (w *Wallet) Sell(ticker string, quantity, price float64) error {
	qty, px, err := tradeAmounts(quantity, price)
	if err != nil {
		return err
	}
	ticker = normalizeTicker(ticker)

	w.mutex.Lock()
	defer w.mutex.Unlock()

	held := w.holdings[ticker]
	if qty.GreaterThan(held) {
		return fmt.Errorf("%w: you only have %s %s", ErrInsufficientHoldings, held.String(), ticker)
	}

	w.cash = w.cash.Add(qty.Mul(px))
	remaining := held.Sub(qty)
	if remaining.IsZero() {
		delete(w.holdings, ticker)
	} else {
		w.holdings[ticker] = remaining
	}
	return nil
}

func (w *Wallet) Cash() float64 {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.cash.InexactFloat64()
}

func (w *Wallet) Quantity(ticker string) float64 {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.holdings[normalizeTicker(ticker)].InexactFloat64()
}

// Summary values every holding with prices. Total value is cash plus the
// sum of quantity times price.
func (w *Wallet) Summary(prices PriceFunc) (Summary, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	tickers := make([]string, 0, len(w.holdings))
	for t := range w.holdings {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	total := w.cash
	holdings := make([]types.Holding, 0, len(tickers))
	for _, t := range tickers {
		p, err := prices(t)
		if err != nil {
			return Summary{}, fmt.Errorf("failed to price %s: %w", t, err)
		}
		qty := w.holdings[t]
		value := qty.Mul(decimal.NewFromFloat(p))
		total = total.Add(value)

		holdings = append(holdings, types.Holding{
			Ticker:   t,
			Quantity: qty.InexactFloat64(),
			Price:    p,
			Value:    value.Round(2).InexactFloat64(),
		})
	}

	return Summary{
		Cash:       w.cash.Round(2).InexactFloat64(),
		Holdings:   holdings,
		TotalValue: total.Round(2).InexactFloat64(),
	}, nil
}

func tradeAmounts(quantity, price float64) (decimal.Decimal, decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Decimal{}, decimal.Decimal{}, ErrInvalidQuantity
	}
	if price <= 0 {
		return decimal.Decimal{}, decimal.Decimal{}, ErrInvalidPrice
	}
	return decimal.NewFromFloat(quantity), decimal.NewFromFloat(price), nil
}

func normalizeTicker(t string) string {
	return strings.ToUpper(strings.TrimSpace(t))
}
