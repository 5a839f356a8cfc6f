package portfolio

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/shanehull/tradedash/internal/types"
)

var (
	ErrAlertNotFound = errors.New("alert not found")
	ErrInvalidAlert  = errors.New("invalid alert")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewAlert is the input for creating an alert.
type NewAlert struct {
	AssetTicker string          `json:"assetTicker" validate:"required"`
	TargetPrice float64         `json:"targetPrice" validate:"gt=0"`
	Type        types.AlertType `json:"type" validate:"oneof=above below"`
}

// AlertBook is an ordered, in-memory set of price alerts.
type AlertBook struct {
	mutex  sync.Mutex
	alerts []types.Alert
	nextID int
}

// NewAlertBook starts from seed. Generated ids continue past the highest
// numeric id in seed.
func NewAlertBook(seed []types.Alert) *AlertBook {
	b := &AlertBook{
		alerts: make([]types.Alert, len(seed)),
		nextID: 1,
	}
	copy(b.alerts, seed)
	for _, a := range seed {
		if n, err := strconv.Atoi(strings.TrimPrefix(a.ID, "a")); err == nil && n >= b.nextID {
			b.nextID = n + 1
		}
	}
	return b
}

func (b *AlertBook) Add(in NewAlert) (types.Alert, error) {
	in.AssetTicker = strings.TrimSpace(in.AssetTicker)
	if err := validate.Struct(in); err != nil {
		return types.Alert{}, fmt.Errorf("%w: %w", ErrInvalidAlert, err)
	}
	if !strings.EqualFold(in.AssetTicker, types.AllAssets) {
		in.AssetTicker = strings.ToUpper(in.AssetTicker)
	} else {
		in.AssetTicker = types.AllAssets
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()

	alert := types.Alert{
		ID:          "a" + strconv.Itoa(b.nextID),
		AssetTicker: in.AssetTicker,
		TargetPrice: in.TargetPrice,
		Type:        in.Type,
		Status:      types.AlertActive,
	}
	b.nextID++
	b.alerts = append(b.alerts, alert)
	return alert, nil
}

// Toggle flips an alert between active and inactive. Any other status
// becomes active.
func (b *AlertBook) Toggle(id string) (types.Alert, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	i := b.indexOf(id)
	if i < 0 {
		return types.Alert{}, fmt.Errorf("%w: %s", ErrAlertNotFound, id)
	}

	if b.alerts[i].Status == types.AlertActive {
		b.alerts[i].Status = types.AlertInactive
	} else {
		b.alerts[i].Status = types.AlertActive
	}
	return b.alerts[i], nil
}

func (b *AlertBook) Delete(id string) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	i := b.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrAlertNotFound, id)
	}
	b.alerts = append(b.alerts[:i], b.alerts[i+1:]...)
	return nil
}

// List returns alerts for ticker plus those set on all assets. An empty
// ticker returns every alert.
func (b *AlertBook) List(ticker string) []types.Alert {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	ticker = strings.TrimSpace(ticker)
	out := make([]types.Alert, 0, len(b.alerts))
	for _, a := range b.alerts {
		if ticker == "" || strings.EqualFold(a.AssetTicker, ticker) || a.AssetTicker == types.AllAssets {
			out = append(out, a)
		}
	}
	return out
}

func (b *AlertBook) indexOf(id string) int {
	for i, a := range b.alerts {
		if a.ID == id {
			return i
		}
	}
	return -1
}
