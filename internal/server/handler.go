package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/shanehull/tradedash/internal/market"
	"github.com/shanehull/tradedash/internal/portfolio"
	"github.com/shanehull/tradedash/internal/types"
)

type AssetRequest struct {
	Ticker string `param:"ticker" validate:"required"`
}

type HistoryRequest struct {
	Ticker string `param:"ticker" validate:"required"`
	Range  string `query:"range" default:"1D" validate:"oneof=1D 1W 1M 1Y"`
}

type AlertListRequest struct {
	Ticker string `query:"ticker"`
}

type AlertIDRequest struct {
	ID string `param:"id" validate:"required"`
}

type TradeRequest struct {
	Ticker   string              `json:"ticker" validate:"required"`
	Side     portfolio.TradeSide `json:"side" validate:"oneof=buy sell"`
	Quantity float64             `json:"quantity" validate:"gt=0"`
}

// TradeResponse echoes the executed trade alongside the updated wallet.
type TradeResponse struct {
	Ticker   string              `json:"ticker"`
	Side     portfolio.TradeSide `json:"side"`
	Quantity float64             `json:"quantity"`
	Price    float64             `json:"price"`
	Wallet   portfolio.Summary   `json:"wallet"`
}

// Handler serves the dashboard API.
type Handler struct {
	catalog  *market.Catalog
	insights market.Insighter
	alerts   *portfolio.AlertBook
	wallet   *portfolio.Wallet
	log      logrus.FieldLogger
}

func NewHandler(catalog *market.Catalog, insights market.Insighter, alerts *portfolio.AlertBook, wallet *portfolio.Wallet, log logrus.FieldLogger) *Handler {
	return &Handler{
		catalog:  catalog,
		insights: insights,
		alerts:   alerts,
		wallet:   wallet,
		log:      log,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)

	g := e.Group("/api")
	g.GET("/assets", h.ListAssets)
	g.GET("/assets/:ticker", h.GetAsset)
	g.GET("/assets/:ticker/history", h.GetHistory)
	g.GET("/assets/:ticker/insights", h.GetInsights)
	g.GET("/news", h.ListNews)

	g.GET("/alerts", h.ListAlerts)
	g.POST("/alerts", h.CreateAlert)
	g.PATCH("/alerts/:id/toggle", h.ToggleAlert)
	g.DELETE("/alerts/:id", h.DeleteAlert)

	g.GET("/wallet", h.GetWallet)
	g.POST("/trades", h.CreateTrade)
}

func (h *Handler) Health(c echo.Context) error {
	return SuccessResponse(c, "ok")
}

func (h *Handler) ListAssets(c echo.Context) error {
	return SuccessResponse(c, h.catalog.Assets())
}

func (h *Handler) GetAsset(c echo.Context) error {
	req := &AssetRequest{}
	if verr := ReadAndValidateRequest(c, req); verr != nil {
		return BadRequestResponse(c, verr)
	}

	asset, err := h.catalog.Find(req.Ticker)
	if err != nil {
		return NotFoundResponse(c, err.Error())
	}
	return SuccessResponse(c, asset)
}

func (h *Handler) GetHistory(c echo.Context) error {
	req := &HistoryRequest{}
	if verr := ReadAndValidateRequest(c, req); verr != nil {
		return BadRequestResponse(c, verr)
	}

	points, err := h.catalog.History(req.Ticker, types.PriceRange(req.Range))
	if err != nil {
		return NotFoundResponse(c, err.Error())
	}
	return SuccessResponse(c, points)
}

// GetInsights runs the insight pipeline for one asset. Any failure is
// reported with the same 503 body; details only go to the log.
func (h *Handler) GetInsights(c echo.Context) error {
	req := &AssetRequest{}
	if verr := ReadAndValidateRequest(c, req); verr != nil {
		return BadRequestResponse(c, verr)
	}

	asset, err := h.catalog.Find(req.Ticker)
	if err != nil {
		return NotFoundResponse(c, err.Error())
	}

	insights, err := h.insights.Insights(c.Request().Context(), asset.Ticker, asset.News)
	if err != nil || insights == nil {
		return UnavailableResponse(c, InsightsUnavailableMessage)
	}
	return SuccessResponse(c, insights)
}

func (h *Handler) ListNews(c echo.Context) error {
	return SuccessResponse(c, h.catalog.MarketNews())
}

func (h *Handler) ListAlerts(c echo.Context) error {
	req := &AlertListRequest{}
	if verr := ReadAndValidateRequest(c, req); verr != nil {
		return BadRequestResponse(c, verr)
	}
	return SuccessResponse(c, h.alerts.List(req.Ticker))
}

func (h *Handler) CreateAlert(c echo.Context) error {
	req := &portfolio.NewAlert{}
	if verr := ReadAndValidateRequest(c, req); verr != nil {
		return BadRequestResponse(c, verr)
	}

	alert, err := h.alerts.Add(*req)
	if err != nil {
		return BadRequestResponse(c, err.Error())
	}
	return CreatedResponse(c, alert)
}

func (h *Handler) ToggleAlert(c echo.Context) error {
	req := &AlertIDRequest{}
	if verr := ReadAndValidateRequest(c, req); verr != nil {
		return BadRequestResponse(c, verr)
	}

	alert, err := h.alerts.Toggle(req.ID)
	if err != nil {
		return NotFoundResponse(c, err.Error())
	}
	return SuccessResponse(c, alert)
}

func (h *Handler) DeleteAlert(c echo.Context) error {
	req := &AlertIDRequest{}
	if verr := ReadAndValidateRequest(c, req); verr != nil {
		return BadRequestResponse(c, verr)
	}

	if err := h.alerts.Delete(req.ID); err != nil {
		return NotFoundResponse(c, err.Error())
	}
	return NoContentResponse(c)
}

func (h *Handler) GetWallet(c echo.Context) error {
	summary, err := h.wallet.Summary(h.price)
	if err != nil {
		h.log.WithError(err).Error("wallet summary error")
		return InternalServerErrorResponse(c)
	}
	return SuccessResponse(c, summary)
}

// CreateTrade fills at the asset's current catalog price.
func (h *Handler) CreateTrade(c echo.Context) error {
	req := &TradeRequest{}
	if verr := ReadAndValidateRequest(c, req); verr != nil {
		return BadRequestResponse(c, verr)
	}

	asset, err := h.catalog.Find(req.Ticker)
	if err != nil {
		return NotFoundResponse(c, err.Error())
	}

	if err := h.wallet.Trade(req.Side, asset.Ticker, req.Quantity, asset.Price); err != nil {
		switch {
		case errors.Is(err, portfolio.ErrInsufficientCash), errors.Is(err, portfolio.ErrInsufficientHoldings):
			return UnprocessableResponse(c, err.Error())
		default:
			return BadRequestResponse(c, err.Error())
		}
	}

	summary, err := h.wallet.Summary(h.price)
	if err != nil {
		h.log.WithError(err).Error("wallet summary error")
		return InternalServerErrorResponse(c)
	}

	h.log.WithFields(logrus.Fields{
		"ticker":   asset.Ticker,
		"side":     req.Side,
		"quantity": req.Quantity,
		"price":    asset.Price,
	}).Info("trade executed")

	return DataResponse(c, http.StatusOK, TradeResponse{
		Ticker:   asset.Ticker,
		Side:     req.Side,
		Quantity: req.Quantity,
		Price:    asset.Price,
		Wallet:   summary,
	})
}

func (h *Handler) price(ticker string) (float64, error) {
	a, err := h.catalog.Find(ticker)
	if err != nil {
		return 0, err
	}
	return a.Price, nil
}
