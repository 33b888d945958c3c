package handlers

import (
	"context"
	"net/http"

	"github.com/hongminglow/finance-be/internal/http/respond"
	"github.com/hongminglow/finance-be/internal/middleware"
	"github.com/hongminglow/finance-be/internal/models"
	"github.com/hongminglow/finance-be/internal/models/dto"
	"github.com/hongminglow/finance-be/internal/storage"
)

// RateRefresher pulls fresh rates for the given symbols from the pricing API.
type RateRefresher interface {
	Refresh(ctx context.Context, symbols []string) ([]models.CryptoRate, error)
}

// CryptoHandler serves the shared crypto rate table.
type CryptoHandler struct {
	store   storage.RateStore
	fetcher RateRefresher
}

// NewCryptoHandler constructs the handler.
func NewCryptoHandler(store storage.RateStore, fetcher RateRefresher) *CryptoHandler {
	return &CryptoHandler{store: store, fetcher: fetcher}
}

// Register attaches crypto routes to the mux.
func (h *CryptoHandler) Register(mux *http.ServeMux, gate *middleware.Gate) {
	mux.Handle("GET /crypto/rates", gate.Require(h.handleList))
	mux.Handle("GET /crypto/rates/{symbol}", gate.Require(h.handleGet))
	mux.Handle("PUT /crypto/rates/{symbol}", gate.Require(h.handleSet))
	mux.Handle("POST /crypto/update-rates", gate.Require(h.handleRefresh))
}

func (h *CryptoHandler) handleList(w http.ResponseWriter, r *http.Request, _ models.User) {
	rates, err := h.store.ListRates(r.Context())
	if err != nil {
		respond.Fail(w, err, "list crypto rates")
		return
	}
	respond.JSON(w, http.StatusOK, rates)
}

func (h *CryptoHandler) handleGet(w http.ResponseWriter, r *http.Request, _ models.User) {
	rate, err := h.store.GetRate(r.Context(), models.NormalizeSymbol(r.PathValue("symbol")))
	if err != nil {
		respond.Fail(w, err, "Crypto rate")
		return
	}
	respond.JSON(w, http.StatusOK, rate)
}

func (h *CryptoHandler) handleSet(w http.ResponseWriter, r *http.Request, _ models.User) {
	symbol := models.NormalizeSymbol(r.PathValue("symbol"))
	if symbol == "" {
		respond.Error(w, http.StatusBadRequest, "symbol is required")
		return
	}
	var req dto.SetRateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	value, err := req.ParseRate()
	if err != nil {
		respond.Fail(w, err, "set crypto rate")
		return
	}
	rate, err := h.store.UpsertRate(r.Context(), models.CryptoRate{Symbol: symbol, Rate: value})
	if err != nil {
		respond.Fail(w, err, "set crypto rate")
		return
	}
	respond.JSON(w, http.StatusOK, rate)
}

func (h *CryptoHandler) handleRefresh(w http.ResponseWriter, r *http.Request, _ models.User) {
	var req dto.UpdateRatesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rates, err := h.fetcher.Refresh(r.Context(), req.Symbols)
	if err != nil {
		respond.Fail(w, err, "update crypto rates")
		return
	}
	respond.JSON(w, http.StatusOK, rates)
}
