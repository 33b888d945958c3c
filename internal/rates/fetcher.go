// Package rates refreshes stored crypto rates from the CoinAPI exchange-rate endpoint.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hongminglow/finance-be/internal/models"
)

var (
	// ErrNoSymbols rejects a refresh that names nothing to refresh.
	ErrNoSymbols = errors.New("symbol array is required")
	// ErrNotConfigured means no API key was provided at startup.
	ErrNotConfigured = errors.New("crypto API key not configured")
)

const (
	baseCurrency     = "USD"
	maxResponseBytes = 32 << 20
	rateScale        = 18
)

// RateUpserter stores refreshed rates.
type RateUpserter interface {
	UpsertRate(ctx context.Context, rate models.CryptoRate) (models.CryptoRate, error)
}

// Fetcher pulls USD exchange rates and upserts the requested symbols.
type Fetcher struct {
	baseURL string
	apiKey  string
	client  *http.Client
	store   RateUpserter
}

// NewFetcher builds a fetcher. A nil client gets a 15 second timeout.
func NewFetcher(baseURL, apiKey string, store RateUpserter, client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Fetcher{baseURL: baseURL, apiKey: apiKey, client: client, store: store}
}

type exchangeRates struct {
	AssetIDBase string  `json:"asset_id_base"`
	Rates       []quote `json:"rates"`
}

type quote struct {
	AssetIDQuote string          `json:"asset_id_quote"`
	Rate         decimal.Decimal `json:"rate"`
}

// Refresh makes one call to the pricing API and upserts a rate for every
// requested symbol it quotes. Symbols missing from the response are skipped
// and their stored rates left untouched.
func (f *Fetcher) Refresh(ctx context.Context, symbols []string) ([]models.CryptoRate, error) {
	wanted := normalize(symbols)
	if len(wanted) == 0 {
		return nil, ErrNoSymbols
	}
	if f.apiKey == "" {
		return nil, ErrNotConfigured
	}

	quotes, err := f.fetch(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]models.CryptoRate, 0, len(wanted))
	for _, symbol := range wanted {
		perUSD, ok := quotes[symbol]
		if !ok || !perUSD.IsPositive() {
			continue
		}
		rate, err := f.store.UpsertRate(ctx, models.CryptoRate{
			Symbol: symbol,
			Rate:   decimal.NewFromInt(1).DivRound(perUSD, rateScale),
		})
		if err != nil {
			return nil, fmt.Errorf("store rate %s: %w", symbol, err)
		}
		updated = append(updated, rate)
	}
	return updated, nil
}

// fetch returns how many units of each asset one USD buys, keyed by symbol.
func (f *Fetcher) fetch(ctx context.Context) (map[string]decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/v1/exchangerate/"+baseCurrency, nil)
	if err != nil {
		return nil, fmt.Errorf("build rates request: %w", err)
	}
	req.Header.Set("X-CoinAPI-Key", f.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch rates: upstream status %d: %s", resp.StatusCode, snippet)
	}

	var body exchangeRates
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode rates: %w", err)
	}

	out := make(map[string]decimal.Decimal, len(body.Rates))
	for _, q := range body.Rates {
		out[models.NormalizeSymbol(q.AssetIDQuote)] = q.Rate
	}
	return out, nil
}

func normalize(symbols []string) []string {
	seen := make(map[string]bool, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		s = models.NormalizeSymbol(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
