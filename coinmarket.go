package cointrade

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// CoinMarketClient fetches live crypto prices from a CoinMarketCap style
// HTTP API. Every request carries a bounded timeout: a dead price source
// surfaces as an error, it never hangs a trade.
type CoinMarketClient struct {
	client *resty.Client
	apiKey string
}

const coinMarketBaseURL = "https://pro-api.coinmarketcap.com"

// NewCoinMarketClient creates a client for the given API key. An empty
// baseURL selects the public production endpoint.
func NewCoinMarketClient(apiKey, baseURL string) *CoinMarketClient {
	if baseURL == "" {
		baseURL = coinMarketBaseURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(10 * time.Second)
	client.SetHeader("X-CMC_PRO_API_KEY", apiKey)
	client.SetHeader("Accept", "application/json")

	return &CoinMarketClient{client: client, apiKey: apiKey}
}

// cmcQuote mirrors one currency entry of the remote payload.
type cmcQuote struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Rank   int    `json:"cmc_rank"`
	Quote  map[string]struct {
		Price decimal.Decimal `json:"price"`
	} `json:"quote"`
}

func (q cmcQuote) toQuote(fiat string) (Quote, error) {
	conv, ok := q.Quote[fiat]
	if !ok {
		return Quote{}, fmt.Errorf("%w: no %s conversion for %s", ErrTransient, fiat, q.Symbol)
	}
	return Quote{
		Name:   q.Name,
		Symbol: q.Symbol,
		Rank:   q.Rank,
		Price:  M(conv.Price, fiat),
	}, nil
}

// Quote returns the current quote for a single symbol, converted to fiat.
func (c *CoinMarketClient) Quote(ctx context.Context, symbol, fiat string) (Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return Quote{}, fmt.Errorf("%w: empty symbol", ErrSymbolNotFound)
	}

	var payload struct {
		Data map[string]cmcQuote `json:"data"`
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol":  symbol,
			"convert": fiat,
		}).
		Get("/v1/cryptocurrency/quotes/latest")
	if err != nil {
		return Quote{}, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	// The API answers 400 for a symbol it does not list.
	if resp.StatusCode() == 400 {
		return Quote{}, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}
	if resp.StatusCode() != 200 {
		return Quote{}, fmt.Errorf("%w: quotes/latest: %s", ErrTransient, resp.Status())
	}
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return Quote{}, fmt.Errorf("%w: parse quotes/latest: %v", ErrTransient, err)
	}

	entry, ok := payload.Data[symbol]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}
	return entry.toQuote(fiat)
}

// List returns one page of quotes ordered by market-cap rank, converted to
// fiat. Pages are numbered from 1.
func (c *CoinMarketClient) List(ctx context.Context, page, pageSize int, fiat string) ([]Quote, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	var payload struct {
		Data []cmcQuote `json:"data"`
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"start":   fmt.Sprint((page-1)*pageSize + 1),
			"limit":   fmt.Sprint(pageSize),
			"convert": fiat,
		}).
		Get("/v1/cryptocurrency/listings/latest")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("%w: listings/latest: %s", ErrTransient, resp.Status())
	}
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%w: parse listings/latest: %v", ErrTransient, err)
	}

	quotes := make([]Quote, 0, len(payload.Data))
	for _, entry := range payload.Data {
		q, err := entry.toQuote(fiat)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}
