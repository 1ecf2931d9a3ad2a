// Copyright 2023 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package market accesses market-wide resources: real-time quotes,
// historical prices, market movers, news, the symbol list and ticker search.
package market

import (
	"context"
	"net/url"
	"strings"

	"github.com/stockparfait/fmp"
)

// Quote is a real-time quote record.
type Quote struct {
	Symbol            string  `json:"symbol"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	ChangesPercentage float64 `json:"changesPercentage"`
	Change            float64 `json:"change"`
	DayLow            float64 `json:"dayLow"`
	DayHigh           float64 `json:"dayHigh"`
	YearHigh          float64 `json:"yearHigh"`
	YearLow           float64 `json:"yearLow"`
	MarketCap         float64 `json:"marketCap"`
	PriceAvg50        float64 `json:"priceAvg50"`
	PriceAvg200       float64 `json:"priceAvg200"`
	Volume            int64   `json:"volume"`
	AvgVolume         int64   `json:"avgVolume"`
	Exchange          string  `json:"exchange"`
	Open              float64 `json:"open"`
	PreviousClose     float64 `json:"previousClose"`
	EPS               float64 `json:"eps"`
	PE                float64 `json:"pe"`
	SharesOutstanding float64 `json:"sharesOutstanding"`
	Timestamp         int64   `json:"timestamp"`
}

// GetQuote fetches the real-time quote for a single ticker.
func GetQuote(ctx context.Context, symbol string) (*Quote, error) {
	return fmp.One[Quote](ctx, "/quote/"+symbol, nil)
}

// Bar is one day of OHLC prices and volume.
type Bar struct {
	Date             fmp.Date `json:"date"`
	Open             float64  `json:"open"`
	High             float64  `json:"high"`
	Low              float64  `json:"low"`
	Close            float64  `json:"close"`
	AdjClose         float64  `json:"adjClose"`
	Volume           int64    `json:"volume"`
	UnadjustedVolume int64    `json:"unadjustedVolume"`
	Change           float64  `json:"change"`
	ChangePercent    float64  `json:"changePercent"`
	VWAP             float64  `json:"vwap"`
}

// Historical is the daily price series of one ticker, most recent bar first
// as returned by the API.
type Historical struct {
	Symbol     string `json:"symbol"`
	Historical []Bar  `json:"historical"`
}

// GetHistoricalPrices fetches the daily price series. Optional query
// parameters such as "from", "to" and "timeseries" limit the range; a nil
// query requests the API's default lookback.
func GetHistoricalPrices(ctx context.Context, symbol string, query url.Values) (*Historical, error) {
	return fmp.Object[Historical](ctx, "/historical-price-full/"+symbol, query)
}

// Mover is one entry of the gainers, losers or most-active lists.
type Mover struct {
	Symbol            string  `json:"symbol"`
	Name              string  `json:"name"`
	Change            float64 `json:"change"`
	Price             float64 `json:"price"`
	ChangesPercentage float64 `json:"changesPercentage"`
}

// GetGainers lists the day's top gaining tickers.
func GetGainers(ctx context.Context) ([]Mover, error) {
	return fmp.Many[Mover](ctx, "/stock_market/gainers", nil)
}

// GetLosers lists the day's top losing tickers.
func GetLosers(ctx context.Context) ([]Mover, error) {
	return fmp.Many[Mover](ctx, "/stock_market/losers", nil)
}

// GetMostActive lists the day's most actively traded tickers.
func GetMostActive(ctx context.Context) ([]Mover, error) {
	return fmp.Many[Mover](ctx, "/stock_market/actives", nil)
}

// Article is one news article. PublishedDate is a full timestamp string, not
// a calendar date.
type Article struct {
	Symbol        string `json:"symbol"`
	PublishedDate string `json:"publishedDate"`
	Title         string `json:"title"`
	Image         string `json:"image"`
	Site          string `json:"site"`
	Text          string `json:"text"`
	URL           string `json:"url"`
}

// GetNews lists news articles for the given tickers, newest first as
// returned by the API. Optional query parameters such as "limit" and "page"
// narrow the result.
func GetNews(ctx context.Context, symbols []string, query url.Values) ([]Article, error) {
	vals := make(url.Values)
	for k, v := range query {
		vals[k] = v
	}
	if len(symbols) > 0 {
		vals.Set("tickers", strings.Join(symbols, ","))
	}
	return fmp.Many[Article](ctx, "/stock_news", vals)
}

// Symbol is one entry of the full list of traded symbols.
type Symbol struct {
	Symbol            string  `json:"symbol"`
	Name              string  `json:"name"`
	Price             float64 `json:"price"`
	Exchange          string  `json:"exchange"`
	ExchangeShortName string  `json:"exchangeShortName"`
	Type              string  `json:"type"`
}

// GetSymbols lists all symbols traded on the supported exchanges.
func GetSymbols(ctx context.Context) ([]Symbol, error) {
	return fmp.Many[Symbol](ctx, "/stock/list", nil)
}

// SearchResult is one match of a ticker search.
type SearchResult struct {
	Symbol            string `json:"symbol"`
	Name              string `json:"name"`
	Currency          string `json:"currency"`
	StockExchange     string `json:"stockExchange"`
	ExchangeShortName string `json:"exchangeShortName"`
}

// Search looks up tickers matching a free-form query string. Optional query
// parameters such as "limit" and "exchange" narrow the result.
func Search(ctx context.Context, q string, query url.Values) ([]SearchResult, error) {
	vals := make(url.Values)
	for k, v := range query {
		vals[k] = v
	}
	vals.Set("query", q)
	return fmp.Many[SearchResult](ctx, "/search", vals)
}
