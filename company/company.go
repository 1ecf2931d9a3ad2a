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

// Package company accesses company-level resources: profile, executives,
// peers, ratings, valuation estimates and analyst price targets.
package company

import (
	"context"
	"net/url"

	"github.com/stockparfait/fmp"
)

// Profile is the company profile record.
type Profile struct {
	Symbol            string   `json:"symbol"`
	Price             float64  `json:"price"`
	Beta              float64  `json:"beta"`
	VolAvg            int64    `json:"volAvg"`
	MktCap            float64  `json:"mktCap"`
	LastDiv           float64  `json:"lastDiv"`
	Range             string   `json:"range"`
	Changes           float64  `json:"changes"`
	CompanyName       string   `json:"companyName"`
	Currency          string   `json:"currency"`
	CIK               string   `json:"cik"`
	ISIN              string   `json:"isin"`
	CUSIP             string   `json:"cusip"`
	Exchange          string   `json:"exchange"`
	ExchangeShortName string   `json:"exchangeShortName"`
	Industry          string   `json:"industry"`
	Website           string   `json:"website"`
	Description       string   `json:"description"`
	CEO               string   `json:"ceo"`
	Sector            string   `json:"sector"`
	Country           string   `json:"country"`
	FullTimeEmployees string   `json:"fullTimeEmployees"`
	Phone             string   `json:"phone"`
	Address           string   `json:"address"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	Zip               string   `json:"zip"`
	DCFDiff           float64  `json:"dcfDiff"`
	DCF               float64  `json:"dcf"`
	IPODate           fmp.Date `json:"ipoDate"`
	DefaultImage      bool     `json:"defaultImage"`
	IsETF             bool     `json:"isEtf"`
	IsActivelyTrading bool     `json:"isActivelyTrading"`
	IsADR             bool     `json:"isAdr"`
	IsFund            bool     `json:"isFund"`
}

// GetProfile fetches the profile of a single company by its ticker.
func GetProfile(ctx context.Context, symbol string) (*Profile, error) {
	return fmp.One[Profile](ctx, "/profile/"+symbol, nil)
}

// Executive is a single key executive of a company.
type Executive struct {
	Title       string   `json:"title"`
	Name        string   `json:"name"`
	Pay         float64  `json:"pay"`
	CurrencyPay string   `json:"currencyPay"`
	Gender      string   `json:"gender"`
	YearBorn    int      `json:"yearBorn"`
	TitleSince  fmp.Date `json:"titleSince"`
}

// GetExecutives lists the key executives of a company, in the API's order.
func GetExecutives(ctx context.Context, symbol string) ([]Executive, error) {
	return fmp.Many[Executive](ctx, "/key-executives/"+symbol, nil)
}

// Peers is the peer group of a company.
type Peers struct {
	Symbol    string   `json:"symbol"`
	PeersList []string `json:"peersList"`
}

// GetPeers fetches the peer group of a company.
func GetPeers(ctx context.Context, symbol string) (*Peers, error) {
	return fmp.One[Peers](ctx, "/stock_peers?symbol="+url.QueryEscape(symbol), nil)
}

// MarketCap is a market capitalization snapshot.
type MarketCap struct {
	Symbol    string   `json:"symbol"`
	Date      fmp.Date `json:"date"`
	MarketCap float64  `json:"marketCap"`
}

// GetMarketCap fetches the current market capitalization of a company.
func GetMarketCap(ctx context.Context, symbol string) (*MarketCap, error) {
	return fmp.One[MarketCap](ctx, "/market-capitalization/"+symbol, nil)
}

// Rating is the aggregate analyst rating of a company.
type Rating struct {
	Symbol               string   `json:"symbol"`
	Date                 fmp.Date `json:"date"`
	Rating               string   `json:"rating"`
	RatingScore          int      `json:"ratingScore"`
	RatingRecommendation string   `json:"ratingRecommendation"`
}

// GetRating fetches the current rating of a company.
func GetRating(ctx context.Context, symbol string) (*Rating, error) {
	return fmp.One[Rating](ctx, "/rating/"+symbol, nil)
}

// Score holds the Altman Z-score and Piotroski score of a company.
type Score struct {
	Symbol         string  `json:"symbol"`
	AltmanZScore   float64 `json:"altmanZScore"`
	PiotroskiScore int     `json:"piotroskiScore"`
	WorkingCapital float64 `json:"workingCapital"`
	TotalAssets    float64 `json:"totalAssets"`
	EBIT           float64 `json:"ebit"`
	MarketCap      float64 `json:"marketCap"`
	Revenue        float64 `json:"revenue"`
}

// GetScore fetches the financial score of a company.
func GetScore(ctx context.Context, symbol string) (*Score, error) {
	return fmp.One[Score](ctx, "/score?symbol="+url.QueryEscape(symbol), nil)
}

// EnterpriseValue is the enterprise value of a company at a point in time.
type EnterpriseValue struct {
	Symbol                      string   `json:"symbol"`
	Date                        fmp.Date `json:"date"`
	StockPrice                  float64  `json:"stockPrice"`
	NumberOfShares              float64  `json:"numberOfShares"`
	MarketCapitalization        float64  `json:"marketCapitalization"`
	MinusCashAndCashEquivalents float64  `json:"minusCashAndCashEquivalents"`
	AddTotalDebt                float64  `json:"addTotalDebt"`
	EnterpriseValue             float64  `json:"enterpriseValue"`
}

// GetEnterpriseValue fetches the most recent enterprise value of a company.
func GetEnterpriseValue(ctx context.Context, symbol string) (*EnterpriseValue, error) {
	query := make(url.Values)
	query.Set("limit", "1")
	return fmp.One[EnterpriseValue](ctx, "/enterprise-values/"+symbol, query)
}

// DiscountedCashFlow is a point-in-time DCF estimate. The current price field
// arrives under the "Stock Price" key, an upstream naming quirk.
type DiscountedCashFlow struct {
	Symbol     string   `json:"symbol"`
	Date       fmp.Date `json:"date"`
	DCF        float64  `json:"dcf"`
	StockPrice float64  `json:"Stock Price"`
}

// GetDiscountedCashFlow fetches the DCF estimate of a company.
func GetDiscountedCashFlow(ctx context.Context, symbol string) (*DiscountedCashFlow, error) {
	return fmp.One[DiscountedCashFlow](ctx, "/discounted-cash-flow/"+symbol, nil)
}

// PriceTargetConsensus is the consensus of analyst price targets.
type PriceTargetConsensus struct {
	Symbol          string  `json:"symbol"`
	TargetHigh      float64 `json:"targetHigh"`
	TargetLow       float64 `json:"targetLow"`
	TargetConsensus float64 `json:"targetConsensus"`
	TargetMedian    float64 `json:"targetMedian"`
}

// GetPriceTargetConsensus fetches the analyst price target consensus.
func GetPriceTargetConsensus(ctx context.Context, symbol string) (*PriceTargetConsensus, error) {
	return fmp.One[PriceTargetConsensus](
		ctx, "/price-target-consensus?symbol="+url.QueryEscape(symbol), nil)
}

// PriceTargetSummary aggregates price targets over trailing windows.
type PriceTargetSummary struct {
	Symbol                    string  `json:"symbol"`
	LastMonth                 int     `json:"lastMonth"`
	LastMonthAvgPriceTarget   float64 `json:"lastMonthAvgPriceTarget"`
	LastQuarter               int     `json:"lastQuarter"`
	LastQuarterAvgPriceTarget float64 `json:"lastQuarterAvgPriceTarget"`
	LastYear                  int     `json:"lastYear"`
	LastYearAvgPriceTarget    float64 `json:"lastYearAvgPriceTarget"`
	AllTime                   int     `json:"allTime"`
	AllTimeAvgPriceTarget     float64 `json:"allTimeAvgPriceTarget"`
}

// GetPriceTargetSummary fetches the price target summary of a company.
func GetPriceTargetSummary(ctx context.Context, symbol string) (*PriceTargetSummary, error) {
	return fmp.One[PriceTargetSummary](
		ctx, "/price-target-summary?symbol="+url.QueryEscape(symbol), nil)
}

// PriceTarget is a single published analyst price target.
type PriceTarget struct {
	Symbol          string  `json:"symbol"`
	PublishedDate   string  `json:"publishedDate"` // full timestamp, not a calendar date
	AnalystName     string  `json:"analystName"`
	AnalystCompany  string  `json:"analystCompany"`
	PriceTarget     float64 `json:"priceTarget"`
	AdjPriceTarget  float64 `json:"adjPriceTarget"`
	PriceWhenPosted float64 `json:"priceWhenPosted"`
	NewsURL         string  `json:"newsURL"`
	NewsTitle       string  `json:"newsTitle"`
	NewsPublisher   string  `json:"newsPublisher"`
}

// GetPriceTargets lists published analyst price targets, newest first as
// returned by the API.
func GetPriceTargets(ctx context.Context, symbol string) ([]PriceTarget, error) {
	return fmp.Many[PriceTarget](
		ctx, "/price-target?symbol="+url.QueryEscape(symbol), nil)
}
