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

// Package etf accesses exchange-traded fund resources: the fund descriptor,
// holdings, and sector and country weightings.
package etf

import (
	"context"
	"net/url"

	"github.com/stockparfait/fmp"
)

// SectorExposure is one sector's share of a fund, embedded in Info.
type SectorExposure struct {
	Industry string  `json:"industry"`
	Exposure float64 `json:"exposure"`
}

// Info is the fund descriptor record.
type Info struct {
	Symbol        string           `json:"symbol"`
	Name          string           `json:"name"`
	AssetClass    string           `json:"assetClass"`
	AUM           float64          `json:"aum"`
	AvgVolume     float64          `json:"avgVolume"`
	CUSIP         string           `json:"cusip"`
	ISIN          string           `json:"isin"`
	Description   string           `json:"description"`
	Domicile      string           `json:"domicile"`
	ETFCompany    string           `json:"etfCompany"`
	ExpenseRatio  float64          `json:"expenseRatio"`
	InceptionDate fmp.Date         `json:"inceptionDate"`
	NAV           float64          `json:"nav"`
	NAVCurrency   string           `json:"navCurrency"`
	HoldingsCount int              `json:"holdingsCount"`
	Website       string           `json:"website"`
	SectorsList   []SectorExposure `json:"sectorsList"`
}

// GetInfo fetches the descriptor of a single fund.
func GetInfo(ctx context.Context, symbol string) (*Info, error) {
	return fmp.One[Info](ctx, "/etf-info?symbol="+url.QueryEscape(symbol), nil)
}

// Holding is one asset held by a fund.
type Holding struct {
	Asset            string   `json:"asset"`
	Name             string   `json:"name"`
	ISIN             string   `json:"isin"`
	CUSIP            string   `json:"cusip"`
	SharesNumber     float64  `json:"sharesNumber"`
	WeightPercentage float64  `json:"weightPercentage"`
	MarketValue      float64  `json:"marketValue"`
	Updated          fmp.Date `json:"updated"`
}

// GetHoldings lists a fund's holdings in the API's order.
func GetHoldings(ctx context.Context, symbol string) ([]Holding, error) {
	return fmp.Many[Holding](ctx, "/etf-holder/"+symbol, nil)
}

// SectorWeight is one sector's weight in a fund. WeightPercentage arrives as
// a formatted string such as "29.52%", passed through as-is.
type SectorWeight struct {
	Sector           string `json:"sector"`
	WeightPercentage string `json:"weightPercentage"`
}

// GetSectorWeightings lists a fund's sector weights.
func GetSectorWeightings(ctx context.Context, symbol string) ([]SectorWeight, error) {
	return fmp.Many[SectorWeight](ctx, "/etf-sector-weightings/"+symbol, nil)
}

// CountryWeight is one country's weight in a fund, formatted like
// SectorWeight.
type CountryWeight struct {
	Country          string `json:"country"`
	WeightPercentage string `json:"weightPercentage"`
}

// GetCountryWeightings lists a fund's country weights.
func GetCountryWeightings(ctx context.Context, symbol string) ([]CountryWeight, error) {
	return fmp.Many[CountryWeight](ctx, "/etf-country-weightings/"+symbol, nil)
}
