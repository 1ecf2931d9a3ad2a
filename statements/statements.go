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

// Package statements accesses financial statements and derived metrics:
// income statements, balance sheets, cash flow statements, ratios, key
// metrics, and revenue segmentation breakdowns.
//
// The statement endpoints accept optional query parameters such as
// "period=quarter" and "limit=N"; a nil query requests the API defaults
// (annual periods).
package statements

import (
	"context"
	"net/url"

	"github.com/stockparfait/fmp"
)

// IncomeStatement is a single reporting period's income statement.
type IncomeStatement struct {
	Date                        fmp.Date `json:"date"`
	Symbol                      string   `json:"symbol"`
	ReportedCurrency            string   `json:"reportedCurrency"`
	FillingDate                 fmp.Date `json:"fillingDate"`
	Period                      string   `json:"period"`
	Revenue                     float64  `json:"revenue"`
	CostOfRevenue               float64  `json:"costOfRevenue"`
	GrossProfit                 float64  `json:"grossProfit"`
	GrossProfitRatio            float64  `json:"grossProfitRatio"`
	ResearchAndDevelopment      float64  `json:"researchAndDevelopmentExpenses"`
	OperatingExpenses           float64  `json:"operatingExpenses"`
	OperatingIncome             float64  `json:"operatingIncome"`
	OperatingIncomeRatio        float64  `json:"operatingIncomeRatio"`
	InterestExpense             float64  `json:"interestExpense"`
	DepreciationAndAmortization float64  `json:"depreciationAndAmortization"`
	EBITDA                      float64  `json:"ebitda"`
	IncomeBeforeTax             float64  `json:"incomeBeforeTax"`
	IncomeTaxExpense            float64  `json:"incomeTaxExpense"`
	NetIncome                   float64  `json:"netIncome"`
	NetIncomeRatio              float64  `json:"netIncomeRatio"`
	EPS                         float64  `json:"eps"`
	EPSDiluted                  float64  `json:"epsdiluted"`
	WeightedAverageShsOut       float64  `json:"weightedAverageShsOut"`
}

// GetIncomeStatements lists income statements, most recent first as returned
// by the API.
func GetIncomeStatements(ctx context.Context, symbol string, query url.Values) ([]IncomeStatement, error) {
	return fmp.Many[IncomeStatement](ctx, "/income-statement/"+symbol, query)
}

// BalanceSheet is a single reporting period's balance sheet.
type BalanceSheet struct {
	Date                       fmp.Date `json:"date"`
	Symbol                     string   `json:"symbol"`
	ReportedCurrency           string   `json:"reportedCurrency"`
	FillingDate                fmp.Date `json:"fillingDate"`
	Period                     string   `json:"period"`
	CashAndCashEquivalents     float64  `json:"cashAndCashEquivalents"`
	ShortTermInvestments       float64  `json:"shortTermInvestments"`
	NetReceivables             float64  `json:"netReceivables"`
	Inventory                  float64  `json:"inventory"`
	TotalCurrentAssets         float64  `json:"totalCurrentAssets"`
	PropertyPlantEquipmentNet  float64  `json:"propertyPlantEquipmentNet"`
	LongTermInvestments        float64  `json:"longTermInvestments"`
	TotalNonCurrentAssets      float64  `json:"totalNonCurrentAssets"`
	TotalAssets                float64  `json:"totalAssets"`
	AccountPayables            float64  `json:"accountPayables"`
	ShortTermDebt              float64  `json:"shortTermDebt"`
	TotalCurrentLiabilities    float64  `json:"totalCurrentLiabilities"`
	LongTermDebt               float64  `json:"longTermDebt"`
	TotalNonCurrentLiabilities float64  `json:"totalNonCurrentLiabilities"`
	TotalLiabilities           float64  `json:"totalLiabilities"`
	CommonStock                float64  `json:"commonStock"`
	RetainedEarnings           float64  `json:"retainedEarnings"`
	TotalStockholdersEquity    float64  `json:"totalStockholdersEquity"`
	TotalEquity                float64  `json:"totalEquity"`
	TotalDebt                  float64  `json:"totalDebt"`
	NetDebt                    float64  `json:"netDebt"`
}

// GetBalanceSheets lists balance sheets, most recent first as returned by
// the API.
func GetBalanceSheets(ctx context.Context, symbol string, query url.Values) ([]BalanceSheet, error) {
	return fmp.Many[BalanceSheet](ctx, "/balance-sheet-statement/"+symbol, query)
}

// CashFlowStatement is a single reporting period's cash flow statement.
type CashFlowStatement struct {
	Date                        fmp.Date `json:"date"`
	Symbol                      string   `json:"symbol"`
	ReportedCurrency            string   `json:"reportedCurrency"`
	FillingDate                 fmp.Date `json:"fillingDate"`
	Period                      string   `json:"period"`
	NetIncome                   float64  `json:"netIncome"`
	DepreciationAndAmortization float64  `json:"depreciationAndAmortization"`
	ChangeInWorkingCapital      float64  `json:"changeInWorkingCapital"`
	OperatingCashFlow           float64  `json:"operatingCashFlow"`
	InvestmentsInPPE            float64  `json:"investmentsInPropertyPlantAndEquipment"`
	CapitalExpenditure          float64  `json:"capitalExpenditure"`
	InvestingActivitiesCF       float64  `json:"netCashUsedForInvestingActivites"`
	DebtRepayment               float64  `json:"debtRepayment"`
	CommonStockRepurchased      float64  `json:"commonStockRepurchased"`
	DividendsPaid               float64  `json:"dividendsPaid"`
	FinancingActivitiesCF       float64  `json:"netCashUsedProvidedByFinancingActivities"`
	NetChangeInCash             float64  `json:"netChangeInCash"`
	CashAtEndOfPeriod           float64  `json:"cashAtEndOfPeriod"`
	FreeCashFlow                float64  `json:"freeCashFlow"`
}

// GetCashFlowStatements lists cash flow statements, most recent first as
// returned by the API.
func GetCashFlowStatements(ctx context.Context, symbol string, query url.Values) ([]CashFlowStatement, error) {
	return fmp.Many[CashFlowStatement](ctx, "/cash-flow-statement/"+symbol, query)
}

// Ratios holds the financial ratios for one reporting period.
type Ratios struct {
	Symbol                string   `json:"symbol"`
	Date                  fmp.Date `json:"date"`
	Period                string   `json:"period"`
	CurrentRatio          float64  `json:"currentRatio"`
	QuickRatio            float64  `json:"quickRatio"`
	DebtEquityRatio       float64  `json:"debtEquityRatio"`
	InterestCoverage      float64  `json:"interestCoverage"`
	GrossProfitMargin     float64  `json:"grossProfitMargin"`
	OperatingProfitMargin float64  `json:"operatingProfitMargin"`
	NetProfitMargin       float64  `json:"netProfitMargin"`
	ReturnOnEquity        float64  `json:"returnOnEquity"`
	ReturnOnAssets        float64  `json:"returnOnAssets"`
	ReturnOnCapital       float64  `json:"returnOnCapitalEmployed"`
	DividendYield         float64  `json:"dividendYield"`
	PriceEarningsRatio    float64  `json:"priceEarningsRatio"`
	PriceToBookRatio      float64  `json:"priceToBookRatio"`
	PEGRatio              float64  `json:"priceEarningsToGrowthRatio"`
	EVToEBITDA            float64  `json:"enterpriseValueMultiple"`
}

// GetFinancialRatios lists per-period financial ratios.
func GetFinancialRatios(ctx context.Context, symbol string, query url.Values) ([]Ratios, error) {
	return fmp.Many[Ratios](ctx, "/ratios/"+symbol, query)
}

// KeyMetrics holds the derived key metrics for one reporting period.
type KeyMetrics struct {
	Symbol                 string   `json:"symbol"`
	Date                   fmp.Date `json:"date"`
	Period                 string   `json:"period"`
	RevenuePerShare        float64  `json:"revenuePerShare"`
	NetIncomePerShare      float64  `json:"netIncomePerShare"`
	BookValuePerShare      float64  `json:"bookValuePerShare"`
	FreeCashFlowPerShare   float64  `json:"freeCashFlowPerShare"`
	PERatio                float64  `json:"peRatio"`
	PBRatio                float64  `json:"pbRatio"`
	PEGRatio               float64  `json:"pegRatio"`
	EVToEBITDA             float64  `json:"enterpriseValueOverEBITDA"`
	DebtToEquity           float64  `json:"debtToEquity"`
	CurrentRatio           float64  `json:"currentRatio"`
	InterestCoverage       float64  `json:"interestCoverage"`
	DividendYield          float64  `json:"dividendYield"`
	PayoutRatio            float64  `json:"payoutRatio"`
	ROE                    float64  `json:"roe"`
	ROIC                   float64  `json:"roic"`
	ReturnOnTangibleAssets float64  `json:"returnOnTangibleAssets"`
	EarningsYield          float64  `json:"earningsYield"`
	FreeCashFlowYield      float64  `json:"freeCashFlowYield"`
	GrahamNumber           float64  `json:"grahamNumber"`
}

// GetKeyMetrics lists per-period key metrics.
func GetKeyMetrics(ctx context.Context, symbol string, query url.Values) ([]KeyMetrics, error) {
	return fmp.Many[KeyMetrics](ctx, "/key-metrics/"+symbol, query)
}
