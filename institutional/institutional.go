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

// Package institutional accesses institutional ownership resources: form
// 13F filings, institutional holders of a stock, and CIK lookup.
package institutional

import (
	"context"
	"net/url"

	"github.com/stockparfait/fmp"
)

// Position is one holding reported in a form 13F filing. AcceptedDate is a
// full timestamp string, not a calendar date.
type Position struct {
	Date         fmp.Date `json:"date"`
	FillingDate  fmp.Date `json:"fillingDate"`
	AcceptedDate string   `json:"acceptedDate"`
	CIK          string   `json:"cik"`
	CUSIP        string   `json:"cusip"`
	TickerCUSIP  string   `json:"tickercusip"`
	NameOfIssuer string   `json:"nameOfIssuer"`
	Shares       int64    `json:"shares"`
	TitleOfClass string   `json:"titleOfClass"`
	Value        int64    `json:"value"`
	Link         string   `json:"link"`
	LinkFinal    string   `json:"finalLink"`
}

// GetForm13F lists the positions of an institution's 13F filing for the
// given reporting date (a quarter end).
func GetForm13F(ctx context.Context, cik string, date fmp.Date) ([]Position, error) {
	query := make(url.Values)
	query.Set("date", date.String())
	return fmp.Many[Position](ctx, "/form-thirteen/"+cik, query)
}

// Holder is one institutional holder of a stock.
type Holder struct {
	Holder       string   `json:"holder"`
	Shares       int64    `json:"shares"`
	DateReported fmp.Date `json:"dateReported"`
	Change       int64    `json:"change"`
}

// GetHolders lists the institutional holders of a stock.
func GetHolders(ctx context.Context, symbol string) ([]Holder, error) {
	return fmp.Many[Holder](ctx, "/institutional-holder/"+symbol, nil)
}

// CIKRecord maps an institution's CIK number to its name.
type CIKRecord struct {
	CIK  string `json:"cik"`
	Name string `json:"name"`
}

// SearchCIK looks up institutions by name.
func SearchCIK(ctx context.Context, name string) ([]CIKRecord, error) {
	return fmp.Many[CIKRecord](ctx, "/cik-search/"+url.PathEscape(name), nil)
}
