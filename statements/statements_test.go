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

package statements

import (
	"context"
	"net/url"
	"testing"

	"github.com/stockparfait/fmp"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStatements(t *testing.T) {
	t.Parallel()

	Convey("Statement API calls work", t, func() {
		server := fmp.NewTestServer()
		defer server.Close()

		fmp.URL = server.URL() + "/api/v3"
		ctx := fmp.UseHTTPClient(context.Background(), server.Client())
		ctx = fmp.UseClient(ctx, "testkey")

		Convey("GetIncomeStatements with period and limit", func() {
			server.ResponseBody = []string{`[
  {"date": "2022-09-24", "symbol": "AAPL", "period": "FY",
   "revenue": 394328000000, "netIncome": 99803000000, "eps": 6.15},
  {"date": "2021-09-25", "symbol": "AAPL", "period": "FY",
   "revenue": 365817000000, "netIncome": 94680000000, "eps": 5.67}
]`}
			query := make(url.Values)
			query.Set("period", "annual")
			query.Set("limit", "2")
			ss, err := GetIncomeStatements(ctx, "AAPL", query)
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/api/v3/income-statement/AAPL")
			So(server.RequestQuery, ShouldResemble, url.Values{
				"period": []string{"annual"},
				"limit":  []string{"2"},
				"apikey": []string{"testkey"},
			})
			So(len(ss), ShouldEqual, 2)
			So(ss[0].Date, ShouldResemble, fmp.NewDate(2022, 9, 24))
			So(ss[0].Revenue, ShouldEqual, 394328000000.0)
			So(ss[1].NetIncome, ShouldEqual, 94680000000.0)
		})

		Convey("GetIncomeStatements with no data is an empty list", func() {
			server.ResponseBody = []string{`[]`}
			ss, err := GetIncomeStatements(ctx, "NOSUCH", nil)
			So(err, ShouldBeNil)
			So(len(ss), ShouldEqual, 0)
		})

		Convey("GetBalanceSheets", func() {
			server.ResponseBody = []string{`[
  {"date": "2022-09-24", "symbol": "AAPL", "period": "FY",
   "totalAssets": 352755000000, "totalLiabilities": 302083000000,
   "totalStockholdersEquity": 50672000000}
]`}
			bs, err := GetBalanceSheets(ctx, "AAPL", nil)
			So(err, ShouldBeNil)
			So(len(bs), ShouldEqual, 1)
			So(bs[0].TotalAssets, ShouldEqual, 352755000000.0)
		})

		Convey("GetCashFlowStatements", func() {
			server.ResponseBody = []string{`[
  {"date": "2022-09-24", "symbol": "AAPL", "period": "FY",
   "operatingCashFlow": 122151000000, "capitalExpenditure": -10708000000,
   "freeCashFlow": 111443000000}
]`}
			cs, err := GetCashFlowStatements(ctx, "AAPL", nil)
			So(err, ShouldBeNil)
			So(cs[0].FreeCashFlow, ShouldEqual, 111443000000.0)
			So(cs[0].CapitalExpenditure, ShouldEqual, -10708000000.0)
		})

		Convey("GetFinancialRatios", func() {
			server.ResponseBody = []string{`[
  {"symbol": "AAPL", "date": "2022-09-24", "period": "FY",
   "currentRatio": 0.8793, "returnOnEquity": 1.9695}
]`}
			rs, err := GetFinancialRatios(ctx, "AAPL", nil)
			So(err, ShouldBeNil)
			So(rs[0].CurrentRatio, ShouldEqual, 0.8793)
			So(rs[0].ReturnOnEquity, ShouldEqual, 1.9695)
		})

		Convey("GetKeyMetrics", func() {
			server.ResponseBody = []string{`[
  {"symbol": "AAPL", "date": "2022-09-24", "period": "FY",
   "peRatio": 24.44, "grahamNumber": 20.88}
]`}
			ms, err := GetKeyMetrics(ctx, "AAPL", nil)
			So(err, ShouldBeNil)
			So(ms[0].PERatio, ShouldEqual, 24.44)
		})

		Convey("malformed date in a statement is a decode error", func() {
			server.ResponseBody = []string{
				`[{"date": "not-a-date", "symbol": "AAPL"}]`}
			_, err := GetIncomeStatements(ctx, "AAPL", nil)
			So(fmp.KindOf(err), ShouldEqual, fmp.KindDecode)
		})
	})
}

// NOTE: not parallel, since it shares the package URL with TestStatements.
func TestSegmentation(t *testing.T) {
	Convey("Segmentation reshape works", t, func() {
		server := fmp.NewTestServer()
		defer server.Close()

		fmp.URL = server.URL() + "/api/v4"
		ctx := fmp.UseHTTPClient(context.Background(), server.Client())
		ctx = fmp.UseClient(ctx, "testkey")

		Convey("product segmentation reshapes dynamic keys", func() {
			server.ResponseBody = []string{
				`[{"2022-09-24": {"Mac": 40177000000, "iPhone": 205489000000}}]`}
			ss, err := GetProductSegmentation(ctx, "AAPL")
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/api/v4/revenue-product-segmentation")
			So(server.RequestQuery, ShouldResemble, url.Values{
				"symbol":    []string{"AAPL"},
				"structure": []string{"flat"},
				"apikey":    []string{"testkey"},
			})
			So(ss, ShouldResemble, []Segment{{
				Date: fmp.NewDate(2022, 9, 24),
				Items: []SegmentItem{
					{Name: "Mac", Value: 40177000000},
					{Name: "iPhone", Value: 205489000000},
				},
			}})
		})

		Convey("category order within a period is preserved", func() {
			server.ResponseBody = []string{`[
  {"2022-09-24": {"iPhone": 205489000000, "Mac": 40177000000, "iPad": 29292000000}},
  {"2021-09-25": {"iPhone": 191973000000}}
]`}
			ss, err := GetGeographicSegmentation(ctx, "AAPL")
			So(err, ShouldBeNil)
			So(len(ss), ShouldEqual, 2)
			So(ss[0].Items[0].Name, ShouldEqual, "iPhone")
			So(ss[0].Items[1].Name, ShouldEqual, "Mac")
			So(ss[0].Items[2].Name, ShouldEqual, "iPad")
			So(ss[1].Date, ShouldResemble, fmp.NewDate(2021, 9, 25))
		})

		Convey("empty outer list is an empty result", func() {
			server.ResponseBody = []string{`[]`}
			ss, err := GetProductSegmentation(ctx, "AAPL")
			So(err, ShouldBeNil)
			So(ss, ShouldResemble, []Segment{})
		})

		Convey("empty inner object produces no items", func() {
			server.ResponseBody = []string{`[{"2022-09-24": {}}]`}
			ss, err := GetProductSegmentation(ctx, "AAPL")
			So(err, ShouldBeNil)
			So(ss, ShouldResemble, []Segment{{
				Date:  fmp.NewDate(2022, 9, 24),
				Items: []SegmentItem{},
			}})
		})

		Convey("more than one date key is rejected", func() {
			server.ResponseBody = []string{
				`[{"2022-09-24": {"Mac": 1}, "2021-09-25": {"Mac": 2}}]`}
			_, err := GetProductSegmentation(ctx, "AAPL")
			So(fmp.KindOf(err), ShouldEqual, fmp.KindDecode)
		})

		Convey("object with no keys is rejected", func() {
			server.ResponseBody = []string{`[{}]`}
			_, err := GetProductSegmentation(ctx, "AAPL")
			So(fmp.KindOf(err), ShouldEqual, fmp.KindDecode)
		})

		Convey("invalid date key is rejected", func() {
			server.ResponseBody = []string{`[{"not-a-date": {"Mac": 1}}]`}
			_, err := GetProductSegmentation(ctx, "AAPL")
			So(fmp.KindOf(err), ShouldEqual, fmp.KindDecode)
		})

		Convey("non-numeric category value is rejected", func() {
			server.ResponseBody = []string{`[{"2022-09-24": {"Mac": "lots"}}]`}
			_, err := GetProductSegmentation(ctx, "AAPL")
			So(fmp.KindOf(err), ShouldEqual, fmp.KindDecode)
		})
	})
}
