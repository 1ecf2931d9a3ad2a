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

package institutional

import (
	"context"
	"net/url"
	"testing"

	"github.com/stockparfait/fmp"

	. "github.com/smartystreets/goconvey/convey"
)

func TestInstitutional(t *testing.T) {
	t.Parallel()

	Convey("Institutional API calls work", t, func() {
		server := fmp.NewTestServer()
		defer server.Close()

		fmp.URL = server.URL() + "/api/v3"
		ctx := fmp.UseHTTPClient(context.Background(), server.Client())
		ctx = fmp.UseClient(ctx, "testkey")

		Convey("GetForm13F", func() {
			server.ResponseBody = []string{`[
  {"date": "2022-06-30", "fillingDate": "2022-08-15",
   "acceptedDate": "2022-08-15 16:21:33", "cik": "0001067983",
   "cusip": "037833100", "tickercusip": "AAPL",
   "nameOfIssuer": "APPLE INC", "shares": 894802319,
   "titleOfClass": "COM", "value": 122337374000}
]`}
			ps, err := GetForm13F(ctx, "0001067983", fmp.NewDate(2022, 6, 30))
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/api/v3/form-thirteen/0001067983")
			So(server.RequestQuery, ShouldResemble, url.Values{
				"date":   []string{"2022-06-30"},
				"apikey": []string{"testkey"},
			})
			So(len(ps), ShouldEqual, 1)
			So(ps[0].TickerCUSIP, ShouldEqual, "AAPL")
			So(ps[0].Date, ShouldResemble, fmp.NewDate(2022, 6, 30))
			So(ps[0].FillingDate, ShouldResemble, fmp.NewDate(2022, 8, 15))
			So(ps[0].Shares, ShouldEqual, 894802319)
		})

		Convey("GetForm13F with no filing is an empty list", func() {
			server.ResponseBody = []string{`[]`}
			ps, err := GetForm13F(ctx, "0001067983", fmp.NewDate(2001, 3, 31))
			So(err, ShouldBeNil)
			So(len(ps), ShouldEqual, 0)
		})

		Convey("GetHolders", func() {
			server.ResponseBody = []string{`[
  {"holder": "VANGUARD GROUP INC", "shares": 1272378901,
   "dateReported": "2022-06-30", "change": 12345678},
  {"holder": "BLACKROCK INC.", "shares": 1020245185,
   "dateReported": "2022-06-30", "change": -9876543}
]`}
			hs, err := GetHolders(ctx, "AAPL")
			So(err, ShouldBeNil)
			So(len(hs), ShouldEqual, 2)
			So(hs[0].Holder, ShouldEqual, "VANGUARD GROUP INC")
			So(hs[1].Change, ShouldEqual, -9876543)
		})

		Convey("SearchCIK escapes the name", func() {
			server.ResponseBody = []string{`[
  {"cik": "0001067983", "name": "BERKSHIRE HATHAWAY INC"}
]`}
			rs, err := SearchCIK(ctx, "Berkshire Hathaway")
			So(err, ShouldBeNil)
			// The recorded path is the server-side decoded form.
			So(server.RequestPath, ShouldEqual,
				"/api/v3/cik-search/Berkshire Hathaway")
			So(rs[0].CIK, ShouldEqual, "0001067983")
		})
	})
}
