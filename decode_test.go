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

package fmp

import (
	"context"
	"testing"

	"github.com/stockparfait/errors"

	. "github.com/smartystreets/goconvey/convey"
)

type testRecord struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
	Date   Date    `json:"date"`
}

// NOTE: not parallel, since it shares the package URL with TestFetch.
func TestDecode(t *testing.T) {
	Convey("Decode helpers work", t, func() {
		server := NewTestServer()
		defer server.Close()

		URL = server.URL() + "/api/v3"
		ctx := UseHTTPClient(context.Background(), server.Client())
		ctx = UseClient(ctx, "testkey")

		Convey("One", func() {
			Convey("returns the single record", func() {
				server.ResponseBody = []string{
					`[{"symbol": "AAPL", "price": 150.5, "date": "2022-09-24"}]`}
				r, err := One[testRecord](ctx, "/quote/AAPL", nil)
				So(err, ShouldBeNil)
				So(*r, ShouldResemble, testRecord{
					Symbol: "AAPL",
					Price:  150.5,
					Date:   NewDate(2022, 9, 24),
				})
			})

			Convey("absent fields default to zero values", func() {
				server.ResponseBody = []string{`[{"symbol": "AAPL"}]`}
				r, err := One[testRecord](ctx, "/quote/AAPL", nil)
				So(err, ShouldBeNil)
				So(r.Price, ShouldEqual, 0.0)
				So(r.Date.IsZero(), ShouldBeTrue)
			})

			Convey("empty list means not found", func() {
				server.ResponseBody = []string{`[]`}
				_, err := One[testRecord](ctx, "/quote/NOSUCH", nil)
				So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			})

			Convey("extra records are discarded", func() {
				server.ResponseBody = []string{
					`[{"symbol": "AAPL"}, {"symbol": "MSFT"}]`}
				r, err := One[testRecord](ctx, "/quote/AAPL", nil)
				So(err, ShouldBeNil)
				So(r.Symbol, ShouldEqual, "AAPL")
			})

			Convey("malformed field is a decode error", func() {
				server.ResponseBody = []string{
					`[{"symbol": "AAPL", "date": "2022-13-40"}]`}
				_, err := One[testRecord](ctx, "/quote/AAPL", nil)
				So(KindOf(err), ShouldEqual, KindDecode)
			})

			Convey("object instead of list is a decode error", func() {
				server.ResponseBody = []string{`{"symbol": "AAPL"}`}
				_, err := One[testRecord](ctx, "/quote/AAPL", nil)
				So(errors.Is(err, ErrDecode), ShouldBeTrue)
			})
		})

		Convey("Many", func() {
			Convey("preserves the order of records", func() {
				server.ResponseBody = []string{
					`[{"symbol": "AAPL"}, {"symbol": "MSFT"}, {"symbol": "GOOG"}]`}
				rs, err := Many[testRecord](ctx, "/symbols", nil)
				So(err, ShouldBeNil)
				So(len(rs), ShouldEqual, 3)
				So(rs[0].Symbol, ShouldEqual, "AAPL")
				So(rs[1].Symbol, ShouldEqual, "MSFT")
				So(rs[2].Symbol, ShouldEqual, "GOOG")
			})

			Convey("empty list is a valid result", func() {
				server.ResponseBody = []string{`[]`}
				rs, err := Many[testRecord](ctx, "/symbols", nil)
				So(err, ShouldBeNil)
				So(len(rs), ShouldEqual, 0)
			})

			Convey("transport errors pass through unchanged", func() {
				server.ResponseStatus = 500
				_, err := Many[testRecord](ctx, "/symbols", nil)
				So(errors.Is(err, ErrUnexpectedStatus), ShouldBeTrue)
			})
		})

		Convey("Object", func() {
			Convey("decodes a bare JSON object", func() {
				server.ResponseBody = []string{
					`{"symbol": "AAPL", "price": 150.5}`}
				r, err := Object[testRecord](ctx, "/historical-price-full/AAPL", nil)
				So(err, ShouldBeNil)
				So(r.Symbol, ShouldEqual, "AAPL")
				So(r.Price, ShouldEqual, 150.5)
			})

			Convey("list instead of object is a decode error", func() {
				server.ResponseBody = []string{`[{"symbol": "AAPL"}]`}
				_, err := Object[testRecord](ctx, "/historical-price-full/AAPL", nil)
				So(errors.Is(err, ErrDecode), ShouldBeTrue)
			})
		})
	})
}
