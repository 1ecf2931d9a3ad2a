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
	"bytes"
	"context"
	"encoding/json"
	"net/url"

	"github.com/stockparfait/fmp"
)

// SegmentItem is one category's revenue within a reporting period.
type SegmentItem struct {
	Name  string
	Value float64
}

// Segment is the revenue breakdown for one reporting period. Items preserve
// the category order of the upstream payload.
type Segment struct {
	Date  fmp.Date
	Items []SegmentItem
}

// GetProductSegmentation fetches revenue by product line, one Segment per
// reporting period in the API's order.
func GetProductSegmentation(ctx context.Context, symbol string) ([]Segment, error) {
	return getSegmentation(ctx, "/revenue-product-segmentation", symbol)
}

// GetGeographicSegmentation fetches revenue by geography, one Segment per
// reporting period in the API's order.
func GetGeographicSegmentation(ctx context.Context, symbol string) ([]Segment, error) {
	return getSegmentation(ctx, "/revenue-geographic-segmentation", symbol)
}

func getSegmentation(ctx context.Context, path, symbol string) ([]Segment, error) {
	query := make(url.Values)
	query.Set("symbol", symbol)
	query.Set("structure", "flat")
	raw, err := fmp.Fetch(ctx, path, query)
	if err != nil {
		return nil, err
	}
	return decodeSegments(path, raw)
}

func segmentError(path, msg string) error {
	return &fmp.Error{
		Kind:    fmp.KindDecode,
		Message: "segmentation payload of " + path + ": " + msg,
	}
}

// decodeSegments walks the payload token by token. The upstream shape is a
// list of single-key objects keyed by a dynamic date string, whose value maps
// dynamic category names to numbers. A streaming decode is the only way to
// keep the category insertion order, which a map decode would destroy.
func decodeSegments(path string, raw json.RawMessage) ([]Segment, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, segmentError(path, err.Error())
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, segmentError(path, "expected a list")
	}
	segments := []Segment{}
	for dec.More() {
		s, err := decodeSegment(path, dec)
		if err != nil {
			return nil, err
		}
		segments = append(segments, s)
	}
	if _, err := dec.Token(); err != nil {
		return nil, segmentError(path, err.Error())
	}
	return segments, nil
}

// decodeSegment decodes one outer object. Exactly one key is expected, the
// period's date; any other number of keys violates the upstream contract and
// is rejected rather than resolved by picking an arbitrary key.
func decodeSegment(path string, dec *json.Decoder) (Segment, error) {
	var segment Segment
	tok, err := dec.Token()
	if err != nil {
		return segment, segmentError(path, err.Error())
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return segment, segmentError(path, "expected an object keyed by date")
	}
	if !dec.More() {
		return segment, segmentError(path, "object has no date key")
	}
	tok, err = dec.Token()
	if err != nil {
		return segment, segmentError(path, err.Error())
	}
	key, ok := tok.(string)
	if !ok {
		return segment, segmentError(path, "expected a date key")
	}
	date, err := fmp.NewDateFromString(key)
	if err != nil {
		return segment, segmentError(path, "invalid date key '"+key+"'")
	}
	segment.Date = date
	if segment.Items, err = decodeItems(path, dec); err != nil {
		return segment, err
	}
	if dec.More() {
		return segment, segmentError(path, "more than one date key in an object")
	}
	if _, err := dec.Token(); err != nil {
		return segment, segmentError(path, err.Error())
	}
	return segment, nil
}

func decodeItems(path string, dec *json.Decoder) ([]SegmentItem, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, segmentError(path, err.Error())
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, segmentError(path, "expected an object of category values")
	}
	items := []SegmentItem{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, segmentError(path, err.Error())
		}
		name, ok := tok.(string)
		if !ok {
			return nil, segmentError(path, "expected a category name")
		}
		tok, err = dec.Token()
		if err != nil {
			return nil, segmentError(path, err.Error())
		}
		num, ok := tok.(json.Number)
		if !ok {
			return nil, segmentError(path, "category '"+name+"' value is not a number")
		}
		value, err := num.Float64()
		if err != nil {
			return nil, segmentError(path, err.Error())
		}
		items = append(items, SegmentItem{Name: name, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, segmentError(path, err.Error())
	}
	return items, nil
}
