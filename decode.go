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
	"encoding/json"
	"net/url"
)

// One fetches an endpoint whose payload is a JSON list expected to carry a
// single record, and returns that record. An empty list means the requested
// entity does not exist and yields ErrNotFound. Extra records beyond the
// first are discarded.
func One[T any](ctx context.Context, path string, query url.Values) (*T, error) {
	raw, err := Fetch(ctx, path, query)
	if err != nil {
		return nil, err
	}
	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, &Error{
			Kind:    KindDecode,
			Message: "failed to decode response of " + path,
			Cause:   err,
		}
	}
	if len(rows) == 0 {
		return nil, &Error{
			Kind:    KindNotFound,
			Message: "no records returned by " + path,
		}
	}
	return &rows[0], nil
}

// Many fetches an endpoint whose payload is a JSON list of records and
// returns all of them in the API's order. An empty list is a valid result.
func Many[T any](ctx context.Context, path string, query url.Values) ([]T, error) {
	raw, err := Fetch(ctx, path, query)
	if err != nil {
		return nil, err
	}
	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, &Error{
			Kind:    KindDecode,
			Message: "failed to decode response of " + path,
			Cause:   err,
		}
	}
	return rows, nil
}

// Object fetches an endpoint whose payload is a bare JSON object rather than
// a list, such as the full historical price endpoint.
func Object[T any](ctx context.Context, path string, query url.Values) (*T, error) {
	raw, err := Fetch(ctx, path, query)
	if err != nil {
		return nil, err
	}
	var row T
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, &Error{
			Kind:    KindDecode,
			Message: "failed to decode response of " + path,
			Cause:   err,
		}
	}
	return &row, nil
}
