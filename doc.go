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

// Package fmp implements the shared transport for the Financial Modeling Prep
// REST API: https://site.financialmodelingprep.com/developer/docs .
//
// Every API call is a single HTTPS GET with the API key attached as the
// "apikey" query parameter, returning a JSON payload. This package performs
// that one request and classifies the outcome; the resource packages
// (company, statements, etf, market, institutional) decode the payload into
// typed records.
//
// The client is injected into the context, similar to how database handles
// are passed around in the other Stock Parfait libraries:
//
//	ctx := fmp.UseClient(context.Background(), "your-api-key")
//	profile, err := company.GetProfile(ctx, "AAPL")
//
// All failures are values of *Error with a closed set of kinds; use
// errors.Is with the exported sentinels, or KindOf:
//
//	if errors.Is(err, fmp.ErrNotFound) { ... }
//
// The package never retries, never caches and never logs; a call is exactly
// one synchronous round trip. It holds no mutable state, so concurrent calls
// from the embedding application need no coordination.
package fmp
