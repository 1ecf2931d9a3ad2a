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
	"io"
	"net/http"
	"net/url"
	"strings"
)

type contextKey int

const (
	clientContextKey contextKey = iota
	httpClientContextKey
)

// URL is the default base URL of the API server. It may be overwritten in
// tests before creating a new client.
var URL = "https://financialmodelingprep.com/api/v3"

// Client for querying the API. It holds the server location and the API key
// credential.
type Client struct {
	baseURL string // the base URL of the server
	apiKey  string // your very own secret key
}

// newClient creates a new client.
func newClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// GetClient extracts the Client from the context, if any.
func GetClient(ctx context.Context) *Client {
	c, ok := ctx.Value(clientContextKey).(*Client)
	if !ok {
		return nil
	}
	return c
}

// UseClient creates a new client based on the API key and injects it into the
// context.
func UseClient(ctx context.Context, apiKey string) context.Context {
	return context.WithValue(ctx, clientContextKey, newClient(URL, apiKey))
}

// UseHTTPClient injects a custom HTTP client into the context, primarily a
// test server's client. When absent, http.DefaultClient is used.
func UseHTTPClient(ctx context.Context, c *http.Client) context.Context {
	return context.WithValue(ctx, httpClientContextKey, c)
}

func httpClient(ctx context.Context) *http.Client {
	c, ok := ctx.Value(httpClientContextKey).(*http.Client)
	if !ok {
		return http.DefaultClient
	}
	return c
}

// errorMessage is the application-level error payload which some endpoints
// return with HTTP 200, e.g. {"Error Message": "Invalid API KEY."}.
type errorMessage struct {
	ErrorMessage string `json:"Error Message"`
}

// Fetch issues a single GET request for the path relative to URL with the
// given query parameters, and returns the raw JSON payload. The API key is
// always attached as the "apikey" query parameter; Fetch fails with
// ErrConfiguration before any network activity when no non-empty key is
// available from the context.
//
// There is exactly one request per call: no retries, no caching. The outcome
// is classified into the *Error kinds of this package; see errors.go.
func Fetch(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	client := GetClient(ctx)
	if client == nil || client.apiKey == "" {
		return nil, &Error{Kind: KindConfiguration, Message: "API key is not set"}
	}
	vals := make(url.Values)
	for k, v := range query {
		vals[k] = v
	}
	vals.Set("apikey", client.apiKey)
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	uri := client.baseURL + path + sep + vals.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	resp, err := httpClient(ctx).Do(req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "GET " + path, Cause: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		// Upstream uses 403 for subscription tier rejections regardless of
		// the body contents.
		return nil, &Error{Kind: KindInvalidSubscription, Status: resp.StatusCode}
	case resp.StatusCode != http.StatusOK:
		return nil, &Error{Kind: KindUnexpectedStatus, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: "failed to read response body", Cause: err}
	}
	if !json.Valid(body) {
		return nil, &Error{Kind: KindDecode, Message: "response is not valid JSON"}
	}
	var em errorMessage
	if json.Unmarshal(body, &em) == nil && em.ErrorMessage != "" {
		return nil, &Error{Kind: KindUpstream, Message: em.ErrorMessage}
	}
	return json.RawMessage(body), nil
}
