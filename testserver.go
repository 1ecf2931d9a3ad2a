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
	"net/http"
	"net/http/httptest"
	"net/url"
)

// TestServer is a test implementation of the API server. Set fields to
// configure the desired responses, and check fields for the recorded
// requests.
type TestServer struct {
	ResponseBody   []string // sequence of responses; the last one repeats
	ResponseStatus int      // HTTP status code for all responses
	RequestPath    string   // path of the last request
	RequestQuery   url.Values
	NumRequests    int
	server         *httptest.Server
}

// NewTestServer creates and starts a new test server instance.
func NewTestServer() *TestServer {
	ts := &TestServer{ResponseStatus: http.StatusOK}
	mux := http.NewServeMux()
	mux.HandleFunc("/", ts.handler)
	ts.server = httptest.NewServer(mux)
	return ts
}

func (ts *TestServer) handler(w http.ResponseWriter, r *http.Request) {
	ts.RequestPath = r.URL.Path
	ts.RequestQuery = r.URL.Query()
	ts.NumRequests++
	var body string
	if len(ts.ResponseBody) > 0 {
		body = ts.ResponseBody[0]
		if len(ts.ResponseBody) > 1 {
			ts.ResponseBody = ts.ResponseBody[1:]
		}
	}
	w.WriteHeader(ts.ResponseStatus)
	w.Write([]byte(body))
}

// URL of the test server, to be assigned to the package's URL variable.
func (ts *TestServer) URL() string {
	return ts.server.URL
}

// Client for connecting to the test server, to be injected into the context
// with UseHTTPClient.
func (ts *TestServer) Client() *http.Client {
	return ts.server.Client()
}

// Close must be called at the end of the test to shut down the server.
func (ts *TestServer) Close() {
	ts.server.Close()
}
