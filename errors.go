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

import "fmt"

// ErrorKind enumerates the failure classes of an API call. The set is flat
// and closed; every operation in this module fails with exactly one of them.
type ErrorKind int

// Values of ErrorKind.
const (
	KindUnknown             ErrorKind = iota
	KindConfiguration                 // credential missing; no network call was made
	KindTransport                     // DNS / connect / TLS / timeout failure
	KindUnexpectedStatus              // HTTP status other than 200 and 403
	KindInvalidSubscription           // HTTP 403: key lacks entitlement for the resource
	KindUpstream                      // HTTP 200 with an explicit upstream error payload
	KindNotFound                      // empty result where a single record was expected
	KindDecode                        // JSON decoded, but a field or shape is invalid
)

// String returns a human-readable name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "credential not set"
	case KindTransport:
		return "transport failure"
	case KindUnexpectedStatus:
		return "unexpected HTTP status"
	case KindInvalidSubscription:
		return "invalid subscription"
	case KindUpstream:
		return "upstream error"
	case KindNotFound:
		return "not found"
	case KindDecode:
		return "decode error"
	}
	return "unknown error"
}

// Error is the error type returned by every operation in this module and its
// resource packages. Status is set for HTTP status classifications, Message
// carries the upstream or decode detail, and Cause the underlying transport
// or JSON error, if any.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Cause   error
}

// Sentinel values for use with errors.Is; each matches any *Error of the same
// kind.
var (
	ErrConfiguration       = &Error{Kind: KindConfiguration}
	ErrTransport           = &Error{Kind: KindTransport}
	ErrUnexpectedStatus    = &Error{Kind: KindUnexpectedStatus}
	ErrInvalidSubscription = &Error{Kind: KindInvalidSubscription}
	ErrUpstream            = &Error{Kind: KindUpstream}
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrDecode              = &Error{Kind: KindDecode}
)

// Error implements the error interface.
func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Status != 0 {
		s += fmt.Sprintf(" [HTTP %d]", e.Status)
	}
	if e.Message != "" {
		s += ": " + e.Message
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error of the same kind, so that
// errors.Is(err, fmp.ErrNotFound) works on annotated chains.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf extracts the failure kind from an error, walking the wrap chain. It
// returns KindUnknown for a nil error or an error not originating from this
// module.
func KindOf(err error) ErrorKind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return KindUnknown
		}
		err = u.Unwrap()
	}
	return KindUnknown
}
