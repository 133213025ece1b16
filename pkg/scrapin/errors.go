// reconnect - an assistant for rekindling dormant professional connections.
// Copyright (C) 2025 The reconnect authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scrapin

import (
	"errors"
	"fmt"
)

// ErrInvalidProfileURL is returned before any network call when the
// requested URL is not a LinkedIn profile URL.
var ErrInvalidProfileURL = errors.New("scrapin: not a linkedin.com/in profile URL")

// Upstream failure categories. Every non-2xx response maps to exactly one
// of these; callers switch on them with errors.Is instead of inspecting
// status codes.
var (
	ErrAuthFailed      = errors.New("scrapin: authentication failed")
	ErrRateLimited     = errors.New("scrapin: rate limited")
	ErrProfileNotFound = errors.New("scrapin: profile not found")
	ErrFetchFailed     = errors.New("scrapin: fetch failed")
)

// Machine-readable codes for the wire.
const (
	codeAuthExpired = "AUTH_EXPIRED"
	codeRateLimited = "RATE_LIMITED"
	codeNotFound    = "NOT_FOUND"
	codeServerError = "SERVER_ERROR"
)

// FetchError is a categorized upstream failure.
type FetchError struct {
	StatusCode int
	Code       string
	category   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%v (upstream status %d)", e.category, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.category
}

func newFetchError(statusCode int) *FetchError {
	e := &FetchError{StatusCode: statusCode}
	switch statusCode {
	case 401:
		e.Code, e.category = codeAuthExpired, ErrAuthFailed
	case 429:
		e.Code, e.category = codeRateLimited, ErrRateLimited
	case 404:
		e.Code, e.category = codeNotFound, ErrProfileNotFound
	default:
		e.Code, e.category = codeServerError, ErrFetchFailed
	}
	return e
}
