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

// Package scrapin is the client for the third-party profile-scraping API.
// The service is an opaque JSON source with known unreliability: the shape
// of what it returns is the profile package's problem, this package only
// fetches bytes and categorizes transport failures.
package scrapin

import (
	"net/http"
)

const (
	defaultBaseURL = "https://api.scrapin.io"

	cookieJSESSIONID = "JSESSIONID"

	contentTypeJSON = "application/json"
)

type Config struct {
	// BaseURL of the scraping service. Empty means the production default.
	BaseURL string
	// CookieHeader is the member's LinkedIn session in Cookie header form
	// (the service forwards it upstream). May be empty for backends that
	// do not need it.
	CookieHeader string
}

type Client struct {
	http    *http.Client
	jar     *CookieJar
	baseURL string
}

func NewClient(cfg Config) (*Client, error) {
	jar := NewEmptyCookieJar()
	if cfg.CookieHeader != "" {
		var err error
		if jar, err = NewJarFromCookieHeader(cfg.CookieHeader); err != nil {
			return nil, err
		}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		jar:     jar,
		baseURL: baseURL,
		http: &http.Client{
			Jar: jar,

			// Disallow redirects entirely:
			// https://stackoverflow.com/a/38150816/2319844
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}
