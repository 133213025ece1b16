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
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// IsProfileURL reports whether s points at a public LinkedIn member
// profile (matches *linkedin.com/in/*).
func IsProfileURL(s string) bool {
	return strings.Contains(s, "linkedin.com/in/")
}

// GetProfile fetches the raw profile JSON for a LinkedIn profile URL. The
// URL is checked before any network traffic happens. The response body is
// returned as an untyped object: decoding policy lives entirely in the
// profile package.
func (c *Client) GetProfile(ctx context.Context, profileURL string) (map[string]any, error) {
	if !IsProfileURL(profileURL) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProfileURL, profileURL)
	}

	resp, err := c.newAPIRequest(http.MethodGet, c.baseURL+"/v1/enrichment/profile").
		WithParam("linkedInUrl", profileURL).
		WithCSRF().
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newFetchError(resp.StatusCode)
	}

	var raw map[string]any
	if err = json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrFetchFailed, err)
	}
	return raw, nil
}
