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

package profile

import (
	"net/url"
	"strings"
)

// IsValidURL reports whether s parses as an absolute URL. The API returns
// relative fragments and stray text in URL fields often enough that scheme
// and host are both required.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// CleanURL degrades a URL field to nil instead of rejecting the record:
// empty string becomes nil, an unparseable value becomes nil, a valid URL is
// kept as-is. One bad URL inside a position entry must not invalidate an
// otherwise-good profile.
func CleanURL(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" || !IsValidURL(s) {
		return nil
	}
	return &s
}

// cleanLogo is the companyLogo variant of CleanURL: failures degrade to ""
// rather than nil because the UI renders the value directly as an img
// source, where empty string is the established no-image sentinel.
func cleanLogo(v any) string {
	s, ok := v.(string)
	if !ok || !IsValidURL(s) {
		return ""
	}
	return s
}
