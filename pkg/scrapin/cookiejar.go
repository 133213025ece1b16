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
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"sync"
)

// CookieJar is an [http.CookieJar] backed by a plain name -> cookie map. The
// scraping service authenticates by forwarding the member's own LinkedIn
// session cookies, which arrive as a single pasted Cookie header string, so
// the jar also implements [json.Marshaler] and [json.Unmarshaler] in that
// header-string form.
//
// The zero value is not usable; construct with [NewEmptyCookieJar] or
// [NewJarFromCookieHeader].
type CookieJar struct {
	cookies map[string]*http.Cookie
	lock    sync.RWMutex
}

var _ http.CookieJar = (*CookieJar)(nil)
var _ json.Marshaler = (*CookieJar)(nil)
var _ json.Unmarshaler = (*CookieJar)(nil)

func NewEmptyCookieJar() *CookieJar {
	return &CookieJar{cookies: make(map[string]*http.Cookie)}
}

// NewJarFromCookieHeader creates a [CookieJar] from a Cookie header string.
// It errors if the header does not parse.
func NewJarFromCookieHeader(cookieHeader string) (*CookieJar, error) {
	cookies, err := parseCookieHeaderString(cookieHeader)
	return &CookieJar{cookies: cookies}, err
}

func (j *CookieJar) Cookies(_ *url.URL) []*http.Cookie {
	j.lock.RLock()
	defer j.lock.RUnlock()
	return slices.Collect(maps.Values(j.cookies))
}

func (j *CookieJar) SetCookies(_ *url.URL, cookies []*http.Cookie) {
	j.lock.Lock()
	defer j.lock.Unlock()
	for _, c := range cookies {
		j.cookies[c.Name] = c
	}
}

func (j *CookieJar) Clear() {
	j.lock.Lock()
	defer j.lock.Unlock()
	clear(j.cookies)
}

func (j *CookieJar) GetCookie(name string) (value string) {
	j.lock.RLock()
	defer j.lock.RUnlock()
	if c, ok := j.cookies[name]; ok {
		value = c.Value
	}
	return
}

func (j *CookieJar) UnmarshalJSON(data []byte) (err error) {
	var cookieHeader string
	if err = json.Unmarshal(data, &cookieHeader); err != nil {
		return
	}
	j.cookies, err = parseCookieHeaderString(cookieHeader)
	return
}

func (j *CookieJar) MarshalJSON() ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, "", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request")
	}
	j.lock.RLock()
	defer j.lock.RUnlock()
	for _, c := range j.cookies {
		req.AddCookie(c)
	}
	return json.Marshal(req.Header.Get("Cookie"))
}

func parseCookieHeaderString(cookieString string) (map[string]*http.Cookie, error) {
	cookies, err := http.ParseCookie(cookieString)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*http.Cookie, len(cookies))
	for _, c := range cookies {
		byName[c.Name] = c
	}
	return byName, nil
}
