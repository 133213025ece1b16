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

package httpapi

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// Authenticator answers one question: does this request carry an
// authenticated, verified identity. Session management, token issuance and
// identity verification all live outside this service.
type Authenticator interface {
	Authenticate(r *http.Request) bool
}

// TokenAuthenticator accepts a single static bearer token. An empty token
// disables authentication; only for local development.
type TokenAuthenticator struct {
	Token string
}

var _ Authenticator = TokenAuthenticator{}

func (t TokenAuthenticator) Authenticate(r *http.Request) bool {
	if t.Token == "" {
		return true
	}
	header := r.Header.Get("Authorization")
	got, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(t.Token)) == 1
}

func (s *Server) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.auth != nil && !s.auth.Authenticate(r) {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next(w, r)
	})
}
