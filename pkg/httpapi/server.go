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

// Package httpapi wires the normalization pipelines to HTTP. Handlers hold
// no cross-request state: every upload and every profile fetch is an
// independent, side-effect-free transform of its input.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"go.mau.fi/util/exhttp"

	"github.com/reconnecthq/reconnect/pkg/assistant"
	"github.com/reconnecthq/reconnect/pkg/csvimport"
)

// ProfileFetcher is the slice of the scraping client the server needs.
type ProfileFetcher interface {
	GetProfile(ctx context.Context, profileURL string) (map[string]any, error)
}

type Server struct {
	log       zerolog.Logger
	profiles  ProfileFetcher
	completer assistant.Completer
	auth      Authenticator
	csvCfg    csvimport.HeaderScoreConfig

	mux *http.ServeMux
}

func NewServer(log zerolog.Logger, profiles ProfileFetcher, completer assistant.Completer, auth Authenticator, csvCfg csvimport.HeaderScoreConfig) *Server {
	s := &Server{
		log:       log,
		profiles:  profiles,
		completer: completer,
		auth:      auth,
		csvCfg:    csvCfg,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /api/profile", s.requireAuth(s.handleGetProfile))
	mux.Handle("POST /api/contacts/import", s.requireAuth(s.handleImportContacts))
	mux.Handle("POST /api/recommendations", s.requireAuth(s.handleRecommendations))
	mux.Handle("POST /api/messages/draft", s.requireAuth(s.handleDraft))
	s.mux = mux

	return s
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	handler := hlog.NewHandler(s.log)(
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Dur("duration", duration).
				Msg("request handled")
		})(corsMiddleware(s.mux)),
	)
	return handler
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	exhttp.WriteJSONResponse(w, http.StatusOK, map[string]any{"ok": true})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	exhttp.WriteJSONResponse(w, status, errorResponse{Error: message})
}
